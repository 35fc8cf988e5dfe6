// commandpanel.go

// Copyright (C) 2026  lutaqqq

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	telloui "github.com/lutaqqq/DroneQualification"
)

var fyneKeys = map[fyne.KeyName]string{
	fyne.KeyW:     "w",
	fyne.KeyS:     "s",
	fyne.KeyA:     "a",
	fyne.KeyD:     "d",
	fyne.KeyUp:    "Up",
	fyne.KeyDown:  "Down",
	fyne.KeyLeft:  "Left",
	fyne.KeyRight: "Right",
}

// CommandPanel is the window with takeoff/land, the sliders and the keyboard controls.
type CommandPanel struct {
	Window         fyne.Window
	TakeOff        *widget.Button
	Land           *widget.Button
	Flip           *widget.Button
	DistanceSlider *widget.Slider
	ApplyDistance  *widget.Button
	DegreeSlider   *widget.Slider
	ApplyDegree    *widget.Button

	app *App
}

// OpenCommandPanel shows the command panel, creating it if it is not already open.
func (a *App) OpenCommandPanel() *CommandPanel {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cmdPanel != nil {
		a.cmdPanel.Window.Show()
		return a.cmdPanel
	}

	cp := &CommandPanel{app: a, Window: a.fyneApp.NewWindow("Command Panel")}
	settings := a.panel.Settings

	title := widget.NewLabelWithStyle("Tello keyboard controls\nAdjust the sliders to set the distance and angle",
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	help := widget.NewLabel(telloui.KeyHelp)

	cp.TakeOff = widget.NewButton("Takeoff", a.submit(telloui.ActTakeOff))
	cp.Land = widget.NewButton("Land", a.submit(telloui.ActLand))
	cp.Flip = widget.NewButton("Flip", func() { a.OpenFlipPanel() })

	distanceLabel := widget.NewLabel("")
	cp.DistanceSlider = widget.NewSlider(telloui.MinDistance, telloui.MaxDistance)
	cp.DistanceSlider.Step = telloui.DistanceStep
	cp.DistanceSlider.OnChanged = func(v float64) { distanceLabel.SetText(fmt.Sprintf("Distance (m): %.2f", v)) }
	cp.DistanceSlider.SetValue(settings.Distance())
	cp.ApplyDistance = widget.NewButton("Apply distance", func() {
		settings.ApplyDistance(cp.DistanceSlider.Value)
		a.setStatus(fmt.Sprintf("distance reset to %.2f m", cp.DistanceSlider.Value))
		cp.Window.Canvas().Unfocus()
	})

	degreeLabel := widget.NewLabel("")
	cp.DegreeSlider = widget.NewSlider(telloui.MinDegree, telloui.MaxDegree)
	cp.DegreeSlider.Step = telloui.DegreeStep
	cp.DegreeSlider.OnChanged = func(v float64) { degreeLabel.SetText(fmt.Sprintf("Degree: %.0f", v)) }
	cp.DegreeSlider.SetValue(settings.Degree())
	cp.ApplyDegree = widget.NewButton("Apply degree", func() {
		settings.ApplyDegree(cp.DegreeSlider.Value)
		a.setStatus(fmt.Sprintf("degree reset to %.0f", cp.DegreeSlider.Value))
		cp.Window.Canvas().Unfocus()
	})

	sliders := container.NewGridWithColumns(2,
		container.NewVBox(distanceLabel, cp.DistanceSlider, cp.ApplyDistance),
		container.NewVBox(degreeLabel, cp.DegreeSlider, cp.ApplyDegree),
	)
	cp.Window.SetContent(container.NewVBox(title, help, sliders, cp.Flip, cp.TakeOff, cp.Land))
	cp.Window.Canvas().SetOnTypedKey(cp.TypedKey)
	cp.Window.SetOnClosed(func() {
		a.mu.Lock()
		a.cmdPanel = nil
		a.mu.Unlock()
	})
	cp.Window.Show()

	a.cmdPanel = cp
	return cp
}

// TypedKey queues the command bound to the key, if any.  Other keys are ignored.
func (cp *CommandPanel) TypedKey(ev *fyne.KeyEvent) {
	name, ok := fyneKeys[ev.Name]
	if !ok {
		return
	}
	if _, err := cp.app.panel.Key(name); err != nil {
		cp.app.setStatus(err.Error())
	}
}
