// flippanel.go

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
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	telloui "github.com/lutaqqq/DroneQualification"
)

// FlipPanel has one button per flip direction.
type FlipPanel struct {
	Window   fyne.Window
	Left     *widget.Button
	Right    *widget.Button
	Forward  *widget.Button
	Backward *widget.Button
}

// OpenFlipPanel shows the flip panel, creating it if it is not already open.
func (a *App) OpenFlipPanel() *FlipPanel {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.flip != nil {
		a.flip.Window.Show()
		return a.flip
	}

	fp := &FlipPanel{
		Window:   a.fyneApp.NewWindow("Flip"),
		Left:     widget.NewButton("Flip left", a.submit(telloui.ActFlipLeft)),
		Right:    widget.NewButton("Flip right", a.submit(telloui.ActFlipRight)),
		Forward:  widget.NewButton("Flip forward", a.submit(telloui.ActFlipForward)),
		Backward: widget.NewButton("Flip backward", a.submit(telloui.ActFlipBackward)),
	}
	fp.Window.SetContent(container.NewVBox(fp.Backward, fp.Forward, fp.Right, fp.Left))
	fp.Window.SetOnClosed(func() {
		a.mu.Lock()
		a.flip = nil
		a.mu.Unlock()
	})
	fp.Window.Show()

	a.flip = fp
	return fp
}
