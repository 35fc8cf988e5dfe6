// app.go

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

// Package gui is the desktop control panel, built with fyne.
package gui

import (
	"context"
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	telloui "github.com/lutaqqq/DroneQualification"
)

// FrameSource is a camera the camera window can poll.
// Read returns ok=false for a failed read; the frame is then skipped.
type FrameSource interface {
	Read() (img image.Image, ok bool)
	Close() error
}

// CameraOpener opens the camera shown by the camera window.
type CameraOpener func() (FrameSource, error)

// App is the main window plus the secondary panels it opens.
type App struct {
	fyneApp    fyne.App
	window     fyne.Window
	panel      *telloui.Panel
	openCamera CameraOpener
	log        logrus.FieldLogger

	status    *widget.Label
	cmdButton *widget.Button
	camButton *widget.Button

	mu       sync.Mutex // protects the window fields below
	cmdPanel *CommandPanel
	flip     *FlipPanel
	camera   *CameraView

	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewApp builds the main window for panel.  The panel should already be started.
func NewApp(fyneApp fyne.App, panel *telloui.Panel, openCamera CameraOpener, log logrus.FieldLogger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &App{
		fyneApp:    fyneApp,
		panel:      panel,
		openCamera: openCamera,
		log:        log,
		status:     widget.NewLabel("Ready"),
	}

	a.window = fyneApp.NewWindow("TELLO Controller")
	a.cmdButton = widget.NewButton("Open command panel", func() { a.OpenCommandPanel() })
	a.camButton = widget.NewButton("Open camera", func() {
		if _, err := a.OpenCamera(); err != nil {
			a.setStatus(err.Error())
		}
	})
	a.window.SetContent(container.NewVBox(a.cmdButton, a.camButton, a.status))
	a.window.SetMaster()
	a.window.SetCloseIntercept(a.Close)

	var ctx context.Context
	ctx, a.cancel = context.WithCancel(context.Background())
	go a.watchResults(ctx)
	return a
}

// Run shows the main window and blocks until the app quits.
func (a *App) Run() {
	a.window.ShowAndRun()
}

// Window returns the main window.
func (a *App) Window() fyne.Window {
	return a.window
}

// Status returns the text of the status line.
func (a *App) Status() string {
	return a.status.Text
}

// Close tears the panel down (closing the drone) and quits.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.cancel()
		a.mu.Lock()
		cam := a.camera
		a.mu.Unlock()
		if cam != nil {
			cam.Close()
		}
		if err := a.panel.Close(); err != nil {
			a.log.WithError(err).Error("teardown failed")
		}
		a.fyneApp.Quit()
	})
}

func (a *App) setStatus(s string) {
	a.status.SetText(s)
}

// watchResults shows the outcome of each dispatched command on the status line.
func (a *App) watchResults(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case res := <-a.panel.Dispatcher.Results():
			if res.Err != nil {
				a.setStatus(res.Err.Error())
			} else {
				a.setStatus(res.Command.Message() + ": ok")
			}
		}
	}
}

// submit returns a button callback queueing act.
func (a *App) submit(act telloui.Action) func() {
	return func() {
		if _, err := a.panel.Submit(act); err != nil {
			a.setStatus(err.Error())
		}
	}
}
