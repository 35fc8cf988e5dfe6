// camera.go - the live camera window

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
	"context"
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	frameWidth  = 640
	frameHeight = 480
	skipDelay   = 10 * time.Millisecond
)

// CameraView is a window showing frames polled from a FrameSource.
// Unlike a blocking capture loop, polling happens on its own goroutine so the rest of the panel stays usable.
type CameraView struct {
	Window fyne.Window
	Image  *canvas.Image

	source    FrameSource
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// OpenCamera opens the camera and shows it in a new window.
// Closing the window stops polling and releases the camera.
func (a *App) OpenCamera() (*CameraView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.camera != nil {
		a.camera.Window.Show()
		return a.camera, nil
	}

	src, err := a.openCamera()
	if err != nil {
		a.log.WithError(err).Error("could not open camera")
		return nil, err
	}

	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight)))
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(frameWidth, frameHeight))

	ctx, cancel := context.WithCancel(context.Background())
	cv := &CameraView{
		Window: a.fyneApp.NewWindow("Live camera stream"),
		Image:  img,
		source: src,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	cv.Window.SetContent(img)
	cv.Window.SetOnClosed(func() {
		cv.Close()
		a.mu.Lock()
		a.camera = nil
		a.mu.Unlock()
	})

	go func() {
		defer close(cv.done)
		stream(ctx, src, func(frame image.Image) {
			img.Image = frame
			img.Refresh()
		})
	}()
	cv.Window.Show()

	a.camera = cv
	return cv, nil
}

// Close stops polling and releases the camera.  The window itself is left alone.
func (cv *CameraView) Close() {
	cv.closeOnce.Do(func() {
		cv.cancel()
		<-cv.done
		cv.source.Close()
	})
}

// stream polls src and hands every good frame to show until ctx is done.
func stream(ctx context.Context, src FrameSource, show func(image.Image)) {
	for ctx.Err() == nil {
		frame, ok := src.Read()
		if !ok {
			time.Sleep(skipDelay)
			continue
		}
		show(frame)
	}
}
