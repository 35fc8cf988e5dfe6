// camera.go - webcam frames via OpenCV

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

// Package camera reads frames from a local capture device with gocv.
package camera

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
	"golang.org/x/image/colornames"
)

const escKey = 27

// Capture is an open capture device.
type Capture struct {
	mu      sync.Mutex // protects webcam and frame
	webcam  *gocv.VideoCapture
	frame   gocv.Mat
	device  int
	read    uint64
	skipped uint64
	log     logrus.FieldLogger
}

// Open opens capture device number device (0 is usually the built-in webcam).
func Open(device int, log logrus.FieldLogger) (*Capture, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	webcam, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, errors.Wrapf(err, "opening capture device %d", device)
	}
	log.Infof("opened capture device %d", device)
	return &Capture{webcam: webcam, frame: gocv.NewMat(), device: device, log: log}, nil
}

// Read grabs the next frame.  ok is false if the read failed, in which case the frame should just be skipped.
func (c *Capture) Read() (img image.Image, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.webcam == nil || !c.webcam.Read(&c.frame) || c.frame.Empty() {
		c.skipped++
		return nil, false
	}
	img, err := c.frame.ToImage()
	if err != nil {
		c.skipped++
		return nil, false
	}
	c.read++
	return img, true
}

// Stats returns the number of frames read and skipped so far.
func (c *Capture) Stats() (read, skipped uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read, c.skipped
}

// Close releases the capture device.  It is safe to call more than once.
func (c *Capture) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.webcam == nil {
		return nil
	}
	c.frame.Close()
	err := c.webcam.Close()
	c.webcam = nil
	c.log.Infof("closed capture device %d after %d frames (%d skipped)", c.device, c.read, c.skipped)
	return err
}

// ShowWindow displays the capture in a native OpenCV window, stamped with the time, until the
// window is closed, Esc is pressed or ctx is done.
// OpenCV windows must be driven from the main thread.
func ShowWindow(ctx context.Context, c *Capture, title string) {
	window := gocv.NewWindow(title)
	defer window.Close()

	for ctx.Err() == nil && window.IsOpen() {
		c.mu.Lock()
		ok := c.webcam != nil && c.webcam.Read(&c.frame) && !c.frame.Empty()
		if ok {
			c.read++
			gocv.PutText(&c.frame, time.Now().Format("15:04:05"), image.Pt(10, 30),
				gocv.FontHersheyPlain, 2, colornames.Yellow, 2)
			window.IMShow(c.frame)
		} else {
			c.skipped++
		}
		c.mu.Unlock()

		if window.WaitKey(1) == escKey {
			return
		}
	}
}
