// gobot.go - a Drone backed by the gobot Tello driver

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

package telloui

import (
	"math"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gobot.io/x/gobot/platforms/dji/tello"
)

// gobotDriver is the part of *tello.Driver we use.
type gobotDriver interface {
	Start() error
	Halt() error
	TakeOff() error
	Land() error
	FrontFlip() error
	BackFlip() error
	LeftFlip() error
	RightFlip() error
	Forward(val int) error
	Backward(val int) error
	Left(val int) error
	Right(val int) error
	Up(val int) error
	Down(val int) error
	Clockwise(val int) error
	CounterClockwise(val int) error
	Hover()
}

// GobotClient drives a Tello through gobot's binary-protocol driver.
// That driver only understands stick speeds, so a Move or Rotate is flown as a stick push at a
// fixed speed for as long as it takes to cover the distance, followed by a Hover.
type GobotClient struct {
	mu            sync.Mutex // one timed manoeuvre at a time
	driver        gobotDriver
	speed         int
	metresPerSec  float64
	degreesPerSec float64
	sleep         func(time.Duration)
	log           logrus.FieldLogger
}

// NewGobotClient creates and starts a gobot Tello driver listening on cfg.GobotPort.
func NewGobotClient(cfg Config, log logrus.FieldLogger) (*GobotClient, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	driver := tello.NewDriver(cfg.GobotPort)
	driver.On(tello.ConnectedEvent, func(data interface{}) {
		log.Info("gobot Tello driver connected")
	})
	if err := driver.Start(); err != nil {
		return nil, errors.Wrap(err, "starting gobot Tello driver")
	}
	return newGobotClient(driver, cfg, log), nil
}

func newGobotClient(driver gobotDriver, cfg Config, log logrus.FieldLogger) *GobotClient {
	return &GobotClient{
		driver:        driver,
		speed:         cfg.GobotSpeed,
		metresPerSec:  cfg.GobotMetresPerSecond,
		degreesPerSec: cfg.GobotDegreesPerSecond,
		sleep:         time.Sleep,
		log:           log,
	}
}

// Ping does nothing; the gobot driver already streams stick packets to the drone continuously.
func (g *GobotClient) Ping() error {
	return nil
}

// TakeOff sends a normal takeoff request to the Tello
func (g *GobotClient) TakeOff() error {
	return g.driver.TakeOff()
}

// Land sends a normal Land request to the Tello
func (g *GobotClient) Land() error {
	return g.driver.Land()
}

// Flip performs a flip in the given direction
func (g *GobotClient) Flip(dir FlipDirection) error {
	switch dir {
	case FlipLeft:
		return g.driver.LeftFlip()
	case FlipRight:
		return g.driver.RightFlip()
	case FlipForward:
		return g.driver.FrontFlip()
	case FlipBackward:
		return g.driver.BackFlip()
	}
	return errors.Wrapf(ErrUnknownDirection, "flip %q", dir)
}

// Move pushes the stick in dir for the time it should take to cover metres.
func (g *GobotClient) Move(dir MoveDirection, metres float64) error {
	var push func(int) error
	switch dir {
	case MoveUp:
		push = g.driver.Up
	case MoveDown:
		push = g.driver.Down
	case MoveLeft:
		push = g.driver.Left
	case MoveRight:
		push = g.driver.Right
	case MoveForward:
		push = g.driver.Forward
	case MoveBackward:
		push = g.driver.Backward
	default:
		return errors.Wrapf(ErrUnknownDirection, "move %q", dir)
	}
	return g.timed(push, metres/g.metresPerSec)
}

// Rotate pushes the yaw stick for the time it should take to turn degrees.
func (g *GobotClient) Rotate(dir RotateDirection, degrees float64) error {
	var push func(int) error
	switch dir {
	case RotateClockwise:
		push = g.driver.Clockwise
	case RotateCounterClockwise:
		push = g.driver.CounterClockwise
	default:
		return errors.Wrapf(ErrUnknownDirection, "rotate %q", dir)
	}
	return g.timed(push, degrees/g.degreesPerSec)
}

// Close halts the gobot driver.
func (g *GobotClient) Close() error {
	return g.driver.Halt()
}

func (g *GobotClient) timed(push func(int) error, seconds float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	d := time.Duration(math.Abs(seconds) * float64(time.Second))
	if err := push(g.speed); err != nil {
		g.driver.Hover()
		return err
	}
	g.sleep(d)
	g.driver.Hover()
	return nil
}
