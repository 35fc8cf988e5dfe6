// flightCommands.go

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

// This file contains the Tello SDK flight command API

package telloui

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var sdkFlip = map[FlipDirection]string{
	FlipLeft:     "l",
	FlipRight:    "r",
	FlipForward:  "f",
	FlipBackward: "b",
}

var sdkMove = map[MoveDirection]string{
	MoveUp:       "up",
	MoveDown:     "down",
	MoveLeft:     "left",
	MoveRight:    "right",
	MoveForward:  "forward",
	MoveBackward: "back",
}

var sdkRotate = map[RotateDirection]string{
	RotateClockwise:        "cw",
	RotateCounterClockwise: "ccw",
}

// fly sends a manoeuvre, which the Tello acknowledges only after it has been flown.
func (c *SDKClient) fly(cmd string) error {
	_, err := c.exchange(cmd, c.motionTimeout)
	return err
}

// Ping sends "command", which also (re)enters SDK mode.
func (c *SDKClient) Ping() error {
	_, err := c.SendCommand("command")
	return err
}

// TakeOff sends a normal takeoff request to the Tello
func (c *SDKClient) TakeOff() error {
	return c.fly("takeoff")
}

// Land sends a normal Land request to the Tello
func (c *SDKClient) Land() error {
	return c.fly("land")
}

// Flip performs a flip in the given direction
func (c *SDKClient) Flip(dir FlipDirection) error {
	d, ok := sdkFlip[dir]
	if !ok {
		return errors.Wrapf(ErrUnknownDirection, "flip %q", dir)
	}
	return c.fly("flip " + d)
}

// Move flies the given number of metres, sent to the Tello as whole centimetres.
func (c *SDKClient) Move(dir MoveDirection, metres float64) error {
	d, ok := sdkMove[dir]
	if !ok {
		return errors.Wrapf(ErrUnknownDirection, "move %q", dir)
	}
	return c.fly(fmt.Sprintf("%s %d", d, int(math.Round(metres*100))))
}

// Rotate turns by the given number of degrees, rounded to a whole degree.
func (c *SDKClient) Rotate(dir RotateDirection, degrees float64) error {
	d, ok := sdkRotate[dir]
	if !ok {
		return errors.Wrapf(ErrUnknownDirection, "rotate %q", dir)
	}
	return c.fly(fmt.Sprintf("%s %d", d, int(math.Round(degrees))))
}
