// drone.go

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

// FlipDirection is one of the four flip directions understood by the Tello.
type FlipDirection string

// MoveDirection is one of the six translation directions.
type MoveDirection string

// RotateDirection is either clockwise or counter-clockwise.
type RotateDirection string

// Flip directions
const (
	FlipLeft     FlipDirection = "left"
	FlipRight    FlipDirection = "right"
	FlipForward  FlipDirection = "forward"
	FlipBackward FlipDirection = "backward"
)

// Move directions
const (
	MoveUp       MoveDirection = "up"
	MoveDown     MoveDirection = "down"
	MoveLeft     MoveDirection = "left"
	MoveRight    MoveDirection = "right"
	MoveForward  MoveDirection = "forward"
	MoveBackward MoveDirection = "backward"
)

// Rotate directions
const (
	RotateClockwise        RotateDirection = "clockwise"
	RotateCounterClockwise RotateDirection = "counter-clockwise"
)

// Drone is the set of calls the panel makes on a drone.
// Implementations must tolerate concurrent calls from the keep-alive loop and the dispatcher.
type Drone interface {
	// Ping sends a no-op command so the drone does not time out and auto-land.
	Ping() error
	TakeOff() error
	Land() error
	Flip(dir FlipDirection) error
	// Move translates the drone by metres in the given direction.
	Move(dir MoveDirection, metres float64) error
	// Rotate turns the drone by degrees in the given direction.
	Rotate(dir RotateDirection, degrees float64) error
	Close() error
}

// ParseFlipDirection returns the FlipDirection named by s.
func ParseFlipDirection(s string) (FlipDirection, error) {
	switch d := FlipDirection(s); d {
	case FlipLeft, FlipRight, FlipForward, FlipBackward:
		return d, nil
	}
	return "", ErrUnknownDirection
}

// ParseMoveDirection returns the MoveDirection named by s.
func ParseMoveDirection(s string) (MoveDirection, error) {
	switch d := MoveDirection(s); d {
	case MoveUp, MoveDown, MoveLeft, MoveRight, MoveForward, MoveBackward:
		return d, nil
	}
	return "", ErrUnknownDirection
}

// ParseRotateDirection returns the RotateDirection named by s.
func ParseRotateDirection(s string) (RotateDirection, error) {
	switch d := RotateDirection(s); d {
	case RotateClockwise, RotateCounterClockwise:
		return d, nil
	}
	return "", ErrUnknownDirection
}
