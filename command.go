// command.go - pilot actions and the drone commands they resolve to

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
	"fmt"

	"github.com/pkg/errors"
)

// Action is a discrete control the pilot can trigger.
type Action int

// Actions
const (
	ActTakeOff Action = iota
	ActLand
	ActFlipLeft
	ActFlipRight
	ActFlipForward
	ActFlipBackward
	ActUp
	ActDown
	ActLeft
	ActRight
	ActForward
	ActBackward
	ActRotateClockwise
	ActRotateCounterClockwise
)

// CommandKind says which drone call a Command makes.
type CommandKind string

// Command kinds
const (
	KindTakeOff CommandKind = "takeoff"
	KindLand    CommandKind = "land"
	KindFlip    CommandKind = "flip"
	KindMove    CommandKind = "move"
	KindRotate  CommandKind = "rotate"
)

// Command is an Action resolved against the current Settings.
// Amount is metres for moves, degrees for rotations and unused otherwise.
type Command struct {
	Action    Action      `json:"-"`
	Kind      CommandKind `json:"kind"`
	Direction string      `json:"direction,omitempty"`
	Amount    float64     `json:"amount,omitempty"`
}

type control struct {
	name    string
	kind    CommandKind
	dir     string
	message string // diagnostic; %v is the amount
}

// controls is the fixed action -> drone call table.
//
// NB. the rotate controls are cross-wired: the control reported as "clockwise" turns the
// drone counter-clockwise and vice versa.  It may be compensating for a camera heading,
// so it is kept as-is until someone can check on a real drone.
var controls = map[Action]control{
	ActTakeOff:      {"takeoff", KindTakeOff, "", "takeoff"},
	ActLand:         {"land", KindLand, "", "land"},
	ActFlipLeft:     {"flip-left", KindFlip, string(FlipLeft), "flip left"},
	ActFlipRight:    {"flip-right", KindFlip, string(FlipRight), "flip right"},
	ActFlipForward:  {"flip-forward", KindFlip, string(FlipForward), "flip forward"},
	ActFlipBackward: {"flip-backward", KindFlip, string(FlipBackward), "flip backward"},
	ActUp:           {"up", KindMove, string(MoveUp), "up %v m"},
	ActDown:         {"down", KindMove, string(MoveDown), "down %v m"},
	ActLeft:         {"left", KindMove, string(MoveLeft), "left %v m"},
	ActRight:        {"right", KindMove, string(MoveRight), "right %v m"},
	ActForward:      {"forward", KindMove, string(MoveForward), "forward %v m"},
	ActBackward:     {"backward", KindMove, string(MoveBackward), "backward %v m"},

	ActRotateClockwise:        {"rotate-clockwise", KindRotate, string(RotateCounterClockwise), "clockwise %v degrees"},
	ActRotateCounterClockwise: {"rotate-counter-clockwise", KindRotate, string(RotateClockwise), "counter-clockwise %v degrees"},
}

func (a Action) String() string {
	if c, ok := controls[a]; ok {
		return c.name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction returns the Action whose name is s, eg. "flip-left" or "rotate-clockwise".
func ParseAction(s string) (Action, error) {
	for a, c := range controls {
		if c.name == s {
			return a, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAction, "%q", s)
}

// keyActions maps toolkit-independent key names to actions.
var keyActions = map[string]Action{
	"w":     ActUp,
	"s":     ActDown,
	"a":     ActRotateClockwise,
	"d":     ActRotateCounterClockwise,
	"Up":    ActForward,
	"Down":  ActBackward,
	"Left":  ActLeft,
	"Right": ActRight,
}

// KeyAction returns the Action bound to the named key.
// Letter keys are lower case, arrow keys are "Up", "Down", "Left" and "Right".
func KeyAction(name string) (Action, error) {
	a, ok := keyActions[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownKey, "%q", name)
	}
	return a, nil
}

// KeyHelp is the key map as shown to the pilot.
const KeyHelp = "W - Ascend\t\t\t\tArrow Up - Move forward\n" +
	"S - Descend\t\t\t\tArrow Down - Move backward\n" +
	"A - Rotate counter-clockwise\t\tArrow Left - Move left\n" +
	"D - Rotate clockwise\t\t\tArrow Right - Move right"

// Message is the diagnostic logged when the command is dispatched.
func (c Command) Message() string {
	m := controls[c.Action].message
	if c.Kind == KindMove || c.Kind == KindRotate {
		return fmt.Sprintf(m, c.Amount)
	}
	return m
}

// Execute makes the single drone call described by c.
func (c Command) Execute(d Drone) error {
	switch c.Kind {
	case KindTakeOff:
		return d.TakeOff()
	case KindLand:
		return d.Land()
	case KindFlip:
		return d.Flip(FlipDirection(c.Direction))
	case KindMove:
		return d.Move(MoveDirection(c.Direction), c.Amount)
	case KindRotate:
		return d.Rotate(RotateDirection(c.Direction), c.Amount)
	}
	return errors.Wrapf(ErrUnknownAction, "command kind %q", c.Kind)
}
