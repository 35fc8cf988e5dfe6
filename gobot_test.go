// telloui project gobot_test.go

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
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeGobotDriver struct {
	calls []string
}

func (f *fakeGobotDriver) rec(s string) error { f.calls = append(f.calls, s); return nil }
func (f *fakeGobotDriver) push(s string, v int) error {
	return f.rec(fmt.Sprintf("%s(%d)", s, v))
}

func (f *fakeGobotDriver) Start() error                 { return f.rec("start") }
func (f *fakeGobotDriver) Halt() error                  { return f.rec("halt") }
func (f *fakeGobotDriver) TakeOff() error               { return f.rec("takeoff") }
func (f *fakeGobotDriver) Land() error                  { return f.rec("land") }
func (f *fakeGobotDriver) FrontFlip() error             { return f.rec("frontflip") }
func (f *fakeGobotDriver) BackFlip() error              { return f.rec("backflip") }
func (f *fakeGobotDriver) LeftFlip() error              { return f.rec("leftflip") }
func (f *fakeGobotDriver) RightFlip() error             { return f.rec("rightflip") }
func (f *fakeGobotDriver) Forward(v int) error          { return f.push("forward", v) }
func (f *fakeGobotDriver) Backward(v int) error         { return f.push("backward", v) }
func (f *fakeGobotDriver) Left(v int) error             { return f.push("left", v) }
func (f *fakeGobotDriver) Right(v int) error            { return f.push("right", v) }
func (f *fakeGobotDriver) Up(v int) error               { return f.push("up", v) }
func (f *fakeGobotDriver) Down(v int) error             { return f.push("down", v) }
func (f *fakeGobotDriver) Clockwise(v int) error        { return f.push("cw", v) }
func (f *fakeGobotDriver) CounterClockwise(v int) error { return f.push("ccw", v) }
func (f *fakeGobotDriver) Hover()                       { f.rec("hover") }

func TestGobotTimedManoeuvres(t *testing.T) {
	log, _ := test.NewNullLogger()
	driver := &fakeGobotDriver{}
	g := newGobotClient(driver, DefaultConfig(), log)
	var slept []time.Duration
	g.sleep = func(d time.Duration) { slept = append(slept, d) }

	if err := g.Move(MoveUp, 1.5); err != nil {
		t.Fatal(err)
	}
	if err := g.Rotate(RotateCounterClockwise, 90); err != nil {
		t.Fatal(err)
	}

	want := []string{"up(30)", "hover", "ccw(30)", "hover"}
	if fmt.Sprint(driver.calls) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, driver.calls)
	}
	// 1.5 m at 0.5 m/s, 90 degrees at 45 degrees/s
	if len(slept) != 2 || slept[0] != 3*time.Second || slept[1] != 2*time.Second {
		t.Errorf("unexpected push durations %v", slept)
	}
}

func TestGobotFlipsAndClose(t *testing.T) {
	driver := &fakeGobotDriver{}
	g := newGobotClient(driver, DefaultConfig(), nil)

	for _, d := range []FlipDirection{FlipLeft, FlipRight, FlipForward, FlipBackward} {
		if err := g.Flip(d); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.Flip("up"); errors.Cause(err) != ErrUnknownDirection {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
	if err := g.Ping(); err != nil {
		t.Errorf("Ping should be a no-op, got %v", err)
	}
	g.Close()

	want := []string{"leftflip", "rightflip", "frontflip", "backflip", "halt"}
	if fmt.Sprint(driver.calls) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, driver.calls)
	}
}
