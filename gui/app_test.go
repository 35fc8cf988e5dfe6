// telloui project app_test.go

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
	"fmt"
	"image"
	"strings"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	logtest "github.com/sirupsen/logrus/hooks/test"

	telloui "github.com/lutaqqq/DroneQualification"
)

type fakeDrone struct {
	mu     sync.Mutex
	calls  []string
	closes int
}

func (f *fakeDrone) rec(format string, args ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeDrone) Ping() error    { return nil }
func (f *fakeDrone) TakeOff() error { return f.rec("takeoff") }
func (f *fakeDrone) Land() error    { return f.rec("land") }
func (f *fakeDrone) Flip(d telloui.FlipDirection) error {
	return f.rec("flip(%s)", d)
}
func (f *fakeDrone) Move(d telloui.MoveDirection, m float64) error {
	return f.rec("move(%s, %v)", d, m)
}
func (f *fakeDrone) Rotate(d telloui.RotateDirection, deg float64) error {
	return f.rec("rotate(%s, %v)", d, deg)
}
func (f *fakeDrone) Close() error {
	f.mu.Lock()
	f.closes++
	f.mu.Unlock()
	return nil
}

// waitCalls polls until the drone has seen n calls.
func (f *fakeDrone) waitCalls(t *testing.T, n int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		f.mu.Lock()
		if len(f.calls) >= n {
			calls := append([]string(nil), f.calls...)
			f.mu.Unlock()
			return calls
		}
		f.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d drone calls", n)
	return nil
}

type fakeCamera struct {
	mu     sync.Mutex
	reads  int
	closed bool
}

func (c *fakeCamera) Read() (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	if c.reads%2 == 0 {
		return nil, false
	}
	return image.NewRGBA(image.Rect(0, 0, 4, 3)), true
}

func (c *fakeCamera) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

func newTestApp(t *testing.T) (*App, *fakeDrone, *fakeCamera) {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	drone := &fakeDrone{}
	cam := &fakeCamera{}
	panel := telloui.NewPanel(drone, telloui.DefaultConfig(), log)
	if err := panel.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	a := NewApp(test.NewApp(), panel, func() (FrameSource, error) { return cam, nil }, log)
	t.Cleanup(a.Close)
	return a, drone, cam
}

func TestCommandPanelButtonsAndKeys(t *testing.T) {
	a, drone, _ := newTestApp(t)
	cp := a.OpenCommandPanel()

	test.Tap(cp.TakeOff)
	drone.waitCalls(t, 1)

	cp.DistanceSlider.SetValue(1.5)
	test.Tap(cp.ApplyDistance)
	cp.TypedKey(&fyne.KeyEvent{Name: fyne.KeyW})
	drone.waitCalls(t, 2)

	cp.DegreeSlider.SetValue(45)
	test.Tap(cp.ApplyDegree)
	cp.TypedKey(&fyne.KeyEvent{Name: fyne.KeyA})
	cp.TypedKey(&fyne.KeyEvent{Name: fyne.KeyQ}) // unbound
	cp.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	test.Tap(cp.Land)

	got := drone.waitCalls(t, 5)
	want := "takeoff|move(up, 1.5)|rotate(counter-clockwise, 45)|move(left, 1.5)|land"
	if strings.Join(got, "|") != want {
		t.Errorf("expected %s, got %s", want, strings.Join(got, "|"))
	}
}

func TestSliderMovesDoNotCommit(t *testing.T) {
	a, drone, _ := newTestApp(t)
	cp := a.OpenCommandPanel()

	cp.DistanceSlider.SetValue(3)
	cp.TypedKey(&fyne.KeyEvent{Name: fyne.KeyUp})

	got := drone.waitCalls(t, 1)
	if got[0] != "move(forward, 0.2)" {
		t.Errorf("expected the committed distance to be used, got %s", got[0])
	}
}

func TestFlipPanel(t *testing.T) {
	a, drone, _ := newTestApp(t)
	cp := a.OpenCommandPanel()
	test.Tap(cp.Flip)

	fp := a.OpenFlipPanel()
	test.Tap(fp.Left)
	drone.waitCalls(t, 1)
	test.Tap(fp.Right)
	drone.waitCalls(t, 2)
	test.Tap(fp.Forward)
	drone.waitCalls(t, 3)
	test.Tap(fp.Backward)

	got := drone.waitCalls(t, 4)
	want := "flip(left)|flip(right)|flip(forward)|flip(backward)"
	if strings.Join(got, "|") != want {
		t.Errorf("expected %s, got %s", want, strings.Join(got, "|"))
	}
}

func TestCommandPanelIsReused(t *testing.T) {
	a, _, _ := newTestApp(t)
	if a.OpenCommandPanel() != a.OpenCommandPanel() {
		t.Error("expected the open command panel to be reused")
	}
}

func TestCameraWindowReleasesCamera(t *testing.T) {
	a, _, cam := newTestApp(t)
	cv, err := a.OpenCamera()
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	cv.Window.Close()

	cam.mu.Lock()
	defer cam.mu.Unlock()
	if !cam.closed {
		t.Error("camera not released when its window closed")
	}
	if cam.reads == 0 {
		t.Error("camera was never polled")
	}
}

func TestCloseReleasesDroneOnce(t *testing.T) {
	a, drone, _ := newTestApp(t)
	a.Close()
	a.Close()
	drone.mu.Lock()
	defer drone.mu.Unlock()
	if drone.closes != 1 {
		t.Errorf("expected the drone to be closed once, got %d", drone.closes)
	}
}

func TestStreamSkipsFailedReads(t *testing.T) {
	cam := &fakeCamera{}
	ctx, cancel := context.WithCancel(context.Background())
	shown := 0
	stream(ctx, cam, func(image.Image) {
		shown++
		if shown == 3 {
			cancel()
		}
	})
	if cam.reads != 5 {
		t.Errorf("expected 5 reads for 3 good frames, got %d", cam.reads)
	}
}
