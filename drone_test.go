// telloui project drone_test.go

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
	"sync"
)

type fakeDrone struct {
	mu       sync.Mutex
	calls    []string
	pings    int
	closes   int
	err      error // returned by every flight call
	pingErr  error
	pingChan chan struct{}
	hold     chan struct{} // if set, flight calls wait for it to be closed
}

func newFakeDrone() *fakeDrone {
	return &fakeDrone{pingChan: make(chan struct{}, 100)}
}

func (f *fakeDrone) record(format string, args ...interface{}) error {
	if f.hold != nil {
		<-f.hold
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return f.err
}

func (f *fakeDrone) Ping() error {
	f.mu.Lock()
	f.pings++
	err := f.pingErr
	f.mu.Unlock()
	f.pingChan <- struct{}{}
	return err
}

func (f *fakeDrone) TakeOff() error               { return f.record("takeoff") }
func (f *fakeDrone) Land() error                  { return f.record("land") }
func (f *fakeDrone) Flip(dir FlipDirection) error { return f.record("flip(%s)", dir) }
func (f *fakeDrone) Move(dir MoveDirection, metres float64) error {
	return f.record("move(%s, %v)", dir, metres)
}
func (f *fakeDrone) Rotate(dir RotateDirection, degrees float64) error {
	return f.record("rotate(%s, %v)", dir, degrees)
}

func (f *fakeDrone) Close() error {
	f.mu.Lock()
	f.closes++
	f.mu.Unlock()
	return nil
}

func (f *fakeDrone) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeDrone) Pings() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pings
}

func (f *fakeDrone) Closes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closes
}
