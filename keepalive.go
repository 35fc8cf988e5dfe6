// keepalive.go - stop the drone auto-landing when the pilot is idle

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
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultKeepAliveInterval is how often a ping is sent if no interval is configured.
const DefaultKeepAliveInterval = 5 * time.Second

// Pinger is the part of Drone the keep-alive loop needs.
type Pinger interface {
	Ping() error
}

// Ticker is the part of *time.Ticker the keep-alive loop uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (tt timeTicker) C() <-chan time.Time { return tt.t.C }
func (tt timeTicker) Stop()               { tt.t.Stop() }

// NewTimeTicker is the default TickerFunc, backed by time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// KeepAlive pings a drone at a fixed interval.
type KeepAlive struct {
	drone     Pinger
	interval  time.Duration
	newTicker TickerFunc
	log       logrus.FieldLogger
	sent      uint64
	failed    uint64
}

// NewKeepAlive returns a KeepAlive pinging drone every interval (DefaultKeepAliveInterval if zero).
func NewKeepAlive(drone Pinger, interval time.Duration, log logrus.FieldLogger) *KeepAlive {
	if interval <= 0 {
		interval = DefaultKeepAliveInterval
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &KeepAlive{drone: drone, interval: interval, newTicker: NewTimeTicker, log: log}
}

// SetTicker replaces the ticker factory; it must be called before Run.
func (k *KeepAlive) SetTicker(f TickerFunc) {
	k.newTicker = f
}

// Interval returns the ping period.
func (k *KeepAlive) Interval() time.Duration {
	return k.interval
}

// Sent returns the number of pings attempted so far.
func (k *KeepAlive) Sent() uint64 {
	return atomic.LoadUint64(&k.sent)
}

// Failed returns the number of pings that returned an error.
func (k *KeepAlive) Failed() uint64 {
	return atomic.LoadUint64(&k.failed)
}

// Run pings once straight away and then on every tick until ctx is done.
// A failed ping is logged and the loop carries on.
func (k *KeepAlive) Run(ctx context.Context) {
	t := k.newTicker(k.interval)
	defer t.Stop()

	for {
		if ctx.Err() != nil {
			return
		}
		k.ping()
		select {
		case <-ctx.Done():
			k.log.Debug("keep-alive stopped")
			return
		case <-t.C():
		}
	}
}

func (k *KeepAlive) ping() {
	atomic.AddUint64(&k.sent, 1)
	if err := k.drone.Ping(); err != nil {
		atomic.AddUint64(&k.failed, 1)
		k.log.WithError(err).Warn("keep-alive ping failed")
	}
}
