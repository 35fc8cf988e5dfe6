// panel.go - ties one drone to its settings, dispatcher and keep-alive loop

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
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Panel is the UI-independent half of the control panel.
// Both the GUI and the remote panel drive a Panel.
type Panel struct {
	Settings   *Settings
	Dispatcher *Dispatcher
	KeepAlive  *KeepAlive

	drone Drone
	log   logrus.FieldLogger

	mu        sync.Mutex // protects cancel, started and closed
	cancel    context.CancelFunc
	started   bool
	closed    bool
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewPanel builds a Panel for drone using the distance, degree and keep-alive interval in cfg.
// The Panel takes over the drone: Close will close it.
func NewPanel(drone Drone, cfg Config, log logrus.FieldLogger) *Panel {
	if log == nil {
		log = logrus.StandardLogger()
	}
	settings := NewSettings(cfg.Distance, cfg.Degree, log)
	return &Panel{
		Settings:   settings,
		Dispatcher: NewDispatcher(drone, settings, log),
		KeepAlive:  NewKeepAlive(drone, cfg.KeepAliveInterval(), log),
		drone:      drone,
		log:        log,
	}
}

// Start launches the keep-alive loop and the dispatcher worker.
// They run until ctx is done or Close is called.
func (p *Panel) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if p.started {
		return errors.New("panel already started")
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.started = true

	p.wg.Add(2)
	go func() {
		defer p.wg.Done()
		p.KeepAlive.Run(ctx)
	}()
	go func() {
		defer p.wg.Done()
		p.Dispatcher.Run(ctx)
	}()
	p.log.Infof("panel started, keep-alive every %v", p.KeepAlive.Interval())
	return nil
}

// Submit queues the command for a.
func (p *Panel) Submit(a Action) (Command, error) {
	return p.Dispatcher.Submit(a)
}

// Key queues the command bound to the named key.
func (p *Panel) Key(name string) (Command, error) {
	a, err := KeyAction(name)
	if err != nil {
		return Command{}, err
	}
	return p.Dispatcher.Submit(a)
}

// Close stops the background loops, waits for them and then closes the drone.
// A land still waiting in the queue is flown before the drone is closed.
// Only the first call has any effect; later calls return the first result.
func (p *Panel) Close() error {
	p.closeOnce.Do(func() {
		p.log.Info("closing...")
		p.mu.Lock()
		p.closed = true
		cancel := p.cancel
		p.mu.Unlock()

		// stop the queue before cancelling so the dropped commands come back here
		dropped := p.Dispatcher.Stop()
		if cancel != nil {
			cancel()
		}
		p.wg.Wait()

		for _, cmd := range dropped {
			if cmd.Kind == KindLand {
				p.log.Warn("landing before closing")
				p.Dispatcher.execute(cmd)
				break
			}
		}

		if err := p.drone.Close(); err != nil {
			p.closeErr = errors.Wrap(err, "closing drone")
			p.log.WithError(err).Error("could not close drone")
		}
	})
	return p.closeErr
}
