// dispatcher.go - turns pilot actions into drone calls

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
	"strings"

	"github.com/Workiva/go-datastructures/queue"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	queueHint      = 10
	resultsBufSize = 16
)

// Result is the outcome of one dispatched Command.
type Result struct {
	Command Command
	Err     error
}

// Dispatcher maps each Action to exactly one call on a Drone.
type Dispatcher struct {
	drone    Drone
	settings *Settings
	log      logrus.FieldLogger
	queue    *queue.Queue
	results  chan Result
}

// NewDispatcher returns a Dispatcher issuing commands to drone with parameters taken from settings.
func NewDispatcher(drone Drone, settings *Settings, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{
		drone:    drone,
		settings: settings,
		log:      log,
		queue:    queue.New(queueHint),
		results:  make(chan Result, resultsBufSize),
	}
}

// Resolve returns the Command for a, using the distance or degree in force right now.
func (d *Dispatcher) Resolve(a Action) (Command, error) {
	c, ok := controls[a]
	if !ok {
		return Command{}, errors.Wrapf(ErrUnknownAction, "%d", int(a))
	}
	cmd := Command{Action: a, Kind: c.kind, Direction: c.dir}
	switch c.kind {
	case KindMove:
		cmd.Amount = d.settings.Distance()
	case KindRotate:
		cmd.Amount = d.settings.Degree()
	}
	return cmd, nil
}

// Do resolves and executes a on the calling goroutine.
func (d *Dispatcher) Do(a Action) Result {
	cmd, err := d.Resolve(a)
	if err != nil {
		return Result{Err: err}
	}
	return d.execute(cmd)
}

// Submit resolves a and queues the Command for the worker started by Run.
// The outcome is delivered on Results().
func (d *Dispatcher) Submit(a Action) (Command, error) {
	cmd, err := d.Resolve(a)
	if err != nil {
		return cmd, err
	}
	if err := d.queue.Put(cmd); err != nil {
		return cmd, ErrClosed
	}
	return cmd, nil
}

// Results returns the channel on which worker results are sent.
// Results are dropped rather than block the worker if nobody is reading.
func (d *Dispatcher) Results() <-chan Result {
	return d.results
}

// Pending returns the number of queued commands not yet picked up by the worker.
func (d *Dispatcher) Pending() int64 {
	return d.queue.Len()
}

// Run executes queued commands in order until ctx is done or Stop is called.
func (d *Dispatcher) Run(ctx context.Context) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			d.Stop()
		case <-done:
		}
	}()

	for {
		items, err := d.queue.Get(1)
		if err != nil {
			d.log.Debug("dispatcher stopped")
			return
		}
		for _, item := range items {
			res := d.execute(item.(Command))
			select {
			case d.results <- res:
			default:
			}
		}
	}
}

// Stop discards any queued commands and makes further Submits fail with ErrClosed.
// The discarded commands are returned; only the first call returns any.
func (d *Dispatcher) Stop() []Command {
	items := d.queue.Dispose()
	if len(items) == 0 {
		return nil
	}
	dropped := make([]Command, len(items))
	names := make([]string, len(items))
	for i, item := range items {
		dropped[i] = item.(Command)
		names[i] = dropped[i].Action.String()
	}
	d.log.Warnf("dropped %d queued commands: %s", len(dropped), strings.Join(names, ", "))
	return dropped
}

func (d *Dispatcher) execute(cmd Command) (res Result) {
	res.Command = cmd
	defer func() {
		if r := recover(); r != nil {
			res.Err = errors.Errorf("%s: drone call panicked: %v", cmd.Action, r)
			d.log.WithError(res.Err).Error("command failed")
		}
	}()

	d.log.Info(cmd.Message())
	if err := cmd.Execute(d.drone); err != nil {
		res.Err = errors.Wrap(err, cmd.Action.String())
		d.log.WithError(err).Warnf("%s failed", cmd.Action)
	}
	return res
}
