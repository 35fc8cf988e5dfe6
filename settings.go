// settings.go - the pilot-adjustable distance and rotation angle

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
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Defaults and slider ranges for the adjustable parameters.
const (
	DefaultDistance = 0.2 // metres
	MinDistance     = 0.02
	MaxDistance     = 5.0
	DistanceStep    = 0.01

	DefaultDegree = 30.0
	MinDegree     = 1.0
	MaxDegree     = 360.0
	DegreeStep    = 1.0
)

// Settings holds the distance used by move commands and the angle used by rotate commands.
// It is written when the pilot commits a slider value and read by every key handler.
type Settings struct {
	mu       sync.RWMutex // protects distance and degree
	distance float64
	degree   float64
	log      logrus.FieldLogger
}

// NewSettings returns Settings starting at the given distance and degree.
// Zero values fall back to DefaultDistance and DefaultDegree.
func NewSettings(distance, degree float64, log logrus.FieldLogger) *Settings {
	if distance == 0 {
		distance = DefaultDistance
	}
	if degree == 0 {
		degree = DefaultDegree
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Settings{distance: distance, degree: degree, log: log}
}

// Distance returns the current move distance in metres.
func (s *Settings) Distance() float64 {
	s.mu.RLock()
	d := s.distance
	s.mu.RUnlock()
	return d
}

// Degree returns the current rotation angle in degrees.
func (s *Settings) Degree() float64 {
	s.mu.RLock()
	d := s.degree
	s.mu.RUnlock()
	return d
}

// ApplyDistance commits a new move distance, as read from the distance slider.
// The slider enforces its own range so no checks are made here.
func (s *Settings) ApplyDistance(v float64) {
	s.mu.Lock()
	s.distance = v
	s.mu.Unlock()
	s.log.Infof("distance reset to %.1f", v)
}

// ApplyDegree commits a new rotation angle, as read from the degree slider.
func (s *Settings) ApplyDegree(v float64) {
	s.mu.Lock()
	s.degree = v
	s.mu.Unlock()
	s.log.Infof("degree reset to %v", v)
}

// ValidateDistance checks v against the distance slider range.
// Inputs that do not come from the slider (eg. the remote panel) should be checked with it first.
func ValidateDistance(v float64) error {
	if v < MinDistance || v > MaxDistance {
		return errors.Wrapf(ErrOutOfRange, "distance %v not in [%v, %v]", v, MinDistance, MaxDistance)
	}
	return nil
}

// ValidateDegree checks v against the degree slider range.
func ValidateDegree(v float64) error {
	if v < MinDegree || v > MaxDegree {
		return errors.Wrapf(ErrOutOfRange, "degree %v not in [%v, %v]", v, MinDegree, MaxDegree)
	}
	return nil
}
