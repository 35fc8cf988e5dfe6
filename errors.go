// errors.go

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

import "fmt"

type telloError uint8

func (e telloError) Error() string {
	return fmt.Sprintf("telloui: %s", telloErrorString[e])
}

const (
	ErrNoResponse telloError = iota
	ErrCommandRefused
	ErrNotConnected
	ErrAlreadyConnected

	ErrUnknownAction
	ErrUnknownDirection
	ErrUnknownKey
	ErrOutOfRange

	ErrClosed
	ErrUnknownBackend
)

var telloErrorString = map[telloError]string{
	ErrNoResponse:       "no response from drone",
	ErrCommandRefused:   "drone refused the command",
	ErrNotConnected:     "not connected to a drone",
	ErrAlreadyConnected: "already connected to a drone",

	ErrUnknownAction:    "unknown action",
	ErrUnknownDirection: "unknown direction",
	ErrUnknownKey:       "no action bound to key",
	ErrOutOfRange:       "value outside the allowed range",

	ErrClosed:         "panel is closed",
	ErrUnknownBackend: "unknown drone backend",
}
