// network.go

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
	"net"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const maxReplySize = 1518

func (c *SDKClient) controlResponseListener(conn *net.UDPConn, stop <-chan bool, replies chan<- string) {
	buff := make([]byte, maxReplySize)

	for {
		n, err := conn.Read(buff)

		select {
		case <-stop:
			c.log.Debug("control response listener stopped")
			return
		default:
		}
		if err != nil {
			c.log.WithError(err).Warn("network read error")
			time.Sleep(c.timeout)
			continue
		}

		reply := strings.TrimSpace(string(buff[:n]))
		select {
		case replies <- reply:
		default: // nobody is waiting, drop it so we don't block
			c.log.Debugf("unsolicited reply from Tello <%s>", reply)
		}
	}
}

// SendCommand sends one SDK command, eg. "battery?" or "forward 50", and returns the drone's raw reply.
// A reply starting with "error" yields ErrCommandRefused, no reply within the timeout yields ErrNoResponse.
func (c *SDKClient) SendCommand(cmd string) (string, error) {
	return c.exchange(cmd, c.timeout)
}

func (c *SDKClient) exchange(cmd string, timeout time.Duration) (string, error) {
	c.ctrlMu.Lock()
	defer c.ctrlMu.Unlock()

	c.connMu.RLock()
	conn, replies, connected := c.ctrlConn, c.respChan, c.ctrlConnected
	c.connMu.RUnlock()
	if !connected {
		return "", errors.Wrapf(ErrNotConnected, "%q", cmd)
	}

	// throw away late replies to earlier commands
	for drained := false; !drained; {
		select {
		case <-replies:
		default:
			drained = true
		}
	}

	if _, err := conn.Write([]byte(cmd)); err != nil {
		return "", errors.Wrapf(err, "sending %q", cmd)
	}

	select {
	case reply := <-replies:
		if strings.HasPrefix(reply, "error") {
			return reply, errors.Wrapf(ErrCommandRefused, "%q: %s", cmd, reply)
		}
		return reply, nil
	case <-time.After(timeout):
		return "", errors.Wrapf(ErrNoResponse, "%q", cmd)
	}
}
