// tello.go

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
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const respChanSize = 4

// SDKClient talks to a Tello using the SDK text protocol over UDP.
// Every call sends one command and waits (up to the configured timeout) for the drone's reply.
type SDKClient struct {
	ctrlMu        sync.Mutex   // this mutex serialises command/response exchanges
	connMu        sync.RWMutex // this mutex protects the connection fields
	ctrlConn      *net.UDPConn
	ctrlStopChan  chan bool
	ctrlConnected bool
	respChan      chan string
	timeout       time.Duration // for "command" and raw queries
	motionTimeout time.Duration // the Tello only answers a manoeuvre once it is over
	log           logrus.FieldLogger
}

// NewSDKClient returns an unconnected client.  Replies to manoeuvres are awaited for up to
// motionTimeout, everything else for up to timeout.
func NewSDKClient(timeout, motionTimeout time.Duration, log logrus.FieldLogger) *SDKClient {
	if timeout <= 0 {
		timeout = defaultCommandTimeoutMs * time.Millisecond
	}
	if motionTimeout <= 0 {
		motionTimeout = defaultMotionTimeoutMs * time.Millisecond
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SDKClient{timeout: timeout, motionTimeout: motionTimeout, log: log}
}

// ControlConnect connects to a Tello at the provided network addr, starts listening for
// replies and puts the drone into SDK mode.
// A drone that does not answer the first "command" is logged but not treated as an error;
// the keep-alive loop will keep trying.
func (c *SDKClient) ControlConnect(udpAddr string, droneUDPPort int, localUDPPort int) (err error) {
	c.connMu.RLock()
	if c.ctrlConnected {
		c.connMu.RUnlock()
		return ErrAlreadyConnected
	}
	c.connMu.RUnlock()

	droneAddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(udpAddr, strconv.Itoa(droneUDPPort)))
	if err != nil {
		return err
	}
	localAddr, err := net.ResolveUDPAddr("udp", ":"+strconv.Itoa(localUDPPort))
	if err != nil {
		return err
	}
	conn, err := net.DialUDP("udp", localAddr, droneAddr)
	if err != nil {
		return errors.Wrapf(err, "dialling %s", droneAddr)
	}

	c.connMu.Lock()
	c.ctrlConn = conn
	c.ctrlStopChan = make(chan bool)
	c.respChan = make(chan string, respChanSize)
	c.ctrlConnected = true
	c.connMu.Unlock()

	// start the control listener Goroutine
	go c.controlResponseListener(conn, c.ctrlStopChan, c.respChan)

	// say hello to the Tello
	if err := c.Ping(); err != nil {
		c.log.WithError(err).Warnf("Tello at %s did not enter SDK mode", droneAddr)
	} else {
		c.log.Infof("connected to Tello at %s", droneAddr)
	}
	return nil
}

// ControlConnectDefault connects to a Tello on the default network addresses.
func (c *SDKClient) ControlConnectDefault() (err error) {
	return c.ControlConnect(defaultTelloAddr, defaultTelloControlPort, defaultLocalControlPort)
}

// ControlDisconnect stops the control channel listener and closes the connection to the Tello.
func (c *SDKClient) ControlDisconnect() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()
	if !c.ctrlConnected {
		return ErrNotConnected
	}
	close(c.ctrlStopChan)
	c.ctrlConnected = false
	return c.ctrlConn.Close()
}

// ControlConnected returns true if we are currently connected.
func (c *SDKClient) ControlConnected() (connected bool) {
	c.connMu.RLock()
	connected = c.ctrlConnected
	c.connMu.RUnlock()
	return connected
}

// Close is ControlDisconnect, to satisfy Drone.
func (c *SDKClient) Close() error {
	return c.ControlDisconnect()
}
