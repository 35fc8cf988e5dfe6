// commands.go

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

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	telloui "github.com/lutaqqq/DroneQualification"
	"github.com/lutaqqq/DroneQualification/camera"
	"github.com/lutaqqq/DroneQualification/gui"
	"github.com/lutaqqq/DroneQualification/remote"
)

var COMMANDS = []cli.Command{
	{
		Name:   "gui",
		Usage:  "Open the control panel (the default)",
		Action: guiCommand,
	},
	{
		Name:  "serve",
		Usage: "Serve the control panel over HTTP",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "listen, l",
				Usage: "HTTP listen address (default is the config's listen_addr)",
			},
		},
		Action: serveCommand,
	},
	{
		Name:  "camera",
		Usage: "Show the local camera in an OpenCV window",
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "device, d",
				Value: -1,
				Usage: "Camera device index (default is the config's camera_device)",
			},
		},
		Action: cameraCommand,
	},
	{
		Name:      "send",
		Usage:     "Send one raw SDK command and print the reply",
		ArgsUsage: "<command> [args...]",
		Action:    sendCommand,
	},
}

// loadConfig reads the config file and applies any global flag overrides.
func loadConfig(c *cli.Context) (telloui.Config, *logrus.Logger, error) {
	cfg, err := telloui.LoadConfig(c.GlobalString("config"))
	if err != nil {
		return cfg, nil, err
	}
	if b := c.GlobalString("backend"); b != "" {
		cfg.Backend = b
	}
	if a := c.GlobalString("addr"); a != "" {
		cfg.DroneAddr = a
	}
	if l := c.GlobalString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	return cfg, cfg.NewLogger(), nil
}

// newDrone connects to the drone through the configured backend.
func newDrone(cfg telloui.Config, log logrus.FieldLogger) (telloui.Drone, error) {
	switch cfg.Backend {
	case telloui.BackendSDK:
		drone := telloui.NewSDKClient(cfg.CommandTimeout(), cfg.MotionTimeout(), log)
		if err := drone.ControlConnect(cfg.DroneAddr, cfg.DronePort, cfg.LocalPort); err != nil {
			return nil, err
		}
		return drone, nil
	case telloui.BackendGobot:
		return telloui.NewGobotClient(cfg, log)
	}
	return nil, errors.Wrap(telloui.ErrUnknownBackend, cfg.Backend)
}

func startPanel(c *cli.Context) (*telloui.Panel, telloui.Config, *logrus.Logger, error) {
	cfg, log, err := loadConfig(c)
	if err != nil {
		return nil, cfg, nil, err
	}
	drone, err := newDrone(cfg, log)
	if err != nil {
		return nil, cfg, log, err
	}
	panel := telloui.NewPanel(drone, cfg, log)
	if err := panel.Start(context.Background()); err != nil {
		panel.Close()
		return nil, cfg, log, err
	}
	return panel, cfg, log, nil
}

func guiCommand(c *cli.Context) error {
	panel, cfg, log, err := startPanel(c)
	if err != nil {
		return err
	}
	defer panel.Close()

	openCamera := func() (gui.FrameSource, error) {
		return camera.Open(cfg.CameraDevice, log)
	}
	gui.NewApp(app.New(), panel, openCamera, log).Run()
	return nil
}

func serveCommand(c *cli.Context) error {
	panel, cfg, log, err := startPanel(c)
	if err != nil {
		return err
	}
	defer panel.Close()

	addr := cfg.ListenAddr
	if l := c.String("listen"); l != "" {
		addr = l
	}
	srv := &http.Server{Addr: addr, Handler: remote.NewRouter(panel, log)}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Info("shutting down")
		srv.Shutdown(context.Background())
	}()

	log.Infof("listening on %s", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func cameraCommand(c *cli.Context) error {
	cfg, log, err := loadConfig(c)
	if err != nil {
		return err
	}
	device := cfg.CameraDevice
	if d := c.Int("device"); d >= 0 {
		device = d
	}
	capture, err := camera.Open(device, log)
	if err != nil {
		return err
	}
	defer capture.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	camera.ShowWindow(ctx, capture, "Camera")
	read, skipped := capture.Stats()
	log.Infof("camera closed after %d frames (%d skipped)", read, skipped)
	return nil
}

func sendCommand(c *cli.Context) error {
	if len(c.Args()) == 0 {
		return errors.New("You should provide a command.")
	}
	cfg, log, err := loadConfig(c)
	if err != nil {
		return err
	}
	client := telloui.NewSDKClient(cfg.CommandTimeout(), cfg.MotionTimeout(), log)
	if err := client.ControlConnect(cfg.DroneAddr, cfg.DronePort, cfg.LocalPort); err != nil {
		return err
	}
	defer client.Close()

	reply, err := client.SendCommand(strings.Join(c.Args(), " "))
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}
