// config.go

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
	"encoding/json"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Backends
const (
	BackendSDK   = "sdk"
	BackendGobot = "gobot"
)

const (
	defaultTelloAddr        = "192.168.10.1"
	defaultTelloControlPort = 8889
	defaultLocalControlPort = 8889
	defaultCommandTimeoutMs = 300
	defaultMotionTimeoutMs  = 20000
	defaultListenAddr       = "127.0.0.1:8000"
	defaultGobotPort        = "8888"
	defaultGobotSpeed       = 30
	defaultGobotMetresPerS  = 0.5
	defaultGobotDegreesPerS = 45.0

	// DefaultConfigFile is looked up in the user's home directory.
	DefaultConfigFile = "~/.telloui.json"
)

// Config holds everything the telloui command can be configured with.
type Config struct {
	Backend          string  `json:"backend"`
	DroneAddr        string  `json:"drone_addr"`
	DronePort        int     `json:"drone_port"`
	LocalPort        int     `json:"local_port"`
	CommandTimeoutMs int     `json:"command_timeout_ms"`
	MotionTimeoutMs  int     `json:"motion_timeout_ms"` // manoeuvres only reply once finished
	KeepAliveSeconds float64 `json:"keepalive_seconds"`
	Distance         float64 `json:"distance"` // metres
	Degree           float64 `json:"degree"`
	CameraDevice     int     `json:"camera_device"`
	ListenAddr       string  `json:"listen_addr"`
	LogLevel         string  `json:"log_level"`

	GobotPort             string  `json:"gobot_port"`
	GobotSpeed            int     `json:"gobot_speed"` // stick percentage used for timed moves
	GobotMetresPerSecond  float64 `json:"gobot_metres_per_second"`
	GobotDegreesPerSecond float64 `json:"gobot_degrees_per_second"`
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Validate()
	return cfg
}

// Validate fills in defaults for unset fields and checks the rest.
func (cfg *Config) Validate() error {
	if cfg.Backend == "" {
		cfg.Backend = BackendSDK
	}
	if cfg.DroneAddr == "" {
		cfg.DroneAddr = defaultTelloAddr
	}
	if cfg.DronePort == 0 {
		cfg.DronePort = defaultTelloControlPort
	}
	if cfg.LocalPort == 0 {
		cfg.LocalPort = defaultLocalControlPort
	}
	if cfg.CommandTimeoutMs == 0 {
		cfg.CommandTimeoutMs = defaultCommandTimeoutMs
	}
	if cfg.MotionTimeoutMs == 0 {
		cfg.MotionTimeoutMs = defaultMotionTimeoutMs
	}
	if cfg.KeepAliveSeconds == 0 {
		cfg.KeepAliveSeconds = DefaultKeepAliveInterval.Seconds()
	}
	if cfg.Distance == 0 {
		cfg.Distance = DefaultDistance
	}
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = logrus.InfoLevel.String()
	}
	if cfg.GobotPort == "" {
		cfg.GobotPort = defaultGobotPort
	}
	if cfg.GobotSpeed == 0 {
		cfg.GobotSpeed = defaultGobotSpeed
	}
	if cfg.GobotMetresPerSecond == 0 {
		cfg.GobotMetresPerSecond = defaultGobotMetresPerS
	}
	if cfg.GobotDegreesPerSecond == 0 {
		cfg.GobotDegreesPerSecond = defaultGobotDegreesPerS
	}

	if cfg.Backend != BackendSDK && cfg.Backend != BackendGobot {
		return errors.Wrapf(ErrUnknownBackend, "%q", cfg.Backend)
	}
	if cfg.DronePort < 0 || cfg.DronePort > 65535 {
		return errors.Errorf("drone_port %d out of range", cfg.DronePort)
	}
	if cfg.LocalPort < 0 || cfg.LocalPort > 65535 {
		return errors.Errorf("local_port %d out of range", cfg.LocalPort)
	}
	if cfg.CommandTimeoutMs < 0 {
		return errors.New("command_timeout_ms must be positive")
	}
	if cfg.MotionTimeoutMs < 0 {
		return errors.New("motion_timeout_ms must be positive")
	}
	if cfg.KeepAliveSeconds < 0 {
		return errors.New("keepalive_seconds must be positive")
	}
	if err := ValidateDistance(cfg.Distance); err != nil {
		return err
	}
	if err := ValidateDegree(cfg.Degree); err != nil {
		return err
	}
	if cfg.GobotSpeed < 0 || cfg.GobotSpeed > 100 {
		return errors.Errorf("gobot_speed %d not a percentage", cfg.GobotSpeed)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// KeepAliveInterval returns the keep-alive period.
func (cfg Config) KeepAliveInterval() time.Duration {
	return time.Duration(cfg.KeepAliveSeconds * float64(time.Second))
}

// CommandTimeout returns how long the SDK client waits for a reply to a non-flying command.
func (cfg Config) CommandTimeout() time.Duration {
	return time.Duration(cfg.CommandTimeoutMs) * time.Millisecond
}

// MotionTimeout returns how long the SDK client waits for takeoff, land, flips, moves and rotations.
func (cfg Config) MotionTimeout() time.Duration {
	return time.Duration(cfg.MotionTimeoutMs) * time.Millisecond
}

// LoadConfig reads a JSON config file over the defaults and validates the result.
// An empty path means DefaultConfigFile.  A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	if path == "" {
		path = DefaultConfigFile
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, err
	}

	file, err := os.Open(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, err
	default:
		defer file.Close()
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return cfg, errors.Wrapf(err, "parsing %s", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// NewLogger returns a logrus.Logger at the configured level.
func (cfg Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return log
}
