// main.go

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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "telloui"
	app.Usage = "fly a Ryze Tello from a desktop control panel"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "JSON config file (default is ~/.telloui.json)",
		},
		cli.StringFlag{
			Name:  "backend, b",
			Usage: "Drone backend: sdk or gobot (overrides the config file)",
		},
		cli.StringFlag{
			Name:  "addr",
			Usage: "Tello address (overrides the config file)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warning or error (overrides the config file)",
		},
	}
	app.Commands = COMMANDS
	app.Action = guiCommand

	if err := app.Run(os.Args); err != nil {
		logrus.Fatalln(err)
	}
}
