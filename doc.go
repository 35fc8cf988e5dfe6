/*Package telloui provides a small control panel for the Ryze Tello® drone.

Disclaimer

Tello is a registered trademark of Ryze Tech.  The author(s) of this package is/are in no way affiliated with Ryze, DJI, or Intel.

Use this package at your own risk.  The author(s) is/are in no way responsible for any damage caused either to or by the
drone when using this software.

Features

  * Discrete flight controls, eg. TakeOff, Land, Flip, Move and Rotate by a fixed distance or angle
  * Adjustable default distance and rotation angle, committed explicitly
  * Keyboard shortcuts (w/s/a/d and the arrow keys)
  * Periodic keep-alive so the drone does not auto-land when the pilot is idle
  * Two drone backends: the Tello SDK text protocol (default) and the gobot Tello driver

The graphical panel lives in package gui, the HTTP remote panel in package remote and the
webcam capture in package camera.  The telloui command in cmd/telloui wires them together.

Concepts

Drone

Everything the panel does goes through the Drone interface.  Implementations must be safe for
concurrent use, since the keep-alive loop and the dispatcher worker both talk to the same drone.
SDKClient serialises each command/response exchange internally; the panel adds no locking of its own.

Actions vs. Commands

An Action is what the pilot pressed ("move up", "flip left").  A Command is the resolved call
that will be made on the drone, with the current distance or angle filled in.  Actions are
resolved when the event happens, not when the command is finally executed, so a command queued
before a slider commit still uses the old value.

Funcs vs. Queue

Dispatcher.Do runs a command immediately on the calling goroutine.  Dispatcher.Submit resolves the
command and queues it for the dispatcher worker, which is what the GUI uses so that a slow drone
never freezes the interface.  Results from the worker arrive on Dispatcher.Results().

*/
package telloui
