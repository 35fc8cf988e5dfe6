// remote.go

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

// Package remote serves the control panel's commands over HTTP.
package remote

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	telloui "github.com/lutaqqq/DroneQualification"
)

type errorResponse struct {
	Error string `json:"error"`
}

type settingsResponse struct {
	Distance float64 `json:"distance"`
	Degree   float64 `json:"degree"`
}

type settingsRequest struct {
	Distance *float64 `json:"distance"`
	Degree   *float64 `json:"degree"`
}

type server struct {
	panel *telloui.Panel
	log   logrus.FieldLogger
}

// NewRouter returns the routes driving panel.
func NewRouter(panel *telloui.Panel, log logrus.FieldLogger) *mux.Router {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &server{panel: panel, log: log}

	r := mux.NewRouter()
	r.HandleFunc("/settings", s.settingsGet).Methods("GET")
	r.HandleFunc("/settings", s.settingsPut).Methods("PUT")
	r.HandleFunc("/takeoff", s.action(telloui.ActTakeOff)).Methods("POST")
	r.HandleFunc("/land", s.action(telloui.ActLand)).Methods("POST")
	r.HandleFunc("/flip/{direction}", s.flip).Methods("POST")
	r.HandleFunc("/move/{direction}", s.move).Methods("POST")
	r.HandleFunc("/rotate/{direction}", s.rotate).Methods("POST")
	r.HandleFunc("/key/{name}", s.key).Methods("POST")
	return r
}

func (s *server) settingsGet(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, settingsResponse{s.panel.Settings.Distance(), s.panel.Settings.Degree()})
}

func (s *server) settingsPut(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Bad request!")
		return
	}
	if req.Distance != nil {
		if err := telloui.ValidateDistance(*req.Distance); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Degree != nil {
		if err := telloui.ValidateDegree(*req.Degree); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if req.Distance != nil {
		s.panel.Settings.ApplyDistance(*req.Distance)
	}
	if req.Degree != nil {
		s.panel.Settings.ApplyDegree(*req.Degree)
	}
	s.settingsGet(w, r)
}

func (s *server) action(a telloui.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.submit(w, a)
	}
}

var flipActions = map[telloui.FlipDirection]telloui.Action{
	telloui.FlipLeft:     telloui.ActFlipLeft,
	telloui.FlipRight:    telloui.ActFlipRight,
	telloui.FlipForward:  telloui.ActFlipForward,
	telloui.FlipBackward: telloui.ActFlipBackward,
}

var moveActions = map[telloui.MoveDirection]telloui.Action{
	telloui.MoveUp:       telloui.ActUp,
	telloui.MoveDown:     telloui.ActDown,
	telloui.MoveLeft:     telloui.ActLeft,
	telloui.MoveRight:    telloui.ActRight,
	telloui.MoveForward:  telloui.ActForward,
	telloui.MoveBackward: telloui.ActBackward,
}

// these are the controls, so they go through the same crossed mapping as the GUI keys
var rotateActions = map[telloui.RotateDirection]telloui.Action{
	telloui.RotateClockwise:        telloui.ActRotateClockwise,
	telloui.RotateCounterClockwise: telloui.ActRotateCounterClockwise,
}

func (s *server) flip(w http.ResponseWriter, r *http.Request) {
	d, err := telloui.ParseFlipDirection(mux.Vars(r)["direction"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.submit(w, flipActions[d])
}

func (s *server) move(w http.ResponseWriter, r *http.Request) {
	d, err := telloui.ParseMoveDirection(mux.Vars(r)["direction"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.submit(w, moveActions[d])
}

func (s *server) rotate(w http.ResponseWriter, r *http.Request) {
	d, err := telloui.ParseRotateDirection(mux.Vars(r)["direction"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.submit(w, rotateActions[d])
}

func (s *server) key(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	a, err := telloui.KeyAction(name)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.submit(w, a)
}

func (s *server) submit(w http.ResponseWriter, a telloui.Action) {
	cmd, err := s.panel.Submit(a)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Cause(err) == telloui.ErrClosed {
			status = http.StatusServiceUnavailable
		}
		respondError(w, status, fmt.Sprintf("%s: %v", a, err))
		return
	}
	respondJSON(w, http.StatusAccepted, cmd)
}

func respondJSON(w http.ResponseWriter, httpStatus int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, httpStatus int, msg string) {
	respondJSON(w, httpStatus, errorResponse{Error: msg})
}
