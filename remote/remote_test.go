// telloui project remote_test.go

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

package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"

	telloui "github.com/lutaqqq/DroneQualification"
)

type fakeDrone struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeDrone) rec(format string, args ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeDrone) Ping() error    { return nil }
func (f *fakeDrone) TakeOff() error { return f.rec("takeoff") }
func (f *fakeDrone) Land() error    { return f.rec("land") }
func (f *fakeDrone) Close() error   { return nil }
func (f *fakeDrone) Flip(d telloui.FlipDirection) error {
	return f.rec("flip(%s)", d)
}
func (f *fakeDrone) Move(d telloui.MoveDirection, m float64) error {
	return f.rec("move(%s, %v)", d, m)
}
func (f *fakeDrone) Rotate(d telloui.RotateDirection, deg float64) error {
	return f.rec("rotate(%s, %v)", d, deg)
}

func newTestServer(t *testing.T) (*httptest.Server, *telloui.Panel, *fakeDrone) {
	t.Helper()
	log, _ := test.NewNullLogger()
	drone := &fakeDrone{}
	panel := telloui.NewPanel(drone, telloui.DefaultConfig(), log)
	if err := panel.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(NewRouter(panel, log))
	t.Cleanup(func() {
		srv.Close()
		panel.Close()
	})
	return srv, panel, drone
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func waitResults(t *testing.T, panel *telloui.Panel, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-panel.Dispatcher.Results():
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for dispatcher")
		}
	}
}

func TestSettingsThenMove(t *testing.T) {
	srv, panel, drone := newTestServer(t)

	resp, body := do(t, "PUT", srv.URL+"/settings", `{"distance": 1.5, "degree": 45}`)
	if resp.StatusCode != http.StatusOK || body["distance"] != 1.5 || body["degree"] != 45.0 {
		t.Fatalf("unexpected settings reply %d %v", resp.StatusCode, body)
	}

	resp, body = do(t, "POST", srv.URL+"/move/up", "")
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}
	if body["kind"] != "move" || body["direction"] != "up" || body["amount"] != 1.5 {
		t.Errorf("unexpected command %v", body)
	}
	do(t, "POST", srv.URL+"/rotate/clockwise", "")
	do(t, "POST", srv.URL+"/key/Right", "")
	do(t, "POST", srv.URL+"/flip/backward", "")
	do(t, "POST", srv.URL+"/takeoff", "")
	do(t, "POST", srv.URL+"/land", "")
	waitResults(t, panel, 6)

	want := "move(up, 1.5)|rotate(counter-clockwise, 45)|move(right, 1.5)|flip(backward)|takeoff|land"
	drone.mu.Lock()
	defer drone.mu.Unlock()
	if got := strings.Join(drone.calls, "|"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestSettingsValidation(t *testing.T) {
	srv, panel, _ := newTestServer(t)

	for _, body := range []string{`{"distance": 10}`, `{"degree": 0.5}`, `{"distance": 1, "degree": 400}`, `nope`} {
		resp, _ := do(t, "PUT", srv.URL+"/settings", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, resp.StatusCode)
		}
	}
	if panel.Settings.Distance() != telloui.DefaultDistance {
		t.Errorf("rejected request changed the distance to %v", panel.Settings.Distance())
	}

	_, body := do(t, "GET", srv.URL+"/settings", "")
	if body["distance"] != 0.2 || body["degree"] != 30.0 {
		t.Errorf("unexpected settings %v", body)
	}
}

func TestUnknownDirectionsAndKeys(t *testing.T) {
	srv, _, _ := newTestServer(t)
	for _, path := range []string{"/move/sideways", "/flip/up", "/rotate/left", "/key/q"} {
		resp, body := do(t, "POST", srv.URL+path, "")
		if resp.StatusCode != http.StatusNotFound || body["error"] == nil {
			t.Errorf("%s: expected 404 with an error, got %d %v", path, resp.StatusCode, body)
		}
	}
}

func TestClosedPanel(t *testing.T) {
	srv, panel, _ := newTestServer(t)
	panel.Close()
	resp, _ := do(t, "POST", srv.URL+"/takeoff", "")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", resp.StatusCode)
	}
}
