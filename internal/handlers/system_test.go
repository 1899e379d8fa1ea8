package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool    `json:"success"`
		Status  string  `json:"status"`
		Uptime  float64 `json:"uptime"`
		Version string  `json:"version"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Status != "healthy" || resp.Version == "" {
		t.Fatalf("bad health payload: %+v", resp)
	}
	if resp.Uptime < 0 {
		t.Fatalf("negative uptime: %v", resp.Uptime)
	}
}

func TestStatus_IncludesEndpointList(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Success     bool     `json:"success"`
		Server      string   `json:"server"`
		Environment string   `json:"environment"`
		Endpoints   []string `json:"endpoints"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Server == "" || resp.Environment != "test" {
		t.Fatalf("bad status payload: %+v", resp)
	}
	want := map[string]bool{
		"GET /api/health":          false,
		"POST /api/users/bulk":     false,
		"GET /api/search/users":    false,
		"DELETE /api/products/:id": false,
	}
	for _, ep := range resp.Endpoints {
		if _, ok := want[ep]; ok {
			want[ep] = true
		}
	}
	for ep, found := range want {
		if !found {
			t.Fatalf("endpoint list missing %q: %+v", ep, resp.Endpoints)
		}
	}
}

func TestRoot_Welcome(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Success       bool              `json:"success"`
		Message       string            `json:"message"`
		Documentation map[string]string `json:"documentation"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Message == "" || resp.Documentation["health"] != "GET /api/health" {
		t.Fatalf("bad welcome payload: %+v", resp)
	}
}

func TestUnmatchedRoute_EchoesPath(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Success || env.Error != "Route not found" || env.Path != "/api/nope" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodOptions, "/api/users", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS header")
	}
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated request id")
	}
}
