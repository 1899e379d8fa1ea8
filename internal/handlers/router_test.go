package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skuma49/my-node-app/internal/repository"
	"github.com/skuma49/my-node-app/internal/service"
)

// envelope mirrors the uniform response shape for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Query   string          `json:"query"`
	Path    string          `json:"path"`
}

// newTestRouter builds the full router on a fresh seeded in-memory state.
func newTestRouter(t *testing.T) (*gin.Engine, *service.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repos := repository.NewRepository()
	svc := service.NewService(repos, "test")
	h := NewHandler(svc, nil, "test")
	return h.InitRoutes(), svc
}

// doJSON performs one request against the router and returns the recorder.
func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeEnvelope parses the response body, failing the test on bad JSON.
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (body=%s)", err, w.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("unmarshal data: %v (data=%s)", err, string(env.Data))
	}
}
