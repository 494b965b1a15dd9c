package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap/zaptest"

	"realuseragent/internal/handlers"
	"realuseragent/pkg/useragent"
)

type stubPicker struct{}

func (stubPicker) Random(context.Context, useragent.Filter, bool) (string, bool, error) {
	return "Mozilla/5.0 Firefox/60.0", true, nil
}

func (stubPicker) UserAgent(context.Context, string, useragent.Filter, bool) (string, bool, error) {
	return "Mozilla/5.0 Firefox/60.0", true, nil
}

func (stubPicker) Collect(context.Context, string, string, string, bool) ([]useragent.Record, error) {
	return []useragent.Record{}, nil
}

func TestRouter(t *testing.T) {
	r := chi.NewRouter()
	SetupRouter(r, zaptest.NewLogger(t), handlers.NewUserAgentHandler(stubPicker{}), time.Second)

	srv := httptest.NewServer(r)
	defer srv.Close()

	for _, path := range []string{"/healthz", "/v1/random", "/v1/browsers/firefox", "/v1/records/software_name/firefox"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
	}

	resp, err := http.Get(srv.URL + "/v1/random")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		t.Fatalf("unexpected content type %q", resp.Header.Get("Content-Type"))
	}
}
