package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
)

// fakeBridge is an in-process stand-in for the MCP bridge.
type fakeBridge struct {
	server   *httptest.Server
	requests atomic.Int32

	mu          sync.Mutex
	lastRequest *http.Request
	lastBody    []byte
}

// last returns the most recent request and its body.
func (b *fakeBridge) last() (*http.Request, []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastRequest, b.lastBody
}

// handlerFunc answers one route of the fake bridge.
type handlerFunc func(w http.ResponseWriter, r *http.Request)

func newFakeBridge(t *testing.T, routes map[string]handlerFunc) *fakeBridge {
	t.Helper()

	b := &fakeBridge{}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			b.requests.Add(1)
			body, _ := io.ReadAll(req.Body)
			b.mu.Lock()
			b.lastRequest = req.Clone(req.Context())
			b.lastBody = body
			b.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})

	for pattern, h := range routes {
		method, path := splitRoute(pattern)
		r.Method(method, path, http.HandlerFunc(h))
	}

	b.server = httptest.NewServer(r)
	t.Cleanup(b.server.Close)
	return b
}

func splitRoute(pattern string) (string, string) {
	if method, path, ok := strings.Cut(pattern, " "); ok {
		return method, path
	}
	return http.MethodGet, pattern
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func jsonHandler(status int, body string) handlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, body)
	}
}
