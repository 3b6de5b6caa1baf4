package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agbru/parsum/internal/vecsum"
)

func newTestServer() *Server {
	return &Server{
		summer:   vecsum.ChunkedSummer{},
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
		logger:   newTestLogger(),
	}
}

func postSum(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/sum", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handleSum(rec, req)
	return rec
}

// TestServer_handleSum tests the summation endpoint.
func TestServer_handleSum(t *testing.T) {
	t.Run("Valid request returns element-wise sum", func(t *testing.T) {
		s := newTestServer()

		rec := postSum(t, s, `{"a":[1,2,3],"b":[10,20,30]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var resp sumResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		want := []int{11, 22, 33}
		if len(resp.C) != len(want) {
			t.Fatalf("len(c) = %d, want %d", len(resp.C), len(want))
		}
		for i, v := range want {
			if resp.C[i] != v {
				t.Errorf("c[%d] = %d, want %d", i, resp.C[i], v)
			}
		}
		if resp.Items != 3 {
			t.Errorf("items = %d, want 3", resp.Items)
		}
		if resp.Duration == "" {
			t.Error("duration should be set")
		}
	})

	t.Run("Explicit chunk size and workers are honored", func(t *testing.T) {
		s := newTestServer()

		rec := postSum(t, s, `{"a":[1,1,1,1,1],"b":[2,2,2,2,2],"chunk_size":2,"workers":2}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var resp sumResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		for i, v := range resp.C {
			if v != 3 {
				t.Errorf("c[%d] = %d, want 3", i, v)
			}
		}
	})

	t.Run("Empty arrays return an empty sum", func(t *testing.T) {
		s := newTestServer()

		rec := postSum(t, s, `{"a":[],"b":[]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var resp sumResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.C) != 0 {
			t.Errorf("len(c) = %d, want 0", len(resp.C))
		}
	})

	t.Run("Mismatched lengths are rejected", func(t *testing.T) {
		s := newTestServer()

		rec := postSum(t, s, `{"a":[1,2,3],"b":[1]}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), "lengths differ") {
			t.Errorf("body = %q, want a length mismatch error", rec.Body.String())
		}
	})

	t.Run("Negative chunk size is rejected", func(t *testing.T) {
		s := newTestServer()

		rec := postSum(t, s, `{"a":[1],"b":[2],"chunk_size":-5}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("Too many items are rejected", func(t *testing.T) {
		s := newTestServer()
		s.security.MaxItems = 2

		rec := postSum(t, s, `{"a":[1,2,3],"b":[4,5,6]}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), "too many items") {
			t.Errorf("body = %q, want a too many items error", rec.Body.String())
		}
	})

	t.Run("Malformed JSON is rejected", func(t *testing.T) {
		s := newTestServer()

		rec := postSum(t, s, `{"a": [1, 2,`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("Unknown fields are rejected", func(t *testing.T) {
		s := newTestServer()

		rec := postSum(t, s, `{"a":[1],"b":[2],"bogus":true}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("GET returns method not allowed", func(t *testing.T) {
		s := newTestServer()

		req := httptest.NewRequest("GET", "/api/v1/sum", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleSum(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
		}
	})
}

// TestServer_handleHealth tests the liveness endpoint.
func TestServer_handleHealth(t *testing.T) {
	t.Run("GET returns ok", func(t *testing.T) {
		s := newTestServer()

		req := httptest.NewRequest("GET", "/healthz", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleHealth(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if !strings.Contains(rec.Body.String(), `"ok"`) {
			t.Errorf("body = %q, want an ok status", rec.Body.String())
		}
	})

	t.Run("POST returns method not allowed", func(t *testing.T) {
		s := newTestServer()

		req := httptest.NewRequest("POST", "/healthz", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleHealth(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
		}
	})
}

// TestServer_routes exercises the full middleware chain end to end.
func TestServer_routes(t *testing.T) {
	s := newTestServer()
	handler := s.routes()

	t.Run("Sum endpoint through full chain", func(t *testing.T) {
		body := bytes.NewBufferString(`{"a":[1,2],"b":[3,4]}`)
		req := httptest.NewRequest("POST", "/api/v1/sum", body)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("security headers should be applied")
		}
	})

	t.Run("Metrics endpoint through full chain", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/metrics", http.NoBody)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if !strings.Contains(rec.Body.String(), "parsum_requests_total") {
			t.Error("metrics output should contain parsum_requests_total")
		}
	})

	t.Run("Unknown path returns 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/nope", http.NoBody)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

// TestNew tests the Server constructor.
func TestNew(t *testing.T) {
	s := New(":0", newTestLogger())

	if s == nil {
		t.Fatal("New returned nil")
	}
	if s.metrics == nil {
		t.Error("metrics should be initialized")
	}
	if s.summer == nil {
		t.Error("summer should be initialized")
	}
	if !s.security.EnableCORS {
		t.Error("security should default to DefaultSecurityConfig")
	}
}
