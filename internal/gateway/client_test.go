package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mcpflow/mcpflow/internal/config"
)

func newTestClient(t *testing.T, url, token string) *Client {
	t.Helper()
	c, err := New(config.GatewayConfig{URL: url, Token: token, TimeoutSeconds: 5},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNewRequiresURL(t *testing.T) {
	if _, err := New(config.GatewayConfig{}, nil); err == nil {
		t.Fatal("expected error for empty url")
	}
}

func TestHealthCheck(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("health probe must not send credentials, got %q", got)
		}
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "tok")

	// Idempotent in both states: same answer on repeat calls.
	for i := 0; i < 2; i++ {
		if !c.HealthCheck(context.Background()) {
			t.Fatalf("call %d: expected healthy", i)
		}
	}
	healthy = false
	for i := 0; i < 2; i++ {
		if c.HealthCheck(context.Background()) {
			t.Fatalf("call %d: expected unhealthy", i)
		}
	}
}

func TestHealthCheckUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := newTestClient(t, srv.URL, "")
	if c.HealthCheck(context.Background()) {
		t.Fatal("expected unhealthy for unreachable gateway")
	}
}

func TestListTools(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tools" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[{"name":"local-repo-analyzer-analyze-working-directory","description":"Analyze a git working directory"}]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "tok")
	tools := c.ListTools(context.Background())
	if len(tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(tools))
	}
	if tools[0].Name != "local-repo-analyzer-analyze-working-directory" {
		t.Fatalf("unexpected tool name: %s", tools[0].Name)
	}
}

func TestListToolsFailuresYieldEmpty(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		close   bool
	}{
		{name: "unauthorized", handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}},
		{name: "bad json", handler: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
		{name: "unreachable", handler: http.NotFound, close: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			if tc.close {
				srv.Close()
			} else {
				defer srv.Close()
			}

			c := newTestClient(t, srv.URL, "tok")
			if tools := c.ListTools(context.Background()); len(tools) != 0 {
				t.Fatalf("expected empty tool list, got %d", len(tools))
			}
		})
	}
}

func TestCallToolSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rpc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("missing bearer auth, got %q", got)
		}

		var req struct {
			JSONRPC string         `json:"jsonrpc"`
			Method  string         `json:"method"`
			Params  map[string]any `json:"params"`
			ID      int64          `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.JSONRPC != "2.0" {
			t.Errorf("unexpected jsonrpc version: %s", req.JSONRPC)
		}
		if req.Method != "memory-server-store" {
			t.Errorf("unexpected method: %s", req.Method)
		}
		if req.Params["key"] != "k1" {
			t.Errorf("unexpected params: %#v", req.Params)
		}
		if req.ID < 1 {
			t.Errorf("unexpected id: %d", req.ID)
		}

		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"content":[{"type":"text","text":"{\"stored\":true}"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "tok")
	res := c.CallTool(context.Background(), "memory-server-store", map[string]any{"key": "k1", "value": "v1"})
	if !res.Success {
		t.Fatalf("expected success, got failure: %s", res.Reason)
	}
	if res.Tool != "memory-server-store" {
		t.Fatalf("unexpected tool: %s", res.Tool)
	}
	if _, ok := res.Body["content"]; !ok {
		t.Fatal("expected body to keep its content envelope")
	}
}

func TestCallToolFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		close   bool
	}{
		{name: "server error", handler: func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{name: "not json", handler: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>nope</html>"))
		}},
		{name: "unreachable", handler: http.NotFound, close: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			if tc.close {
				srv.Close()
			} else {
				defer srv.Close()
			}

			c := newTestClient(t, srv.URL, "tok")
			res := c.CallTool(context.Background(), "any-tool", nil)
			if res.Success {
				t.Fatal("expected failure")
			}
			if res.Reason == "" {
				t.Fatal("expected a failure reason")
			}
		})
	}
}

func TestCallToolRequestIDsIncrease(t *testing.T) {
	var ids []int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID int64 `json:"id"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		ids = append(ids, req.ID)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")
	c.CallTool(context.Background(), "a", nil)
	c.CallTool(context.Background(), "b", nil)

	if len(ids) != 2 || ids[1] <= ids[0] {
		t.Fatalf("expected increasing request ids, got %v", ids)
	}
}
