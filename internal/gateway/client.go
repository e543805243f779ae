// Package gateway implements the HTTP client for an MCP tool gateway: a
// liveness probe, the tool catalog, and JSON-RPC tool invocation. Transport
// outcomes surface as Result values rather than errors so callers can route
// every failure into fallback data without unwinding.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync/atomic"

	"github.com/mcpflow/mcpflow/internal/config"
	"github.com/mcpflow/mcpflow/internal/mcp"
)

// Client issues authenticated requests against a single gateway instance.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	log     *slog.Logger
	nextID  atomic.Int64
}

// New creates a gateway client from configuration.
func New(cfg config.GatewayConfig, log *slog.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("gateway url required")
	}

	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}

	if log == nil {
		log = slog.Default()
	}

	return &Client{
		baseURL: parsed,
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout()},
		log:     log,
	}, nil
}

// HealthCheck reports whether the gateway answers its liveness probe. Any
// transport error or non-2xx status reads as unhealthy. The probe sends no
// credentials.
func (c *Client) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve("/health"), nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// ListTools fetches the gateway's tool catalog. Every failure collapses to
// an empty list with a logged diagnostic so discovery never interrupts a run.
func (c *Client) ListTools(ctx context.Context) []mcp.ToolDescriptor {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve("/tools"), nil)
	if err != nil {
		c.log.Warn("build tools request", "error", err)
		return nil
	}
	c.applyHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("fetch tools", "error", err)
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("read tools response", "error", err)
		return nil
	}
	if resp.StatusCode >= 400 {
		c.log.Warn("fetch tools", "status", resp.StatusCode, "body", strings.TrimSpace(string(body)))
		return nil
	}

	var tools []mcp.ToolDescriptor
	if err := json.Unmarshal(body, &tools); err != nil {
		c.log.Warn("decode tools response", "error", err)
		return nil
	}
	return tools
}

// CallTool invokes a tool through the RPC endpoint. The outcome is always a
// Result value: transport, status and decode problems become failures, a 2xx
// JSON object becomes a success carrying the still-wrapped body. Envelope
// unwrapping is the caller's concern.
func (c *Client) CallTool(ctx context.Context, name string, params map[string]any) Result {
	payload, err := json.Marshal(mcp.Request{
		JSONRPC: "2.0",
		Method:  name,
		Params:  params,
		ID:      c.nextID.Add(1),
	})
	if err != nil {
		return failure(name, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve("/rpc"), bytes.NewReader(payload))
	if err != nil {
		return failure(name, fmt.Errorf("build request: %w", err))
	}
	c.applyHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return failure(name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(name, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode >= 400 {
		return failure(name, fmt.Errorf("gateway status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return failure(name, fmt.Errorf("decode response: %w", err))
	}
	return success(name, decoded)
}

func (c *Client) resolve(rel string) string {
	u := *c.baseURL
	u.Path = path.Join(c.baseURL.Path, rel)
	return u.String()
}

func (c *Client) applyHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
