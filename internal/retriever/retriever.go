// Package retriever turns gateway tool calls into values that are always
// safe to use. Every fetch either parses a live response or falls back to
// a caller-supplied default, so downstream code never branches on errors.
package retriever

import (
	"context"
	"log/slog"

	"github.com/mcpflow/mcpflow/internal/gateway"
)

// Caller is the slice of the gateway client a fetch needs.
type Caller interface {
	CallTool(ctx context.Context, name string, params map[string]any) gateway.Result
}

// Source records where an outcome's value came from.
type Source int

const (
	// Live means the value was parsed from a gateway response.
	Live Source = iota
	// Fallback means the gateway call failed and the default was used.
	Fallback
)

func (s Source) String() string {
	if s == Live {
		return "live"
	}
	return "fallback"
}

// Op describes a single tool invocation: which tool to call, with what
// parameters, how to read the unwrapped payload, and what to produce
// when the call cannot be completed. Parse must be total; build it from
// the field helpers in this package so missing or mistyped fields decay
// to defaults instead of panicking.
type Op[T any] struct {
	Tool     string
	Params   map[string]any
	Parse    func(payload map[string]any) T
	Fallback func() T
}

// Outcome is the value of an op together with its provenance.
type Outcome[T any] struct {
	Value  T
	Source Source
}

// Fetch runs op against the gateway and always returns a usable outcome.
// A transport failure, a gateway error, or an undecodable envelope all
// collapse to op.Fallback; only a fully parsed response counts as live.
func Fetch[T any](ctx context.Context, c Caller, log *slog.Logger, op Op[T]) Outcome[T] {
	if log == nil {
		log = slog.Default()
	}

	res := c.CallTool(ctx, op.Tool, op.Params)
	if !res.Success {
		log.Warn("tool call failed, using fallback", "tool", op.Tool, "reason", res.Reason)
		return Outcome[T]{Value: op.Fallback(), Source: Fallback}
	}

	payload, err := gateway.Unwrap(res.Body)
	if err != nil {
		log.Warn("response not usable, using fallback", "tool", op.Tool, "error", err)
		return Outcome[T]{Value: op.Fallback(), Source: Fallback}
	}

	return Outcome[T]{Value: op.Parse(payload), Source: Live}
}
