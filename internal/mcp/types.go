// Package mcp holds the wire types shared by the gateway client and the
// local gateway simulator: tool descriptors, the JSON-RPC request/response
// envelope, and the content blocks tool output is wrapped in.
package mcp

import "encoding/json"

// ToolDescriptor describes a tool callable through the gateway.
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema string `json:"input_schema,omitempty"`
}

// Request is the JSON-RPC 2.0 envelope posted to the gateway's /rpc endpoint.
// The method field carries the tool name directly.
type Request struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
	ID      int64          `json:"id"`
}

// Response is the envelope the gateway replies with. Tool output travels in
// the content blocks at the top level, matching the gateway's wire format.
type Response struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      any            `json:"id"`
	Content []ContentBlock `json:"content,omitempty"`
	Error   *Error         `json:"error,omitempty"`
}

// ContentBlock wraps one piece of tool output. Text usually holds a JSON
// document serialized to a string, but gateways are also free to inline an
// already-structured value.
type ContentBlock struct {
	Type string `json:"type,omitempty"`
	Text any    `json:"text,omitempty"`
}

// Error is the JSON-RPC error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON-RPC error codes used by the gateway surface.
const (
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeServerError    = -32000
)

// TextBlock builds a content block whose text field carries v serialized as
// JSON, the shape the reference gateway emits for every tool.
func TextBlock(v any) (ContentBlock, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return ContentBlock{}, err
	}
	return ContentBlock{Type: "text", Text: string(raw)}, nil
}
