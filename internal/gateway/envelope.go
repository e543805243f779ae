package gateway

import (
	"encoding/json"
	"fmt"
)

// Unwrap extracts the tool payload from a successful response body.
//
// Gateways wrap output in a content array whose first block carries either a
// JSON document serialized into a text field or an already-structured value.
// Bodies without a content array are treated as the payload itself, which
// covers gateways that reply unwrapped. An error return means the body could
// not be read as any of those shapes; callers substitute fallback data.
func Unwrap(body map[string]any) (map[string]any, error) {
	if errVal, ok := body["error"]; ok {
		return nil, fmt.Errorf("gateway error: %v", errVal)
	}

	blocks, ok := body["content"].([]any)
	if !ok || len(blocks) == 0 {
		return body, nil
	}

	first, ok := blocks[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("content block is %T, want object", blocks[0])
	}

	text, ok := first["text"]
	if !ok {
		return first, nil
	}

	switch v := text.(type) {
	case string:
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return nil, fmt.Errorf("decode text payload: %w", err)
		}
		payload, ok := decoded.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("text payload decodes to %T, want object", decoded)
		}
		return payload, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("text payload is %T, want string or object", text)
	}
}
