package gateway

import (
	"reflect"
	"testing"
)

func TestUnwrap(t *testing.T) {
	cases := []struct {
		name    string
		body    map[string]any
		want    map[string]any
		wantErr bool
	}{
		{
			name: "no content array is a direct payload",
			body: map[string]any{"status": "ok"},
			want: map[string]any{"status": "ok"},
		},
		{
			name: "empty content array is a direct payload",
			body: map[string]any{"content": []any{}},
			want: map[string]any{"content": []any{}},
		},
		{
			name: "block without text is the payload",
			body: map[string]any{"content": []any{
				map[string]any{"type": "data", "data": map[string]any{"n": 1.0}},
			}},
			want: map[string]any{"type": "data", "data": map[string]any{"n": 1.0}},
		},
		{
			name: "text holding a json object is decoded",
			body: map[string]any{"content": []any{
				map[string]any{"type": "text", "text": `{"total_files":3,"branch":"main"}`},
			}},
			want: map[string]any{"total_files": 3.0, "branch": "main"},
		},
		{
			name: "nested analyzer payload is decoded",
			body: map[string]any{"content": []any{
				map[string]any{"type": "text", "text": `{"repository_status":{"working_directory":{"modified_files":[{"path":"a.py","lines_added":5,"lines_deleted":1}]}}}`},
			}},
			want: map[string]any{
				"repository_status": map[string]any{
					"working_directory": map[string]any{
						"modified_files": []any{
							map[string]any{"path": "a.py", "lines_added": 5.0, "lines_deleted": 1.0},
						},
					},
				},
			},
		},
		{
			name: "text already structured is used directly",
			body: map[string]any{"content": []any{
				map[string]any{"type": "text", "text": map[string]any{"ready": true}},
			}},
			want: map[string]any{"ready": true},
		},
		{
			name: "gateway error",
			body: map[string]any{"error": map[string]any{"code": -32601.0, "message": "method not found"}},
			wantErr: true,
		},
		{
			name: "text with invalid json",
			body: map[string]any{"content": []any{
				map[string]any{"type": "text", "text": "{not json"},
			}},
			wantErr: true,
		},
		{
			name: "text decoding to a non-object",
			body: map[string]any{"content": []any{
				map[string]any{"type": "text", "text": "null"},
			}},
			wantErr: true,
		},
		{
			name: "text decoding to an array",
			body: map[string]any{"content": []any{
				map[string]any{"type": "text", "text": `[1,2,3]`},
			}},
			wantErr: true,
		},
		{
			name: "text of an unexpected type",
			body: map[string]any{"content": []any{
				map[string]any{"type": "text", "text": 42.0},
			}},
			wantErr: true,
		},
		{
			name: "block that is not an object",
			body: map[string]any{"content": []any{"just a string"}},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Unwrap(tc.body)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unwrap mismatch:\n got  %#v\n want %#v", got, tc.want)
			}
		})
	}
}
