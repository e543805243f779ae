package retriever

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/mcpflow/mcpflow/internal/gateway"
)

type fakeCaller struct {
	result gateway.Result
	calls  int
}

func (f *fakeCaller) CallTool(_ context.Context, name string, _ map[string]any) gateway.Result {
	f.calls++
	r := f.result
	r.Tool = name
	return r
}

type summary struct {
	Branch string
	Files  []string
	Total  int
}

func summaryOp(c *int) Op[summary] {
	return Op[summary]{
		Tool:   "local-repo-analyzer-get-outstanding-summary",
		Params: map[string]any{"repository_path": ".", "detailed": true},
		Parse: func(p map[string]any) summary {
			return summary{
				Branch: Str(p, "branch", "main"),
				Files:  StrList(p, "files", nil),
				Total:  Int(p, "total_files", 0),
			}
		},
		Fallback: func() summary {
			if c != nil {
				*c++
			}
			return summary{Branch: "feature/automation-demo", Files: []string{"src/api.py", "docs/guide.md"}, Total: 2}
		},
	}
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchLive(t *testing.T) {
	fc := &fakeCaller{result: gateway.Result{
		Success: true,
		Body: map[string]any{"content": []any{
			map[string]any{"type": "text", "text": `{"branch":"dev","files":["a.go"],"total_files":1}`},
		}},
	}}

	out := Fetch(context.Background(), fc, quiet(), summaryOp(nil))
	if out.Source != Live {
		t.Fatalf("expected live outcome, got %s", out.Source)
	}
	want := summary{Branch: "dev", Files: []string{"a.go"}, Total: 1}
	if !reflect.DeepEqual(out.Value, want) {
		t.Fatalf("parsed value mismatch:\n got  %#v\n want %#v", out.Value, want)
	}
}

func TestFetchFallbackOnFailure(t *testing.T) {
	fc := &fakeCaller{result: gateway.Result{Success: false, Reason: "gateway status 500"}}

	var fallbacks int
	op := summaryOp(&fallbacks)
	out := Fetch(context.Background(), fc, quiet(), op)

	if out.Source != Fallback {
		t.Fatalf("expected fallback outcome, got %s", out.Source)
	}
	if fallbacks != 1 {
		t.Fatalf("fallback invoked %d times", fallbacks)
	}
	// The produced value must be exactly what the fallback constructor yields.
	if !reflect.DeepEqual(out.Value, op.Fallback()) {
		t.Fatalf("fallback value altered: %#v", out.Value)
	}
}

func TestFetchFallbackOnBadEnvelope(t *testing.T) {
	bodies := []map[string]any{
		{"error": map[string]any{"code": -32000.0, "message": "tool exploded"}},
		{"content": []any{map[string]any{"type": "text", "text": "{broken"}}},
		{"content": []any{map[string]any{"type": "text", "text": "null"}}},
	}

	for _, body := range bodies {
		fc := &fakeCaller{result: gateway.Result{Success: true, Body: body}}
		out := Fetch(context.Background(), fc, quiet(), summaryOp(nil))
		if out.Source != Fallback {
			t.Fatalf("body %#v: expected fallback, got %s", body, out.Source)
		}
	}
}

func TestFetchParsesMissingFieldsToDefaults(t *testing.T) {
	fc := &fakeCaller{result: gateway.Result{
		Success: true,
		Body: map[string]any{"content": []any{
			map[string]any{"type": "text", "text": `{}`},
		}},
	}}

	out := Fetch(context.Background(), fc, quiet(), summaryOp(nil))
	if out.Source != Live {
		t.Fatalf("an empty object is still a live payload, got %s", out.Source)
	}
	want := summary{Branch: "main"}
	if !reflect.DeepEqual(out.Value, want) {
		t.Fatalf("defaults mismatch:\n got  %#v\n want %#v", out.Value, want)
	}
}

func TestFetchNilLogger(t *testing.T) {
	fc := &fakeCaller{result: gateway.Result{Success: false, Reason: "down"}}
	out := Fetch(context.Background(), fc, nil, summaryOp(nil))
	if out.Source != Fallback {
		t.Fatalf("expected fallback, got %s", out.Source)
	}
}

func TestFieldHelpers(t *testing.T) {
	m := map[string]any{
		"s":    "text",
		"f":    3.5,
		"i":    7.0,
		"b":    true,
		"obj":  map[string]any{"inner": "x"},
		"list": []any{"a", 1.0, "b"},
	}

	if got := Str(m, "s", "d"); got != "text" {
		t.Errorf("Str = %q", got)
	}
	if got := Str(m, "missing", "d"); got != "d" {
		t.Errorf("Str default = %q", got)
	}
	if got := Str(m, "f", "d"); got != "d" {
		t.Errorf("Str wrong type = %q", got)
	}
	if got := Num(m, "f", 0); got != 3.5 {
		t.Errorf("Num = %v", got)
	}
	if got := Num(nil, "f", 9); got != 9 {
		t.Errorf("Num nil map = %v", got)
	}
	if got := Int(m, "i", 0); got != 7 {
		t.Errorf("Int = %d", got)
	}
	if got := Int(m, "s", 4); got != 4 {
		t.Errorf("Int wrong type = %d", got)
	}
	if got := Bool(m, "b", false); !got {
		t.Error("Bool = false")
	}
	if got := Map(m, "obj"); Str(got, "inner", "") != "x" {
		t.Errorf("Map = %#v", got)
	}
	if got := Map(m, "missing"); got != nil {
		t.Errorf("Map missing = %#v", got)
	}
	// Chained lookups through absent objects stay safe.
	if got := Str(Map(Map(m, "missing"), "also"), "key", "safe"); got != "safe" {
		t.Errorf("chained lookup = %q", got)
	}
	if got := List(m, "list"); len(got) != 3 {
		t.Errorf("List = %#v", got)
	}
	if got := StrList(m, "list", nil); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("StrList = %#v", got)
	}
	if got := StrList(m, "missing", []string{"d"}); !reflect.DeepEqual(got, []string{"d"}) {
		t.Errorf("StrList default = %#v", got)
	}
}

func TestSourceString(t *testing.T) {
	if Live.String() != "live" || Fallback.String() != "fallback" {
		t.Fatalf("unexpected source names: %s %s", Live, Fallback)
	}
}
