// Package flow orchestrates the demo workflows: each flow walks the
// gateway through a scenario, narrates progress on the console, and keeps
// going on degraded data whenever a tool is missing. Only a failed health
// check aborts a run.
package flow

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mcpflow/mcpflow/internal/config"
	"github.com/mcpflow/mcpflow/internal/console"
	"github.com/mcpflow/mcpflow/internal/gateway"
	"github.com/mcpflow/mcpflow/internal/mcp"
)

// Gateway is the client surface the flows consume.
type Gateway interface {
	HealthCheck(ctx context.Context) bool
	ListTools(ctx context.Context) []mcp.ToolDescriptor
	CallTool(ctx context.Context, name string, params map[string]any) gateway.Result
}

// Deps carries everything a flow needs. Zero fields get safe defaults, so
// tests can run with just a fake gateway and a buffer-backed printer.
type Deps struct {
	Gateway Gateway
	Out     *console.Printer
	Log     *slog.Logger
	Config  config.Config

	// Confirm gates each pull request in interactive runs; nil approves
	// everything.
	Confirm func(prompt string) bool

	// Pace inserts a delay between steps for live demo runs.
	Pace time.Duration
}

func (d *Deps) normalize() {
	if d.Out == nil {
		d.Out = console.New(nil)
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
}

func (d *Deps) pause() {
	if d.Pace > 0 {
		time.Sleep(d.Pace)
	}
}

func (d *Deps) approve(prompt string) bool {
	if d.Confirm == nil {
		return true
	}
	return d.Confirm(prompt)
}

// Report summarizes one flow run for the caller and the exit code.
type Report struct {
	Name     string
	Success  bool
	Error    string
	Steps    []string
	Counters map[string]int
}

func newReport(name string) Report {
	return Report{Name: name, Success: true, Counters: map[string]int{}}
}

func (r *Report) step(name string) {
	r.Steps = append(r.Steps, name)
}

// gate runs the health check that decides whether a flow may proceed.
func gate(ctx context.Context, d *Deps, r *Report) bool {
	r.step("health")
	d.Out.Step("Checking gateway health")
	if !d.Gateway.HealthCheck(ctx) {
		d.Out.Fail("gateway is not reachable, aborting run")
		d.Log.Error("health check failed", "flow", r.Name)
		r.Success = false
		r.Error = "gateway is not reachable"
		return false
	}
	d.Out.OK("gateway is healthy")
	return true
}

// discover lists the gateway's tools. An empty catalog is reported but
// never fatal; every later step carries its own fallback.
func discover(ctx context.Context, d *Deps, r *Report) []mcp.ToolDescriptor {
	r.step("discovery")
	d.pause()
	d.Out.Step("Discovering gateway tools")

	tools := d.Gateway.ListTools(ctx)
	r.Counters["tools"] = len(tools)
	if len(tools) == 0 {
		d.Out.Warn("no tools visible, continuing with fallback data")
		return nil
	}

	d.Out.OK("gateway exposes %d tools", len(tools))
	for i, tool := range tools {
		if i == 5 {
			d.Out.Bullet("and %d more", len(tools)-5)
			break
		}
		d.Out.Bullet("%s", tool.Name)
	}
	return tools
}

// TerminalConfirm builds a Confirm function reading y/n answers from in,
// echoing prompts through out. Anything but y or yes declines.
func TerminalConfirm(in io.Reader, out *console.Printer) func(string) bool {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		out.Info("%s [y/N]", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}
