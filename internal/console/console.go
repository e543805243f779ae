// Package console renders demo narrative output: status lines, tables,
// and panels. Everything goes through a Printer over an io.Writer so
// flows can be exercised against a buffer in tests.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	okSymbol = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true).
			SetString("✔")

	warnSymbol = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true).
			SetString("⚠")

	failSymbol = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			SetString("✖")

	infoSymbol = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true).
			SetString("ⓘ")

	stepSymbol = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			SetString("▶")

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("35")).
			Padding(0, 1)
)

// Printer writes styled demo output to a single destination.
type Printer struct {
	w io.Writer
}

// New returns a printer writing to w; nil means stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Banner opens a demo section with a prominent heading.
func (p *Printer) Banner(title string) {
	fmt.Fprintf(p.w, "\n%s\n\n", bannerStyle.Render(title))
}

// Step announces the next workflow action.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", stepSymbol, fmt.Sprintf(format, args...))
}

// OK reports a completed action.
func (p *Printer) OK(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", okSymbol, fmt.Sprintf(format, args...))
}

// Warn reports a degraded but non-fatal condition.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", warnSymbol, fmt.Sprintf(format, args...))
}

// Fail reports a fatal condition.
func (p *Printer) Fail(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", failSymbol, fmt.Sprintf(format, args...))
}

// Info reports neutral detail.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", infoSymbol, fmt.Sprintf(format, args...))
}

// Bullet prints one indented list item.
func (p *Printer) Bullet(format string, args ...any) {
	fmt.Fprintf(p.w, "   • %s\n", fmt.Sprintf(format, args...))
}

// Blank prints an empty separator line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Table renders a titled grid.
func (p *Printer) Table(title string, headers []string, rows [][]string) {
	if title != "" {
		fmt.Fprintln(p.w, titleStyle.Render(title))
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(p.w, t)
}

// KeyValues renders a two-column metric table.
func (p *Printer) KeyValues(title string, pairs [][2]string) {
	rows := make([][]string, len(pairs))
	for i, kv := range pairs {
		rows[i] = []string{kv[0], kv[1]}
	}
	p.Table(title, []string{"Metric", "Value"}, rows)
}

// Panel renders a bordered block with a bold title line.
func (p *Printer) Panel(title, body string) {
	content := titleStyle.Render(title) + "\n\n" + body
	fmt.Fprintln(p.w, panelStyle.Render(content))
}
