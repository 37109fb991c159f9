package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ErrUnknownMode is returned by ParseMode for an unsupported output mode.
var ErrUnknownMode = errors.New("report: unknown output mode")

// Mode controls the output format.
type Mode int

const (
	Text     Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
	JSON                 // one JSON document
)

// ParseMode maps "text", "markdown"/"md" and "json" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "ascii":
		return Text, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	default:
		return Text, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case Markdown:
		return "markdown"
	case JSON:
		return "json"
	default:
		return "text"
	}
}

// tableWriter wraps a go-pretty writer rendered in one Mode.
type tableWriter struct {
	writer table.Writer
	mode   Mode
}

func newTable(m Mode, title string) *tableWriter {
	w := table.NewWriter()
	if m == Text {
		w.SetStyle(table.StyleLight)
	}
	if title != "" {
		w.SetTitle(title)
	}

	return &tableWriter{writer: w, mode: m}
}

func (t *tableWriter) header(cols ...any) { t.writer.AppendHeader(table.Row(cols)) }

func (t *tableWriter) row(vals ...any) { t.writer.AppendRow(table.Row(vals)) }

// alignRight right-aligns the given 1-based columns.
func (t *tableWriter) alignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
	}
	t.writer.SetColumnConfigs(cfgs)
}

func (t *tableWriter) String() string {
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}

	return t.writer.Render()
}
