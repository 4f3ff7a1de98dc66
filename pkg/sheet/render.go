package sheet

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"
)

// Renderer turns a complete row set into aligned text lines
type Renderer struct {
	MaxLines  int
	Style     Style
	Separator string
}

// NewRenderer returns a plain renderer for maxLines content columns
func NewRenderer(maxLines int) *Renderer {
	return &Renderer{
		MaxLines:  maxLines,
		Style:     Plain{},
		Separator: DefaultSeparator,
	}
}

// Render measures rows with the given style and returns the table lines.
// It is the one-call form of NewRenderer(...).Render.
func Render(rows []Row, maxLines int, style Style) iter.Seq[string] {
	r := NewRenderer(maxLines)
	if style != nil {
		r.Style = style
	}
	return r.Render(rows)
}

// Measure folds all rows into their column widths
func (r *Renderer) Measure(rows []Row) ColumnWidths {
	return MeasureRows(rows, r.MaxLines)
}

// Render measures every row first, then yields one line per row in the
// order given. Lines carry no terminator.
func (r *Renderer) Render(rows []Row) iter.Seq[string] {
	widths := r.Measure(rows)
	return r.RenderWithWidths(rows, widths)
}

// RenderWithWidths yields the table lines for precomputed widths
func (r *Renderer) RenderWithWidths(rows []Row, widths ColumnWidths) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, row := range rows {
			if !yield(r.renderRow(row, widths)) {
				return
			}
		}
	}
}

func (r *Renderer) renderRow(row Row, widths ColumnWidths) string {
	style := r.Style
	if style == nil {
		style = Plain{}
	}

	var b strings.Builder
	b.WriteString(style.Name(row.Name))
	writePadding(&b, widths.Name-CharCount(row.Name))
	b.WriteString(r.Separator)

	lines := row.Lines
	if len(lines) > r.MaxLines {
		lines = lines[:r.MaxLines]
	}

	emitted := 0
	last := len(lines) - 1
	for i, text := range lines {
		width := widths.Column(i)
		if i == last {
			// the final cell is never padded
			width = 0
			text = strings.TrimRightFunc(text, unicode.IsSpace)
		}
		if text == "" && width == 0 {
			continue
		}

		if emitted > 0 {
			b.WriteString(r.Separator)
		}
		b.WriteString(style.Cell(text, i))
		writePadding(&b, width-CharCount(text))
		emitted++
	}

	return b.String()
}

func writePadding(b *strings.Builder, n int) {
	if n > 0 {
		b.WriteString(strings.Repeat(" ", n))
	}
}

// TSV yields each row as tab separated fields without padding or styling
func TSV(rows []Row) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, row := range rows {
			fields := append([]string{row.Name}, row.Lines...)
			if !yield(strings.Join(fields, "\t")) {
				return
			}
		}
	}
}

// WriteLines writes every line followed by a newline
func WriteLines(w io.Writer, lines iter.Seq[string]) error {
	for line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
