package sheet

import "unicode/utf8"

const (
	// DefaultMaxLines is the number of leading lines captured per file
	DefaultMaxLines = 1

	// MaxLinesLimit bounds the configurable line budget
	MaxLinesLimit = 100

	// DefaultSeparator follows the name cell and sits between content cells
	DefaultSeparator = "  "
)

// Row is one file of the scanned directory: its name and the captured
// leading lines, in file order
type Row struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// NewRow creates a row, copying lines so later changes to the caller's
// slice don't leak into the table
func NewRow(name string, lines []string) Row {
	copied := make([]string, len(lines))
	copy(copied, lines)
	return Row{Name: name, Lines: copied}
}

// ColumnWidths holds the widest cell seen for every column, counted in
// runes. Content always has one slot per captured line.
type ColumnWidths struct {
	Name    int   `json:"name"`
	Content []int `json:"content"`
}

// NewColumnWidths returns the zero accumulator for maxLines content columns
func NewColumnWidths(maxLines int) ColumnWidths {
	if maxLines < 0 {
		maxLines = 0
	}
	return ColumnWidths{Content: make([]int, maxLines)}
}

// Add folds a row into the widths and returns the widened result.
// The receiver is left untouched. Lines beyond the accumulator's column
// count are ignored.
func (w ColumnWidths) Add(row Row) ColumnWidths {
	next := ColumnWidths{
		Name:    max(w.Name, CharCount(row.Name)),
		Content: make([]int, len(w.Content)),
	}
	copy(next.Content, w.Content)

	for i, line := range row.Lines {
		if i >= len(next.Content) {
			break
		}
		next.Content[i] = max(next.Content[i], CharCount(line))
	}
	return next
}

// Column returns the width of content column i, 0 when out of range
func (w ColumnWidths) Column(i int) int {
	if i < 0 || i >= len(w.Content) {
		return 0
	}
	return w.Content[i]
}

// MeasureRows folds every row into a fresh accumulator
func MeasureRows(rows []Row, maxLines int) ColumnWidths {
	widths := NewColumnWidths(maxLines)
	for _, row := range rows {
		widths = widths.Add(row)
	}
	return widths
}

// CharCount is the width policy of the table: the number of Unicode
// scalar values in s. Wide and combining characters are not treated
// specially, so they can misalign on a terminal.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
