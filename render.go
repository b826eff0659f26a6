package listprops

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Layout of a rendered row.
const (
	Indent     = "   "
	FieldWidth = 45
)

// RenderConfig selects the optional segments of a rendered row. It is
// built once per run and never modified.
type RenderConfig struct {
	UseCanonicalNames bool // name rows by canonical name
	UseBothNames      bool // "canonical(display):"; wins over UseCanonicalNames
	IncludeKeys       bool // key text column
	IncludeFlags      bool // four-character flags column
}

// RenderRow returns the line for row, without a line terminator.
//
// Segments, in order: the indent; the flags and a space; the key text
// padded to FieldWidth; the name segment padded to FieldWidth and a
// space; the value. Padding never truncates.
func RenderRow(row Row, cfg RenderConfig) string {
	var b strings.Builder

	b.WriteString(Indent)
	if cfg.IncludeFlags {
		b.WriteString(row.Flags)
		b.WriteByte(' ')
	}
	if cfg.IncludeKeys {
		b.WriteString(pad(row.Key.String()))
	}
	b.WriteString(pad(nameSegment(row, cfg)))
	b.WriteByte(' ')
	b.WriteString(row.Value)

	return b.String()
}

func nameSegment(row Row, cfg RenderConfig) string {
	switch {
	case cfg.UseBothNames:
		return row.CanonicalName + "(" + row.DisplayName + "):"
	case cfg.UseCanonicalNames:
		return row.CanonicalName + ":"
	default:
		return row.DisplayName + ":"
	}
}

// cellWidth measures East Asian ambiguous characters as one cell whatever
// the locale.
var cellWidth = &runewidth.Condition{EastAsianWidth: false}

// pad left-justifies s in a FieldWidth column, measured in terminal cells.
func pad(s string) string {
	return cellWidth.FillRight(s, FieldWidth)
}

// Render writes one line per row.
func Render(w io.Writer, rows []Row, cfg RenderConfig) error {
	for _, row := range rows {
		if _, err := io.WriteString(w, RenderRow(row, cfg)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
