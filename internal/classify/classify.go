// Package classify tags each column of a dataset as numeric or non-numeric.
package classify

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/aidan2b/data-describer/internal/dataset"
)

// ColumnType is decided once per column after a full scan.
type ColumnType int

const (
	Numeric ColumnType = iota
	NonNumeric
)

func (t ColumnType) String() string {
	switch t {
	case Numeric:
		return "Numeric"
	case NonNumeric:
		return "Non-Numeric"
	default:
		return "Unknown"
	}
}

// Column describes one classified column. Min and Max are only meaningful
// for numeric columns and are NaN when the column has no values.
type Column struct {
	Index int
	Name  string
	Type  ColumnType
	Min   float64
	Max   float64
}

// ParseNumber reports whether s, after leading whitespace, is entirely a
// floating-point number.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out-of-range values still parse fully; keep them as ±Inf
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// Classify scans every column once. Missing values are skipped; the first
// value that does not parse makes the column NonNumeric for good.
func Classify(ds *dataset.Dataset) []Column {
	cols := make([]Column, ds.NumCols())
	for j := range cols {
		cols[j] = classifyColumn(j, ds)
	}
	return cols
}

func classifyColumn(j int, ds *dataset.Dataset) Column {
	c := Column{Index: j, Name: ds.Header[j], Type: Numeric, Min: math.Inf(1), Max: math.Inf(-1)}
	seen := false
	for _, row := range ds.Rows {
		v := row[j]
		if !v.Valid {
			continue
		}
		x, ok := ParseNumber(v.Text)
		if !ok {
			c.Type = NonNumeric
			break
		}
		seen = true
		if x < c.Min {
			c.Min = x
		}
		if x > c.Max {
			c.Max = x
		}
	}
	if c.Type == NonNumeric || !seen {
		c.Min, c.Max = math.NaN(), math.NaN()
	}
	return c
}
