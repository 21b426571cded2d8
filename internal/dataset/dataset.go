// Package dataset loads a delimited text table into column-aligned rows.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aidan2b/data-describer/internal/tokenizer"
)

// maxWarnings caps per-row warnings kept on a Dataset; the rest are summarized.
const maxWarnings = 20

// Options controls how a table is read.
type Options struct {
	// MaxRows bounds the number of data rows; 0 means unlimited.
	MaxRows int
	// MissingTokens lists field texts treated as "no value".
	MissingTokens []string
	// Delimiter separates fields. If 0, a comma is used.
	Delimiter byte
	// TrimSpace trims surrounding whitespace of every field and header.
	TrimSpace bool
}

// DefaultOptions treats empty fields as missing and caps input at one million rows.
func DefaultOptions() Options {
	return Options{
		MaxRows:       1_000_000,
		MissingTokens: []string{""},
		Delimiter:     tokenizer.Comma,
	}
}

// Dataset is a header plus rows aligned to the header width.
type Dataset struct {
	Header []string
	Rows   [][]Value
	// RaggedRows counts rows whose field count differed from the header.
	RaggedRows int
	// BlankLines counts empty lines skipped in tables with more than one column.
	BlankLines int
	Warnings   []string
}

// NumRows returns the number of data rows.
func (d *Dataset) NumRows() int { return len(d.Rows) }

// NumCols returns the number of header columns.
func (d *Dataset) NumCols() int { return len(d.Header) }

// Column returns column j in row order.
func (d *Dataset) Column(j int) []Value {
	out := make([]Value, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row[j]
	}
	return out
}

// Load reads a header line followed by data rows from r.
func Load(r io.Reader, opt Options) (*Dataset, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = tokenizer.Comma
	}
	missing := make(map[string]struct{}, len(opt.MissingTokens))
	for _, tok := range opt.MissingTokens {
		missing[tok] = struct{}{}
	}
	lr := tokenizer.NewReader(r)

	line, err := lr.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &InputError{Err: ErrNoHeader}
		}
		return nil, &InputError{Err: fmt.Errorf("read header: %w", err)}
	}
	header := tokenizer.SplitLineByte(strings.TrimPrefix(line, "\ufeff"), delim)
	if opt.TrimSpace {
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
	}
	ds := &Dataset{Header: header}
	ncol := len(header)

	for {
		start := lr.Line() + 1
		line, err := lr.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &InputError{Err: fmt.Errorf("read line %d: %w", start, err)}
		}
		// a blank line in a one-column table is a row holding one empty field
		if line == "" && ncol > 1 {
			ds.BlankLines++
			continue
		}
		if opt.MaxRows > 0 && len(ds.Rows) >= opt.MaxRows {
			return nil, &CapacityError{Limit: opt.MaxRows}
		}
		fields := tokenizer.SplitLineByte(line, delim)
		if len(fields) != ncol {
			ds.RaggedRows++
			if len(ds.Warnings) < maxWarnings {
				ds.Warnings = append(ds.Warnings, fmt.Sprintf("line %d: %d fields, header has %d", start, len(fields), ncol))
			}
		}
		row := make([]Value, ncol)
		for j := 0; j < ncol && j < len(fields); j++ {
			f := fields[j]
			if opt.TrimSpace {
				f = strings.TrimSpace(f)
			}
			if _, ok := missing[f]; ok {
				continue
			}
			row[j] = Some(f)
		}
		ds.Rows = append(ds.Rows, row)
	}
	if ds.RaggedRows > maxWarnings {
		ds.Warnings = append(ds.Warnings, fmt.Sprintf("%d more ragged rows not listed", ds.RaggedRows-maxWarnings))
	}
	return ds, nil
}
