// Package describe runs the profiling pipeline over one table and renders
// the per-column report.
package describe

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aidan2b/data-describer/internal/classify"
	"github.com/aidan2b/data-describer/internal/dataset"
	"github.com/aidan2b/data-describer/internal/logging"
	"github.com/aidan2b/data-describer/internal/source"
	"github.com/aidan2b/data-describer/internal/stats"
	"github.com/google/uuid"
)

// Options controls how a table is read and described.
type Options struct {
	Dataset dataset.Options
	// Logger receives pipeline progress at debug level. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns reasonable defaults for describing a table.
func DefaultOptions() Options {
	return Options{Dataset: dataset.DefaultOptions()}
}

// Report is the per-column description of one table.
type Report struct {
	// ID identifies this run; it is not part of Text or Markdown output.
	ID         string
	Name       string
	Rows       int
	RaggedRows int
	Columns    []ColumnReport
	Warnings   []string
}

// ColumnReport carries exactly one of Numeric or Categorical, by Type.
type ColumnReport struct {
	Index       int
	Name        string
	Type        classify.ColumnType
	Numeric     *stats.NumericSummary
	Categorical *stats.CategoricalSummary
}

// DescribeFile opens path (decompressing by suffix) and describes it.
func DescribeFile(path string, opt Options) (*Report, error) {
	rc, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	name := filepath.Base(path)
	if path == source.Stdin {
		name = "stdin"
	}
	return Describe(rc, name, opt)
}

// Describe tokenizes every row, classifies every column, then summarizes the
// columns one at a time.
func Describe(r io.Reader, name string, opt Options) (*Report, error) {
	log := opt.Logger
	if log == nil {
		log = logging.Discard()
	}
	log = log.With("table", name)
	start := time.Now()

	ds, err := dataset.Load(r, opt.Dataset)
	if err != nil {
		var ie *dataset.InputError
		if errors.As(err, &ie) && ie.Source == "" {
			ie.Source = name
		}
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	log.Debug("tokenized", "rows", ds.NumRows(), "columns", ds.NumCols(), "ragged", ds.RaggedRows)

	cols := classify.Classify(ds)
	log.Debug("classified", "columns", len(cols))

	rep := &Report{
		ID:         uuid.NewString(),
		Name:       name,
		Rows:       ds.NumRows(),
		RaggedRows: ds.RaggedRows,
		Columns:    make([]ColumnReport, 0, len(cols)),
		Warnings:   ds.Warnings,
	}
	for _, c := range cols {
		cr := ColumnReport{Index: c.Index, Name: c.Name, Type: c.Type}
		values := ds.Column(c.Index)
		switch c.Type {
		case classify.Numeric:
			s := stats.SummarizeNumeric(values, c)
			cr.Numeric = &s
		default:
			s := stats.SummarizeCategorical(values)
			cr.Categorical = &s
		}
		rep.Columns = append(rep.Columns, cr)
	}
	if ds.BlankLines > 0 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("skipped %d blank lines", ds.BlankLines))
	}
	log.Debug("described", "columns", len(rep.Columns), "duration", time.Since(start))
	return rep, nil
}
