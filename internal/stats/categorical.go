package stats

import (
	"math"

	"github.com/aidan2b/data-describer/internal/dataset"
	"github.com/aidan2b/data-describer/internal/freqindex"
)

// CategoricalSummary describes a text column. MostCommon is not Valid when
// the column has no values; AvgLength is then NaN.
type CategoricalSummary struct {
	MostCommon  dataset.Value
	Occurrences int
	Unique      int
	Count       int
	Missing     int
	MaxLength   int
	MinLength   int
	AvgLength   float64
}

// SummarizeCategorical builds a fresh frequency index over the present values
// and measures their byte lengths.
func SummarizeCategorical(values []dataset.Value) CategoricalSummary {
	var s CategoricalSummary
	var idx freqindex.Tree[string]
	total := 0
	for _, v := range values {
		if !v.Valid {
			s.Missing++
			continue
		}
		idx.Insert(v.Text)
		n := len(v.Text)
		if s.Count == 0 || n > s.MaxLength {
			s.MaxLength = n
		}
		if s.Count == 0 || n < s.MinLength {
			s.MinLength = n
		}
		total += n
		s.Count++
	}
	mode, count, distinct, ok := idx.Stats()
	if ok {
		s.MostCommon = dataset.Some(mode)
	}
	s.Occurrences = count
	s.Unique = distinct
	if s.Count > 0 {
		s.AvgLength = float64(total) / float64(s.Count)
	} else {
		s.AvgLength = math.NaN()
	}
	return s
}
