// Package stats computes per-column summaries for numeric and text columns.
package stats

import (
	"math"
	"sort"

	"github.com/aidan2b/data-describer/internal/classify"
	"github.com/aidan2b/data-describer/internal/dataset"
	"github.com/aidan2b/data-describer/internal/freqindex"
)

// NumericSummary holds population-style moments and order statistics.
// Float fields are NaN when they are undefined for the column.
type NumericSummary struct {
	Count     int
	Missing   int
	Mean      float64
	Variance  float64
	StdDev    float64
	Min       float64
	Max       float64
	Median    float64
	Mode      float64
	ModeCount int
	Range     float64
	Q1        float64
	Q3        float64
	IQR       float64
	Skewness  float64
	Kurtosis  float64
}

// SummarizeNumeric summarizes a numeric column in row order. Min and Max come
// from the classifier scan in col.
//
// Every valid value is expected to parse with classify.ParseNumber, which
// Classify guarantees for a Numeric column. A value that does not parse is
// counted in Missing and excluded from every statistic.
func SummarizeNumeric(values []dataset.Value, col classify.Column) NumericSummary {
	s := NumericSummary{Min: col.Min, Max: col.Max}
	xs := make([]float64, 0, len(values))
	var modes freqindex.Tree[float64]
	var sum float64
	for _, v := range values {
		if !v.Valid {
			s.Missing++
			continue
		}
		x, ok := classify.ParseNumber(v.Text)
		if !ok {
			s.Missing++
			continue
		}
		xs = append(xs, x)
		sum += x
		modes.Insert(x)
	}
	s.Count = len(xs)
	if s.Count == 0 {
		nan := math.NaN()
		s.Mean, s.Variance, s.StdDev = nan, nan, nan
		s.Min, s.Max, s.Median, s.Mode, s.Range = nan, nan, nan, nan, nan
		s.Q1, s.Q3, s.IQR, s.Skewness, s.Kurtosis = nan, nan, nan, nan, nan
		return s
	}

	n := float64(s.Count)
	s.Mean = sum / n
	// central moments, accumulated in row order
	var m2, m3, m4 float64
	for _, x := range xs {
		d := x - s.Mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	m2, m3, m4 = m2/n, m3/n, m4/n
	s.Variance = m2
	s.StdDev = math.Sqrt(m2)
	if m2 > 0 {
		s.Skewness = m3 / (m2 * s.StdDev)
		s.Kurtosis = m4/(m2*m2) - 3
	} else {
		s.Skewness, s.Kurtosis = math.NaN(), math.NaN()
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		s.Min, s.Max = sorted[0], sorted[len(sorted)-1]
	}
	s.Median = median(sorted)
	s.Q1 = sorted[len(sorted)/4]
	s.Q3 = sorted[3*len(sorted)/4]
	s.IQR = s.Q3 - s.Q1
	s.Range = s.Max - s.Min
	s.Mode, s.ModeCount, _, _ = modes.Stats()
	return s
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
