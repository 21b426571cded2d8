package describe

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/aidan2b/data-describer/internal/stats"
	"github.com/aidan2b/data-describer/internal/utils"
	"gopkg.in/yaml.v3"
)

// Number is a float that encodes NaN and ±Inf as null in JSON.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// MarshalYAML keeps the float so YAML renders .nan and .inf natively.
func (n Number) MarshalYAML() (any, error) { return float64(n), nil }

type reportDoc struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Rows       int         `json:"rows" yaml:"rows"`
	RaggedRows int         `json:"ragged_rows" yaml:"ragged_rows"`
	Columns    []columnDoc `json:"columns" yaml:"columns"`
	Warnings   []string    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type columnDoc struct {
	Index       int             `json:"index" yaml:"index"`
	Name        string          `json:"name" yaml:"name"`
	Type        string          `json:"type" yaml:"type"`
	Numeric     *numericDoc     `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	Categorical *categoricalDoc `json:"categorical,omitempty" yaml:"categorical,omitempty"`
}

type numericDoc struct {
	Count     int    `json:"count" yaml:"count"`
	Missing   int    `json:"missing" yaml:"missing"`
	Mean      Number `json:"mean" yaml:"mean"`
	Variance  Number `json:"variance" yaml:"variance"`
	StdDev    Number `json:"std_dev" yaml:"std_dev"`
	Min       Number `json:"min" yaml:"min"`
	Max       Number `json:"max" yaml:"max"`
	Median    Number `json:"median" yaml:"median"`
	Mode      Number `json:"mode" yaml:"mode"`
	ModeCount int    `json:"mode_count" yaml:"mode_count"`
	Range     Number `json:"range" yaml:"range"`
	Q1        Number `json:"q1" yaml:"q1"`
	Q3        Number `json:"q3" yaml:"q3"`
	IQR       Number `json:"iqr" yaml:"iqr"`
	Skewness  Number `json:"skewness" yaml:"skewness"`
	Kurtosis  Number `json:"kurtosis" yaml:"kurtosis"`
}

type categoricalDoc struct {
	MostCommon  *string `json:"most_common" yaml:"most_common"`
	Occurrences int     `json:"occurrences" yaml:"occurrences"`
	Unique      int     `json:"unique" yaml:"unique"`
	Count       int     `json:"count" yaml:"count"`
	Missing     int     `json:"missing" yaml:"missing"`
	MaxLength   int     `json:"max_length" yaml:"max_length"`
	MinLength   int     `json:"min_length" yaml:"min_length"`
	AvgLength   Number  `json:"avg_length" yaml:"avg_length"`
}

func numericDocOf(s *stats.NumericSummary) *numericDoc {
	return &numericDoc{
		Count: s.Count, Missing: s.Missing,
		Mean: Number(s.Mean), Variance: Number(s.Variance), StdDev: Number(s.StdDev),
		Min: Number(s.Min), Max: Number(s.Max), Median: Number(s.Median),
		Mode: Number(s.Mode), ModeCount: s.ModeCount, Range: Number(s.Range),
		Q1: Number(s.Q1), Q3: Number(s.Q3), IQR: Number(s.IQR),
		Skewness: Number(s.Skewness), Kurtosis: Number(s.Kurtosis),
	}
}

func categoricalDocOf(s *stats.CategoricalSummary) *categoricalDoc {
	d := &categoricalDoc{
		Occurrences: s.Occurrences, Unique: s.Unique, Count: s.Count, Missing: s.Missing,
		MaxLength: s.MaxLength, MinLength: s.MinLength, AvgLength: Number(s.AvgLength),
	}
	if s.MostCommon.Valid {
		v := s.MostCommon.Text
		d.MostCommon = &v
	}
	return d
}

func (r *Report) doc() reportDoc {
	d := reportDoc{ID: r.ID, Name: r.Name, Rows: r.Rows, RaggedRows: r.RaggedRows, Warnings: r.Warnings}
	d.Columns = make([]columnDoc, 0, len(r.Columns))
	for _, c := range r.Columns {
		cd := columnDoc{Index: c.Index, Name: c.Name, Type: c.Type.String()}
		if c.Numeric != nil {
			cd.Numeric = numericDocOf(c.Numeric)
		}
		if c.Categorical != nil {
			cd.Categorical = categoricalDocOf(c.Categorical)
		}
		d.Columns = append(d.Columns, cd)
	}
	return d
}

// JSON renders the report as indented JSON; undefined statistics are null.
func (r *Report) JSON() ([]byte, error) {
	return utils.PrettyJSON(r.doc())
}

// YAML renders the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	b, err := yaml.Marshal(r.doc())
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return b, nil
}
