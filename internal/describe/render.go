package describe

import (
	"fmt"
	"strings"

	"github.com/aidan2b/data-describer/internal/classify"
)

// Format selects a report rendering.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat accepts text|markdown|md|json|yaml|yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use text|markdown|json|yaml)", s)
	}
}

// Ext returns the file extension used when writing a report in f.
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	default:
		return ".txt"
	}
}

// Render returns the report in the given format.
func (r *Report) Render(f Format) (string, error) {
	switch f {
	case FormatText, "":
		return r.Text(), nil
	case FormatMarkdown:
		return r.Markdown(), nil
	case FormatJSON:
		b, err := r.JSON()
		return string(b), err
	case FormatYAML:
		b, err := r.YAML()
		return string(b), err
	default:
		return "", fmt.Errorf("unsupported format: %s", f)
	}
}

// Text renders the classic console layout with two-decimal values.
func (r *Report) Text() string {
	var b strings.Builder
	for _, c := range r.Columns {
		fmt.Fprintf(&b, "Column %d (%s):\n", c.Index+1, c.Name)
		switch {
		case c.Numeric != nil:
			s := c.Numeric
			b.WriteString("  Type: Numeric\n")
			fmt.Fprintf(&b, "  Mean: %.2f\n", s.Mean)
			fmt.Fprintf(&b, "  Variance: %.2f\n", s.Variance)
			fmt.Fprintf(&b, "  Standard Deviation: %.2f\n", s.StdDev)
			fmt.Fprintf(&b, "  Min: %.2f\n", s.Min)
			fmt.Fprintf(&b, "  Max: %.2f\n", s.Max)
			fmt.Fprintf(&b, "  Median: %.2f\n", s.Median)
			fmt.Fprintf(&b, "  Mode: %.2f\n", s.Mode)
			fmt.Fprintf(&b, "  Range: %.2f\n", s.Range)
			fmt.Fprintf(&b, "  IQR: %.2f\n", s.IQR)
			fmt.Fprintf(&b, "  Skewness: %.2f\n", s.Skewness)
			fmt.Fprintf(&b, "  Kurtosis: %.2f\n", s.Kurtosis)
			fmt.Fprintf(&b, "  Missing Values: %d\n", s.Missing)
		case c.Categorical != nil:
			s := c.Categorical
			b.WriteString("  Type: Non-Numeric\n")
			fmt.Fprintf(&b, "  Most Common Value: %s\n", mostCommon(s.MostCommon.Valid, s.MostCommon.Text))
			fmt.Fprintf(&b, "  Occurrences: %d\n", s.Occurrences)
			fmt.Fprintf(&b, "  Unique Values: %d\n", s.Unique)
			fmt.Fprintf(&b, "  Max Length: %d\n", s.MaxLength)
			fmt.Fprintf(&b, "  Min Length: %d\n", s.MinLength)
			fmt.Fprintf(&b, "  Avg Length: %.2f\n", s.AvgLength)
			fmt.Fprintf(&b, "  Missing Values: %d\n", s.Missing)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Markdown renders a compact report with bracketed sections.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		fmt.Fprintf(&b, "File: %s\n", r.Name)
	}
	fmt.Fprintf(&b, "Rows: %d\n", r.Rows)
	fmt.Fprintf(&b, "Columns: %d\n\n", len(r.Columns))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Columns {
		kind := "numeric"
		if c.Type == classify.NonNumeric {
			kind = "non-numeric"
		}
		fmt.Fprintf(&b, "- %s: %s", safeName(c.Name), kind)
		switch {
		case c.Numeric != nil:
			s := c.Numeric
			fmt.Fprintf(&b, " (missing %d) — mean %.2f, std %.2f, min %.2f, max %.2f, median %.2f, IQR %.2f",
				s.Missing, s.Mean, s.StdDev, s.Min, s.Max, s.Median, s.IQR)
		case c.Categorical != nil:
			s := c.Categorical
			fmt.Fprintf(&b, " (missing %d) — top: %s(%d); unique=%d; length %d..%d avg %.2f",
				s.Missing, safeVal(mostCommon(s.MostCommon.Valid, s.MostCommon.Text)), s.Occurrences,
				s.Unique, s.MinLength, s.MaxLength, s.AvgLength)
		}
		b.WriteString("\n")
	}

	var numeric []ColumnReport
	for _, c := range r.Columns {
		if c.Numeric != nil {
			numeric = append(numeric, c)
		}
	}
	if len(numeric) > 0 {
		b.WriteString("\n[NUMERIC MOMENTS]\n")
		b.WriteString("| column | mean | variance | std | median | mode | range | IQR | skewness | kurtosis |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
		for _, c := range numeric {
			s := c.Numeric
			fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
				safeVal(safeName(c.Name)), s.Mean, s.Variance, s.StdDev, s.Median, s.Mode, s.Range, s.IQR, s.Skewness, s.Kurtosis)
		}
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func mostCommon(valid bool, text string) string {
	if !valid {
		return "(none)"
	}
	return text
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
