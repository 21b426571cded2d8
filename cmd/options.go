package cmd

import (
	"fmt"
	"strings"

	"github.com/aidan2b/data-describer/internal/describe"
	"github.com/spf13/pflag"
)

// tableFlags are shared by analyze and analyze-batch.
type tableFlags struct {
	delimiter string
	maxRows   int
	missing   []string
	trim      bool
	format    string
}

func (tf *tableFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&tf.delimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab' | '|' (default from config)")
	fs.IntVar(&tf.maxRows, "max-rows", 0, "maximum data rows; more is an error (0 = use config, -1 = unlimited)")
	fs.StringSliceVar(&tf.missing, "missing", nil, "field values treated as missing (repeatable; default from config)")
	fs.BoolVar(&tf.trim, "trim", false, "trim whitespace around fields and headers")
	fs.StringVarP(&tf.format, "format", "f", "", "output format: text|markdown|json|yaml (default from config)")
}

// options merges flags over the loaded config.
func (tf *tableFlags) options(fs *pflag.FlagSet) (describe.Options, describe.Format, error) {
	opt := describe.DefaultOptions()
	opt.Logger = logger
	formatName := tf.format
	delim := tf.delimiter
	if cfg != nil {
		opt.Dataset.MaxRows = cfg.MaxRows
		opt.Dataset.MissingTokens = cfg.MissingTokens
		opt.Dataset.TrimSpace = cfg.TrimSpace
		if formatName == "" {
			formatName = cfg.OutputFormat
		}
		if delim == "" {
			delim = cfg.Delimiter
		}
	}
	switch {
	case tf.maxRows < 0:
		opt.Dataset.MaxRows = 0
	case tf.maxRows > 0:
		opt.Dataset.MaxRows = tf.maxRows
	}
	if fs.Changed("missing") {
		opt.Dataset.MissingTokens = tf.missing
	}
	if fs.Changed("trim") {
		opt.Dataset.TrimSpace = tf.trim
	}
	r, err := parseDelimiter(delim)
	if err != nil {
		return opt, "", err
	}
	opt.Dataset.Delimiter = r
	f, err := describe.ParseFormat(formatName)
	if err != nil {
		return opt, "", err
	}
	return opt, f, nil
}

func parseDelimiter(s string) (byte, error) {
	switch strings.ToLower(s) {
	case "", ",", "comma":
		return ',', nil
	case "\t", "tab", `\t`:
		return '\t', nil
	case ";", "semicolon":
		return ';', nil
	case "|", "pipe":
		return '|', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}
