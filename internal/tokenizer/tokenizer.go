// Package tokenizer splits delimited text into logical lines and fields.
//
// Quoting is a plain toggle: every '"' flips the in-quotes state and quotes
// are neither escaped nor doubled. The same toggle decides where a logical
// line ends, so a newline inside an open quote is part of the line.
package tokenizer

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	// Comma is the default field delimiter.
	Comma = ','
	// Quote toggles the in-quotes state.
	Quote = '"'
)

// SplitLine splits one logical line on commas (outside quotes).
func SplitLine(line string) []string {
	return SplitLineByte(line, Comma)
}

// SplitLineByte splits one logical line on delim, ignoring delimiters that
// appear between quotes. Quote characters toggle quoting and are not part of
// the field text. The scan is byte-wise, so bytes that are not valid UTF-8
// pass through unchanged. An empty line yields a single empty field.
func SplitLineByte(line string, delim byte) []string {
	fields := make([]string, 0, strings.Count(line, string([]byte{delim}))+1)
	var field []byte
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == Quote:
			inQuotes = !inQuotes
		case c == delim && !inQuotes:
			fields = append(fields, string(field))
			field = field[:0]
		default:
			field = append(field, c)
		}
	}
	return append(fields, string(field))
}

// Reader yields logical lines from an underlying reader.
type Reader struct {
	br   *bufio.Reader
	line int
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Line returns the number of physical lines consumed so far.
func (r *Reader) Line() int { return r.line }

// ReadLine returns the next logical line without its terminating newline.
// A newline inside an open quote is kept as content. A final line with no
// trailing newline is returned as usual; io.EOF is returned only once no
// bytes remain. An unterminated quote simply closes at end of input.
func (r *Reader) ReadLine() (string, error) {
	var b strings.Builder
	inQuotes := false
	read := false
	for {
		chunk, err := r.br.ReadString('\n')
		if len(chunk) > 0 {
			read = true
		}
		if strings.Count(chunk, string(Quote))%2 == 1 {
			inQuotes = !inQuotes
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", err
			}
			if !read {
				return "", io.EOF
			}
			if len(chunk) > 0 {
				r.line++
			}
			if !inQuotes {
				chunk = strings.TrimSuffix(chunk, "\r")
			}
			b.WriteString(chunk)
			return b.String(), nil
		}
		r.line++
		if inQuotes {
			b.WriteString(chunk)
			continue
		}
		chunk = strings.TrimSuffix(chunk, "\n")
		chunk = strings.TrimSuffix(chunk, "\r")
		b.WriteString(chunk)
		return b.String(), nil
	}
}
