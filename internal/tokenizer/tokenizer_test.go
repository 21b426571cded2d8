package tokenizer

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestSplitLine(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{"", []string{""}},
		{"a,,c", []string{"a", "", "c"}},
		{"a,b,", []string{"a", "b", ""}},
		{`"open,quote`, []string{"open,quote"}},
		{`x,"y,z`, []string{"x", "y,z"}},
		{`say "hi",there`, []string{"say hi", "there"}},
	}
	for _, tc := range cases {
		got := SplitLine(tc.in)
		if !equal(got, tc.want) {
			t.Fatalf("SplitLine(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestSplitLineByteTab(t *testing.T) {
	got := SplitLineByte("a\t\"b\tc\"\td", '\t')
	want := []string{"a", "b\tc", "d"}
	if !equal(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestSplitLineKeepsInvalidUTF8(t *testing.T) {
	got := SplitLine("caf\xe9,\xff,\"a\xe8,b\"")
	want := []string{"caf\xe9", "\xff", "a\xe8,b"}
	if !equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if len(got[0]) != 4 {
		t.Fatalf("len(field 0) = %d, want 4", len(got[0]))
	}
}

func TestReaderTrimsCRAtEOF(t *testing.T) {
	r := NewReader(strings.NewReader("a,b\r\n3,4\r"))
	for _, want := range []string{"a,b", "3,4"} {
		l, err := r.ReadLine()
		if err != nil || l != want {
			t.Fatalf("line = %q, %v; want %q", l, err, want)
		}
	}
	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if r.Line() != 2 {
		t.Fatalf("physical lines = %d, want 2", r.Line())
	}
}

func TestReaderQuotedNewline(t *testing.T) {
	in := "h1,h2\n\"multi\nline\",2\r\nlast,3"
	r := NewReader(strings.NewReader(in))
	var lines []string
	for {
		l, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		lines = append(lines, l)
	}
	want := []string{"h1,h2", "\"multi\nline\",2", "last,3"}
	if !equal(lines, want) {
		t.Fatalf("lines = %#v, want %#v", lines, want)
	}
	if r.Line() != 4 {
		t.Fatalf("physical lines = %d, want 4", r.Line())
	}
}

func TestReaderUnterminatedQuote(t *testing.T) {
	r := NewReader(strings.NewReader("a,\"b\nc\n"))
	l, err := r.ReadLine()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if l != "a,\"b\nc\n" {
		t.Fatalf("line = %q", l)
	}
	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestReaderEmptyLines(t *testing.T) {
	r := NewReader(strings.NewReader("\n\n"))
	for i := 0; i < 2; i++ {
		l, err := r.ReadLine()
		if err != nil || l != "" {
			t.Fatalf("line %d = %q, %v", i, l, err)
		}
	}
	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
