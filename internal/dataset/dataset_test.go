package dataset_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/aidan2b/data-describer/internal/dataset"
)

func TestLoadAlignsRaggedRows(t *testing.T) {
	in := "name,age,city\n" +
		"ann,31,\"Oslo, NO\"\n" +
		"bob,27\n" +
		"cy,40,Rome,extra\n"
	ds, err := dataset.Load(strings.NewReader(in), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.NumCols() != 3 || ds.NumRows() != 3 {
		t.Fatalf("shape = %dx%d, want 3x3", ds.NumRows(), ds.NumCols())
	}
	if got := ds.Rows[0][2]; got != dataset.Some("Oslo, NO") {
		t.Fatalf("quoted field = %#v", got)
	}
	if ds.Rows[1][2].Valid {
		t.Fatalf("absent field should be missing, got %#v", ds.Rows[1][2])
	}
	if got := ds.Rows[2][2]; got.Text != "Rome" {
		t.Fatalf("extra field leaked: %#v", got)
	}
	if ds.RaggedRows != 2 || len(ds.Warnings) != 2 {
		t.Fatalf("ragged = %d warnings = %#v", ds.RaggedRows, ds.Warnings)
	}
	if ds.Warnings[0] != "line 3: 2 fields, header has 3" {
		t.Fatalf("warning = %q", ds.Warnings[0])
	}
}

func TestLoadMissingTokens(t *testing.T) {
	opt := dataset.DefaultOptions()
	opt.MissingTokens = []string{"", "NA"}
	opt.TrimSpace = true
	ds, err := dataset.Load(strings.NewReader("a, b\nNA, 1\n x ,\n"), opt)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Header[1] != "b" {
		t.Fatalf("header not trimmed: %q", ds.Header[1])
	}
	col := ds.Column(0)
	if col[0].Valid || col[1] != dataset.Some("x") {
		t.Fatalf("column a = %#v", col)
	}
	if ds.Rows[1][1].Valid {
		t.Fatalf("empty field should be missing")
	}
}

func TestLoadEmptyStringKeptWhenNotMissingToken(t *testing.T) {
	opt := dataset.DefaultOptions()
	opt.MissingTokens = nil
	ds, err := dataset.Load(strings.NewReader("a,b\n,1\n"), opt)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.Rows[0][0]; got != dataset.Some("") {
		t.Fatalf("got %#v, want present empty string", got)
	}
}

func TestLoadMultilineAndBlankLines(t *testing.T) {
	in := "id,note\n1,\"two\nlines\"\n\n2,plain\n"
	ds, err := dataset.Load(strings.NewReader(in), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.NumRows() != 2 || ds.BlankLines != 1 {
		t.Fatalf("rows=%d blank=%d", ds.NumRows(), ds.BlankLines)
	}
	if ds.Rows[0][1].Text != "two\nlines" {
		t.Fatalf("note = %q", ds.Rows[0][1].Text)
	}
}

func TestLoadBlankLineIsRowInSingleColumnTable(t *testing.T) {
	ds, err := dataset.Load(strings.NewReader("a\n1\n\n3\n"), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.NumRows() != 3 || ds.BlankLines != 0 {
		t.Fatalf("rows=%d blank=%d", ds.NumRows(), ds.BlankLines)
	}
	if ds.Rows[1][0].Valid {
		t.Fatalf("row 2 = %#v, want missing", ds.Rows[1][0])
	}
}

func TestLoadFinalLineWithoutLFKeepsNumbers(t *testing.T) {
	ds, err := dataset.Load(strings.NewReader("a,b\r\n1,2\r\n3,4\r"), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.Rows[1][1].Text; got != "4" {
		t.Fatalf("last field = %q, want %q", got, "4")
	}
}

func TestLoadKeepsLatin1Bytes(t *testing.T) {
	ds, err := dataset.Load(strings.NewReader("name\ncaf\xe9\ncaf\xe8\n"), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Rows[0][0].Text != "caf\xe9" || ds.Rows[1][0].Text != "caf\xe8" {
		t.Fatalf("rows = %q", ds.Rows)
	}
}

func TestLoadRowCapacity(t *testing.T) {
	opt := dataset.DefaultOptions()
	opt.MaxRows = 2
	_, err := dataset.Load(strings.NewReader("a\n1\n2\n3\n"), opt)
	if !errors.Is(err, dataset.ErrRowCapacityExceeded) {
		t.Fatalf("err = %v, want capacity exceeded", err)
	}
	var ce *dataset.CapacityError
	if !errors.As(err, &ce) || ce.Limit != 2 {
		t.Fatalf("err = %#v", err)
	}

	if _, err := dataset.Load(strings.NewReader("a\n1\n2\n"), opt); err != nil {
		t.Fatalf("exactly at capacity should load: %v", err)
	}
	opt.MaxRows = 0
	if _, err := dataset.Load(strings.NewReader("a\n1\n2\n3\n"), opt); err != nil {
		t.Fatalf("unlimited: %v", err)
	}
}

func TestLoadInputErrors(t *testing.T) {
	_, err := dataset.Load(strings.NewReader(""), dataset.DefaultOptions())
	if !errors.Is(err, dataset.ErrNoHeader) || !errors.Is(err, dataset.ErrInputUnavailable) {
		t.Fatalf("empty input err = %v", err)
	}
	r := iotest.TimeoutReader(strings.NewReader("a,b\n1,2\n"))
	_, err = dataset.Load(iotest.OneByteReader(r), dataset.DefaultOptions())
	if !errors.Is(err, dataset.ErrInputUnavailable) {
		t.Fatalf("read failure err = %v", err)
	}
}

func TestLoadDelimiterAndBOM(t *testing.T) {
	opt := dataset.DefaultOptions()
	opt.Delimiter = ';'
	ds, err := dataset.Load(strings.NewReader("\ufeffx;y\n1,5;2\n"), opt)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Header[0] != "x" || ds.Rows[0][0].Text != "1,5" {
		t.Fatalf("header=%q row=%#v", ds.Header, ds.Rows[0])
	}
}
