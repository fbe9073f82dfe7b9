package metric

import (
	"bytes"
	"strings"
	"testing"
)

type sampleRow struct {
	ID      int     `tsv:"id"`
	Name    string  `tsv:"name"`
	Score   float64 `tsv:"score"`
	Flag    bool    `tsv:"flag"`
	Comment *string `tsv:"comment"`
	hidden  int
}

func TestWriteAllHeaderAndRows(t *testing.T) {
	comment := "note"
	rows := []sampleRow{
		{ID: 1, Name: "a", Score: 1.5, Flag: true, Comment: &comment},
		{ID: 2, Name: "b", Score: 2, Flag: false, Comment: nil},
	}
	var buf bytes.Buffer
	if err := WriteAll(&buf, rows); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "id\tname\tscore\tflag\tcomment" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1\ta\t1.5\ttrue\tnote" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2\tb\t2\tfalse\t" {
		t.Errorf("row 2 = %q, want trailing blank comment column", lines[2])
	}
}

func TestWriteAllRejectsNonSlice(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAll(&buf, sampleRow{}); err == nil {
		t.Errorf("expected error when rows is not a slice")
	}
}

func TestReadAllRoundTrip(t *testing.T) {
	comment := "note"
	rows := []sampleRow{
		{ID: 1, Name: "a", Score: 1.5, Flag: true, Comment: &comment},
		{ID: 2, Name: "b", Score: 2, Flag: false, Comment: nil},
	}
	var buf bytes.Buffer
	if err := WriteAll(&buf, rows); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}

	var got []sampleRow
	if err := ReadAll(&buf, &got); err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ReadAll returned %d rows, want 2", len(got))
	}
	if got[0].ID != 1 || got[0].Name != "a" || got[0].Score != 1.5 || !got[0].Flag {
		t.Errorf("row 0 = %+v", got[0])
	}
	if got[0].Comment == nil || *got[0].Comment != "note" {
		t.Errorf("row 0 comment = %v, want note", got[0].Comment)
	}
	if got[1].Comment != nil {
		t.Errorf("row 1 comment = %v, want nil for blank column", got[1].Comment)
	}
	if got[1].Flag {
		t.Errorf("row 1 flag = true, want false")
	}
}

func TestReadAllIgnoresUnknownColumn(t *testing.T) {
	input := "id\tname\textra\n1\ta\tunused\n"
	var got []sampleRow
	if err := ReadAll(strings.NewReader(input), &got); err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 || got[0].Name != "a" {
		t.Errorf("got %+v", got)
	}
}
