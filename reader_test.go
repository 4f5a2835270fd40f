package simdcsv

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestReaderReadAll(t *testing.T) {
	r := NewReader(strings.NewReader("a,b\nc,d\n"))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	data := r.Bytes()
	got := rowsAsStrings(data, rows)
	want := [][]string{{"a", "b"}, {"c", "d"}}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("rows[%d][%d] = %q, want %q", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestReaderReadOneAtATime(t *testing.T) {
	r := NewReader(strings.NewReader("a\nb\nc\n"))

	var got []string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
		got = append(got, string(r.Bytes()[row[0].Start:row[0].End]))
	}

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if rows != nil {
		t.Errorf("rows = %v, want nil", rows)
	}
}

func TestReaderMaxInputSize(t *testing.T) {
	r := NewReaderWithOptions(strings.NewReader("aaaaaaaaaa"), ReaderOptions{MaxInputSize: 4})
	_, err := r.ReadAll()
	if err != ErrInputTooLarge {
		t.Fatalf("err = %v, want ErrInputTooLarge", err)
	}
}

func TestReaderSkipBOM(t *testing.T) {
	r := NewReaderWithOptions(strings.NewReader("\xEF\xBB\xBFa,b\n"), ReaderOptions{SkipBOM: true})
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	got := string(r.Bytes()[rows[0][0].Start:rows[0][0].End])
	if got != "a" {
		t.Errorf("first field = %q, want %q", got, "a")
	}
}

func TestReaderInputOffset(t *testing.T) {
	data := "a,b\nc,d\n"
	r := NewReader(strings.NewReader(data))
	if _, err := r.ReadAll(); err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if got, want := r.InputOffset(), int64(len(data)); got != want {
		t.Errorf("InputOffset() = %d, want %d", got, want)
	}
}

func TestReaderReusesBitmapTriple(t *testing.T) {
	// Exercise the pooled bitmapTriple path across multiple Readers to
	// ensure reuse never corrupts results.
	inputs := []string{"a,b\n", "c,d,e\n", "f\n"}
	wants := [][][]string{{{"a", "b"}}, {{"c", "d", "e"}}, {{"f"}}}
	for i, in := range inputs {
		r := NewReader(strings.NewReader(in))
		rows, err := r.ReadAll()
		if err != nil {
			t.Fatalf("ReadAll(%q) returned error: %v", in, err)
		}
		if got := rowsAsStrings(r.Bytes(), rows); !reflect.DeepEqual(got, wants[i]) {
			t.Errorf("ReadAll(%q) = %#v, want %#v", in, got, wants[i])
		}
	}
}
