package script

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/dshills/collections/internal/collection"
	"github.com/dshills/collections/internal/record"
)

func books() []*record.Record {
	return []*record.Record{
		record.New(map[string]any{"title": "Dubliners", "author": "Joyce", "year": int64(1914)}),
		record.New(map[string]any{"title": "Hamlet", "author": "Shakespeare", "year": 1603}),
		record.New(map[string]any{"title": "The Tempest", "author": "Shakespeare", "year": 1611.0, "tags": []any{"play"}}),
	}
}

func titles(rs []*record.Record) []string {
	return collection.Pluck[*record.Record](collection.New(rs), func(r *record.Record) string {
		return r.Text("title")
	})
}

func TestComparator(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "numeric result",
			src:  `function compare(a, b) return a.year - b.year end`,
			want: []string{"Hamlet", "The Tempest", "Dubliners"},
		},
		{
			name: "boolean result",
			src:  `function compare(a, b) return a.title > b.title end`,
			want: []string{"The Tempest", "Hamlet", "Dubliners"},
		},
		{
			name: "string library",
			src: `function compare(a, b)
				return string.len(a.title) - string.len(b.title)
			end`,
			want: []string{"Hamlet", "Dubliners", "The Tempest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := NewComparator(tt.src)
			if err != nil {
				t.Fatalf("NewComparator() failed: %v", err)
			}
			defer cmp.Close()

			sorted := collection.NewSorted(books(), cmp.Func())
			if got := titles(sorted.ToSlice()); !slices.Equal(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
			if cmp.Err() != nil {
				t.Errorf("Err() = %v", cmp.Err())
			}
		})
	}
}

func TestComparator_BooleanTies(t *testing.T) {
	cmp, err := NewComparator(`function compare(a, b) return a.author < b.author end`)
	if err != nil {
		t.Fatalf("NewComparator() failed: %v", err)
	}
	defer cmp.Close()

	bs := books()
	if got := cmp.Compare(bs[1], bs[2]); got != 0 {
		t.Errorf("Compare(same author) = %d, want 0", got)
	}
	if got := cmp.Compare(bs[2], bs[0]); got != 1 {
		t.Errorf("Compare(Shakespeare, Joyce) = %d, want 1", got)
	}
}

func TestComparator_RuntimeError(t *testing.T) {
	cmp, err := NewComparator(`function compare(a, b) return a.missing - b.year end`)
	if err != nil {
		t.Fatalf("NewComparator() failed: %v", err)
	}
	defer cmp.Close()

	bs := books()
	if got := cmp.Compare(bs[0], bs[1]); got != 0 {
		t.Errorf("Compare() = %d, want 0 on error", got)
	}
	if cmp.Err() == nil {
		t.Error("expected Err() to report the failure")
	}
}

func TestComparator_BadResult(t *testing.T) {
	cmp, err := NewComparator(`function compare(a, b) return "x" end`)
	if err != nil {
		t.Fatalf("NewComparator() failed: %v", err)
	}
	defer cmp.Close()

	cmp.Compare(books()[0], books()[1])
	var rerr *ResultError
	if !errors.As(cmp.Err(), &rerr) || rerr.Got != "string" {
		t.Errorf("Err() = %v, want *ResultError for string", cmp.Err())
	}
}

func TestCompileErrors(t *testing.T) {
	_, err := NewComparator(`function compare(a, b`)
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		t.Errorf("syntax error: %v, want *CompileError", err)
	}

	_, err = NewComparator(`compare = 3`)
	var merr *MissingFuncError
	if !errors.As(err, &merr) || merr.Got != "number" {
		t.Errorf("non-function: %v", err)
	}

	_, err = NewFilter(`function other() end`)
	if !errors.As(err, &merr) || merr.Name != "match" {
		t.Errorf("missing function: %v", err)
	}
}

func TestFilter(t *testing.T) {
	f, err := NewFilter(`
		function match(item)
			return item.author == "Shakespeare" and item.year > 1605
		end`)
	if err != nil {
		t.Fatalf("NewFilter() failed: %v", err)
	}
	defer f.Close()

	list := collection.New(books())
	if got := titles(list.Where(f)); !slices.Equal(got, []string{"The Tempest"}) {
		t.Errorf("Where() = %v", got)
	}
	if f.Err() != nil {
		t.Errorf("Err() = %v", f.Err())
	}
}

func TestFilter_NestedValues(t *testing.T) {
	f, err := NewFilter(`function match(item) return item.tags ~= nil and item.tags[1] == "play" end`)
	if err != nil {
		t.Fatalf("NewFilter() failed: %v", err)
	}
	defer f.Close()

	var got []string
	for _, r := range books() {
		if f.Match(r) {
			got = append(got, r.Text("title"))
		}
	}
	if !slices.Equal(got, []string{"The Tempest"}) {
		t.Errorf("matched %v", got)
	}
}

func TestSandbox(t *testing.T) {
	for _, lib := range []string{"os", "io", "debug", "require", "dofile", "loadstring"} {
		src := `function match(item) return ` + lib + ` == nil end`
		f, err := NewFilter(src)
		if err != nil {
			t.Fatalf("NewFilter() failed: %v", err)
		}
		if !f.Match(books()[0]) {
			t.Errorf("%s is reachable from scripts", lib)
		}
		f.Close()
	}
}

func TestTimeout(t *testing.T) {
	f, err := NewFilter(`function match(item) while true do end end`, WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("NewFilter() failed: %v", err)
	}
	defer f.Close()

	if f.Match(books()[0]) {
		t.Error("runaway script matched")
	}
	if !errors.Is(f.Err(), ErrTimeout) {
		t.Errorf("Err() = %v, want ErrTimeout", f.Err())
	}
}

func TestPrintLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	f, err := NewFilter(`function match(item) print("seen", item.title) return true end`, WithLogger(logger))
	if err != nil {
		t.Fatalf("NewFilter() failed: %v", err)
	}
	defer f.Close()

	f.Match(books()[1])
	if !strings.Contains(buf.String(), "seen\tHamlet") && !strings.Contains(buf.String(), `seen\tHamlet`) {
		t.Errorf("log = %q", buf.String())
	}
}

func TestClosed(t *testing.T) {
	f, err := NewFilter(`function match(item) return true end`)
	if err != nil {
		t.Fatalf("NewFilter() failed: %v", err)
	}
	f.Close()

	if f.Match(books()[0]) {
		t.Error("closed filter matched")
	}
	if !errors.Is(f.Err(), ErrStateClosed) {
		t.Errorf("Err() = %v, want ErrStateClosed", f.Err())
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
