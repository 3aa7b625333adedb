package record

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func book() *Record {
	return New(map[string]any{
		"title":  "The Tempest",
		"author": "Shakespeare",
		"year":   int64(1611),
		"meta": map[string]any{
			"pages": 96,
			"tags":  []any{"play", "comedy"},
		},
		"inPrint": true,
	})
}

func TestRecord_Get(t *testing.T) {
	r := book()

	tests := []struct {
		path string
		want any
		ok   bool
	}{
		{"title", "The Tempest", true},
		{"meta.pages", 96, true},
		{"meta.missing", nil, false},
		{"title.deeper", nil, false},
		{"nope", nil, false},
	}
	for _, tt := range tests {
		got, ok := r.Get(tt.path)
		if ok != tt.ok || (ok && !Equal(got, tt.want)) {
			t.Errorf("Get(%q) = %v, %v; want %v, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
	if !r.Has("meta.tags") || r.Has("meta.tags.x") {
		t.Error("Has() wrong")
	}
}

func TestRecord_TypedGetters(t *testing.T) {
	r := book()

	if s, err := r.String("author"); err != nil || s != "Shakespeare" {
		t.Errorf("String() = %q, %v", s, err)
	}
	if n, err := r.Number("year"); err != nil || n != 1611 {
		t.Errorf("Number() = %v, %v", n, err)
	}
	if b, err := r.Bool("inPrint"); err != nil || !b {
		t.Errorf("Bool() = %v, %v", b, err)
	}
	if s, err := r.String("missing"); err != nil || s != "" {
		t.Errorf("String(missing) = %q, %v", s, err)
	}

	_, err := r.Number("title")
	var terr *TypeError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TypeError, got %v", err)
	}
	if terr.Path != "title" || terr.Expected != "number" || terr.Actual != "string" {
		t.Errorf("TypeError = %+v", terr)
	}
}

func TestRecord_CopiesFields(t *testing.T) {
	in := map[string]any{"tags": []any{"a"}, "n": 1}
	r := New(in)
	in["n"] = 2
	in["tags"].([]any)[0] = "z"

	if v, _ := r.Get("n"); v != 1 {
		t.Errorf("n = %v, want 1", v)
	}
	if v, _ := r.Get("tags"); !Equal(v, []any{"a"}) {
		t.Errorf("tags = %v", v)
	}

	out := r.Fields()
	out["n"] = 3
	if v, _ := r.Get("n"); v != 1 {
		t.Error("Fields() aliases the record")
	}
}

func TestRecord_TextAndKeys(t *testing.T) {
	r := New(map[string]any{"b": 2, "a": "x", "c": nil})

	if got := r.Keys(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v", got)
	}
	if r.Text("b") != "2" || r.Text("c") != "" || r.Text("zz") != "" {
		t.Errorf("Text() wrong: %q %q", r.Text("b"), r.Text("c"))
	}
	if got := r.GoString(); got != "{a=x b=2 c=<nil>}" {
		t.Errorf("GoString() = %q", got)
	}
}

func TestEqual(t *testing.T) {
	now := time.Now()
	tests := []struct {
		a, b any
		want bool
	}{
		{int64(3), 3, true},
		{3, 3.0, true},
		{uint8(2), int32(2), true},
		{3, "3", false},
		{"a", "a", true},
		{nil, nil, true},
		{nil, 0, false},
		{true, true, true},
		{[]any{1, "x"}, []any{int64(1), "x"}, true},
		{[]any{1}, []any{1, 2}, false},
		{map[string]any{"a": 1}, map[string]any{"a": 1.0}, true},
		{map[string]any{"a": 1}, map[string]any{"b": 1}, false},
		{now, now.UTC(), true},
		{[]string{"x"}, []string{"x"}, false},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%#v, %#v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		a, b any
		want int
	}{
		{1, 2, -1},
		{int64(5), 2.5, 1},
		{"b", "a", 1},
		{"a", "a", 0},
		{false, true, -1},
		{nil, 1, -1},
		{1, "a", -1},
		{early, early.Add(time.Hour), -1},
		{"z", early, -1},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
