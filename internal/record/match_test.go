package record

import (
	"slices"
	"testing"

	"github.com/dshills/collections/internal/collection"
)

func library() []*Record {
	return []*Record{
		New(map[string]any{"title": "Hamlet", "author": "Shakespeare", "year": 1603}),
		New(map[string]any{"title": "The Tempest", "author": "Shakespeare", "year": int64(1611)}),
		New(map[string]any{"title": "Dubliners", "author": "Joyce", "year": 1914.0}),
	}
}

func titles(rs []*Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Text("title")
	}
	return out
}

func TestProps_Where(t *testing.T) {
	list := collection.New(library())

	tests := []struct {
		name  string
		props Props
		want  []string
	}{
		{"single", Props{"author": "Joyce"}, []string{"Dubliners"}},
		{"numeric types mix", Props{"author": "Shakespeare", "year": 1611}, []string{"The Tempest"}},
		{"float field", Props{"year": 1914}, []string{"Dubliners"}},
		{"no props", Props{}, []string{"Hamlet", "The Tempest", "Dubliners"}},
		{"missing field", Props{"isbn": "x"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titles(list.Where(tt.props)); !slices.Equal(got, tt.want) {
				t.Errorf("Where() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProps_RemoveWhere(t *testing.T) {
	list := collection.New(library())
	if err := list.RemoveWhere(Props{"author": "Shakespeare"}); err != nil {
		t.Fatalf("RemoveWhere() failed: %v", err)
	}
	if got := titles(list.ToSlice()); !slices.Equal(got, []string{"Dubliners"}) {
		t.Errorf("items = %v", got)
	}
}

func TestByField(t *testing.T) {
	sorted := collection.NewSorted(library(), collection.Reverse(ByField("year")))
	if got := titles(sorted.ToSlice()); !slices.Equal(got, []string{"Dubliners", "The Tempest", "Hamlet"}) {
		t.Errorf("order = %v", got)
	}

	sorted.SetComparator(ByFields("author", "title"))
	if got := titles(sorted.ToSlice()); !slices.Equal(got, []string{"Dubliners", "Hamlet", "The Tempest"}) {
		t.Errorf("order = %v", got)
	}
}

func TestField_Pluck(t *testing.T) {
	list := collection.New(library())
	years := collection.Pluck[*Record](list, Field("year"))
	if len(years) != 3 || !Equal(years[1], 1611) {
		t.Errorf("Pluck() = %v", years)
	}
}
