package watch

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/dshills/collections/internal/collection"
	"github.com/dshills/collections/internal/event"
	"github.com/dshills/collections/internal/record"
)

func rec(isbn, title string, year int) *record.Record {
	return record.New(map[string]any{"isbn": isbn, "title": title, "year": year})
}

func titles(s *collection.Sorted[*record.Record]) []string {
	return collection.Pluck[*record.Record](s, func(r *record.Record) string { return r.Text("title") })
}

func TestSync(t *testing.T) {
	hamlet := rec("1", "Hamlet", 1603)
	tempest := rec("2", "The Tempest", 1611)
	dubliners := rec("3", "Dubliners", 1914)
	sorted := collection.NewSorted([]*record.Record{dubliners, tempest, hamlet}, record.ByField("year"))

	var topics []string
	sorted.Events().OnFunc("add remove replace", func(env *event.Envelope) error {
		topics = append(topics, env.Topic.String())
		return nil
	})

	next := []*record.Record{
		rec("1", "Hamlet", 1603),
		rec("3", "Dubliners (revised)", 1914),
		rec("4", "Ulysses", 1922),
	}
	res, err := Sync(sorted, next, "isbn")
	if err != nil {
		t.Fatalf("Sync() failed: %v", err)
	}

	want := Result{Added: 1, Removed: 1, Replaced: 1, Kept: 1}
	if res != want {
		t.Errorf("Result = %+v, want %+v", res, want)
	}
	if got := titles(sorted); !slices.Equal(got, []string{"Hamlet", "Dubliners (revised)", "Ulysses"}) {
		t.Errorf("titles = %v", got)
	}
	if strings.Join(topics, ",") != "remove,replace,add" {
		t.Errorf("events = %v", topics)
	}
	if first, _ := sorted.First(); first != hamlet {
		t.Error("unchanged record was not kept by identity")
	}

	res, err = Sync(sorted, next, "isbn")
	if err != nil || res.Changed() {
		t.Errorf("second Sync() = %+v, %v; want no changes", res, err)
	}
}

func TestSync_NoKey(t *testing.T) {
	a, b := rec("1", "A", 1), rec("2", "B", 2)
	set := collection.NewSet([]*record.Record{a, b})

	res, err := Sync(set, []*record.Record{rec("2", "B", 2), rec("1", "A", 10)}, "")
	if err != nil {
		t.Fatalf("Sync() failed: %v", err)
	}
	if res.Kept != 1 || res.Removed != 1 || res.Added != 1 || res.Replaced != 0 {
		t.Errorf("Result = %+v", res)
	}
	if !set.Contains(b) || set.Contains(a) || set.Len() != 2 {
		t.Errorf("items = %v", set.ToSlice())
	}
}

func TestSync_DuplicateKeys(t *testing.T) {
	set := collection.NewSet[*record.Record](nil)

	res, err := Sync(set, []*record.Record{rec("1", "A", 1), rec("1", "A again", 1)}, "isbn")
	if err != nil {
		t.Fatalf("Sync() failed: %v", err)
	}
	if res.Added != 2 || set.Len() != 2 {
		t.Errorf("Result = %+v, Len() = %d", res, set.Len())
	}
}

func TestSync_HandlerError(t *testing.T) {
	set := collection.NewSet([]*record.Record{rec("1", "A", 1)})
	boom := errors.New("boom")
	set.Events().OnFunc("remove", func(*event.Envelope) error { return boom })

	res, err := Sync(set, []*record.Record{rec("2", "B", 2)}, "isbn")
	if !errors.Is(err, boom) {
		t.Fatalf("Sync() = %v, want boom", err)
	}
	if res.Added != 0 {
		t.Errorf("Sync continued after failure: %+v", res)
	}
}
