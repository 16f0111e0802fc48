package suggest

import (
	"reflect"
	"testing"
)

func testCatalog() *Catalog {
	return NewCatalog(CatalogData{
		ContextSuggestions: []ContextEntry{
			{Key: "Debug", Values: []string{"Log", "LogWarning", "LogError", "DrawLine"}},
			{Key: "transform", Values: []string{"position", "Rotate", "rotation", "parent"}},
		},
		DefaultSuggestions: []string{"Alpha", "beta", "Alphabet", "Debug", "transform"},
	})
}

func TestResolve(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		key  string
		word string
		want []string
	}{
		{"default list keeps order and ignores case", "", "al", []string{"Alpha", "Alphabet"}},
		{"default list upper-case prefix", "", "AL", []string{"Alpha", "Alphabet"}},
		{"context list", "debug", "log", []string{"Log", "LogWarning", "LogError"}},
		{"context key is case-insensitive", "DEBUG", "d", []string{"DrawLine"}},
		{"context list mixed case entries", "transform", "ro", []string{"Rotate", "rotation"}},
		{"unknown key falls back to defaults", "nothere", "be", []string{"beta"}},
		{"empty word returns whole list", "transform", "", []string{"position", "Rotate", "rotation", "parent"}},
		{"no match is empty, not nil", "", "zzz", []string{}},
		{"known key never falls back", "debug", "alpha", []string{}},
		{"exact word still matches", "", "beta", []string{"beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Resolve(tt.key, tt.word)
			if got == nil {
				t.Fatalf("Resolve(%q, %q) returned nil", tt.key, tt.word)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%q, %q) = %v, want %v", tt.key, tt.word, got, tt.want)
			}
		})
	}
}

func TestResolveDuplicatesAndCaseVariants(t *testing.T) {
	catalog := NewCatalog(CatalogData{
		DefaultSuggestions: []string{"print", "Print", "printf", "print", ""},
	})
	want := []string{"print", "Print", "printf", "print"}
	if got := catalog.Resolve("", "pr"); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolveDoesNotAliasCatalog(t *testing.T) {
	catalog := testCatalog()
	got := catalog.Resolve("", "")
	got[0] = "mutated"
	if again := catalog.Resolve("", "al"); again[0] != "Alpha" {
		t.Errorf("catalog was mutated through a result slice: %v", again)
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	defaults := []string{"one", "two"}
	catalog := NewCatalog(CatalogData{DefaultSuggestions: defaults})
	defaults[0] = "changed"
	if got := catalog.Resolve("", "o"); !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("Resolve after caller mutation = %v, want [one]", got)
	}
}

func TestDuplicateContextKeyKeepsLast(t *testing.T) {
	catalog := NewCatalog(CatalogData{
		ContextSuggestions: []ContextEntry{
			{Key: "input", Values: []string{"GetKey"}},
			{Key: "Input", Values: []string{"GetAxis"}},
			{Key: "", Values: []string{"ignored"}},
		},
	})
	if got := catalog.Resolve("input", "get"); !reflect.DeepEqual(got, []string{"GetAxis"}) {
		t.Errorf("Resolve = %v, want [GetAxis]", got)
	}
	if keys := catalog.ContextKeys(); !reflect.DeepEqual(keys, []string{"input"}) {
		t.Errorf("ContextKeys = %v, want [input]", keys)
	}
}

func TestEmptyAndNilCatalog(t *testing.T) {
	var nilCatalog *Catalog
	for _, c := range []*Catalog{EmptyCatalog(), nilCatalog} {
		if got := c.Resolve("debug", "l"); len(got) != 0 {
			t.Errorf("Resolve on empty catalog = %v, want empty", got)
		}
		if c.HasContext("debug") {
			t.Error("empty catalog should have no contexts")
		}
		if c.Stats()["defaultCandidates"] != 0 {
			t.Error("empty catalog should report no candidates")
		}
	}
}

func TestStats(t *testing.T) {
	stats := testCatalog().Stats()
	if stats["contexts"] != 2 || stats["contextCandidates"] != 8 || stats["defaultCandidates"] != 5 {
		t.Errorf("Stats = %v", stats)
	}
}

func TestShouldDisplay(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		word       string
		want       bool
	}{
		{"single exact match is suppressed", []string{"Foo"}, "Foo", false},
		{"single exact match ignoring case", []string{"Foo"}, "foo", false},
		{"more than one candidate", []string{"Foo", "Food"}, "Foo", true},
		{"no candidates", []string{}, "x", false},
		{"nil candidates", nil, "x", false},
		{"empty word", []string{"Foo"}, "", false},
		{"single partial match", []string{"Food"}, "Fo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldDisplay(tt.candidates, tt.word); got != tt.want {
				t.Errorf("ShouldDisplay(%v, %q) = %v, want %v", tt.candidates, tt.word, got, tt.want)
			}
		})
	}
}
