package paradigm

import "testing"

func TestDefaultHybridsRegistryComplete(t *testing.T) {
	reg := DefaultHybrids()
	recipes := map[string][]string{
		"theurgy":    {"academic", "divine"},
		"hemomancy":  {"blood", "pact"},
		"namebreath": {"names", "breath"},
	}
	for id, sources := range recipes {
		h, ok := reg.Get(id)
		if !ok {
			t.Fatalf("registry missing %q", id)
		}
		if len(h.SourceParadigms) != len(sources) {
			t.Fatalf("%s sources = %v, want %v", id, h.SourceParadigms, sources)
		}
		for i, src := range sources {
			if h.SourceParadigms[i] != src {
				t.Fatalf("%s sources = %v, want %v", id, h.SourceParadigms, sources)
			}
		}
		if len(h.EmergentProperties) == 0 {
			t.Fatalf("%s declares no emergent properties", id)
		}
		if h.Stability == "" {
			t.Fatalf("%s declares no stability rating", id)
		}
	}
}

func TestGetNoFuzzyMatching(t *testing.T) {
	reg := DefaultHybrids()
	if _, ok := reg.Get("Theurgy"); ok {
		t.Fatal("lookup must be exact, got a match for wrong case")
	}
	if _, ok := reg.Get("theurg"); ok {
		t.Fatal("lookup must be exact, got a match for a prefix")
	}
}

func TestAvailableMultipleRecipes(t *testing.T) {
	reg := DefaultHybrids()
	got := reg.Available([]string{"academic", "divine", "blood", "names", "breath"})
	if len(got) < 2 {
		t.Fatalf("available = %v, want at least theurgy and namebreath", got)
	}
	byID := map[string]bool{}
	for _, h := range got {
		byID[h.ID] = true
	}
	if !byID["theurgy"] || !byID["namebreath"] {
		t.Fatalf("available = %v, want theurgy and namebreath present", got)
	}
	if byID["hemomancy"] {
		t.Fatal("hemomancy requires pact, which is not active")
	}
}

func TestAvailableSupersetUnlocksSubsetDoesNot(t *testing.T) {
	reg := DefaultHybrids()
	// superset of the theurgy recipe
	got := reg.Available([]string{"academic", "divine", "rune"})
	if len(got) != 1 || got[0].ID != "theurgy" {
		t.Fatalf("available = %v, want exactly theurgy", got)
	}
	// strict subset of the recipe
	if got := reg.Available([]string{"academic"}); len(got) != 0 {
		t.Fatalf("available = %v, want none for a partial recipe", got)
	}
}

func TestAvailableEmptyInput(t *testing.T) {
	reg := DefaultHybrids()
	if got := reg.Available(nil); len(got) != 0 {
		t.Fatalf("available = %v, want empty", got)
	}
}

func TestAvailableDeterministicOrder(t *testing.T) {
	reg := DefaultHybrids()
	active := []string{"academic", "divine", "names", "breath", "blood", "pact", "wild"}
	first := reg.Available(active)
	for i := 0; i < 10; i++ {
		again := reg.Available(active)
		if len(again) != len(first) {
			t.Fatalf("run %d: %v vs %v", i, again, first)
		}
		for j := range again {
			if again[j].ID != first[j].ID {
				t.Fatalf("run %d: order changed: %v vs %v", i, again, first)
			}
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].ID >= first[i].ID {
			t.Fatalf("results not id-sorted: %v", first)
		}
	}
}
