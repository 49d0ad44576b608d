package paradigm

import "testing"

func TestRelationshipSymmetry(t *testing.T) {
	table := NewTable()
	// every seeded pair, both orders
	for _, seed := range builtinRelations {
		ab := table.Relationship(seed.A, seed.B)
		ba := table.Relationship(seed.B, seed.A)
		if ab != ba {
			t.Fatalf("asymmetric lookup for %s/%s: %+v vs %+v", seed.A, seed.B, ab, ba)
		}
		if ab.Relationship != seed.Relationship || ab.PowerModifier != seed.PowerModifier {
			t.Fatalf("%s/%s = %+v, want %v %v", seed.A, seed.B, ab, seed.Relationship, seed.PowerModifier)
		}
	}
}

func TestRelationshipDefaultIsolation(t *testing.T) {
	table := NewTable()
	rel := table.Relationship("unknown1", "unknown2")
	if rel.Relationship != RelIsolated {
		t.Fatalf("relationship = %v, want isolated", rel.Relationship)
	}
	if rel.PowerModifier != 1.0 {
		t.Fatalf("power modifier = %v, want neutral 1.0", rel.PowerModifier)
	}
}

func TestRelationshipSetEitherOrder(t *testing.T) {
	table := NewEmptyTable()
	table.Set("beta", "alpha", Relation{Relationship: RelSynergistic, PowerModifier: 1.4})
	got := table.Relationship("alpha", "beta")
	if got.Relationship != RelSynergistic || got.PowerModifier != 1.4 {
		t.Fatalf("lookup after reversed Set = %+v", got)
	}
	// a later Set in the other order overwrites, never duplicates
	table.Set("alpha", "beta", Relation{Relationship: RelParasitic, PowerModifier: 0.8})
	if table.Len() != 1 {
		t.Fatalf("table holds %d entries, want 1", table.Len())
	}
	if got := table.Relationship("beta", "alpha"); got.Relationship != RelParasitic {
		t.Fatalf("overwrite lost: %+v", got)
	}
}

func TestBuiltinExclusiveSeeds(t *testing.T) {
	table := NewTable()
	pairs := [][2]string{
		{"divine", "pact"},
		{"blood", "divine"},
		{"anti", "academic"},
	}
	for _, pair := range pairs {
		rel := table.Relationship(pair[0], pair[1])
		if rel.Relationship != RelExclusive {
			t.Fatalf("%s/%s = %v, want exclusive", pair[0], pair[1], rel.Relationship)
		}
		if rel.PowerModifier >= 1.0 {
			t.Fatalf("%s/%s modifier %v must be < 1.0", pair[0], pair[1], rel.PowerModifier)
		}
	}
}
