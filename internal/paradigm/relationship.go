package paradigm

// Relationship classifies how two paradigms interact in one practitioner.
type Relationship string

const (
	RelExclusive   Relationship = "exclusive"   // cannot be practiced together
	RelSynergistic Relationship = "synergistic" // amplify each other
	RelCoexistent  Relationship = "coexistent"  // neither helps nor hinders
	RelParasitic   Relationship = "parasitic"   // one drains the other
	RelIsolated    Relationship = "isolated"    // no interaction at all
)

// Relation is the classification plus its effect on blended power.
// Modifiers below 1.0 penalize a pairing, above 1.0 reward it.
type Relation struct {
	Relationship  Relationship
	PowerModifier float64
}

// Isolation is the neutral default for unlisted pairs.
var Isolation = Relation{Relationship: RelIsolated, PowerModifier: 1.0}

// pairKey is an unordered paradigm pair. Normalizing the order on
// construction makes every lookup symmetric by construction, so (A,B) and
// (B,A) can never disagree.
type pairKey struct {
	lo, hi string
}

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Table is the symmetric relation table for one universe.
type Table struct {
	relations map[pairKey]Relation
}

// NewTable returns a table seeded with the builtin relation set.
func NewTable() *Table {
	t := &Table{relations: make(map[pairKey]Relation, len(builtinRelations))}
	for _, r := range builtinRelations {
		t.Set(r.A, r.B, Relation{Relationship: r.Relationship, PowerModifier: r.PowerModifier})
	}
	return t
}

// NewEmptyTable returns a table with no entries; every lookup resolves to
// Isolation until Set is called.
func NewEmptyTable() *Table {
	return &Table{relations: make(map[pairKey]Relation)}
}

// Set records the relation for a pair, in either argument order.
func (t *Table) Set(a, b string, rel Relation) {
	t.relations[newPairKey(a, b)] = rel
}

// Relationship looks up a pair's relation. Unknown pairs are isolated with a
// neutral modifier, never a penalty or a boost.
func (t *Table) Relationship(a, b string) Relation {
	if rel, ok := t.relations[newPairKey(a, b)]; ok {
		return rel
	}
	return Isolation
}

// Len reports how many pairs the table holds.
func (t *Table) Len() int { return len(t.relations) }
