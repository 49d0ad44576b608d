package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fl(v float64) *float64 { return &v }

func TestValidateRawCatchesBadEnumAndModifier(t *testing.T) {
	pack := RawPack{
		Relationships: []RawRelationship{
			{A: "academic", B: "wild", Relationship: "friendly"},
			{A: "academic", B: "rune", Relationship: "synergistic", PowerModifier: fl(-2)},
			{A: "rune", B: "rune", Relationship: "coexistent"},
		},
	}
	err := ValidateRaw(pack)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `relationships[0].relationship "friendly"`)
	assert.Contains(t, err.Error(), "relationships[1].power_modifier")
	assert.Contains(t, err.Error(), `pairs "rune" with itself`)
}

func TestValidateRawHybridConstraints(t *testing.T) {
	pack := RawPack{
		Hybrids: []RawHybrid{
			{ID: "lonely", Name: "Lonely", SourceParadigms: []string{"academic"},
				EmergentProperties: []string{"x"}, Stability: "stable"},
			{ID: "bland", Name: "Bland", SourceParadigms: []string{"academic", "rune"},
				Stability: "wobbly"},
		},
	}
	err := ValidateRaw(pack)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hybrids[0] needs at least 2 source_paradigms")
	assert.Contains(t, err.Error(), "hybrids[1].emergent_properties must be non-empty")
	assert.Contains(t, err.Error(), `stability "wobbly"`)
}

func TestCheckRefsUnknownParadigm(t *testing.T) {
	pack := RawPack{
		Relationships: []RawRelationship{
			{A: "academic", B: "chronomancy", Relationship: "exclusive", PowerModifier: fl(0.5)},
		},
		Hybrids: []RawHybrid{
			{ID: "timeweave", Name: "Timeweave", SourceParadigms: []string{"academic", "chronomancy"},
				EmergentProperties: []string{"borrowed_hours"}, Stability: "unstable"},
		},
	}
	err := CheckRefs(pack)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `references unknown paradigm "chronomancy"`)
}

func TestCheckRefsPackParadigmsResolve(t *testing.T) {
	pack := RawPack{
		Paradigms: []RawParadigm{{ID: "chronomancy", Name: "Chronomancy"}},
		Hybrids: []RawHybrid{
			{ID: "timeweave", Name: "Timeweave", SourceParadigms: []string{"academic", "chronomancy"},
				EmergentProperties: []string{"borrowed_hours"}, Stability: "unstable"},
		},
	}
	assert.NoError(t, CheckRefs(pack))
}
