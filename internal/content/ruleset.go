package content

import (
	"fmt"

	"github.com/annhoward/arcana/internal/paradigm"
)

// Ruleset is a materialized pack: builtin tables layered with pack data,
// ready for the engine to query.
type Ruleset struct {
	Version   string
	Universe  *paradigm.Universe // nil when the pack sets no combination policy
	Paradigms map[string]paradigm.Paradigm
	Relations *paradigm.Table
	Hybrids   paradigm.Registry
}

// Build normalizes a raw pack into a Ruleset. Pack entries layer over the
// builtin seed data: a pack paradigm/relation/hybrid with a known id replaces
// the builtin one. Every materialized paradigm is validated; a pack that
// fails validation never reaches the engine.
func Build(pack RawPack) (*Ruleset, error) {
	if err := ValidateRaw(pack); err != nil {
		return nil, err
	}
	if err := CheckRefs(pack); err != nil {
		return nil, err
	}

	rs := &Ruleset{
		Version:   pack.Version,
		Paradigms: paradigm.Builtin(),
		Relations: paradigm.NewTable(),
		Hybrids:   paradigm.DefaultHybrids(),
	}

	if pack.Universe != nil {
		u := &paradigm.Universe{}
		if pack.Universe.AllowsMultiClass != nil {
			u.AllowsMultiClass = *pack.Universe.AllowsMultiClass
		}
		if pack.Universe.MaxParadigms != nil {
			u.MaxParadigms = *pack.Universe.MaxParadigms
		}
		rs.Universe = u
	}

	for _, rp := range pack.Paradigms {
		p := materializeParadigm(rp)
		if err := paradigm.Validate(p); err != nil {
			return nil, fmt.Errorf("build pack: %w", err)
		}
		rs.Paradigms[p.ID] = p
	}

	for _, rr := range pack.Relationships {
		mod := 1.0
		if rr.PowerModifier != nil {
			mod = *rr.PowerModifier
		}
		rs.Relations.Set(rr.A, rr.B, paradigm.Relation{
			Relationship:  paradigm.Relationship(rr.Relationship),
			PowerModifier: mod,
		})
	}

	for _, rh := range pack.Hybrids {
		rs.Hybrids[rh.ID] = paradigm.Hybrid{
			ID:                 rh.ID,
			Name:               rh.Name,
			SourceParadigms:    append([]string(nil), rh.SourceParadigms...),
			EmergentProperties: append([]string(nil), rh.EmergentProperties...),
			Stability:          paradigm.HybridStability(rh.Stability),
		}
	}

	return rs, nil
}

func materializeParadigm(rp RawParadigm) paradigm.Paradigm {
	p := paradigm.Paradigm{
		ID:                    rp.ID,
		Name:                  rp.Name,
		Description:           rp.Description,
		Risks:                 append([]string(nil), rp.Risks...),
		Scaling:               paradigm.ScalingMode(rp.Scaling),
		AllowsGroupCasting:    rp.AllowsGroupCasting,
		AllowsEnchantment:     rp.AllowsEnchantment,
		PersistsAfterDeath:    rp.PersistsAfterDeath,
		Teachable:             rp.Teachable,
		SupportsScrolls:       rp.SupportsScrolls,
		ToleratesForeignMagic: rp.ToleratesForeignMagic,
	}
	for _, s := range rp.Sources {
		p.Sources = append(p.Sources, paradigm.Source{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	for _, c := range rp.Costs {
		p.Costs = append(p.Costs, paradigm.Cost{Resource: c.Resource, Description: c.Description, Recoverable: c.Recoverable})
	}
	for _, ch := range rp.Channels {
		p.Channels = append(p.Channels, paradigm.Channel{
			Name:          ch.Name,
			Requirement:   ch.Requirement,
			CanBeMastered: ch.CanBeMastered,
			BlockEffect:   paradigm.BlockEffect(ch.BlockEffect),
		})
	}
	for _, l := range rp.Laws {
		p.Laws = append(p.Laws, paradigm.Law{
			ID:                 l.ID,
			Name:               l.Name,
			Strictness:         l.Strictness,
			CanBeCircumvented:  l.CanBeCircumvented,
			CircumventionNotes: l.CircumventionNotes,
		})
	}
	for _, a := range rp.AcquisitionMethods {
		p.AcquisitionMethods = append(p.AcquisitionMethods, paradigm.Acquisition{
			Method:              a.Method,
			Rarity:              a.Rarity,
			Voluntary:           a.Voluntary,
			GrantsAccess:        a.GrantsAccess,
			StartingProficiency: a.StartingProficiency,
		})
	}
	return p
}
