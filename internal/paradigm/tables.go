package paradigm

// Builtin base paradigms, relation seeds, and hybrid recipes. Authored data:
// content packs may extend or override these per universe via the content
// loader, but the seed set below ships with the engine.

// relationSeed is one authored row of the builtin relation table.
type relationSeed struct {
	A, B          string
	Relationship  Relationship
	PowerModifier float64
}

var builtinRelations = []relationSeed{
	// Hard incompatibilities.
	{"divine", "pact", RelExclusive, 0.50},
	{"blood", "divine", RelExclusive, 0.50},
	{"anti", "academic", RelExclusive, 0.40},

	// Synergies.
	{"academic", "names", RelSynergistic, 1.25},
	{"names", "breath", RelSynergistic, 1.30},
	{"academic", "rune", RelSynergistic, 1.20},
	{"blood", "pact", RelSynergistic, 1.15},
	{"breath", "wild", RelSynergistic, 1.10},

	// Tense but workable pairings.
	{"blood", "wild", RelParasitic, 0.80},
	{"pact", "wild", RelParasitic, 0.85},

	// Known-neutral pairs, listed so authors see them as deliberate.
	{"academic", "divine", RelCoexistent, 1.0},
	{"rune", "breath", RelCoexistent, 1.0},
}

// Builtin returns a fresh copy of the base paradigm set keyed by id.
func Builtin() map[string]Paradigm {
	out := make(map[string]Paradigm, len(builtinParadigms))
	for _, p := range builtinParadigms {
		out[p.ID] = p
	}
	return out
}

// DefaultHybrids returns a fresh copy of the builtin hybrid registry.
func DefaultHybrids() Registry {
	out := make(Registry, len(builtinHybrids))
	for _, h := range builtinHybrids {
		out[h.ID] = h
	}
	return out
}

var builtinHybrids = []Hybrid{
	{
		ID:              "theurgy",
		Name:            "Theurgy",
		SourceParadigms: []string{"academic", "divine"},
		EmergentProperties: []string{
			"codified_miracles",
			"ritual_liturgy",
			"doctrine_scaling",
		},
		Stability: HybridStable,
	},
	{
		ID:              "hemomancy",
		Name:            "Hemomancy",
		SourceParadigms: []string{"blood", "pact"},
		EmergentProperties: []string{
			"debt_written_in_blood",
			"vitality_collateral",
		},
		Stability: HybridVolatile,
	},
	{
		ID:              "namebreath",
		Name:            "Namebreath",
		SourceParadigms: []string{"names", "breath"},
		EmergentProperties: []string{
			"spoken_true_names",
			"living_word",
		},
		Stability: HybridStable,
	},
	{
		ID:              "wildblood",
		Name:            "Wildblood",
		SourceParadigms: []string{"blood", "wild"},
		EmergentProperties: []string{
			"feral_vigor",
			"unbound_regeneration",
		},
		Stability: HybridUnstable,
	},
}

var builtinParadigms = []Paradigm{
	{
		ID:          "academic",
		Name:        "Academic Magic",
		Description: "Formal study of magical formulae; power through rigor and citation.",
		Sources: []Source{
			{ID: "ambient_mana", Name: "Ambient Mana", Description: "Free mana drawn from the environment"},
		},
		Costs: []Cost{
			{Resource: "mana", Description: "Formulae consume prepared mana", Recoverable: true},
			{Resource: "stamina", Description: "Long rituals exhaust the caster", Recoverable: true},
		},
		Channels: []Channel{
			{Name: "verbal", Requirement: "recite the formula", CanBeMastered: true, BlockEffect: BlockPreventsCasting},
			{Name: "somatic", Requirement: "trace sigils", CanBeMastered: true, BlockEffect: BlockWeakensEffect},
		},
		Laws: []Law{
			{ID: "conservation_law", Name: "Conservation Law", Strictness: 0.9, CanBeCircumvented: true,
				CircumventionNotes: "borrowing against future mana is possible but frowned upon"},
		},
		Risks: []string{"miscast_backlash", "academic_probation"},
		AcquisitionMethods: []Acquisition{
			{Method: "study", Rarity: "common", Voluntary: true, GrantsAccess: true, StartingProficiency: 5},
			{Method: "apprenticeship", Rarity: "uncommon", Voluntary: true, GrantsAccess: true, StartingProficiency: 15},
		},
		Scaling:               ScalingLinear,
		AllowsGroupCasting:    true,
		AllowsEnchantment:     true,
		Teachable:             true,
		SupportsScrolls:       true,
		ToleratesForeignMagic: true,
	},
	{
		ID:          "divine",
		Name:        "Divine Magic",
		Description: "Power granted by a deity, metered by faith and doctrine.",
		Sources: []Source{
			{ID: "deity_grant", Name: "Deity Grant", Description: "Power flows from the patron deity"},
		},
		Costs: []Cost{
			{Resource: "favor", Description: "Miracles spend accumulated favor", Recoverable: true},
		},
		Channels: []Channel{
			{Name: "verbal", Requirement: "spoken prayer", CanBeMastered: false, BlockEffect: BlockPreventsCasting},
			{Name: "focus", Requirement: "holy symbol in hand", CanBeMastered: true, BlockEffect: BlockWeakensEffect},
		},
		Laws: []Law{
			{ID: "doctrine_law", Name: "Doctrine Law", Strictness: 1.0, CanBeCircumvented: false},
		},
		Risks: []string{"loss_of_favor", "divine_censure"},
		AcquisitionMethods: []Acquisition{
			{Method: "ordination", Rarity: "uncommon", Voluntary: true, GrantsAccess: true, StartingProficiency: 10},
			{Method: "divine_calling", Rarity: "rare", Voluntary: false, GrantsAccess: true, StartingProficiency: 25},
		},
		Scaling:            ScalingPlateau,
		AllowsGroupCasting: true,
		Teachable:          false,
		PersistsAfterDeath: true,
	},
	{
		ID:          "pact",
		Name:        "Pact Magic",
		Description: "Borrowed power under contract with an otherworldly patron.",
		Sources: []Source{
			{ID: "patron_loan", Name: "Patron Loan", Description: "Power advanced against future service"},
		},
		Costs: []Cost{
			{Resource: "mana", Description: "Invocations draw on the loan", Recoverable: true},
			{Resource: "obligation", Description: "Every major working deepens the debt", Recoverable: false},
		},
		Channels: []Channel{
			{Name: "verbal", Requirement: "speak the patron's styled name", CanBeMastered: false, BlockEffect: BlockPreventsCasting},
		},
		Laws: []Law{
			{ID: "contract_law", Name: "Contract Law", Strictness: 0.95, CanBeCircumvented: true,
				CircumventionNotes: "loopholes exist; patrons write better contracts every century"},
		},
		Risks: []string{"debt_default", "patron_attention", "soul_forfeit"},
		AcquisitionMethods: []Acquisition{
			{Method: "bargain", Rarity: "uncommon", Voluntary: true, GrantsAccess: true, StartingProficiency: 20},
			{Method: "inherited_pact", Rarity: "rare", Voluntary: false, GrantsAccess: true, StartingProficiency: 10},
		},
		Scaling:           ScalingThreshold,
		AllowsEnchantment: true,
		Teachable:         false,
	},
	{
		ID:          "blood",
		Name:        "Blood Magic",
		Description: "Life itself as fuel; the cheapest power and the dearest price.",
		Sources: []Source{
			{ID: "lifeforce", Name: "Lifeforce", Description: "The caster's own vitality, or a donor's"},
		},
		Costs: []Cost{
			{Resource: "lifeforce", Description: "Spells consume hit points directly", Recoverable: false},
		},
		Channels: []Channel{
			{Name: "somatic", Requirement: "open a wound", CanBeMastered: false, BlockEffect: BlockPreventsCasting},
		},
		Laws: []Law{
			{ID: "equivalence_law", Name: "Equivalence Law", Strictness: 1.0, CanBeCircumvented: false},
		},
		Risks: []string{"exsanguination", "addiction", "corruption"},
		AcquisitionMethods: []Acquisition{
			{Method: "desperation", Rarity: "common", Voluntary: true, GrantsAccess: true, StartingProficiency: 5},
			{Method: "forbidden_tutelage", Rarity: "rare", Voluntary: true, GrantsAccess: true, StartingProficiency: 30},
		},
		Scaling: ScalingExponential,
	},
	{
		ID:          "names",
		Name:        "Name Magic",
		Description: "Command over a thing by knowledge of its true name.",
		Sources: []Source{
			{ID: "true_names", Name: "True Names", Description: "Authority encoded in a thing's real name"},
		},
		Costs: []Cost{
			{Resource: "mana", Description: "Speaking a true name strains the voice and the mind", Recoverable: true},
		},
		Channels: []Channel{
			{Name: "verbal", Requirement: "pronounce the true name exactly", CanBeMastered: true, BlockEffect: BlockBackfires},
		},
		Laws: []Law{
			{ID: "identity_law", Name: "Identity Law", Strictness: 0.85, CanBeCircumvented: true,
				CircumventionNotes: "nicknames and partial names give partial purchase"},
		},
		Risks: []string{"own_name_exposure", "mispronunciation_backfire"},
		AcquisitionMethods: []Acquisition{
			{Method: "revelation", Rarity: "rare", Voluntary: false, GrantsAccess: true, StartingProficiency: 15},
			{Method: "onomastic_study", Rarity: "uncommon", Voluntary: true, GrantsAccess: true, StartingProficiency: 10},
		},
		Scaling:   ScalingLinear,
		Teachable: true,
	},
	{
		ID:          "breath",
		Name:        "Breath Magic",
		Description: "Magic carried on the living breath; songs, sighs, and final words.",
		Sources: []Source{
			{ID: "vital_breath", Name: "Vital Breath", Description: "The rhythm of the caster's own breathing"},
		},
		Costs: []Cost{
			{Resource: "breath", Description: "Workings are held on a single breath", Recoverable: true},
		},
		Channels: []Channel{
			{Name: "verbal", Requirement: "sustained controlled exhalation", CanBeMastered: true, BlockEffect: BlockPreventsCasting},
		},
		Laws: []Law{
			{ID: "rhythm_law", Name: "Rhythm Law", Strictness: 0.7, CanBeCircumvented: true,
				CircumventionNotes: "circular breathing techniques stretch the limit"},
		},
		Risks: []string{"asphyxiation", "voice_loss"},
		AcquisitionMethods: []Acquisition{
			{Method: "breathing_discipline", Rarity: "common", Voluntary: true, GrantsAccess: true, StartingProficiency: 5},
		},
		Scaling:            ScalingPlateau,
		AllowsGroupCasting: true,
		Teachable:          true,
	},
	{
		ID:          "rune",
		Name:        "Rune Magic",
		Description: "Power fixed into carved or drawn symbols; slow, durable, literal.",
		Sources: []Source{
			{ID: "inscribed_pattern", Name: "Inscribed Pattern", Description: "Mana bound into a physical inscription"},
		},
		Costs: []Cost{
			{Resource: "mana", Description: "Inscription charges the rune up front", Recoverable: true},
			{Resource: "materials", Description: "Quality media improve retention", Recoverable: false},
		},
		Channels: []Channel{
			{Name: "somatic", Requirement: "steady hand to inscribe", CanBeMastered: true, BlockEffect: BlockPreventsCasting},
		},
		Laws: []Law{
			{ID: "permanence_law", Name: "Permanence Law", Strictness: 0.8, CanBeCircumvented: true,
				CircumventionNotes: "erasable media trade durability for flexibility"},
		},
		Risks: []string{"rune_fracture", "uncontrolled_discharge"},
		AcquisitionMethods: []Acquisition{
			{Method: "craft_tradition", Rarity: "uncommon", Voluntary: true, GrantsAccess: true, StartingProficiency: 10},
		},
		Scaling:            ScalingLinear,
		AllowsEnchantment:  true,
		Teachable:          true,
		SupportsScrolls:    true,
		PersistsAfterDeath: true,
	},
	{
		ID:          "anti",
		Name:        "Anti-Magic",
		Description: "The discipline of unmaking magic; anathema to formal casting.",
		Sources: []Source{
			{ID: "null_field", Name: "Null Field", Description: "A cultivated absence where magic fails"},
		},
		Costs: []Cost{
			{Resource: "stamina", Description: "Holding the null is physically draining", Recoverable: true},
		},
		Channels: []Channel{
			{Name: "somatic", Requirement: "grounding stance", CanBeMastered: true, BlockEffect: BlockWeakensEffect},
		},
		Laws: []Law{
			{ID: "negation_law", Name: "Negation Law", Strictness: 0.9, CanBeCircumvented: false},
		},
		Risks: []string{"self_nullification", "magical_pariah_status"},
		AcquisitionMethods: []Acquisition{
			{Method: "ascetic_training", Rarity: "rare", Voluntary: true, GrantsAccess: true, StartingProficiency: 10},
		},
		Scaling: ScalingPlateau,
	},
	{
		ID:          "wild",
		Name:        "Wild Magic",
		Description: "Untamed ambient magic that answers mood, season, and chance.",
		Sources: []Source{
			{ID: "wild_currents", Name: "Wild Currents", Description: "Raw ley flow, unfiltered"},
		},
		Costs: []Cost{
			{Resource: "mana", Description: "Cheap to draw, expensive to aim", Recoverable: true},
		},
		Channels: []Channel{
			{Name: "instinct", Requirement: "emotional openness", CanBeMastered: false, BlockEffect: BlockBackfires},
		},
		Laws: []Law{
			{ID: "caprice_law", Name: "Caprice Law", Strictness: 0.4, CanBeCircumvented: true,
				CircumventionNotes: "rituals of appeasement steady the current for a time"},
		},
		Risks: []string{"wild_surge", "attunement_drift"},
		AcquisitionMethods: []Acquisition{
			{Method: "wild_exposure", Rarity: "uncommon", Voluntary: false, GrantsAccess: true, StartingProficiency: 20},
		},
		Scaling:               ScalingExponential,
		ToleratesForeignMagic: true,
	},
}
