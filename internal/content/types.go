package content

// Raw content-pack schema loaded from YAML. Mirrors the authored files;
// normalization into rule types happens in Build.
type RawPack struct {
	Version       string            `yaml:"version"`
	Universe      *RawUniverse      `yaml:"universe,omitempty"`
	Paradigms     []RawParadigm     `yaml:"paradigms,omitempty"`
	Relationships []RawRelationship `yaml:"relationships,omitempty"`
	Hybrids       []RawHybrid       `yaml:"hybrids,omitempty"`
	Notes         string            `yaml:"notes,omitempty"`
}

type RawUniverse struct {
	AllowsMultiClass *bool `yaml:"allows_multi_class,omitempty"`
	MaxParadigms     *int  `yaml:"max_paradigms,omitempty"`
}

type RawParadigm struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	Sources            []RawSource      `yaml:"sources,omitempty"`
	Costs              []RawCost        `yaml:"costs,omitempty"`
	Channels           []RawChannel     `yaml:"channels,omitempty"`
	Laws               []RawLaw         `yaml:"laws,omitempty"`
	Risks              []string         `yaml:"risks,omitempty"`
	AcquisitionMethods []RawAcquisition `yaml:"acquisition_methods,omitempty"`

	Scaling string `yaml:"scaling,omitempty"`

	AllowsGroupCasting    bool `yaml:"allows_group_casting,omitempty"`
	AllowsEnchantment     bool `yaml:"allows_enchantment,omitempty"`
	PersistsAfterDeath    bool `yaml:"persists_after_death,omitempty"`
	Teachable             bool `yaml:"teachable,omitempty"`
	SupportsScrolls       bool `yaml:"supports_scrolls,omitempty"`
	ToleratesForeignMagic bool `yaml:"tolerates_foreign_magic,omitempty"`
}

type RawSource struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type RawCost struct {
	Resource    string `yaml:"resource"`
	Description string `yaml:"description,omitempty"`
	Recoverable bool   `yaml:"recoverable,omitempty"`
}

type RawChannel struct {
	Name          string `yaml:"name"`
	Requirement   string `yaml:"requirement,omitempty"`
	CanBeMastered bool   `yaml:"can_be_mastered,omitempty"`
	BlockEffect   string `yaml:"block_effect,omitempty"`
}

type RawLaw struct {
	ID                 string  `yaml:"id"`
	Name               string  `yaml:"name"`
	Strictness         float64 `yaml:"strictness"`
	CanBeCircumvented  bool    `yaml:"can_be_circumvented,omitempty"`
	CircumventionNotes string  `yaml:"circumvention_notes,omitempty"`
}

type RawAcquisition struct {
	Method              string  `yaml:"method"`
	Rarity              string  `yaml:"rarity,omitempty"`
	Voluntary           bool    `yaml:"voluntary,omitempty"`
	GrantsAccess        bool    `yaml:"grants_access,omitempty"`
	StartingProficiency float64 `yaml:"starting_proficiency,omitempty"`
}

type RawRelationship struct {
	A             string   `yaml:"a"`
	B             string   `yaml:"b"`
	Relationship  string   `yaml:"relationship"`
	PowerModifier *float64 `yaml:"power_modifier,omitempty"` // nil -> 1.0
}

type RawHybrid struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	SourceParadigms    []string `yaml:"source_paradigms"`
	EmergentProperties []string `yaml:"emergent_properties"`
	Stability          string   `yaml:"stability"`
}
