// Package paradigm models magic-system rulesets and the compatibility rules
// between them: pairwise relationships, multi-paradigm power blending,
// stability checks, and hybrid derivation.
package paradigm

// ScalingMode describes how a paradigm's effects grow with proficiency.
type ScalingMode string

const (
	ScalingLinear      ScalingMode = "linear"
	ScalingExponential ScalingMode = "exponential"
	ScalingPlateau     ScalingMode = "plateau"
	ScalingThreshold   ScalingMode = "threshold"
)

// BlockEffect is what happens when a casting channel is denied.
type BlockEffect string

const (
	BlockPreventsCasting BlockEffect = "prevents_casting"
	BlockWeakensEffect   BlockEffect = "weakens_effect"
	BlockBackfires       BlockEffect = "backfires"
)

// Source is where a paradigm draws power from.
type Source struct {
	ID          string
	Name        string
	Description string
}

// Cost is what casting spends.
type Cost struct {
	Resource    string // pool type or abstract cost, e.g. "mana", "lifespan"
	Description string
	Recoverable bool
}

// Channel is a casting-requirement modality (verbal, somatic, ...).
type Channel struct {
	Name          string
	Requirement   string
	CanBeMastered bool // mastery removes the requirement
	BlockEffect   BlockEffect
}

// Law is a constraint the paradigm's magic obeys.
type Law struct {
	ID                 string
	Name               string
	Strictness         float64 // [0,1], 1 = absolute
	CanBeCircumvented  bool
	CircumventionNotes string
}

// Acquisition is one way a practitioner gains the paradigm.
type Acquisition struct {
	Method              string
	Rarity              string // common | uncommon | rare | unique
	Voluntary           bool
	GrantsAccess        bool
	StartingProficiency float64 // 0..100
}

// Paradigm is a complete magic-system ruleset. Authored at content-definition
// time, validated once at load, read-only afterwards.
type Paradigm struct {
	ID          string
	Name        string
	Description string

	Sources            []Source
	Costs              []Cost
	Channels           []Channel
	Laws               []Law
	Risks              []string
	AcquisitionMethods []Acquisition

	Scaling ScalingMode

	// Policy flags.
	AllowsGroupCasting    bool
	AllowsEnchantment     bool
	PersistsAfterDeath    bool
	Teachable             bool
	SupportsScrolls       bool
	ToleratesForeignMagic bool
}

// Universe carries per-universe combination policy. The count limit only
// applies when AllowsMultiClass is set.
type Universe struct {
	AllowsMultiClass bool
	MaxParadigms     int
}
