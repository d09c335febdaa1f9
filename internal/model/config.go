package model

// MutatorKind selects the way variants are produced.
type MutatorKind string

const (
	// MutatorReplacement swaps words for synonyms and hypernyms.
	MutatorReplacement MutatorKind = "replacement"
	// MutatorDropout removes words.
	MutatorDropout MutatorKind = "dropout"
)

// Strategy names a replacement selection strategy.
type Strategy string

const (
	// StrategyRandom picks words and variants uniformly.
	StrategyRandom Strategy = "random"
	// StrategyMostCommonFirst prefers the variants suggested by the most senses.
	StrategyMostCommonFirst Strategy = "most_common_first"
)

// MutatorConfig is the configuration surface shared by both mutators.
// NumReplacements is used by replacement, NumDropouts by dropout.
type MutatorConfig struct {
	Kind            MutatorKind `yaml:"kind"`
	NumReplacements int         `yaml:"replacements"`
	NumDropouts     int         `yaml:"dropouts"`
	NumVariants     int         `yaml:"variants"`
	Strategy        Strategy    `yaml:"strategy,omitempty"`
	RandomSeed      int64       `yaml:"seed"`
	AssureVariants  bool        `yaml:"assure_variants"`
}

// DefaultReplacementConfig mirrors the defaults of the replacement mutator.
func DefaultReplacementConfig() MutatorConfig {
	return MutatorConfig{
		Kind:            MutatorReplacement,
		NumReplacements: 1,
		NumVariants:     5,
		Strategy:        StrategyRandom,
		RandomSeed:      13,
	}
}

// DefaultDropoutConfig mirrors the defaults of the dropout mutator.
func DefaultDropoutConfig() MutatorConfig {
	return MutatorConfig{
		Kind:        MutatorDropout,
		NumDropouts: 1,
		NumVariants: 1,
		RandomSeed:  13,
	}
}
