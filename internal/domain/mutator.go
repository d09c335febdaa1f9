package domain

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

// Mutator produces variants of an input sentence. Empty results signal that
// the sentence could not be mutated as configured.
type Mutator interface {
	Mutate(sentence string, seed int64) ([]string, error)
	Config() m.MutatorConfig
}

// NewMutator validates config and returns the matching mutator.
func NewMutator(config m.MutatorConfig, variantModel *WordVariantModel) (Mutator, error) {
	if config.NumReplacements < 0 || config.NumDropouts < 0 || config.NumVariants < 0 {
		return nil, fmt.Errorf("%w: counts must not be negative", ErrConfiguration)
	}

	switch config.Kind {
	case m.MutatorReplacement:
		strategy, err := ParseStrategy(string(config.Strategy))
		if err != nil {
			return nil, err
		}

		config.Strategy = strategy

		return &ReplacementMutator{config: config, variantModel: variantModel}, nil
	case m.MutatorDropout:
		return &DropoutMutator{config: config, variantModel: variantModel}, nil
	}

	return nil, fmt.Errorf("%w: unknown mutator kind %q", ErrConfiguration, config.Kind)
}

// ReplacementMutator swaps nontrivial words for synonyms and hypernyms.
type ReplacementMutator struct {
	config       m.MutatorConfig
	variantModel *WordVariantModel
}

// Config implements Mutator.
func (rm *ReplacementMutator) Config() m.MutatorConfig {
	return rm.config
}

// Mutate implements Mutator. Randomness comes from a generator local to the
// call, seeded with seed.
func (rm *ReplacementMutator) Mutate(sentence string, seed int64) ([]string, error) {
	words, err := rm.variantModel.Preprocess(sentence)
	if err != nil {
		return nil, err
	}

	rng := newRand(seed)

	sets, err := selectMutations(rm.config.Strategy, nontrivialWords(words), rm.config.NumReplacements, rm.config.NumVariants, rng, rm.config.AssureVariants)
	if err != nil {
		return nil, err
	}

	variants := make([]string, 0, len(sets))
	for _, set := range sets {
		variants = append(variants, RenderMutations(words, set))
	}

	slog.Debug("Replacement variants", "sentence", sentence, "strategy", rm.config.Strategy, "variants", len(variants))

	return variants, nil
}

// DropoutMutator removes non-stopword values from the sentence.
type DropoutMutator struct {
	config       m.MutatorConfig
	variantModel *WordVariantModel
}

// Config implements Mutator.
func (dm *DropoutMutator) Config() m.MutatorConfig {
	return dm.config
}

// Mutate implements Mutator. The enumeration is deterministic, so seed has no
// effect on the result.
func (dm *DropoutMutator) Mutate(sentence string, _ int64) ([]string, error) {
	words, err := dm.variantModel.Annotate(sentence)
	if err != nil {
		return nil, err
	}

	variants := GenerateDropouts(words, dm.config.NumDropouts, dm.config.NumVariants, dm.config.AssureVariants)

	slog.Debug("Dropout variants", "sentence", sentence, "variants", len(variants))

	return variants, nil
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
