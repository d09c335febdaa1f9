package adapter

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

//go:embed lexicon/english.yaml
var defaultLexicon []byte

const unknownTag = "XX"

// lexiconFile is the on-disk shape of a lexicon shard.
type lexiconFile struct {
	Senses    []senseEntry      `yaml:"senses"`
	Stopwords []string          `yaml:"stopwords"`
	Tags      map[string]string `yaml:"tags"`
}

type senseEntry struct {
	ID        string     `yaml:"id"`
	Pos       m.PosClass `yaml:"pos"`
	Lemmas    []string   `yaml:"lemmas"`
	Hypernyms []string   `yaml:"hypernyms"`
}

// LexiconOption configures a Lexicon before it is initialized.
type LexiconOption func(*lexiconConfig)

type lexiconConfig struct {
	withDefault bool
	files       []string
	data        [][]byte
}

// WithLexiconFiles adds YAML lexicon shards read from disk during Initialize.
func WithLexiconFiles(paths ...string) LexiconOption {
	return func(c *lexiconConfig) {
		c.files = append(c.files, paths...)
	}
}

// WithLexiconData adds in-memory YAML lexicon shards.
func WithLexiconData(data ...[]byte) LexiconOption {
	return func(c *lexiconConfig) {
		c.data = append(c.data, data...)
	}
}

// WithoutDefaultLexicon skips the embedded English lexicon.
func WithoutDefaultLexicon() LexiconOption {
	return func(c *lexiconConfig) {
		c.withDefault = false
	}
}

// Lexicon is a LexicalAnnotator backed by YAML sense inventories. It starts
// Uninitialized and becomes Ready after the first successful Initialize;
// afterwards it is read-only and safe for concurrent use.
type Lexicon struct {
	config lexiconConfig

	once    sync.Once
	initErr error
	ready   atomic.Bool

	senses    []senseEntry
	byID      map[string]int
	byLemma   map[m.PosClass]map[string][]int
	stopwords map[string]struct{}
	tags      map[string]string
}

// NewLexicon constructs an uninitialized Lexicon.
func NewLexicon(options ...LexiconOption) *Lexicon {
	config := lexiconConfig{withDefault: true}
	for _, option := range options {
		option(&config)
	}

	return &Lexicon{
		config:    config,
		stopwords: newStopwordSet(),
	}
}

// Initialize loads every configured shard. Repeated calls return the outcome
// of the first one.
func (l *Lexicon) Initialize(ctx context.Context) error {
	l.once.Do(func() {
		l.initErr = l.load(ctx)
		if l.initErr != nil {
			slog.Error("Failed to initialize lexicon", "error", l.initErr)
			return
		}

		l.ready.Store(true)
		slog.Debug("Lexicon ready", "senses", len(l.senses), "stopwords", len(l.stopwords))
	})

	return l.initErr
}

// Ready reports whether Initialize completed successfully.
func (l *Lexicon) Ready() bool {
	return l.ready.Load()
}

func (l *Lexicon) load(ctx context.Context) error {
	raw := make([][]byte, 0, len(l.config.data)+1)
	if l.config.withDefault {
		raw = append(raw, defaultLexicon)
	}

	raw = append(raw, l.config.data...)

	fromFiles, err := readShards(ctx, l.config.files)
	if err != nil {
		return err
	}

	raw = append(raw, fromFiles...)

	shards := make([]lexiconFile, 0, len(raw))

	for i, data := range raw {
		var shard lexiconFile
		if err := yaml.Unmarshal(data, &shard); err != nil {
			return fmt.Errorf("parse lexicon shard %d: %w", i, err)
		}

		shards = append(shards, shard)
	}

	return l.merge(shards)
}

// readShards reads lexicon files concurrently, keeping declaration order.
func readShards(ctx context.Context, paths []string) ([][]byte, error) {
	contents := make([][]byte, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read lexicon %s: %w", path, err)
			}

			contents[i] = data

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return contents, nil
}

func (l *Lexicon) merge(shards []lexiconFile) error {
	l.byID = map[string]int{}
	l.byLemma = map[m.PosClass]map[string][]int{}
	l.tags = map[string]string{}

	extraStopwords := make([][]string, 0, len(shards))

	for _, shard := range shards {
		for _, sense := range shard.Senses {
			if err := l.addSense(sense); err != nil {
				return err
			}
		}

		for token, tag := range shard.Tags {
			l.tags[strings.ToLower(token)] = tag
		}

		extraStopwords = append(extraStopwords, shard.Stopwords)
	}

	for _, sense := range l.senses {
		for _, hypernym := range sense.Hypernyms {
			if _, ok := l.byID[hypernym]; !ok {
				return fmt.Errorf("sense %q references unknown hypernym %q", sense.ID, hypernym)
			}
		}
	}

	l.stopwords = newStopwordSet(extraStopwords...)

	return nil
}

func (l *Lexicon) addSense(sense senseEntry) error {
	if sense.ID == "" {
		return fmt.Errorf("sense without id: %v", sense.Lemmas)
	}

	if !sense.Pos.Valid() {
		return fmt.Errorf("sense %q has unsupported pos %q", sense.ID, sense.Pos)
	}

	if _, exists := l.byID[sense.ID]; exists {
		return fmt.Errorf("duplicate sense id %q", sense.ID)
	}

	index := len(l.senses)
	l.senses = append(l.senses, sense)
	l.byID[sense.ID] = index

	lemmas := l.byLemma[sense.Pos]
	if lemmas == nil {
		lemmas = map[string][]int{}
		l.byLemma[sense.Pos] = lemmas
	}

	for _, lemma := range sense.Lemmas {
		key := normalizeLemma(lemma)
		lemmas[key] = append(lemmas[key], index)
	}

	return nil
}

// Tokenize implements LexicalAnnotator.
func (l *Lexicon) Tokenize(text string) []string {
	return tokenize(text)
}

// TagPartsOfSpeech implements LexicalAnnotator. Explicit tags win, then the
// class of the first sense listing the token (or one of its base forms).
func (l *Lexicon) TagPartsOfSpeech(tokens []string) ([]m.TaggedToken, error) {
	if !l.Ready() {
		return nil, ErrNotInitialized
	}

	tagged := make([]m.TaggedToken, 0, len(tokens))
	for _, token := range tokens {
		tagged = append(tagged, m.TaggedToken{Token: token, Tag: l.tagFor(token)})
	}

	return tagged, nil
}

func (l *Lexicon) tagFor(token string) string {
	key := normalizeLemma(token)
	if tag, ok := l.tags[key]; ok {
		return tag
	}

	if _, stop := l.stopwords[key]; stop {
		return unknownTag
	}

	best := -1

	var bestPos m.PosClass

	for _, pos := range []m.PosClass{m.PosNoun, m.PosVerb, m.PosAdjective, m.PosAdverb} {
		for _, form := range l.baseForms(key, pos) {
			indexes := l.byLemma[pos][form]
			if len(indexes) > 0 && (best < 0 || indexes[0] < best) {
				best = indexes[0]
				bestPos = pos
			}
		}
	}

	if best < 0 {
		return unknownTag
	}

	return pennTag(bestPos)
}

// LookupSenses implements LexicalAnnotator.
func (l *Lexicon) LookupSenses(word string, pos m.PosClass) ([]m.SenseSet, error) {
	if !l.Ready() {
		return nil, ErrNotInitialized
	}

	seen := map[int]struct{}{}
	result := make([]m.SenseSet, 0)

	for _, form := range l.baseForms(normalizeLemma(word), pos) {
		for _, index := range l.byLemma[pos][form] {
			if _, dup := seen[index]; dup {
				continue
			}

			seen[index] = struct{}{}
			result = append(result, l.senseSet(index, true))
		}
	}

	return result, nil
}

func (l *Lexicon) senseSet(index int, withHypernyms bool) m.SenseSet {
	entry := l.senses[index]
	set := m.SenseSet{
		ID:     entry.ID,
		Pos:    entry.Pos,
		Lemmas: append([]string(nil), entry.Lemmas...),
	}

	if withHypernyms {
		for _, id := range entry.Hypernyms {
			set.Hypernyms = append(set.Hypernyms, l.senseSet(l.byID[id], false))
		}
	}

	return set
}

// IsStopword implements LexicalAnnotator.
func (l *Lexicon) IsStopword(word string) bool {
	_, ok := l.stopwords[normalizeLemma(word)]
	return ok
}

// baseForms returns word followed by every detached form known to the lexicon
// for pos.
func (l *Lexicon) baseForms(word string, pos m.PosClass) []string {
	forms := []string{word}
	lemmas := l.byLemma[pos]

	for _, rule := range detachmentRules[pos] {
		if !strings.HasSuffix(word, rule.suffix) || len(word) <= len(rule.suffix) {
			continue
		}

		base := strings.TrimSuffix(word, rule.suffix) + rule.replacement
		if _, known := lemmas[base]; !known {
			continue
		}

		if !containsString(forms, base) {
			forms = append(forms, base)
		}
	}

	return forms
}

type detachment struct {
	suffix      string
	replacement string
}

// detachmentRules strip regular inflections so "jumps" finds "jump".
var detachmentRules = map[m.PosClass][]detachment{
	m.PosNoun: {
		{"s", ""}, {"ses", "s"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	m.PosVerb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	m.PosAdjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

func pennTag(pos m.PosClass) string {
	switch pos {
	case m.PosNoun:
		return "NN"
	case m.PosVerb:
		return "VB"
	case m.PosAdjective:
		return "JJ"
	case m.PosAdverb:
		return "RB"
	case m.PosNone:
		return unknownTag
	}

	return unknownTag
}

// normalizeLemma lowercases and turns underscores into single spaces.
func normalizeLemma(lemma string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(strings.ToLower(lemma), "_", " ")), " ")
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}

// LoadLexicon returns an initialized Lexicon made of the embedded English
// inventory followed by the shards at paths.
func LoadLexicon(ctx context.Context, paths []m.Path) (LexicalAnnotator, error) {
	files := make([]string, 0, len(paths))
	for _, path := range paths {
		files = append(files, string(path))
	}

	lexicon := NewLexicon(WithLexiconFiles(files...))
	if err := lexicon.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize lexicon: %w", err)
	}

	return lexicon, nil
}
