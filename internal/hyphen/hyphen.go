// =============================================================================
// XML to RPG Cards Converter - Text Hyphenator
// =============================================================================
//
// This module inserts soft hyphens into words of card body text so the card
// layout can break long words at linguistically valid points.
//
// PROCESSING (per token):
//   1. Split off leading and trailing non-letter runes ("(blade," -> "(", "blade", ",")
//   2. Leave the token alone if the core has non-letters or is too short
//   3. Ask the TeX pattern engine for break points
//   4. Drop breaks too close to either edge
//   5. Insert the soft hyphen at every remaining break
//
// Results are memoized per token, since card text repeats the same words.
//
// =============================================================================

package hyphen

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/speedata/hyphenation"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/config"
)

// Break points closer than this to the start or end of a word are ignored.
const (
	leftMin  = 2
	rightMin = 3
)

// enUSPatterns is the TeX en-US pattern set, one pattern per line.
//
//go:embed patterns/hyph-en-us.pat.txt
var enUSPatterns []byte

// Hyphenator inserts soft hyphens into words.
type Hyphenator struct {
	lang       *hyphenation.Lang
	cache      *lru.Cache[string, string]
	minLength  int
	softHyphen string
}

// New creates a Hyphenator from the hyphenation settings.
//
// PARAMETERS:
//   - cfg: The hyphenation settings. An empty PatternsFile selects the
//     embedded en-US patterns.
//
// RETURNS:
//   - A ready Hyphenator.
//   - An error if the patterns cannot be read or compiled.
func New(cfg config.Hyphenation) (*Hyphenator, error) {
	var patterns io.Reader = bytes.NewReader(enUSPatterns)
	if cfg.PatternsFile != "" {
		data, err := os.ReadFile(cfg.PatternsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read hyphenation patterns: %w", err)
		}
		patterns = bytes.NewReader(data)
	}

	lang, err := hyphenation.New(patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to load hyphenation patterns: %w", err)
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 2048
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create hyphenation cache: %w", err)
	}

	softHyphen := cfg.SoftHyphen
	if softHyphen == "" {
		softHyphen = "\u00ad"
	}

	return &Hyphenator{
		lang:       lang,
		cache:      cache,
		minLength:  cfg.MinWordLength,
		softHyphen: softHyphen,
	}, nil
}

// Hyphenate returns word with soft hyphens inserted at its break points.
// Words that cannot be hyphenated are returned unchanged.
func (h *Hyphenator) Hyphenate(word string) string {
	if word == "" {
		return word
	}
	if cached, ok := h.cache.Get(word); ok {
		return cached
	}

	result := h.hyphenate(word)
	h.cache.Add(word, result)
	return result
}

func (h *Hyphenator) hyphenate(word string) string {
	runes := []rune(word)

	start := 0
	for start < len(runes) && !unicode.IsLetter(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && !unicode.IsLetter(runes[end-1]) {
		end--
	}

	// A possessive or contraction ("creature's") is hyphenated before the
	// apostrophe only.
	core := runes[start:end]
	suffix := ""
	if i := strings.IndexFunc(string(core), isApostrophe); i >= 0 {
		head := []rune(string(core)[:i])
		tail := core[len(head):]
		if !allLetters(tail[1:]) {
			return word
		}
		core, suffix = head, string(tail)
	}

	hyphenated, ok := h.hyphenateRun(core)
	if !ok {
		return word
	}

	return string(runes[:start]) + hyphenated + suffix + string(runes[end:])
}

// hyphenateRun hyphenates a run of letters. It reports false when the run is
// too short, contains a non-letter, or has no break points.
func (h *Hyphenator) hyphenateRun(run []rune) (string, bool) {
	if len(run) < h.minLength || len(run) < leftMin+rightMin || !allLetters(run) {
		return "", false
	}

	lower := make([]rune, len(run))
	for i, r := range run {
		lower[i] = unicode.ToLower(r)
	}

	breaks := h.breaks(string(lower), len(run))
	if len(breaks) == 0 {
		return "", false
	}

	var b strings.Builder
	last := 0
	for _, pos := range breaks {
		b.WriteString(string(run[last:pos]))
		b.WriteString(h.softHyphen)
		last = pos
	}
	b.WriteString(string(run[last:]))

	return b.String(), true
}

func allLetters(run []rune) bool {
	for _, r := range run {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '\u2019'
}

// breaks returns the ascending, de-duplicated break offsets of a lower-cased
// letter run of n runes, keeping only those at least leftMin runes from the
// start and rightMin runes from the end.
func (h *Hyphenator) breaks(lower string, n int) []int {
	positions := append([]int(nil), h.lang.Hyphenate(lower)...)
	sort.Ints(positions)

	var kept []int
	prev := 0
	for _, pos := range positions {
		if pos < leftMin || pos > n-rightMin || pos <= prev {
			continue
		}
		kept = append(kept, pos)
		prev = pos
	}
	return kept
}
