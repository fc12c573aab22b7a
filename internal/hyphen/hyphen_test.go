package hyphen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/config"
)

const softHyphen = "\u00ad"

func newDefault(t *testing.T) *Hyphenator {
	t.Helper()
	h, err := New(config.Default().Hyphenation)
	require.NoError(t, err)
	return h
}

func strip(s string) string {
	return strings.ReplaceAll(s, softHyphen, "")
}

func TestHyphenate_InsertsSoftHyphens(t *testing.T) {
	h := newDefault(t)

	for _, word := range []string{"hyphenation", "Hyphenation", "hyphenation,", "(hyphenation)"} {
		t.Run(word, func(t *testing.T) {
			got := h.Hyphenate(word)
			assert.Contains(t, got, softHyphen)
			assert.Equal(t, word, strip(got), "removing the marks restores the word")
		})
	}
}

func TestHyphenate_KeepsSurroundingPunctuation(t *testing.T) {
	h := newDefault(t)

	got := h.Hyphenate("(hyphenation),")
	assert.True(t, strings.HasPrefix(got, "(h"))
	assert.True(t, strings.HasSuffix(got, "n),"))
}

func TestHyphenate_NoBreakNearEdges(t *testing.T) {
	h := newDefault(t)

	for _, word := range []string{"hyphenation", "extraordinary", "transformation", "necessarily"} {
		t.Run(word, func(t *testing.T) {
			got := []rune(h.Hyphenate(word))
			mark := []rune(softHyphen)[0]

			require.NotEqual(t, mark, got[0])
			assert.NotEqual(t, mark, got[1], "at least two letters before the first break")
			n := len(got)
			for _, r := range got[n-3:] {
				assert.NotEqual(t, mark, r, "at least three letters after the last break")
			}
		})
	}
}

func TestHyphenate_BeforeApostrophe(t *testing.T) {
	h := newDefault(t)

	for _, word := range []string{"hyphenation's", "Hyphenation’s", "(hyphenation's)."} {
		t.Run(word, func(t *testing.T) {
			got := h.Hyphenate(word)
			assert.Contains(t, got, softHyphen)
			assert.Equal(t, word, strip(got))

			_, suffix, found := strings.Cut(got, "tion")
			require.True(t, found)
			assert.NotContains(t, suffix, softHyphen, "nothing after the apostrophe is hyphenated")
		})
	}
}

func TestHyphenate_Unchanged(t *testing.T) {
	h := newDefault(t)

	tests := []struct {
		name string
		word string
	}{
		{"empty", ""},
		{"short word", "the"},
		{"below minimum length", "rope"},
		{"dice expression", "2d4+2"},
		{"number", "1000"},
		{"compound with hyphen", "well-known"},
		{"short possessive", "rope's"},
		{"digits after apostrophe", "o'c1ock"},
		{"punctuation only", "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.word, h.Hyphenate(tt.word))
		})
	}
}

func TestHyphenate_Deterministic(t *testing.T) {
	h := newDefault(t)
	other := newDefault(t)

	for _, word := range []string{"hyphenation", "magical", "protection", "Source:"} {
		first := h.Hyphenate(word)
		assert.Equal(t, first, h.Hyphenate(word), "cached result")
		assert.Equal(t, first, other.Hyphenate(word), "fresh hyphenator")
	}
}

func TestHyphenate_CustomMark(t *testing.T) {
	cfg := config.Default().Hyphenation
	cfg.SoftHyphen = "-"

	h, err := New(cfg)
	require.NoError(t, err)

	got := h.Hyphenate("hyphenation")
	assert.Contains(t, got, "-")
	assert.Equal(t, "hyphenation", strings.ReplaceAll(got, "-", ""))
}

func TestHyphenate_SmallCache(t *testing.T) {
	cfg := config.Default().Hyphenation
	cfg.CacheSize = 1

	h, err := New(cfg)
	require.NoError(t, err)

	a := h.Hyphenate("hyphenation")
	_ = h.Hyphenate("protection")
	assert.Equal(t, a, h.Hyphenate("hyphenation"), "evicted words are recomputed identically")
}

func TestNew_PatternsFile(t *testing.T) {
	t.Run("custom patterns", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hyph.pat.txt")
		require.NoError(t, os.WriteFile(path, []byte("hy3ph\n"), 0o644))

		cfg := config.Default().Hyphenation
		cfg.PatternsFile = path

		h, err := New(cfg)
		require.NoError(t, err)

		got := h.Hyphenate("hyphenation")
		assert.True(t, strings.HasPrefix(got, "hy"+softHyphen), "got %q", got)
		assert.Equal(t, "hyphenation", strip(got))
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.Default().Hyphenation
		cfg.PatternsFile = filepath.Join(t.TempDir(), "missing.pat.txt")

		_, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read hyphenation patterns")
	})
}
