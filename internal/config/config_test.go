package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load consults for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfigFile, EnvLogLevel, EnvLogFormat, EnvHyphenPatterns} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "  ", cfg.JSONIndent)
	assert.True(t, cfg.IconBack())
	assert.Equal(t, 5, cfg.Hyphenation.MinWordLength)
	assert.Equal(t, "\u00ad", cfg.Hyphenation.SoftHyphen)
	assert.Equal(t, DefaultDamageBonusPrefixes, cfg.DamageBonus.Prefixes)
	assert.Equal(t, "slashing", cfg.DamageTypes["S"])
	assert.Equal(t, DefaultIconOverrides, cfg.IconOverrides)
	assert.Equal(t, DefaultInlineLabels, cfg.InlineLabels)
}

func TestDefault_DoesNotShareTables(t *testing.T) {
	cfg := Default()
	cfg.DamageTypes["S"] = "changed"
	cfg.DamageBonus.Prefixes[0] = "changed"

	assert.Equal(t, "slashing", DefaultDamageTypes["S"])
	assert.Equal(t, "melee damage", DefaultDamageBonusPrefixes[0])
}

func TestLoad_NoFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MergesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `log_level: debug
json_indent: "\t"
emit_icon_back: false
hyphenation:
  min_word_length: 7
icon_overrides:
  - prefix: Belt of
    icon: leather-belt
inline_labels:
  - "Attunement:"
damage_bonus:
  prefixes: [spell damage]
damage_types:
  S: cutting
  X: sonic
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "\t", cfg.JSONIndent)
	assert.False(t, cfg.IconBack())
	assert.Equal(t, 7, cfg.Hyphenation.MinWordLength)
	assert.Equal(t, 2048, cfg.Hyphenation.CacheSize)

	// Configured overrides come before the built-in ones.
	require.NotEmpty(t, cfg.IconOverrides)
	assert.Equal(t, IconOverride{Prefix: "Belt of", Icon: "leather-belt"}, cfg.IconOverrides[0])
	assert.Len(t, cfg.IconOverrides, len(DefaultIconOverrides)+1)

	assert.Contains(t, cfg.InlineLabels, "Attunement:")
	assert.Contains(t, cfg.InlineLabels, "Rarity:")

	assert.Equal(t, []string{"spell damage"}, cfg.DamageBonus.Prefixes)

	assert.Equal(t, "cutting", cfg.DamageTypes["S"])
	assert.Equal(t, "sonic", cfg.DamageTypes["X"])
	assert.Equal(t, "fire", cfg.DamageTypes["F"])
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "log_level: debug\n")

	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvHyphenPatterns, "/tmp/patterns.tex")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/patterns.tex", cfg.Hyphenation.PatternsFile)
}

func TestLoad_EnvironmentBeatsFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "log_level: debug\n")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, err = Load(writeConfig(t, "log_level: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfig_String(t *testing.T) {
	out := Default().String()
	assert.Contains(t, out, "log_level: info")
	assert.Contains(t, out, "min_word_length: 5")
}
