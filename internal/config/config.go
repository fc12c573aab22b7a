// =============================================================================
// XML to RPG Cards Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the converter
// configuration. Every table the pipeline consults (item types, icon
// overrides, inline labels, damage-bonus prefixes, damage-type names) lives
// here as data so it can be extended without touching the renderer or the
// loader.
//
// CONFIGURATION SOURCES (later wins):
//   1. Built-in defaults (Default)
//   2. Optional YAML file (--config or XML2CARDS_CONFIG)
//   3. Environment variables, optionally from a .env file
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variable names.
const (
	EnvConfigFile     = "XML2CARDS_CONFIG"
	EnvLogLevel       = "XML2CARDS_LOG_LEVEL"
	EnvLogFormat      = "XML2CARDS_LOG_FORMAT"
	EnvHyphenPatterns = "XML2CARDS_HYPHEN_PATTERNS"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the converter configuration.
type Config struct {
	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn error"`

	// LogFormat selects the slog handler.
	// Valid values: "text", "json"
	LogFormat string `yaml:"log_format" validate:"required,oneof=text json"`

	// JSONIndent is the indentation used for the output document.
	JSONIndent string `yaml:"json_indent"`

	// EmitIconBack adds an "icon_back" field to every card, mirroring "icon".
	EmitIconBack *bool `yaml:"emit_icon_back"`

	// Hyphenation configures the text hyphenator.
	Hyphenation Hyphenation `yaml:"hyphenation"`

	// Types overrides or extends the built-in item type table, keyed by code.
	Types []TypeEntry `yaml:"types" validate:"dive"`

	// IconOverrides maps item name prefixes to icons. Entries are consulted
	// in order and the first match wins. Config entries come before the
	// built-in ones.
	IconOverrides []IconOverride `yaml:"icon_overrides" validate:"dive"`

	// InlineLabels lists the first tokens of body text lines that repeat
	// information already shown in the property block. Such lines are dropped.
	InlineLabels []string `yaml:"inline_labels" validate:"dive,required"`

	// DamageBonus configures the modifier-to-damage merge rule.
	DamageBonus DamageBonus `yaml:"damage_bonus"`

	// DamageTypes maps damage type codes to the text appended to damage dice.
	DamageTypes map[string]string `yaml:"damage_types" validate:"dive,keys,required,endkeys,required"`
}

// Hyphenation holds the text hyphenator settings.
type Hyphenation struct {
	// PatternsFile is a TeX pattern file. Empty means the embedded en-US set.
	PatternsFile string `yaml:"patterns_file"`

	// MinWordLength is the shortest word that is hyphenated at all.
	MinWordLength int `yaml:"min_word_length" validate:"min=2"`

	// CacheSize bounds the memoized word cache.
	CacheSize int `yaml:"cache_size" validate:"min=1"`

	// SoftHyphen is the mark inserted at each break point.
	SoftHyphen string `yaml:"soft_hyphen" validate:"required"`
}

// TypeEntry is one row of the item type table.
type TypeEntry struct {
	Code  string `yaml:"code" validate:"required"`
	Name  string `yaml:"name" validate:"required"`
	Icon  string `yaml:"icon" validate:"required"`
	Color string `yaml:"color" validate:"required"`
}

// IconOverride replaces the type icon for items whose name starts with Prefix.
type IconOverride struct {
	Prefix string `yaml:"prefix" validate:"required"`
	Icon   string `yaml:"icon" validate:"required"`
}

// DamageBonus configures which modifier lines are folded into damage dice.
type DamageBonus struct {
	// Prefixes are matched case-insensitively against each modifier line.
	Prefixes []string `yaml:"prefixes" validate:"dive,required"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultInlineLabels are body text labels already surfaced as properties.
var DefaultInlineLabels = []string{
	"Rarity:",
	"Range:",
	"Thrown:",
	"Versatile:",
	"Ammunition:",
	"Loading:",
	"Reach:",
	"Proficiency:",
}

// DefaultIconOverrides are the built-in name prefix icons.
var DefaultIconOverrides = []IconOverride{
	{Prefix: "Belt of", Icon: "belt"},
	{Prefix: "Boots of", Icon: "boots"},
	{Prefix: "Cloak of", Icon: "cloak"},
	{Prefix: "Gauntlets of", Icon: "mailed-fist"},
	{Prefix: "Gloves of", Icon: "gloves"},
	{Prefix: "Bracers of", Icon: "bracer"},
	{Prefix: "Amulet of", Icon: "gem-pendant"},
	{Prefix: "Necklace of", Icon: "gem-necklace"},
	{Prefix: "Periapt of", Icon: "gem-pendant"},
	{Prefix: "Helm of", Icon: "visored-helm"},
	{Prefix: "Hat of", Icon: "pointy-hat"},
	{Prefix: "Bag of", Icon: "knapsack"},
	{Prefix: "Rope of", Icon: "rope-coil"},
	{Prefix: "Horn of", Icon: "hunting-horn"},
	{Prefix: "Ioun Stone", Icon: "floating-crystal"},
}

// DefaultDamageBonusPrefixes trigger the damage-bonus merge.
var DefaultDamageBonusPrefixes = []string{
	"melee damage",
	"ranged damage",
	"weapon damage",
}

// DefaultDamageTypes maps the catalog's damage type codes to readable text.
var DefaultDamageTypes = map[string]string{
	"A":  "acid",
	"B":  "bludgeoning",
	"C":  "cold",
	"F":  "fire",
	"FC": "force",
	"L":  "lightning",
	"N":  "necrotic",
	"P":  "piercing",
	"PS": "psychic",
	"PO": "poison",
	"R":  "radiant",
	"S":  "slashing",
	"T":  "thunder",
}

// Default returns a configuration populated with built-in defaults only.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load builds the configuration from defaults, an optional YAML file and the
// environment.
//
// PARAMETERS:
//   - configPath: The YAML file to read. Empty falls back to XML2CARDS_CONFIG,
//     and if that is unset too, only defaults and environment are used.
//
// RETURNS:
//   - The merged configuration. It is not validated here; see the validation
//     package.
//   - An error if the file cannot be read or parsed.
func Load(configPath string) (*Config, error) {
	// A missing .env file is normal.
	_ = godotenv.Load()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	var cfg Config
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options and
// merges the built-in tables underneath the configured ones.
func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.JSONIndent == "" {
		cfg.JSONIndent = "  "
	}
	if cfg.EmitIconBack == nil {
		emit := true
		cfg.EmitIconBack = &emit
	}

	// Hyphenation defaults.
	if cfg.Hyphenation.MinWordLength == 0 {
		cfg.Hyphenation.MinWordLength = 5
	}
	if cfg.Hyphenation.CacheSize == 0 {
		cfg.Hyphenation.CacheSize = 2048
	}
	if cfg.Hyphenation.SoftHyphen == "" {
		cfg.Hyphenation.SoftHyphen = "\u00ad"
	}

	// Configured overrides are consulted first.
	cfg.IconOverrides = append(cfg.IconOverrides, DefaultIconOverrides...)
	cfg.InlineLabels = append(append([]string{}, DefaultInlineLabels...), cfg.InlineLabels...)

	if len(cfg.DamageBonus.Prefixes) == 0 {
		cfg.DamageBonus.Prefixes = append([]string{}, DefaultDamageBonusPrefixes...)
	}

	merged := make(map[string]string, len(DefaultDamageTypes)+len(cfg.DamageTypes))
	for code, text := range DefaultDamageTypes {
		merged[code] = text
	}
	for code, text := range cfg.DamageTypes {
		merged[code] = text
	}
	cfg.DamageTypes = merged
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg *Config) {
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(EnvLogFormat, cfg.LogFormat)
	cfg.Hyphenation.PatternsFile = getEnv(EnvHyphenPatterns, cfg.Hyphenation.PatternsFile)
}

// IconBack reports whether cards carry an icon_back field.
func (c *Config) IconBack() bool {
	return c.EmitIconBack == nil || *c.EmitIconBack
}

// String renders the effective configuration as YAML, for --verbose output.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "<unprintable config: " + strconv.Quote(err.Error()) + ">"
	}
	return string(data)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
