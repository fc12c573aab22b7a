// =============================================================================
// XML to RPG Cards Converter - Card Renderer
// =============================================================================
//
// This module turns one item record into a printable card.
//
// CARD LAYOUT (contents directives, in order):
//
//   subtitle | Martial Weapon (Rare)     <- type name, rarity if any
//   rule
//   property | Damage | 1d8+1 slashing   <- one per non-empty field line
//   property | Property | V
//   rule                                 <- only if a property was emitted
//   justify | <hyphenated body text>     <- one per body line
//   fill
//   rule
//   center | Basic Rules                 <- "Source:" citation
//
// The renderer never fails: empty or odd data simply yields fewer directives.
//
// =============================================================================

package renderer

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/config"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/itemtypes"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/types"
)

// sourcePrefix marks the body line that cites the item's source book.
const sourcePrefix = "Source:"

// skipProperty lists the fields never shown in the property block.
var skipProperty = map[string]bool{
	"name":    true,
	"type":    true,
	"text":    true,
	"rarity":  true,
	"dmgType": true,
}

// Hyphenator inserts soft hyphens into a single word.
type Hyphenator interface {
	Hyphenate(word string) string
}

// Options holds the data tables the renderer consults.
type Options struct {
	// IconOverrides are checked in order against the start of the item name.
	IconOverrides []config.IconOverride

	// InlineLabels are body text first tokens whose lines are dropped.
	InlineLabels []string

	// EmitIconBack mirrors the icon into the card's icon_back field.
	EmitIconBack bool
}

// OptionsFromConfig extracts the renderer options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		IconOverrides: cfg.IconOverrides,
		InlineLabels:  cfg.InlineLabels,
		EmitIconBack:  cfg.IconBack(),
	}
}

// Renderer builds cards from item records.
type Renderer struct {
	types        *itemtypes.Table
	hyphenator   Hyphenator
	opts         Options
	inlineLabels map[string]bool
}

// New creates a Renderer.
//
// PARAMETERS:
//   - table: The item type table. Nil uses the built-in table.
//   - hy: The hyphenator applied to every body text word.
//   - opts: The icon overrides, inline labels and icon_back switch.
//
// RETURNS:
//   - A Renderer ready to use.
func New(table *itemtypes.Table, hy Hyphenator, opts Options) *Renderer {
	if table == nil {
		table = itemtypes.Default()
	}

	labels := make(map[string]bool, len(opts.InlineLabels))
	for _, label := range opts.InlineLabels {
		labels[label] = true
	}

	return &Renderer{
		types:        table,
		hyphenator:   hy,
		opts:         opts,
		inlineLabels: labels,
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// Render builds the card for item. Fields named in excluded are left out of
// the property block. The card's Count is 1; callers set the real count.
func (r *Renderer) Render(item *types.Item, excluded map[string]bool) types.Card {
	info := r.types.Lookup(item.Type)
	icon := r.icon(item.Name, info.Icon)

	card := types.Card{
		Title:    item.Name,
		Color:    info.Color,
		Icon:     icon,
		Contents: r.contents(item, info, excluded),
		Tags:     []string{cases.Lower(language.AmericanEnglish).String(info.Name)},
		Count:    1,
	}
	if r.opts.EmitIconBack {
		card.IconBack = icon
	}

	return card
}

// icon returns the first override matching the start of name, or fallback.
func (r *Renderer) icon(name, fallback string) string {
	for _, o := range r.opts.IconOverrides {
		if strings.HasPrefix(name, o.Prefix) {
			return o.Icon
		}
	}
	return fallback
}

func (r *Renderer) contents(item *types.Item, info types.TypeInfo, excluded map[string]bool) []string {
	subtitle := info.Name
	if rarity := strings.TrimSpace(item.Rarity); rarity != "" {
		subtitle += " (" + rarity + ")"
	}

	contents := []string{directive("subtitle", subtitle), directive("rule")}
	contents = r.appendProperties(contents, item, excluded)
	contents = r.appendBody(contents, item.Text)

	return contents
}

// appendProperties emits one property directive per non-empty field line, in
// declared field order, and closes the block with a rule if anything was
// emitted.
func (r *Renderer) appendProperties(contents []string, item *types.Item, excluded map[string]bool) []string {
	emitted := 0

	for _, field := range types.Fields {
		if skipProperty[field.Key] || excluded[field.Key] {
			continue
		}

		for _, line := range strings.Split(item.Get(field.Key), "\n") {
			line = strings.TrimSpace(line)
			if isZero(line) {
				continue
			}
			contents = append(contents, directive("property", field.Label, line))
			emitted++
		}
	}

	if emitted > 0 {
		contents = append(contents, directive("rule"))
	}
	return contents
}

// appendBody emits the free text: citations as a bottom-aligned centered
// line, labels already shown as properties dropped, everything else as a
// hyphenated justified paragraph.
func (r *Renderer) appendBody(contents []string, text string) []string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if r.inlineLabels[strings.Fields(line)[0]] {
			continue
		}

		if strings.HasPrefix(line, sourcePrefix) {
			source := strings.TrimSpace(strings.TrimPrefix(line, sourcePrefix))
			contents = append(contents,
				directive("fill"),
				directive("rule"),
				directive("center", source),
			)
			continue
		}

		contents = append(contents, directive("justify", r.hyphenateLine(line)))
	}

	return contents
}

func (r *Renderer) hyphenateLine(line string) string {
	if r.hyphenator == nil {
		return line
	}

	words := strings.Split(line, " ")
	for i, word := range words {
		words[i] = r.hyphenator.Hyphenate(word)
	}
	return strings.Join(words, " ")
}

// =============================================================================
// HELPERS
// =============================================================================

// directive formats a content directive as "kind | arg | arg".
func directive(kind string, args ...string) string {
	return strings.Join(append([]string{kind}, args...), " | ")
}

// isZero reports whether a field line carries no information.
func isZero(value string) bool {
	if value == "" || value == "0" {
		return true
	}
	f, err := strconv.ParseFloat(value, 64)
	return err == nil && f == 0
}
