// =============================================================================
// XML to RPG Cards Converter - Converter Module
// =============================================================================
//
// This module contains the batch conversion logic. It resolves every wanted
// item of a filter list against the loaded catalog and renders a card for
// each hit.
//
// CONVERSION PIPELINE:
//   1. Walk the filter entries in list order
//   2. Look each name up in the catalog, case-insensitively
//   3. On a hit, render the card and attach the wanted count
//   4. On a miss, remember the name and carry on
//
// The output order follows the filter list, not the catalog. A miss is never
// an error; the caller reports the missing list once conversion is done.
//
// =============================================================================

package converter

import (
	"log/slog"
	"time"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/filterlist"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/types"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting one filter list.
type Result struct {
	// Cards holds one card per resolved entry, in filter list order.
	Cards []types.Card

	// Missing holds the names with no catalog match, in encounter order.
	Missing []string

	// Stats contains conversion statistics.
	Stats Stats
}

// Stats contains statistics about the conversion.
type Stats struct {
	// Requested is the number of filter entries processed.
	Requested int

	// Rendered is the number of cards produced.
	Rendered int

	// Copies is the total of the card counts.
	Copies int

	// Missing is the number of entries with no catalog match.
	Missing int

	// Duration is the time taken by the conversion.
	Duration time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Catalog looks up items by name, case-insensitively.
type Catalog interface {
	Get(name string) (*types.Item, bool)
}

// Renderer builds a card from an item.
type Renderer interface {
	Render(item *types.Item, excluded map[string]bool) types.Card
}

// Converter resolves filter lists against a catalog.
type Converter struct {
	catalog  Catalog
	renderer Renderer
	logger   *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for per-entry diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new Converter.
//
// PARAMETERS:
//   - catalog: The loaded item catalog.
//   - renderer: The card renderer.
//   - opts: Optional settings.
//
// RETURNS:
//   - A new Converter instance.
func New(catalog Catalog, renderer Renderer, opts ...Option) *Converter {
	c := &Converter{
		catalog:  catalog,
		renderer: renderer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// =============================================================================
// CONVERSION
// =============================================================================

// Convert renders a card for every entry found in the catalog.
//
// PARAMETERS:
//   - entries: The parsed filter list.
//   - excluded: Field keys left out of every card's property block.
//
// RETURNS:
//   - A Result with the cards, the missing names and statistics.
func (c *Converter) Convert(entries []filterlist.Entry, excluded map[string]bool) Result {
	startTime := time.Now()
	result := Result{
		Cards:   []types.Card{},
		Missing: []string{},
	}

	for _, entry := range entries {
		result.Stats.Requested++

		item, ok := c.catalog.Get(entry.Name)
		if !ok {
			c.logger.Debug("item not found in catalog", "name", entry.Name, "line", entry.Line)
			result.Missing = append(result.Missing, entry.Name)
			continue
		}

		card := c.renderer.Render(item, excluded)
		card.Count = entry.Count

		result.Cards = append(result.Cards, card)
		result.Stats.Copies += entry.Count
	}

	result.Stats.Rendered = len(result.Cards)
	result.Stats.Missing = len(result.Missing)
	result.Stats.Duration = time.Since(startTime)

	c.logger.Debug("conversion finished",
		"requested", result.Stats.Requested,
		"rendered", result.Stats.Rendered,
		"copies", result.Stats.Copies,
		"missing", result.Stats.Missing,
		"duration", result.Stats.Duration,
	)

	return result
}

// ConvertLines parses raw filter list lines and converts them.
func (c *Converter) ConvertLines(lines []string, excluded map[string]bool) Result {
	return c.Convert(filterlist.ParseLines(lines), excluded)
}
