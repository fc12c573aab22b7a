// =============================================================================
// XML to RPG Cards Converter - Item Type Catalog
// =============================================================================
//
// This module maps the short item type codes found in the catalog XML to the
// display metadata used on a card: the type name shown in the subtitle and
// tags, the default icon, and the card color.
//
// The table is a flat lookup in declared order. Config entries replace a
// built-in row with the same code or append a new one.
//
// =============================================================================

package itemtypes

import (
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/config"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/types"
)

// Unknown is returned for any code missing from the table.
var Unknown = types.TypeInfo{Name: "Unknown type", Icon: "cross-mark", Color: "black"}

// Entry is one row of the type table.
type Entry struct {
	Code string
	types.TypeInfo
}

// Defaults is the built-in type table.
var Defaults = []Entry{
	{"$", types.TypeInfo{Name: "Treasure", Icon: "locked-chest", Color: "darkgoldenrod"}},
	{"P", types.TypeInfo{Name: "Potion", Icon: "drink-me", Color: "maroon"}},
	{"G", types.TypeInfo{Name: "Gear", Icon: "gear-hammer", Color: "maroon"}},
	{"LA", types.TypeInfo{Name: "Light Armor", Icon: "leather-vest", Color: "dimgray"}},
	{"MA", types.TypeInfo{Name: "Medium Armor", Icon: "breastplate", Color: "dimgray"}},
	{"HA", types.TypeInfo{Name: "Heavy Armor", Icon: "mail-shirt", Color: "dimgray"}},
	{"S", types.TypeInfo{Name: "Shield", Icon: "round-shield", Color: "dimgray"}},
	{"M", types.TypeInfo{Name: "Melee Weapon", Icon: "crossed-swords", Color: "dimgray"}},
	{"R", types.TypeInfo{Name: "Ranged Weapon", Icon: "pocket-bow", Color: "dimgray"}},
	{"A", types.TypeInfo{Name: "Ammunition", Icon: "target-arrows", Color: "dimgray"}},
	{"ST", types.TypeInfo{Name: "Staff", Icon: "wizard-staff", Color: "indigo"}},
	{"RD", types.TypeInfo{Name: "Rod", Icon: "orb-wand", Color: "indigo"}},
	{"RG", types.TypeInfo{Name: "Ring", Icon: "ring", Color: "darkgreen"}},
	{"W", types.TypeInfo{Name: "Wondrous Item", Icon: "swap-bag", Color: "darkgreen"}},
	{"WD", types.TypeInfo{Name: "Wand", Icon: "crystal-wand", Color: "indigo"}},
	{"SC", types.TypeInfo{Name: "Spell Scroll", Icon: "tied-scroll", Color: "indigo"}},
}

// Table is an immutable code -> metadata lookup.
type Table struct {
	entries []Entry
	index   map[string]int
}

// New builds a table from the defaults with the given overrides applied.
func New(overrides []config.TypeEntry) *Table {
	t := &Table{index: make(map[string]int, len(Defaults)+len(overrides))}
	for _, e := range Defaults {
		t.put(e)
	}
	for _, o := range overrides {
		t.put(Entry{Code: o.Code, TypeInfo: types.TypeInfo{Name: o.Name, Icon: o.Icon, Color: o.Color}})
	}
	return t
}

func (t *Table) put(e Entry) {
	if i, ok := t.index[e.Code]; ok {
		t.entries[i] = e
		return
	}
	t.index[e.Code] = len(t.entries)
	t.entries = append(t.entries, e)
}

// Lookup returns the metadata for code, or Unknown. It never fails.
func (t *Table) Lookup(code string) types.TypeInfo {
	if i, ok := t.index[code]; ok {
		return t.entries[i].TypeInfo
	}
	return Unknown
}

// Entries returns the table rows in declared order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

var defaultTable = New(nil)

// Default returns the shared built-in table. It must not be modified.
func Default() *Table {
	return defaultTable
}
