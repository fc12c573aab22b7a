// =============================================================================
// XML to RPG Cards Converter - Load-Time Normalization Rules
// =============================================================================
//
// Rules rewrite an item record once, right after its fields are read and
// before it enters the catalog. They are the only place an item is mutated.
//
// BUILT-IN RULES (applied in this order by DefaultOptions):
//   1. TreasureNameRule : "25 gp - Gold Ring" -> name "Gold Ring", value "25 gp"
//   2. DamageBonusRule  : "melee damage +1" modifier -> "1d8" becomes "1d8+1"
//   3. DamageTypeRule   : dmgType "S" -> "1d8+1" becomes "1d8+1 slashing"
//
// The damage bonus heuristic matches raw English modifier prefixes, so it is
// kept behind its own type: a catalog with a different modifier format swaps
// the rule in Options.Rules instead of patching the loader.
//
// =============================================================================

package xmlparser

import (
	"strings"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/types"
)

// Rule is a load-time normalization of an item record.
type Rule interface {
	Apply(item *types.Item)
}

// damageFields are the damage die expressions that receive merged bonuses and
// damage types.
var damageFields = []string{"dmg1", "dmg2"}

// =============================================================================
// TREASURE NAME RULE
// =============================================================================

// TreasureNameSeparator splits a treasure's value from its display name.
const TreasureNameSeparator = " - "

// TreasureNameRule moves the "<amount> - " prefix of treasure names into the
// value field. Names without the separator are left as they are.
type TreasureNameRule struct{}

// Apply implements Rule.
func (TreasureNameRule) Apply(item *types.Item) {
	if item.Type != types.TreasureType {
		return
	}

	amount, name, found := strings.Cut(item.Name, TreasureNameSeparator)
	if !found {
		return
	}

	item.Value = strings.TrimSpace(amount)
	item.Name = strings.TrimSpace(name)
}

// =============================================================================
// DAMAGE BONUS RULE
// =============================================================================

// DamageBonusRule folds modifier lines such as "melee damage +1" into every
// non-empty damage die and removes the folded lines from the modifier text.
type DamageBonusRule struct {
	// Prefixes are matched case-insensitively at the start of a modifier line.
	Prefixes []string
}

// Apply implements Rule.
func (r DamageBonusRule) Apply(item *types.Item) {
	if item.Modifier == "" {
		return
	}

	var kept []string
	for _, line := range strings.Split(item.Modifier, "\n") {
		bonus, ok := r.match(line)
		if !ok {
			kept = append(kept, line)
			continue
		}

		for _, key := range damageFields {
			if dice := item.Get(key); dice != "" {
				item.Set(key, dice+formatBonus(bonus))
			}
		}
	}

	item.Modifier = strings.Join(kept, "\n")
}

// match reports whether line is a damage bonus and returns the bonus text.
func (r DamageBonusRule) match(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)

	for _, prefix := range r.Prefixes {
		p := strings.ToLower(strings.TrimSpace(prefix))
		if p == "" || !strings.HasPrefix(lower, p) {
			continue
		}
		return strings.TrimSpace(trimmed[len(p):]), true
	}

	return "", false
}

// formatBonus renders a bonus as a suffix of a die expression.
func formatBonus(bonus string) string {
	bonus = strings.Join(strings.Fields(bonus), "")
	switch {
	case bonus == "":
		return ""
	case strings.HasPrefix(bonus, "+"), strings.HasPrefix(bonus, "-"):
		return bonus
	default:
		return "+" + bonus
	}
}

// =============================================================================
// DAMAGE TYPE RULE
// =============================================================================

// DamageTypeRule appends the damage type to every non-empty damage die and
// clears the standalone field so it never renders as its own property.
type DamageTypeRule struct {
	// Names maps damage type codes to display text. Unknown codes are
	// appended verbatim.
	Names map[string]string
}

// Apply implements Rule.
func (r DamageTypeRule) Apply(item *types.Item) {
	code := strings.TrimSpace(item.DmgType)
	if code == "" {
		item.DmgType = ""
		return
	}

	text := code
	if name, ok := r.Names[code]; ok {
		text = name
	}

	for _, key := range damageFields {
		if dice := item.Get(key); dice != "" {
			item.Set(key, dice+" "+text)
		}
	}

	item.DmgType = ""
}
