// =============================================================================
// XML to RPG Cards Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - xmlparser  (produces Items)
//   - renderer   (turns Items into Cards)
//   - converter  (collects Cards)
//   - cardwriter (serializes Cards)
//
// =============================================================================

package types

// =============================================================================
// ITEM FIELDS
// =============================================================================

// Field describes one recognized child tag of an <item> element.
type Field struct {
	// Key is the XML tag name, e.g. "dmg1".
	Key string

	// Label is the text shown in a card's property directive.
	Label string
}

// Fields lists every recognized item field in declared order. The order is
// significant: it drives both the property order on a card and the order in
// which the loader reads an item.
var Fields = []Field{
	{Key: "name", Label: "Name"},
	{Key: "type", Label: "Type"},
	{Key: "weight", Label: "Weight"},
	{Key: "ac", Label: "Armor Class"},
	{Key: "stealth", Label: "Stealth"},
	{Key: "dmg1", Label: "Damage"},
	{Key: "dmg2", Label: "Damage"},
	{Key: "dmgType", Label: "Type"},
	{Key: "property", Label: "Property"},
	{Key: "range", Label: "Range"},
	{Key: "text", Label: "Text"},
	{Key: "modifier", Label: "Modifier"},
	{Key: "roll", Label: "Roll"},
	{Key: "value", Label: "Value"},
	{Key: "rarity", Label: "Rarity"},
}

// IsField reports whether key names one of the recognized item fields.
func IsField(key string) bool {
	for _, f := range Fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

// TreasureType is the type code of valuables whose name carries their value.
const TreasureType = "$"

// =============================================================================
// ITEM RECORD
// =============================================================================

// Item is the normalized in-memory representation of one catalog entry.
// Multi-valued source fields are newline-joined in document order.
type Item struct {
	Name     string
	Type     string
	Weight   string
	AC       string
	Stealth  string
	Dmg1     string
	Dmg2     string
	DmgType  string
	Property string
	Range    string
	Text     string
	Modifier string
	Roll     string
	Value    string
	Rarity   string
}

// Get returns the value of the field with the given key, or "" for an
// unknown key.
func (i *Item) Get(key string) string {
	if p := i.field(key); p != nil {
		return *p
	}
	return ""
}

// Set assigns the value of the field with the given key. Unknown keys are
// ignored.
func (i *Item) Set(key, value string) {
	if p := i.field(key); p != nil {
		*p = value
	}
}

func (i *Item) field(key string) *string {
	switch key {
	case "name":
		return &i.Name
	case "type":
		return &i.Type
	case "weight":
		return &i.Weight
	case "ac":
		return &i.AC
	case "stealth":
		return &i.Stealth
	case "dmg1":
		return &i.Dmg1
	case "dmg2":
		return &i.Dmg2
	case "dmgType":
		return &i.DmgType
	case "property":
		return &i.Property
	case "range":
		return &i.Range
	case "text":
		return &i.Text
	case "modifier":
		return &i.Modifier
	case "roll":
		return &i.Roll
	case "value":
		return &i.Value
	case "rarity":
		return &i.Rarity
	}
	return nil
}

// =============================================================================
// TYPE METADATA
// =============================================================================

// TypeInfo is the display metadata attached to an item type code.
type TypeInfo struct {
	Name  string
	Icon  string
	Color string
}

// =============================================================================
// CARD
// =============================================================================

// Card is the rendered, printable output unit for one resolved filter entry.
// Contents holds content directives in the "kind | arg | ..." grammar.
type Card struct {
	Title    string   `json:"title"`
	Color    string   `json:"color"`
	Icon     string   `json:"icon"`
	IconBack string   `json:"icon_back,omitempty"`
	Contents []string `json:"contents"`
	Tags     []string `json:"tags"`
	Count    int      `json:"count"`
}
