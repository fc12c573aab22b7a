// =============================================================================
// XML to RPG Cards Converter - Card Writer Module
// =============================================================================
//
// This module serializes rendered cards into the JSON document consumed by
// the card printing tool.
//
// JSON STRUCTURE:
//
//   [
//     {
//       "title": "Potion of Healing",
//       "color": "maroon",
//       "icon": "drink-me",
//       "icon_back": "drink-me",
//       "contents": [
//         "subtitle | Potion",
//         "rule",
//         "justify | Heals 2d4+2 hit points.",
//         "fill",
//         "rule",
//         "center | Basic Rules"
//       ],
//       "tags": ["potion"],
//       "count": 1
//     }
//   ]
//
// HTML escaping is off: soft hyphens, "&" and "<" are written literally.
//
// =============================================================================

package cardwriter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/types"
	"github.com/ginjaninja78/xml-to-rpg-cards/pkg/utils"
)

// DefaultIndent is the indentation used when none is configured.
const DefaultIndent = "  "

// Marshal encodes cards as an indented JSON array. A nil or empty slice
// encodes as "[]".
//
// PARAMETERS:
//   - cards: The cards to encode.
//   - indent: The indentation string. Empty produces compact output.
//
// RETURNS:
//   - The JSON document, newline-terminated.
//   - An error if encoding fails.
func Marshal(cards []types.Card, indent string) ([]byte, error) {
	if cards == nil {
		cards = []types.Card{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}

	if err := enc.Encode(cards); err != nil {
		return nil, fmt.Errorf("failed to encode cards: %w", err)
	}

	return buf.Bytes(), nil
}

// Write encodes cards and replaces the file at path with the result. Nothing
// is written if encoding fails.
func Write(path string, cards []types.Card, indent string) error {
	data, err := Marshal(cards, indent)
	if err != nil {
		return err
	}

	if err := utils.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
