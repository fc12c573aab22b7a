// =============================================================================
// XML to RPG Cards Converter - Main Entry Point
// =============================================================================
//
// USAGE:
//   xml2cards convert <items.xml> <filter.txt|filter.xlsx> <output.json>
//   xml2cards search <items.xml> <text>
//   xml2cards types
//   xml2cards version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : The conversion pipeline (catalog, renderer, writer, ...)
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/xml-to-rpg-cards/cmd"
)

func main() {
	cmd.Execute()
}
