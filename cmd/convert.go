// =============================================================================
// XML to RPG Cards Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which runs the whole pipeline from
// an XML item catalog and a filter list to a JSON card file.
//
// COMMAND USAGE:
//   xml2cards convert <xml_file> <filter_file> <output_file> [flags]
//
// FLAGS:
//   --exclude : Item fields left out of every card's property block. May be
//               repeated or comma-separated.
//
// PROCESSING PIPELINE:
//   1. Check the inputs exist and the excluded fields are known
//   2. Build the hyphenator, type table and renderer from the configuration
//   3. Load the item catalog
//   4. Load the filter list (text or .xlsx)
//   5. Convert every filter entry to a card
//   6. Write the output file
//   7. Report missing items and the summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/cardwriter"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/config"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/converter"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/filterlist"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/hyphen"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/itemtypes"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/renderer"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/validation"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/xmlparser"
	"github.com/ginjaninja78/xml-to-rpg-cards/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// excludeFields lists the item fields left out of the property block.
var excludeFields []string

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert <xml_file> <filter_file> <output_file>",
	Short: "Convert the items named in a filter list to JSON cards",
	Long: `The convert command loads the XML item catalog, looks up every name in the
filter list, and writes one card per match to the output JSON file.

Filter list lines are item names, optionally preceded by a copy count
("3 Potion of Healing"). Blank lines and lines starting with # are ignored.
An .xlsx filter list uses the rows of its first sheet the same way.

Names not found in the catalog are listed after the conversion. They do not
fail the run.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd.OutOrStdout(), args[0], args[1], args[2])
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the convert command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringSliceVar(
		&excludeFields,
		"exclude",
		nil,
		"Item fields to leave out of the cards, e.g. --exclude weight,value",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runConvert orchestrates the conversion pipeline and prints the report to out.
func runConvert(out io.Writer, xmlFile, filterFile, outputFile string) error {
	printBanner(out)

	// =========================================================================
	// STEP 1: CHECK INPUTS
	// =========================================================================

	if err := utils.RequireFile(xmlFile, "XML file"); err != nil {
		return err
	}
	if err := utils.RequireFile(filterFile, "filter file"); err != nil {
		return err
	}

	excluded, err := excludedSet(excludeFields)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: BUILD THE RENDERER
	// =========================================================================

	r, err := newRenderer(appConfig)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 3: LOAD THE ITEM CATALOG
	// =========================================================================

	opts := xmlparser.DefaultOptions(appConfig)
	opts.Logger = log

	catalog, err := xmlparser.Load(xmlFile, opts)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 4: LOAD THE FILTER LIST
	// =========================================================================

	entries, err := filterlist.Load(filterFile)
	if err != nil {
		return err
	}
	log.Info("filter list loaded", "path", filterFile, "entries", len(entries))

	// =========================================================================
	// STEP 5: CONVERT
	// =========================================================================

	result := converter.New(catalog, r, converter.WithLogger(log)).Convert(entries, excluded)

	// =========================================================================
	// STEP 6: WRITE THE OUTPUT
	// =========================================================================

	if err := cardwriter.Write(outputFile, result.Cards, appConfig.JSONIndent); err != nil {
		return err
	}

	log.Info("conversion complete",
		"requested", result.Stats.Requested,
		"rendered", result.Stats.Rendered,
		"copies", result.Stats.Copies,
		"missing", result.Stats.Missing,
		"duration", result.Stats.Duration,
	)

	// =========================================================================
	// STEP 7: REPORT
	// =========================================================================

	if len(result.Missing) > 0 {
		fmt.Fprintf(out, "Missing items:\n%s\n\n", strings.Join(result.Missing, "\n"))
	}

	fmt.Fprintf(out, "Done. Wrote %d items to '%s' JSON file.\n", len(result.Cards), outputFile)
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// printBanner writes the title block shown before every conversion.
func printBanner(out io.Writer) {
	fmt.Fprintln(out, "--------------------------")
	fmt.Fprintln(out, "XML to RPG cards converter")
	fmt.Fprintln(out, "--------------------------")
	fmt.Fprintln(out)
}

// excludedSet validates the --exclude values and returns them as a set.
// Surrounding spaces are ignored, so "weight, value" works.
func excludedSet(fields []string) (map[string]bool, error) {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			names = append(names, field)
		}
	}

	if err := validation.ValidateExcluded(names); err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set, nil
}

// newRenderer builds the card renderer described by cfg.
func newRenderer(cfg *config.Config) (*renderer.Renderer, error) {
	hy, err := hyphen.New(cfg.Hyphenation)
	if err != nil {
		return nil, err
	}

	table := itemtypes.New(cfg.Types)
	return renderer.New(table, hy, renderer.OptionsFromConfig(cfg)), nil
}
