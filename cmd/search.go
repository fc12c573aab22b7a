// =============================================================================
// XML to RPG Cards Converter - Search and Types Commands
// =============================================================================
//
// COMMAND USAGE:
//   xml2cards search <xml_file> <filter_text>
//   xml2cards types
//
// 'search' lists the catalog items whose name contains the filter text, which
// helps when writing filter lists. 'types' prints the effective item type
// table, including any overrides from the configuration.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/itemtypes"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/xmlparser"
	"github.com/ginjaninja78/xml-to-rpg-cards/pkg/utils"
)

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

// searchCmd represents the 'search' command.
var searchCmd = &cobra.Command{
	Use:   "search <xml_file> <filter_text>",
	Short: "List catalog items whose name contains the given text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd.OutOrStdout(), args[0], args[1])
	},
}

// typesCmd represents the 'types' command. It reflects the "types" overrides
// of the loaded configuration.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Print the item type table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTypes(cmd.OutOrStdout(), itemtypes.New(appConfig.Types))
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the search and types commands with the root command.
func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(typesCmd)
}

// =============================================================================
// COMMAND FUNCTIONS
// =============================================================================

// runSearch prints "name (Type Name)" for each match, then the match count.
func runSearch(out io.Writer, xmlFile, text string) error {
	if err := utils.RequireFile(xmlFile, "XML file"); err != nil {
		return err
	}

	opts := xmlparser.DefaultOptions(appConfig)
	opts.Logger = log

	catalog, err := xmlparser.Load(xmlFile, opts)
	if err != nil {
		return err
	}

	table := itemtypes.New(appConfig.Types)
	matches := catalog.Search(text)
	for _, item := range matches {
		fmt.Fprintf(out, "%s (%s)\n", item.Name, table.Lookup(item.Type).Name)
	}

	fmt.Fprintf(out, "\nFound %d items matching '%s'.\n", len(matches), text)
	return nil
}

// printTypes writes the type table as aligned columns.
func printTypes(out io.Writer, table *itemtypes.Table) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tICON\tCOLOR")
	for _, e := range table.Entries() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Code, e.Name, e.Icon, e.Color)
	}
	return w.Flush()
}
