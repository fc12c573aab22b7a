// =============================================================================
// XML to RPG Cards Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (xml2cards)
//   ├── convertCmd (xml2cards convert)
//   ├── searchCmd  (xml2cards search)
//   ├── typesCmd   (xml2cards types)
//   └── versionCmd (xml2cards version)
//
// CONFIGURATION:
//   Before any subcommand runs, the root command:
//   1. Loads the configuration (defaults, --config YAML, environment)
//   2. Applies the global flag overrides (--verbose, --log-format)
//   3. Validates the result
//   4. Sets up logging on stderr
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/config"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/logger"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/validation"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to an optional YAML configuration file.
var cfgFile string

// verbose forces debug logging when set to true.
var verbose bool

// logFormat overrides the configured log format when non-empty.
var logFormat string

// appConfig is the validated configuration, set by setup.
var appConfig *config.Config

// log is the logger shared by the subcommands, set by setup.
var log *slog.Logger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xml2cards",
	Short: "XML to RPG cards converter - Turn an item catalog into printable cards",
	Long: `xml2cards reads an XML item catalog, selects items by name from a
filter list, and writes them as JSON card definitions for a card generator.

Key Features:
  - Filter lists as plain text or .xlsx, with optional copy counts
  - Property blocks with configurable field exclusions
  - Automatic hyphenation of card text
  - Item types, icons and colors configurable via YAML

Example Usage:
  xml2cards convert items.xml filter.txt cards.json
  xml2cards convert items.xml filter.xlsx cards.json --exclude weight,value
  xml2cards search items.xml "potion of"`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads and validates the configuration and installs the logger.
func setup() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if verbose {
		cfg.LogLevel = "debug"
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	if err := validation.ValidateConfig(cfg); err != nil {
		return err
	}

	log = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Version: Version,
	}, os.Stderr)
	slog.SetDefault(log)

	log.Debug("configuration loaded", "config_file", cfgFile, "effective", cfg.String())

	appConfig = cfg
	return nil
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file (default: built-in settings, or $"+config.EnvConfigFile+")",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging on stderr",
	)

	rootCmd.PersistentFlags().StringVar(
		&logFormat,
		"log-format",
		"",
		"Log format: text or json (overrides the configuration)",
	)
}
