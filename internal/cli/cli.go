// Package cli implements the guiscale command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/guiscale/pkg/buildinfo"
	"github.com/matzehuels/guiscale/pkg/scaling"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and config lookup.
const appName = "guiscale"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Analyzer scaling.Analyzer

	config     *viper.Viper
	configFile string
}

// New creates a new CLI instance with a default logger and the GUI analyzer.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Analyzer: scaling.GUIAnalyzer{},
		config:   newConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "guiscale inspects GUI texture scaling metadata",
		Long:         `guiscale validates the scaling section of GUI texture metadata (stretch, tile or nine-slice) and reports the resulting scaling descriptor and frame size.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig(c.configFile)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configFile, "config", "c", "", "config file (default is ./guiscale.yaml or $XDG_CONFIG_HOME/guiscale/guiscale.yaml)")

	// Register all subcommands
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.schemaCommand())
	root.AddCommand(c.completionCommand())

	return root
}
