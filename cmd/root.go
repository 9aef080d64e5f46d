package cmd

import (
	"os"

	"depctl/internal/color"
	"depctl/internal/config"
	"depctl/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// debugMode enables verbose logging across the application.
var debugMode bool

// noColor disables colored output for terminals and logs that cannot render it.
var noColor bool

// loadConfig is a variable so tests can substitute a fixed configuration.
var loadConfig = config.LoadConfig

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "depctl",
	Short: "Rewrite Composer constraints to Drupal dev versions",
	Long: `depctl converts the Composer version constraints of a Drupal project
to their dev equivalents, so a site can track development branches
instead of tagged releases. Core packages keep their minor version
("^8.5.3" becomes "8.5.x-dev") while contrib projects keep only the
major version ("^1.3.0" becomes "1.x-dev").`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, unreadable manifests)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if debugMode {
			level = logging.LevelDebug
		}
		// Logs go to stderr so stdout stays clean for command output.
		logging.Init(level, cmd.ErrOrStderr())

		if noColor {
			color.Disable()
			text.DisableColors()
		} else {
			color.InitializeFromEnv()
		}
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "depctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable general debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
