package cmd

import (
	"depctl/internal/mcptools"

	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the depctl MCP server on stdio",
	Long: `Start an MCP server that speaks JSON-RPC over stdin and stdout, for
use by MCP-capable clients and agents.

The server exposes three read-only tools:
  constraint_rewrite - rewrite a single constraint to its dev version
  constraint_inspect - break a constraint down into its ranges
  manifest_preview   - list the edits a rewrite of the manifest would make

None of the tools modify the manifest.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return mcptools.ServeStdio(cfg, rootCmd.Version)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
