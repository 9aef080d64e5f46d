package cmd

import (
	"fmt"

	"depctl/internal/color"
	"depctl/internal/manifest"
	"depctl/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	applyManifestPath string
	applyDryRun       bool
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Rewrite the manifest's constraints to dev versions",
	Long: `Rewrite the constraints in a composer.json manifest to their dev
equivalents, in place.

Packages listed under corePackages get the core policy (the minor
version is kept, "^8.5.3" becomes "8.5.x-dev"), packages listed under
projectPackages get the project policy (only the major version is
kept, "^1.3.0" becomes "1.x-dev"). Packages matching neither list are
left alone.

Only the constraint strings change. The rest of the manifest,
formatting included, is preserved byte for byte. Constraints already
on a dev version are left alone, so a second run over a rewritten
manifest changes nothing. Use --dry-run to see the planned edits
without touching the file.`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := applyManifestPath
	if path == "" {
		path = cfg.Manifest
	}

	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	edits := m.Plan(cfg.PolicyFor)
	out := cmd.OutOrStdout()
	if len(edits) == 0 {
		fmt.Fprintf(out, "Nothing to rewrite in %s\n", path)
		return nil
	}

	for _, e := range edits {
		fmt.Fprintf(out, "%s: %s %s %s\n", e.Package, color.Muted.Render(e.Old), "=>", color.Success.Render(e.New))
	}
	if applyDryRun {
		fmt.Fprintf(out, "Dry run, %s not modified\n", path)
		return nil
	}

	n, err := m.Apply(edits)
	if err != nil {
		return err
	}
	if err := m.Save(); err != nil {
		return err
	}
	logging.Info("Apply", "Rewrote %d constraint(s) in %s", n, path)
	fmt.Fprintf(out, "Rewrote %d constraint(s) in %s\n", n, path)
	return nil
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&applyManifestPath, "manifest", "m", "", "Manifest to rewrite (defaults to the configured one)")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Show the planned edits without writing the manifest")
}
