package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"depctl/pkg/composer"
	"depctl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// rewritePolicy selects the core or project rewrite.
var rewritePolicy string

// rewriteCopy additionally places the rewritten constraints on the clipboard.
var rewriteCopy bool

// rewriteCmd represents the rewrite command
var rewriteCmd = &cobra.Command{
	Use:   "rewrite [constraint...]",
	Short: "Rewrite Composer constraints to their dev equivalents",
	Long: `Rewrite one or more Composer version constraints to the dev versions
Drupal uses for development branches.

Two policies are available:

  core     keeps the minor version: "^8.5.3" becomes "8.5.x-dev".
           This is how Drupal core itself is tracked.
  project  keeps only the major version: "^1.3.0" becomes "1.x-dev".
           This is how contrib projects are tracked (default).

Multi-range constraints are rewritten range by range, keeping the
original separators: "^1.3.0 || ~2.3.0" becomes "1.x-dev || 2.x-dev".

Constraints are taken from the arguments, or read line by line from
stdin when no arguments are given:

  depctl rewrite "^8.5.3" --policy core
  jq -r '.require["drupal/core"]' composer.json | depctl rewrite -p core`,
	RunE: runRewrite,
}

func runRewrite(cmd *cobra.Command, args []string) error {
	policy, err := composer.ParsePolicy(rewritePolicy)
	if err != nil {
		return err
	}

	constraints := args
	if len(constraints) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			constraints = append(constraints, line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read constraints from stdin: %w", err)
		}
	}

	if len(constraints) == 0 {
		return fmt.Errorf("no constraints given")
	}

	results := make([]string, 0, len(constraints))
	for _, raw := range constraints {
		results = append(results, composer.NewConstraint(raw).Dev(policy))
	}

	out := strings.Join(results, "\n")
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if rewriteCopy {
		// A missing clipboard (headless CI) should not fail the rewrite.
		if err := clipboard.WriteAll(out); err != nil {
			logging.Warn("Rewrite", "Clipboard unavailable: %v", err)
		} else {
			logging.Info("Rewrite", "Copied %d rewritten constraint(s) to the clipboard", len(results))
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().StringVarP(&rewritePolicy, "policy", "p", "project", "Rewrite policy (core, project)")
	rewriteCmd.Flags().BoolVarP(&rewriteCopy, "copy", "c", false, "Copy the rewritten constraints to the clipboard")
}
