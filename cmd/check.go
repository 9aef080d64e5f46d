package cmd

import (
	"fmt"

	"depctl/internal/color"
	"depctl/internal/manifest"
	"depctl/pkg/composer"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

var (
	checkManifestPath string
	checkStrict       bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [constraint...]",
	Short: "Check that constraints parse as semver ranges",
	Long: `Check constraints against a strict semver range parser, as an advisory
pass before rewriting. Typos like "^8..5.3" or "> =1.0" are caught
here; the rewrite itself never validates its input.

Constraints are taken from the arguments, or from the manifest's
require and require-dev sections when no arguments are given. In
manifest mode each requirement is also annotated with the policy
that applies to it and the dev constraint it would be rewritten to;
packages no configuration entry covers show up as unmanaged, and
requirements already on a dev version are marked (dev).

The parser is stricter than Composer: Composer-only syntax such as
"1.0.x-dev" or stability flags can be reported as unparseable even
though Composer accepts them. Failures are therefore advisory unless
--strict is set, which makes the command exit non-zero when any
constraint fails to parse.`,
	RunE: runCheck,
}

type checkTarget struct {
	label      string
	constraint string
	note       string
}

func runCheck(cmd *cobra.Command, args []string) error {
	var targets []checkTarget
	if len(args) > 0 {
		for _, raw := range args {
			targets = append(targets, checkTarget{constraint: raw})
		}
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path := checkManifestPath
		if path == "" {
			path = cfg.Manifest
		}
		m, err := manifest.Load(path)
		if err != nil {
			return err
		}
		for _, req := range m.Requirements() {
			note := " (unmanaged)"
			if policy, ok := cfg.PolicyFor(req.Package); ok {
				c := composer.NewConstraint(req.Constraint)
				if c.IsDev() {
					// Already a dev version, apply leaves it alone.
					note = " (dev)"
				} else {
					note = fmt.Sprintf(" -> %s (%s)", c.Dev(policy), policy)
				}
			}
			targets = append(targets, checkTarget{
				label:      req.Package,
				constraint: req.Constraint,
				note:       note,
			})
		}
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for _, t := range targets {
		label := t.label
		if label != "" {
			label += ": "
		}
		if _, err := semver.NewConstraint(t.constraint); err != nil {
			invalid++
			fmt.Fprintf(out, "%s %s%s%s (%v)\n", color.Error.Render("✗"), label, t.constraint, t.note, err)
			continue
		}
		fmt.Fprintf(out, "%s %s%s%s\n", color.Success.Render("✓"), label, t.constraint, t.note)
	}

	if invalid > 0 {
		summary := fmt.Sprintf("%d of %d constraints failed to parse", invalid, len(targets))
		if checkStrict {
			return fmt.Errorf("%s", summary)
		}
		fmt.Fprintln(out, color.Warning.Render(summary))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkManifestPath, "manifest", "m", "", "Manifest to check (defaults to the configured one)")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit non-zero when any constraint fails to parse")
}
