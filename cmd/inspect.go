package cmd

import (
	"fmt"

	"depctl/internal/cli"
	"depctl/internal/config"
	"depctl/internal/manifest"
	"depctl/pkg/composer"

	"github.com/spf13/cobra"
)

var (
	inspectOutputFormat string
	inspectManifestPath string
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [constraint]",
	Short: "Show how constraints would be rewritten",
	Long: `Show the rewrite breakdown for a single constraint, or for every
requirement of a composer.json.

With a constraint argument, each version range is listed with its bare
version and both dev rewrites:

  depctl inspect "^1.3.0 || ~2.3.0"

Without arguments the configured manifest is inspected instead; pass
--manifest to pick a different file. Every requirement is listed with
the policy that applies to it (per the corePackages and projectPackages
configuration) and the constraint 'depctl apply' would leave it at: the
dev rewrite, or the constraint itself when it is already a dev version.
Entries no policy covers are left untouched and show up with "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(inspectOutputFormat)
	if err != nil {
		return err
	}
	printer := cli.NewPrinter(format, cmd.OutOrStdout())

	if len(args) == 1 {
		if inspectManifestPath != "" {
			return fmt.Errorf("cannot combine a constraint argument with --manifest")
		}
		return inspectConstraint(printer, args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := inspectManifestPath
	if path == "" {
		path = cfg.Manifest
	}
	return inspectManifest(printer, cfg, path)
}

// rangeBreakdown is one version range of an inspected constraint.
type rangeBreakdown struct {
	Range      string `json:"range" yaml:"range"`
	Version    string `json:"version" yaml:"version"`
	CoreDev    string `json:"coreDev" yaml:"coreDev"`
	ProjectDev string `json:"projectDev" yaml:"projectDev"`
}

type constraintReport struct {
	Constraint string           `json:"constraint" yaml:"constraint"`
	CoreDev    string           `json:"coreDev" yaml:"coreDev"`
	ProjectDev string           `json:"projectDev" yaml:"projectDev"`
	Ranges     []rangeBreakdown `json:"ranges" yaml:"ranges"`
}

func (r constraintReport) TableHeader() []string {
	return []string{"Range", "Version", "Core dev", "Project dev"}
}

func (r constraintReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Ranges))
	for _, rng := range r.Ranges {
		rows = append(rows, []string{rng.Range, rng.Version, rng.CoreDev, rng.ProjectDev})
	}
	return rows
}

func inspectConstraint(printer *cli.Printer, raw string) error {
	c := composer.NewConstraint(raw)
	report := constraintReport{
		Constraint: raw,
		CoreDev:    c.CoreDev(),
		ProjectDev: c.ProjectDev(),
	}
	for _, r := range c.Ranges() {
		report.Ranges = append(report.Ranges, rangeBreakdown{
			Range:      string(r),
			Version:    r.Version(),
			CoreDev:    r.CoreDev(),
			ProjectDev: r.ProjectDev(),
		})
	}
	return printer.Print(report)
}

// requirementRow is one manifest requirement with the rewrite that applies
// to it. Policy and Dev stay empty for packages no configuration entry
// covers.
type requirementRow struct {
	Package    string `json:"package" yaml:"package"`
	Section    string `json:"section" yaml:"section"`
	Constraint string `json:"constraint" yaml:"constraint"`
	Policy     string `json:"policy,omitempty" yaml:"policy,omitempty"`
	Dev        string `json:"dev,omitempty" yaml:"dev,omitempty"`
}

type manifestReport struct {
	Manifest     string           `json:"manifest" yaml:"manifest"`
	Name         string           `json:"name,omitempty" yaml:"name,omitempty"`
	Requirements []requirementRow `json:"requirements" yaml:"requirements"`
}

func (r manifestReport) TableHeader() []string {
	return []string{"Package", "Section", "Constraint", "Policy", "Dev"}
}

func (r manifestReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		policy, dev := req.Policy, req.Dev
		if policy == "" {
			policy, dev = "-", "-"
		}
		rows = append(rows, []string{req.Package, req.Section, req.Constraint, policy, dev})
	}
	return rows
}

func inspectManifest(printer *cli.Printer, cfg config.Config, path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	report := manifestReport{Manifest: m.Path(), Name: m.Name()}
	for _, req := range m.Requirements() {
		row := requirementRow{
			Package:    req.Package,
			Section:    string(req.Section),
			Constraint: req.Constraint,
		}
		if policy, ok := cfg.PolicyFor(req.Package); ok {
			row.Policy = string(policy)
			c := composer.NewConstraint(req.Constraint)
			if c.IsDev() {
				// Already a dev version; apply keeps it as it is.
				row.Dev = req.Constraint
			} else {
				row.Dev = c.Dev(policy)
			}
		}
		report.Requirements = append(report.Requirements, row)
	}
	return printer.Print(report)
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	inspectCmd.Flags().StringVarP(&inspectManifestPath, "manifest", "m", "", "Manifest to inspect (defaults to the configured one)")
}
