package config

import (
	"strings"

	"depctl/pkg/composer"
)

// Config is the depctl configuration assembled from defaults, the user config
// file and the project config file.
type Config struct {
	// Manifest is the composer.json path commands fall back to when no
	// explicit path is given.
	Manifest string `yaml:"manifest"`
	// CorePackages lists packages rewritten with the core policy. An entry
	// may end in "/*" to cover a whole vendor namespace.
	CorePackages []string `yaml:"corePackages"`
	// ProjectPackages lists packages rewritten with the project policy,
	// with the same wildcard support.
	ProjectPackages []string `yaml:"projectPackages"`
}

// DefaultConfig returns the built-in configuration. Out of the box only
// drupal/core is rewritten, with the core policy.
func DefaultConfig() Config {
	return Config{
		Manifest:     "composer.json",
		CorePackages: []string{"drupal/core"},
	}
}

// PolicyFor returns the rewrite policy configured for a package. Exact
// entries win over wildcard entries, and core entries win over project
// entries at the same specificity. The second return is false for packages no
// entry covers.
func (c Config) PolicyFor(pkg string) (composer.Policy, bool) {
	if containsExact(c.CorePackages, pkg) {
		return composer.PolicyCore, true
	}
	if containsExact(c.ProjectPackages, pkg) {
		return composer.PolicyProject, true
	}
	if matchesWildcard(c.CorePackages, pkg) {
		return composer.PolicyCore, true
	}
	if matchesWildcard(c.ProjectPackages, pkg) {
		return composer.PolicyProject, true
	}
	return "", false
}

func containsExact(entries []string, pkg string) bool {
	for _, e := range entries {
		if e == pkg {
			return true
		}
	}
	return false
}

func matchesWildcard(entries []string, pkg string) bool {
	for _, e := range entries {
		vendor, ok := strings.CutSuffix(e, "/*")
		if ok && strings.HasPrefix(pkg, vendor+"/") {
			return true
		}
	}
	return false
}
