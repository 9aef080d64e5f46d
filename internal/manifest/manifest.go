// Package manifest reads composer.json files and applies constraint rewrites
// to them without disturbing their formatting.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"depctl/pkg/composer"
	"depctl/pkg/logging"
)

// Section identifies which dependency block of composer.json a requirement
// lives in.
type Section string

const (
	SectionRequire    Section = "require"
	SectionRequireDev Section = "require-dev"
)

// Requirement is one package constraint taken from a manifest.
type Requirement struct {
	Package    string
	Constraint string
	Section    Section
}

// Edit is a single constraint replacement to apply to a manifest.
type Edit struct {
	Package string
	Old     string
	New     string
}

// composerDoc holds the parts of composer.json the tool reads. Everything
// else is carried through untouched in the raw bytes.
type composerDoc struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Require     map[string]string `json:"require"`
	RequireDev  map[string]string `json:"require-dev"`
}

// Manifest is a composer.json file held both parsed and as raw bytes. Edits
// operate on the raw bytes so that key order, indentation and fields the
// parser does not know about survive a rewrite.
type Manifest struct {
	path string
	data []byte
	doc  composerDoc
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	m.path = path

	logging.Debug("Manifest", "Loaded %s with %d requirements", path, len(m.Requirements()))
	return m, nil
}

// Parse parses manifest bytes that have no backing file. Save is not
// available on the result.
func Parse(data []byte) (*Manifest, error) {
	var doc composerDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &Manifest{data: data, doc: doc}, nil
}

// Name returns the manifest's package name, or an empty string if it has
// none.
func (m *Manifest) Name() string {
	return m.doc.Name
}

// Path returns the file the manifest was loaded from, or an empty string for
// a parsed-only manifest.
func (m *Manifest) Path() string {
	return m.path
}

// Bytes returns the manifest's current raw content.
func (m *Manifest) Bytes() []byte {
	return m.data
}

// Requirements lists every requirement, require before require-dev, sorted by
// package name within each section.
func (m *Manifest) Requirements() []Requirement {
	reqs := make([]Requirement, 0, len(m.doc.Require)+len(m.doc.RequireDev))
	for _, pkg := range sortedKeys(m.doc.Require) {
		reqs = append(reqs, Requirement{Package: pkg, Constraint: m.doc.Require[pkg], Section: SectionRequire})
	}
	for _, pkg := range sortedKeys(m.doc.RequireDev) {
		reqs = append(reqs, Requirement{Package: pkg, Constraint: m.doc.RequireDev[pkg], Section: SectionRequireDev})
	}
	return reqs
}

// Constraint looks up the constraint for a package, checking require first
// and then require-dev.
func (m *Manifest) Constraint(pkg string) (string, bool) {
	if c, ok := m.doc.Require[pkg]; ok {
		return c, true
	}
	if c, ok := m.doc.RequireDev[pkg]; ok {
		return c, true
	}
	return "", false
}

// Plan builds the edits that move every matched requirement to its dev
// constraint. policyFor decides which rewrite applies to a package; packages
// it does not match are left alone, as are constraints the rewrite does not
// change and constraints that already name a dev version. Planning over an
// already rewritten manifest therefore yields no edits.
func (m *Manifest) Plan(policyFor func(pkg string) (composer.Policy, bool)) []Edit {
	var edits []Edit
	seen := make(map[Edit]bool)
	for _, req := range m.Requirements() {
		policy, ok := policyFor(req.Package)
		if !ok {
			continue
		}
		c := composer.NewConstraint(req.Constraint)
		// The rewrite is one-way: applied to a dev constraint it degrades
		// it, "8.5.x-dev" would come back as "8.5.".
		if c.IsDev() {
			continue
		}
		dev := c.Dev(policy)
		if dev == req.Constraint {
			continue
		}
		edit := Edit{Package: req.Package, Old: req.Constraint, New: dev}
		// The same package can appear in both sections with the same
		// constraint; one edit covers every occurrence.
		if seen[edit] {
			continue
		}
		seen[edit] = true
		edits = append(edits, edit)
	}
	return edits
}

// Apply performs the edits on the raw manifest bytes and reports how many
// occurrences changed. Each edit must match at least once. Only the
// `"package": "constraint"` pair itself is touched, whatever whitespace
// surrounds the colon.
func (m *Manifest) Apply(edits []Edit) (int, error) {
	data := m.data
	total := 0
	for _, e := range edits {
		re, err := regexp.Compile(`("` + regexp.QuoteMeta(e.Package) + `"\s*:\s*)"` + regexp.QuoteMeta(e.Old) + `"`)
		if err != nil {
			return 0, fmt.Errorf("failed to build pattern for %s: %w", e.Package, err)
		}

		matches := re.FindAllIndex(data, -1)
		if len(matches) == 0 {
			return 0, fmt.Errorf("constraint %q for package %s not found in manifest", e.Old, e.Package)
		}

		repl := `${1}"` + strings.ReplaceAll(e.New, "$", "$$") + `"`
		data = re.ReplaceAll(data, []byte(repl))
		total += len(matches)
	}

	doc, err := Parse(data)
	if err != nil {
		return 0, fmt.Errorf("edits left the manifest unparseable: %w", err)
	}

	m.data = data
	m.doc = doc.doc
	return total, nil
}

// Save writes the manifest back to the file it was loaded from.
func (m *Manifest) Save() error {
	if m.path == "" {
		return fmt.Errorf("manifest has no backing file")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return err
	}

	// Write atomically
	tempFile := m.path + ".tmp"
	if err := os.WriteFile(tempFile, m.data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tempFile, m.path); err != nil {
		return err
	}

	logging.Debug("Manifest", "Saved %s", m.path)
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
