package composer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	// rangePattern matches one version range inside a constraint string.
	// Everything Composer allows in a range expression is a single run of
	// these characters; separators such as "||" and whitespace are not.
	rangePattern = regexp.MustCompile(`[0-9a-zA-Z~>=\-<.^*]+`)

	// nonVersion matches the bytes Version strips from a range.
	nonVersion = regexp.MustCompile(`[^0-9.]`)

	// trailingSegment matches the final ".<digits>" segment of a version.
	trailingSegment = regexp.MustCompile(`\.[0-9]+$`)

	// firstDotOn matches everything from the first dot to the end.
	firstDotOn = regexp.MustCompile(`\..*`)
)

// Range is a single version range taken from a constraint, operators
// included, for example "^8.5.3" or ">=1.0".
type Range string

// Version strips the range down to its bare version number by dropping every
// character that is not a digit or a dot. "^8.5.3" becomes "8.5.3". The
// result is not validated: a range without digits yields an empty string, and
// suffixed versions such as "1.0.0-beta1" collapse into "1.0.01".
func (r Range) Version() string {
	return nonVersion.ReplaceAllString(string(r), "")
}

// CoreDev converts the range to the dev version used for Drupal core, where
// only the last segment moves to x-dev: "^8.5.3" becomes "8.5.x-dev". A
// version without a trailing numeric segment is returned bare.
func (r Range) CoreDev() string {
	return trailingSegment.ReplaceAllString(r.Version(), ".x-dev")
}

// ProjectDev converts the range to the dev version used for contrib projects,
// where everything after the major version moves to x-dev: "^1.3.0" becomes
// "1.x-dev". A version without a dot is returned bare.
func (r Range) ProjectDev() string {
	return firstDotOn.ReplaceAllString(r.Version(), ".x-dev")
}

// IsDev reports whether the range already names a dev version. Composer
// spells those either as a "dev-" prefixed branch ("dev-main") or with a
// "-dev" suffix ("8.5.x-dev").
func (r Range) IsDev() bool {
	return strings.HasPrefix(string(r), "dev-") || strings.HasSuffix(string(r), "-dev")
}

// RangeFunc rewrites a single range into its replacement text.
type RangeFunc func(Range) string

// Policy selects which dev rewrite applies to a package.
type Policy string

const (
	// PolicyCore keeps the minor version: "^8.5.3" becomes "8.5.x-dev".
	PolicyCore Policy = "core"
	// PolicyProject keeps only the major version: "^8.5.3" becomes "8.x-dev".
	PolicyProject Policy = "project"
)

// ParsePolicy converts a user-supplied string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyCore, PolicyProject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown rewrite policy %q (expected %q or %q)", s, PolicyCore, PolicyProject)
	}
}

// RangeFunc returns the rewrite function for the policy, or nil for an
// unknown policy.
func (p Policy) RangeFunc() RangeFunc {
	switch p {
	case PolicyCore:
		return Range.CoreDev
	case PolicyProject:
		return Range.ProjectDev
	default:
		return nil
	}
}

// Constraint is a Composer version constraint such as "^8.5.3" or
// "^1.3.0 || ~2.3.0". The zero value is the empty constraint.
type Constraint struct {
	raw string
}

// NewConstraint wraps a raw constraint string. The input is never validated;
// rewrites on a malformed constraint simply leave the unrecognized parts
// untouched.
func NewConstraint(raw string) Constraint {
	return Constraint{raw: raw}
}

// String returns the constraint exactly as it was given.
func (c Constraint) String() string {
	return c.raw
}

// Ranges extracts every version range in order of appearance. Separators and
// whitespace are not part of any range. A constraint without ranges yields
// nil.
func (c Constraint) Ranges() []Range {
	matches := rangePattern.FindAllString(c.raw, -1)
	if len(matches) == 0 {
		return nil
	}
	ranges := make([]Range, len(matches))
	for i, m := range matches {
		ranges[i] = Range(m)
	}
	return ranges
}

// IsDev reports whether any range of the constraint is already a dev version.
// The dev rewrites are one-way: applied to their own output they degrade it
// ("8.5.x-dev" would strip to "8.5."), so callers that rewrite manifests
// screen constraints with IsDev first.
func (c Constraint) IsDev() bool {
	for _, r := range c.Ranges() {
		if r.IsDev() {
			return true
		}
	}
	return false
}

// Transform rewrites every range through fn while leaving separators and
// spacing exactly as they appear in the raw constraint. All occurrences of a
// range are replaced in a single pass, so one range's replacement text is
// never picked up and rewritten again by another's.
func (c Constraint) Transform(fn RangeFunc) string {
	table := make(map[Range]string)
	var keys []Range
	for _, r := range c.Ranges() {
		if _, ok := table[r]; ok {
			continue
		}
		table[r] = fn(r)
		keys = append(keys, r)
	}
	if len(keys) == 0 {
		return c.raw
	}
	// Longest key first, so "8.5" never claims the start of an "8.5.3"
	// occurrence.
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, string(k), table[k])
	}
	return strings.NewReplacer(pairs...).Replace(c.raw)
}

// CoreDev rewrites the constraint with the core policy: "~8.5.3 || ^8.6.3"
// becomes "8.5.x-dev || 8.6.x-dev".
func (c Constraint) CoreDev() string {
	return c.Transform(Range.CoreDev)
}

// ProjectDev rewrites the constraint with the project policy:
// "^1.3.0 || ~2.3.0" becomes "1.x-dev || 2.x-dev".
func (c Constraint) ProjectDev() string {
	return c.Transform(Range.ProjectDev)
}

// Dev rewrites the constraint under the given policy. An unknown policy
// returns the constraint unchanged.
func (c Constraint) Dev(p Policy) string {
	fn := p.RangeFunc()
	if fn == nil {
		return c.raw
	}
	return c.Transform(fn)
}
