// Package composer rewrites Composer version-constraint strings into their
// "dev" equivalents so a distribution can be tested against the in-development
// branches of its dependencies.
//
// # Overview
//
// A constraint such as "^1.3.0 || ~2.3.0" is made of ranges joined by " || ".
// Each range combines an optional comparison operator (^, ~, >=, >, <=, <, =,
// *) with a dot-separated version. The package extracts the ranges, rewrites
// each one through a policy function, and reassembles the constraint with
// everything outside the ranges preserved exactly.
//
// Two policies are built in:
//
//   - Core: replace the trailing segment, "^8.5.3" -> "8.5.x-dev". This is the
//     branch shape used by the CMS core package, whose dev branches follow the
//     minor line.
//   - Project: keep only the leading segment, "^1.3.0" -> "1.x-dev". This is
//     the branch shape used by contributed projects.
//
// # Usage
//
//	c := composer.NewConstraint("^1.3.0 || ~2.3.0")
//	c.ProjectDev() // "1.x-dev || 2.x-dev"
//	c.CoreDev()    // "1.3.x-dev || 2.3.x-dev"
//
//	// Custom per-range policies plug in through Transform:
//	c.Transform(func(r composer.Range) string {
//		return r.Version()
//	}) // "1.3.0 || 2.3.0"
//
// # Behavior guarantees
//
// The rewriter never fails. Input without any recognizable range, the empty
// string included, is returned unchanged, and a version segment that the
// policy's pattern does not match is passed through as-is. Replacements are
// applied in a single pass over the original text via a translation table, so
// the output of one range's rewrite is never re-matched by another range. All
// operations are pure functions of the constraint text and are safe for
// concurrent use.
//
// The rewrites are one-way: running a policy over its own output degrades it
// (the core rewrite turns "8.5.x-dev" into "8.5."). IsDev identifies
// constraints that already name a dev version so callers can leave them
// alone.
package composer
