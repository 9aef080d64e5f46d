// Package color provides terminal color theming for depctl.
//
// This package holds the semantic styles command output is rendered with and
// handles theme selection, so that depctl displays correctly in various
// terminal environments.
//
// # Theme System
//
// Styles are organized into semantic categories:
//   - Success: applied constraints and passing checks
//   - Warning: skipped packages and advisory notes
//   - Error: failed checks and rejected input
//   - Info: headings and informational elements
//   - Muted: de-emphasized text such as replaced constraints
//
// # Usage Example
//
//	fmt.Println(color.Success.Render("✓ drupal/core => 8.5.x-dev"))
//	fmt.Println(color.Error.Render("✗ not a valid constraint"))
//
// # Environment Variables
//
// Respected environment variables:
//   - NO_COLOR: Disable all color output
//   - DEPCTL_THEME: Force the "dark" or "light" theme
//
// Everything else is adaptive: the underlying renderer detects the terminal's
// color capabilities and background and degrades to plain text when output is
// piped.
package color
