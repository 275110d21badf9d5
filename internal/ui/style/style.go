// Package style names the colors and glyphs used for resolution output, shared by
// the logger, the report and the progress view.
package style

import "github.com/charmbracelet/lipgloss"

// Colors, by what they mark.
var (
	// Heading marks configuration names.
	Heading = lipgloss.Color("#7C3AED")
	// Muted marks documents, request notes and dependency paths.
	Muted = lipgloss.Color("#6B7280")
	// Success marks fully resolved documents.
	Success = lipgloss.Color("#16A34A")
	// Failure marks unresolved selectors and documents that failed.
	Failure = lipgloss.Color("#DC2626")
	// Warn marks warnings in the log.
	Warn = lipgloss.Color("#D97706")
	// Active marks documents that are still resolving.
	Active = lipgloss.Color("#2563EB")
)

// Glyphs.
const (
	IconResolved   = "✓"
	IconUnresolved = "✗"
	IconWarn       = "!"
	// IconSelected points from a first-level request to the component it selected.
	IconSelected = "→"
	IconArtifact = "●"
	IconQueued   = "○"
)

// Outcome returns the glyph and color for a finished document.
func Outcome(unresolved int, err error) (string, lipgloss.Color) {
	if err != nil || unresolved > 0 {
		return IconUnresolved, Failure
	}
	return IconResolved, Success
}
