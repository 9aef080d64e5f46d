package color

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic styles used across command output. They adapt to the detected
// terminal background; Initialize can force a theme.
var (
	Success = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
	Warning = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})
	Error   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"})
	Info    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "243"})
	Bold    = lipgloss.NewStyle().Bold(true)
)

// Initialize forces the dark or light theme for all adaptive styles.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// InitializeFromEnv applies the DEPCTL_THEME override ("dark" or "light").
// Without it the terminal background detection is left alone, and NO_COLOR is
// honored by the underlying renderer.
func InitializeFromEnv() {
	switch strings.ToLower(os.Getenv("DEPCTL_THEME")) {
	case "dark":
		Initialize(true)
	case "light":
		Initialize(false)
	}
}

// Disable strips the color from every semantic style, for --no-color. Bold
// stays bold; the convention covers color only.
func Disable() {
	plain := lipgloss.NewStyle()
	Success = plain
	Warning = plain
	Error = plain
	Info = plain
	Muted = plain
}
