package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inkwell-labs/inkctl/internal/reader"
)

// Color palette matching the fatih/color usage in text mode
var (
	// ColorGreen for success indicators and finished books
	ColorGreen = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}

	// ColorCyan for tags, genres and metadata
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for warnings, highlights and bookmarks
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	// ColorRed for errors
	ColorRed = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
)

// Reusable styles
var (
	// StyleNormal is the base style for regular text
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for selected items
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleBookmark marks bookmarked chapters
	StyleBookmark = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleSuccess is for finished markers and success indicators
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleTag is for book tags and genres
	StyleTag = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHelp is for help text and hints
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleError is for inline error lines
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleHeader is for section headers
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// StyleBorder is for borders and separators
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)

// themePalette is one reader color scheme.
type themePalette struct {
	fg     lipgloss.Color
	bg     lipgloss.Color
	dim    lipgloss.Color
	accent lipgloss.Color
}

var themePalettes = map[reader.Theme]themePalette{
	reader.ThemeLight: {
		fg:     lipgloss.Color("#262626"),
		bg:     lipgloss.Color("#FFFFFF"),
		dim:    lipgloss.Color("#767676"),
		accent: lipgloss.Color("#005FAF"),
	},
	reader.ThemeDark: {
		fg:     lipgloss.Color("#D0D0D0"),
		bg:     lipgloss.Color("#1C1C1C"),
		dim:    lipgloss.Color("#808080"),
		accent: lipgloss.Color("#87D7FF"),
	},
	reader.ThemeSepia: {
		fg:     lipgloss.Color("#5F4B32"),
		bg:     lipgloss.Color("#F4ECD8"),
		dim:    lipgloss.Color("#8A7355"),
		accent: lipgloss.Color("#8B4513"),
	},
}

// ReaderStyles returns the content, heading and status styles for a theme.
func ReaderStyles(t reader.Theme) (content, heading, status lipgloss.Style) {
	p, ok := themePalettes[t]
	if !ok {
		p = themePalettes[reader.ThemeDark]
	}
	content = lipgloss.NewStyle().Foreground(p.fg).Background(p.bg).Padding(1, 2)
	heading = lipgloss.NewStyle().Foreground(p.accent).Background(p.bg).Bold(true).Padding(0, 2)
	status = lipgloss.NewStyle().Foreground(p.dim)
	return content, heading, status
}
