package reader

// Theme selects the reader's color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeSepia Theme = "sepia"
)

// ParseTheme maps a config value onto a theme, defaulting to dark.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSepia:
		return Theme(s)
	default:
		return ThemeDark
	}
}

// ViewMode selects paginated or continuous-scroll chapter rendering.
type ViewMode string

const (
	ModePaginate ViewMode = "paginate"
	ModeScroll   ViewMode = "scroll"
)

// ParseViewMode maps a config value onto a view mode, defaulting to
// paginate.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ModePaginate, ModeScroll:
		return ViewMode(s)
	default:
		return ModePaginate
	}
}

// Theme returns the active theme.
func (s *Session) Theme() Theme { return s.theme }

// SetTheme applies a theme.
func (s *Session) SetTheme(t Theme) { s.theme = ParseTheme(string(t)) }

// CycleTheme rotates light → dark → sepia → light.
func (s *Session) CycleTheme() Theme {
	switch s.theme {
	case ThemeLight:
		s.theme = ThemeDark
	case ThemeDark:
		s.theme = ThemeSepia
	default:
		s.theme = ThemeLight
	}
	return s.theme
}

// FontSize returns the active font size.
func (s *Session) FontSize() int { return s.fontSize }

// SetFontSize applies a size, clamped to [MinFontSize, MaxFontSize].
func (s *Session) SetFontSize(n int) {
	if n < MinFontSize {
		n = MinFontSize
	}
	if n > MaxFontSize {
		n = MaxFontSize
	}
	s.fontSize = n
}

// IncreaseFont grows the font size by one step, clamped.
func (s *Session) IncreaseFont() { s.SetFontSize(s.fontSize + 1) }

// DecreaseFont shrinks the font size by one step, clamped.
func (s *Session) DecreaseFont() { s.SetFontSize(s.fontSize - 1) }

// Mode returns the active view mode.
func (s *Session) Mode() ViewMode { return s.mode }

// SetMode applies a view mode.
func (s *Session) SetMode(m ViewMode) { s.mode = ParseViewMode(string(m)) }

// ToggleMode flips between paginate and scroll.
func (s *Session) ToggleMode() ViewMode {
	if s.mode == ModePaginate {
		s.mode = ModeScroll
	} else {
		s.mode = ModePaginate
	}
	return s.mode
}
