package portfolio

// Theme is the page colour scheme.
type Theme uint8

const (
	ThemeDark Theme = iota
	ThemeLight
)

// String returns the theme name.
func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Icon names the toggle button icon: the moon offers dark mode while the
// light theme is on, the sun offers light mode otherwise.
func (t Theme) Icon() string {
	if t == ThemeLight {
		return "moon"
	}
	return "sun"
}
