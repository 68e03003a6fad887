package mdnotion

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values. A negative
// index means no color.
type Theme struct {
	Heading int // Heading text
	Code    int // Inline code and code blocks
	Quote   int // Quote bar
	Link    int // Link text
	Media   int // Image and embedded file URLs
	Muted   int // Markers, language labels, status bar
	Accent  int // Selection highlight
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Heading: 5,
		Code:    3,
		Quote:   2,
		Link:    4,
		Media:   6,
		Muted:   8,
		Accent:  5,
	}
}
