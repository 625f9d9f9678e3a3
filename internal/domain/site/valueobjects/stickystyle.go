package valueobjects

import "strings"

// StickyStyle holds the widget colors as hex strings.
type StickyStyle struct {
	BackgroundColorHex string `json:"background_color_hex"`
	TextColorHex       string `json:"text_color_hex"`
	AccentColorHex     string `json:"accent_color_hex"`
}

// DefaultStyle is the ungated style applied when AdvancedStyling is locked.
func DefaultStyle() StickyStyle {
	return StickyStyle{
		BackgroundColorHex: "#111827",
		TextColorHex:       "#F9FAFB",
		AccentColorHex:     "#F59E0B",
	}
}

// NewStickyStyle builds a style, substituting defaults for blank colors.
func NewStickyStyle(background, text, accent string) StickyStyle {
	def := DefaultStyle()
	return StickyStyle{
		BackgroundColorHex: orDefault(background, def.BackgroundColorHex),
		TextColorHex:       orDefault(text, def.TextColorHex),
		AccentColorHex:     orDefault(accent, def.AccentColorHex),
	}
}

func orDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// IsDefault reports whether the style equals the default style.
func (s StickyStyle) IsDefault() bool {
	return s == DefaultStyle()
}
