// Package dto defines the widget-facing data shapes returned by the
// resolution engine.
package dto

// WidgetData is the render-ready resolution result. FailureReason is for
// diagnostics only and must never reach end users; the HTTP layer logs it
// and omits it from the response.
type WidgetData struct {
	ShouldRender       bool     `json:"should_render"`
	IsEnabled          bool     `json:"is_enabled"`
	Rating             *float64 `json:"rating,omitempty"`
	ReviewCount        int      `json:"review_count"`
	Text               string   `json:"text,omitempty"`
	ProviderName       string   `json:"provider_name,omitempty"`
	IsFallback         bool     `json:"is_fallback"`
	BackgroundColorHex string   `json:"background_color_hex"`
	TextColorHex       string   `json:"text_color_hex"`
	AccentColorHex     string   `json:"accent_color_hex"`
	FailureReason      string   `json:"-"`
}
