package render

import "github.com/charmbracelet/lipgloss"

var (
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88"))

	CaptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))
)

// Banner renders the startup banner line.
func Banner() string {
	return BannerStyle.Render("=== CMB Spectrum & Foreground Modeling ===")
}
