package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorDir    = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	colorPage   = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorActive = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
)

var (
	styleDir     = lipgloss.NewStyle().Foreground(colorDir).Bold(true)
	styleOpenDir = lipgloss.NewStyle().Foreground(colorActive).Bold(true)
	stylePage    = lipgloss.NewStyle().Foreground(colorPage)
	styleHref    = lipgloss.NewStyle().Foreground(colorDim)
	styleGuide   = lipgloss.NewStyle().Foreground(colorDim)
	styleSummary = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)
