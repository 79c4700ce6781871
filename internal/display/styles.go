package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for the game screen
type Styles struct {
	Title     lipgloss.Style
	Dealer    lipgloss.Style
	Player    lipgloss.Style
	Separator lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Hidden    lipgloss.Style
	Value     lipgloss.Style
	Prompt    lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Push      lipgloss.Style
}

// NewStyles creates styles bound to r, so colour output follows the
// renderer's profile
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Dealer: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Separator: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Value: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Push: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
	}
}
