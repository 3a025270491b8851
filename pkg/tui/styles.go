package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/xiaomi388/result-management/pkg/form"
)

// Palette of the original admin panel.
var (
	Background = lipgloss.Color("#121212")
	Surface    = lipgloss.Color("#333333")
	Foreground = lipgloss.Color("#ffffff")
	Muted      = lipgloss.Color("#9e9e9e")
	AddColor   = lipgloss.Color("#4caf50")
	DelColor   = lipgloss.Color("#f44336")
	ViewColor  = lipgloss.Color("#2196f3")
	WarnColor  = lipgloss.Color("#ffc107")
)

type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	Field        lipgloss.Style
	FocusedField lipgloss.Style
	AddButton    lipgloss.Style
	DeleteButton lipgloss.Style
	ViewButton   lipgloss.Style
	Help         lipgloss.Style
	Modal        lipgloss.Style
	ModalTitle   lipgloss.Style
	Report       lipgloss.Style
}

func DefaultStyles() Styles {
	button := lipgloss.NewStyle().Foreground(Foreground).Padding(0, 2).MarginRight(2)

	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(Foreground).MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(Foreground),
		Field:        lipgloss.NewStyle().Background(Surface).Foreground(Foreground).Width(56),
		FocusedField: lipgloss.NewStyle().Background(Surface).Foreground(Foreground).Width(56).Bold(true),
		AddButton:    button.Background(AddColor),
		DeleteButton: button.Background(DelColor),
		ViewButton:   button.Background(ViewColor),
		Help:         lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			Width(72),
		ModalTitle: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Report: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ViewColor).
			Padding(0, 1),
	}
}

func noticeColor(kind form.NoticeKind) lipgloss.Color {
	switch kind {
	case form.NoticeSuccess:
		return AddColor
	case form.NoticeError:
		return DelColor
	default:
		return ViewColor
	}
}
