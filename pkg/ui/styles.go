package ui

import "github.com/charmbracelet/lipgloss"

// Colors adapt to light and dark terminals
var (
	PrimaryColor = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Italic(true)

	FoundStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	MissingStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ExcludedStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Strikethrough(true)
)

// ErrorStyle renders top-level command failures
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ErrorColor).
	Bold(true)
