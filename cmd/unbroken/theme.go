package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	Iron    = lipgloss.Color("#B0B7C0")
	Chalk   = lipgloss.Color("#F5F5F5")
	Flame   = lipgloss.Color("#FF6B35")
	Emerald = lipgloss.Color("#50C878")
	Ruby    = lipgloss.Color("#E0115F")
	Dim     = lipgloss.Color("#666666")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Flame)

	Success = lipgloss.NewStyle().
		Foreground(Emerald)

	Error = lipgloss.NewStyle().
		Foreground(Ruby)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Iron).
			Width(22)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Chalk).
			Bold(true)

	Banner = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Flame).
		Padding(0, 1)
)

func puts(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}

func kv(w io.Writer, key string, value any) {
	puts(w, "  "+KeyStyle.Render(key)+ValueStyle.Render(fmt.Sprint(value)))
}

func printErr(w io.Writer, err error) {
	puts(w, Error.Render("error: "+err.Error()))
}
