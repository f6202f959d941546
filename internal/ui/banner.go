package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var logo = []string{
	".-. .-. .-. . . .-. .-. .-.   . .-.",
	"|-' | | |   |-| |-| |  )|-    | `-.",
	"'   `-' `-' ' ` ` ' `-' `-' `-' `-'",
}

const tagline = "Node-RED Plugins with Passion"

// PrintBanner writes the pochade logo, tagline and greeting to w.
func PrintBanner(w io.Writer, greeting string) {
	colors := []lipgloss.Color{Primary, Secondary, ColorInfo}

	for i, line := range logo {
		fmt.Fprintln(w, render(lipgloss.NewStyle().Foreground(colors[i%len(colors)]).Bold(true), line))
	}
	fmt.Fprintln(w, render(MutedStyle, strings.Repeat(" ", 7)+tagline))
	fmt.Fprintln(w, render(MutedStyle, strings.Repeat(" ", 13)+"By LNSY"))

	if greeting != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, render(HeaderStyle, "📝 "+greeting))
		fmt.Fprintln(w)
	}
}
