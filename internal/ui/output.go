package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	out     io.Writer = os.Stdout
	errOut  io.Writer = os.Stderr
	noColor bool
)

// SetOutput redirects progress output and error output.
func SetOutput(stdout, stderr io.Writer) {
	out = stdout
	errOut = stderr
}

// SetColor enables or disables styling.
func SetColor(enabled bool) {
	noColor = !enabled
}

// Output returns the current progress writer.
func Output() io.Writer {
	return out
}

func render(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}

// PrintStep announces a stage of work.
func PrintStep(msg string) {
	fmt.Fprintln(out, render(HeaderStyle, "🚀 "+msg))
}

func PrintInfo(msg string) {
	fmt.Fprintln(out, render(InfoStyle, msg))
}

func PrintSuccess(msg string) {
	fmt.Fprintln(out, render(SuccessStyle, "✨ "+msg))
}

func PrintWarning(msg string) {
	fmt.Fprintln(errOut, render(WarningStyle, "! "+msg))
}

// PrintErrorWithHint writes msg and an optional hint to the error stream.
func PrintErrorWithHint(msg, hint string) {
	fmt.Fprintln(errOut, render(ErrorStyle, "❌ "+msg))
	if hint != "" {
		fmt.Fprintln(errOut, render(MutedStyle, hint))
	}
}

// Command is a command line with an optional trailing comment.
type Command struct {
	Line    string
	Comment string
}

// PrintDone prints the success line followed by next-step commands.
func PrintDone(title string, commands []Command) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, render(SuccessStyle, "✨ "+title))
	if len(commands) == 0 {
		return
	}
	fmt.Fprint(out, "\nTo get started:\n\n")

	width := 0
	for _, c := range commands {
		if c.Comment != "" && len(c.Line) > width {
			width = len(c.Line)
		}
	}
	for _, c := range commands {
		line := "  " + render(CodeStyle, c.Line)
		if c.Comment != "" {
			line += strings.Repeat(" ", width-len(c.Line)+2) + render(MutedStyle, "# "+c.Comment)
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out)
}
