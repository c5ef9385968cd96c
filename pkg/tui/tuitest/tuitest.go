// Package tuitest holds helpers shared by the screen tests.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"
)

// Plain drops ANSI escape sequences from a rendered view.
func Plain(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if r == ansi.Marker {
			inEscape = true
			continue
		}
		if inEscape {
			if ansi.IsTerminator(r) {
				inEscape = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Key builds the key press a terminal sends for a printable rune.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}
