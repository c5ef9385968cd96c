package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// HelpWidth is the column help text is wrapped to.
const HelpWidth = 80

// Wrap80 collapses whitespace in text and wraps it for command help.
func Wrap80(text string) string {
	return Wrap(text, HelpWidth)
}

// Wrap collapses whitespace in text and word wraps it at width.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	return wordwrap.String(strings.Join(words, " "), width)
}
