// Package textlayout lays out plain text on fixed-width, monospaced surfaces
// such as thermal printer paper or a chat message rendered in a code block.
//
// Widths are counted in display columns, not bytes, so accented names line up
// the same way ASCII names do. None of the alignment helpers truncate: text
// wider than the target width overflows and callers decide what to cut.
package textlayout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultWidth is the column count of the production reminder.
	DefaultWidth = 40
	// TicketWidth is the column count of the order ticket.
	TicketWidth = 35

	ellipsis = "..."
)

// cond pins East Asian ambiguous runes to single width so output does not
// depend on the locale of the machine rendering it.
var cond = &runewidth.Condition{EastAsianWidth: false}

// Width returns the number of display columns s occupies.
func Width(s string) int {
	return cond.StringWidth(s)
}

// Center pads text with spaces on both sides. When the padding is odd the
// extra space goes to the right.
func Center(text string, width int) string {
	w := Width(text)
	if w >= width {
		return text
	}
	left := (width - w) / 2
	right := width - w - left
	return spaces(left) + text + spaces(right)
}

// RightAlign left-pads text so it ends at column width.
func RightAlign(text string, width int) string {
	w := Width(text)
	if w >= width {
		return text
	}
	return spaces(width-w) + text
}

// LeftAlign right-pads text to width.
func LeftAlign(text string, width int) string {
	w := Width(text)
	if w >= width {
		return text
	}
	return text + spaces(width-w)
}

// TwoColumns places left flush with column 0 and right flush with column
// width, separated by at least one space.
// Example: "2x Coxinha                R$ 10,00"
func TwoColumns(left, right string, width int) string {
	gap := width - Width(left) - Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + spaces(gap) + right
}

// Separator repeats char across width columns.
func Separator(char byte, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(string(char), width)
}

// Truncate cuts text to at most max columns, replacing the tail with "..."
// when anything had to be removed.
func Truncate(text string, max int) string {
	if Width(text) <= max {
		return text
	}
	if max <= 0 {
		return ""
	}
	if max <= len(ellipsis) {
		return ellipsis[:max]
	}
	return cond.Truncate(text, max, ellipsis)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
