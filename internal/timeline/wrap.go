package timeline

import (
	"strings"
	"unicode/utf8"
)

// WrapText splits text on embedded newlines into paragraphs, then word-wraps
// each paragraph independently to width characters. Widths are counted in
// runes, not bytes or pixels; this is a deliberate approximation and the
// vertical layout depends on the exact line counts it produces. Empty
// paragraphs yield no lines.
func WrapText(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapWords(strings.Fields(paragraph), width)...)
	}
	return lines
}

// wrapWords greedily packs words into lines of at most width runes. A single
// word longer than width is broken into width-sized rune chunks so unspaced
// scripts still wrap instead of producing one unbounded line.
func wrapWords(words []string, width int) []string {
	var lines []string
	var current strings.Builder
	count := 0

	flush := func() {
		if count > 0 {
			lines = append(lines, current.String())
			current.Reset()
			count = 0
		}
	}

	for _, word := range words {
		for _, chunk := range splitLongWord(word, width) {
			n := utf8.RuneCountInString(chunk)
			switch {
			case count == 0:
				current.WriteString(chunk)
				count = n
			case count+1+n <= width:
				current.WriteString(" ")
				current.WriteString(chunk)
				count += 1 + n
			default:
				flush()
				current.WriteString(chunk)
				count = n
			}
		}
	}
	flush()
	return lines
}

// splitLongWord breaks a word into pieces of at most width runes. Words that
// already fit are returned unchanged.
func splitLongWord(word string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(word) <= width {
		return []string{word}
	}
	var pieces []string
	runes := []rune(word)
	for len(runes) > width {
		pieces = append(pieces, string(runes[:width]))
		runes = runes[width:]
	}
	if len(runes) > 0 {
		pieces = append(pieces, string(runes))
	}
	return pieces
}
