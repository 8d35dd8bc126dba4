package content

import (
	"strings"
	"unicode/utf8"
)

// Wrap breaks text into lines of at most width runes, splitting on spaces.
// Words longer than width are cut.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var (
		lines []string
		line  strings.Builder
		n     int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		n = 0
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > width {
			if n > 0 {
				flush()
			}
			cut := byteOffset(word, width)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}

		wl := utf8.RuneCountInString(word)
		if n > 0 && n+1+wl > width {
			flush()
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wl
	}
	if n > 0 {
		flush()
	}
	return lines
}

func byteOffset(s string, runes int) int {
	i := 0
	for pos := range s {
		if i == runes {
			return pos
		}
		i++
	}
	return len(s)
}
