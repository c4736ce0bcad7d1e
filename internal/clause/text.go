package clause

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text folds the clause body lines into paragraphs. Empty marker lines
// flush the accumulated buffer as one paragraph. A line starting with a
// lower-case letter after a hyphen-terminated line continues the broken
// word: the hyphen is dropped and the line joins without a space.
// Paragraphs are separated by blank lines; empty paragraphs are dropped.
func (c *Clause) Text() string {
	var paragraphs []string
	var buffer []string

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		p := strings.TrimSpace(strings.Join(buffer, " "))
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
		buffer = buffer[:0]
	}

	for _, line := range c.BodyLines {
		if line == "" {
			flush()
			continue
		}
		if len(buffer) > 0 && continuesHyphenation(buffer[len(buffer)-1], line) {
			last := buffer[len(buffer)-1]
			buffer[len(buffer)-1] = last[:len(last)-1] + line
			continue
		}
		buffer = append(buffer, line)
	}
	flush()

	return strings.Join(paragraphs, "\n\n")
}

func continuesHyphenation(prev, next string) bool {
	if !strings.HasSuffix(prev, "-") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(next)
	return unicode.IsLower(r)
}
