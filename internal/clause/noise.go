package clause

import (
	"regexp"
	"strings"

	"github.com/dgallion1/clausegest/internal/config"
	"github.com/dgallion1/clausegest/internal/layout"
)

// separatorRunRE matches a run of separator characters that page layouts
// use as rules or fill, never as prose.
var separatorRunRE = regexp.MustCompile("[`',.-]{5,}")

// ShouldSkip reports whether a line's cleaned text is known boilerplate:
// a table-of-contents leader ending in a page number, a separator-run
// artifact, or one of the configured boilerplate patterns. Empty text is
// not boilerplate; blank lines carry paragraph-break information.
func ShouldSkip(text string, cfg config.Config) bool {
	stripped := strings.TrimSpace(text)
	if stripped == "" {
		return false
	}
	if strings.Contains(stripped, "...") {
		fields := strings.Fields(stripped)
		if isDigits(fields[len(fields)-1]) {
			return true
		}
	}
	if separatorRunRE.MatchString(stripped) {
		return true
	}
	for _, pattern := range cfg.SkipPatterns {
		if pattern.MatchString(stripped) {
			return true
		}
	}
	return false
}

// LooksLikeFragment reports whether a line is layout debris: short,
// unpunctuated, entirely non-bold text of 2-6 words that starts with a
// letterform rather than a bullet or bracket. Bold or punctuated short
// lines are assumed meaningful and kept.
func LooksLikeFragment(line *layout.Line, text string) bool {
	if text == "" {
		return false
	}
	if line.BoldRatio() > 0 {
		return false
	}
	for _, prefix := range []string{"•", "–", "-", "(", ")"} {
		if strings.HasPrefix(text, prefix) {
			return false
		}
	}
	if strings.ContainsAny(text, ".,;:!?") {
		return false
	}
	words := len(strings.Fields(text))
	return words >= 2 && words <= 6
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
