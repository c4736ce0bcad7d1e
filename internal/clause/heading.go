package clause

import (
	"regexp"
	"strings"

	"github.com/dgallion1/clausegest/internal/config"
	"github.com/dgallion1/clausegest/internal/layout"
)

// headingRE matches a whole line consisting of a dotted numeric
// identifier, optionally followed by whitespace and a title remainder.
var headingRE = regexp.MustCompile(`^(\d+(?:\.\d+)*)(?:\s+(.*\S))?$`)

// MatchesHeadingPattern reports whether cleaned line text has the shape
// of a numbered heading, independent of typographic prominence.
func MatchesHeadingPattern(text string) bool {
	return headingRE.MatchString(text)
}

// FindHeadings scans the unfiltered line sequence for heading lines: a
// full match of the heading pattern on a line whose font size and bold
// ratio clear the configured thresholds. A heading with no remainder on
// its own line collects its title from following prominent lines until
// one fails prominence or is itself a heading candidate. A bare
// top-level number that never resolves a title is dropped as noise.
// The scan is strictly forward; emitted headings are never revisited.
func FindHeadings(lines []layout.Line, cfg config.Config) []Heading {
	var headings []Heading
	total := len(lines)
	i := 0
	for i < total {
		line := &lines[i]
		text := line.CleanedText(cfg.FragmentMergeGap)
		if text == "" {
			i++
			continue
		}
		m := headingRE.FindStringSubmatch(text)
		if m == nil {
			i++
			continue
		}
		if !prominent(line, cfg) {
			i++
			continue
		}
		identifier := m[1]
		title := strings.TrimSpace(m[2])
		consumed := 1
		if title == "" {
			var parts []string
			for j := i + 1; j < total; j++ {
				candidate := &lines[j]
				candidateText := candidate.CleanedText(cfg.FragmentMergeGap)
				if candidateText == "" {
					consumed++
					continue
				}
				if !prominent(candidate, cfg) {
					break
				}
				if headingRE.MatchString(candidateText) {
					break
				}
				parts = append(parts, candidateText)
				consumed++
			}
			title = strings.TrimSpace(strings.Join(parts, " "))
		}
		if title == "" && !strings.Contains(identifier, ".") {
			// A prominent bare number with no resolvable title is a stray
			// page marker, not a clause.
			i += consumed
			continue
		}
		headings = append(headings, Heading{
			Identifier: identifier,
			Title:      title,
			LineIndex:  i,
			LineCount:  consumed,
		})
		i += consumed
	}
	return headings
}

func prominent(line *layout.Line, cfg config.Config) bool {
	return line.MaxFontSize() >= cfg.HeadingMinFontSize &&
		line.BoldRatio() >= cfg.HeadingMinBoldRatio
}
