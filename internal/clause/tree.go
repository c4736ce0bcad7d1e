package clause

import (
	"sort"
	"strings"

	"github.com/dgallion1/clausegest/internal/config"
	"github.com/dgallion1/clausegest/internal/layout"
)

// BuildTree partitions the line sequence at its detected headings and
// builds the clause forest. Each heading creates at most one clause
// (first occurrence of an identifier wins, later duplicates are ignored
// wholesale); a dotted identifier attaches under the clause whose
// identifier is its dotted prefix when that clause was detected, and is
// promoted to a root otherwise.
//
// TODO: orphan promotion (parent heading missed by the prominence gate)
// is carried over as observed behavior; product review pending on
// whether such clauses should instead attach to the nearest ancestor.
func BuildTree(lines []layout.Line, cfg config.Config) []*Clause {
	headings := FindHeadings(lines, cfg)
	var roots []*Clause
	byID := make(map[string]*Clause, len(headings))

	for idx, heading := range headings {
		if _, seen := byID[heading.Identifier]; seen {
			continue
		}
		c := &Clause{Identifier: heading.Identifier, Title: heading.Title}
		byID[heading.Identifier] = c

		if parentID := parentIdentifier(heading.Identifier); parentID != "" {
			if parent, ok := byID[parentID]; ok {
				parent.Children = append(parent.Children, c)
			} else {
				roots = append(roots, c)
			}
		} else {
			roots = append(roots, c)
		}

		start := heading.LineIndex + heading.LineCount
		end := len(lines)
		if idx+1 < len(headings) {
			end = headings[idx+1].LineIndex
		}
		collectBody(c, lines[start:end], cfg)
	}

	kept := roots[:0]
	for _, c := range roots {
		if wellFormedRoot(c.Identifier) {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return lessIdentifiers(kept[i].Identifier, kept[j].Identifier)
	})
	return kept
}

// collectBody appends the kept lines of a clause's span to its body,
// inserting an empty marker line ahead of any page change or same-page
// vertical gap above cfg.ParagraphGap.
func collectBody(c *Clause, span []layout.Line, cfg config.Config) {
	prevPage := 0
	prevTop := 0.0
	havePrev := false
	for i := range span {
		line := &span[i]
		text := line.CleanedText(cfg.FragmentMergeGap)
		if ShouldSkip(text, cfg) {
			continue
		}
		// A heading-shaped line inside a body span was already rejected by
		// the prominence gate; it must not re-enter as prose.
		if MatchesHeadingPattern(text) {
			continue
		}
		if LooksLikeFragment(line, text) {
			continue
		}
		if havePrev {
			if line.Page != prevPage || (line.Page == prevPage && line.Top-prevTop > cfg.ParagraphGap) {
				c.BodyLines = append(c.BodyLines, "")
			}
		}
		c.BodyLines = append(c.BodyLines, text)
		prevPage = line.Page
		prevTop = line.Top
		havePrev = true
	}
}

// wellFormedRoot keeps dot-free roots and roots whose dot count agrees
// with their segment count; malformed identifiers cannot reach here via
// the heading pattern, so this is a guard, not a filter.
func wellFormedRoot(identifier string) bool {
	if !strings.Contains(identifier, ".") {
		return true
	}
	return strings.Count(identifier, ".") == len(strings.Split(identifier, "."))-1
}
