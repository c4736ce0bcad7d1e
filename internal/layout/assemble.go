package layout

import (
	"sort"
	"strings"

	"github.com/dgallion1/clausegest/internal/config"
)

// Assemble turns a flat collection of fragments into reading-order lines.
// Fragments with no text after trimming, and layout-engine link
// annotations, are discarded. Fragments whose tops differ by at most
// cfg.RowTolerance on the same page share a line. The result is ordered
// by (page, top, left of first fragment).
func Assemble(fragments []Fragment, cfg config.Config) []Line {
	kept := make([]Fragment, 0, len(fragments))
	for _, f := range fragments {
		trimmed := strings.TrimSpace(f.Text)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(trimmed), "link to page") {
			continue
		}
		kept = append(kept, f)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		return a.Left < b.Left
	})

	var lines []Line
	for _, f := range kept {
		if n := len(lines); n > 0 {
			cur := &lines[n-1]
			if cur.Page == f.Page && f.Top-cur.Top <= cfg.RowTolerance {
				cur.Fragments = append(cur.Fragments, f)
				continue
			}
		}
		lines = append(lines, Line{Page: f.Page, Top: f.Top, Fragments: []Fragment{f}})
	}

	for i := range lines {
		lines[i].sortFragments()
	}
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := &lines[i], &lines[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		return a.firstLeft() < b.firstLeft()
	})

	return lines
}
