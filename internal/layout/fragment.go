package layout

import (
	"sort"
	"strings"
)

// Fragment is one positioned run of text as delivered by the extraction
// engine: page number, top-origin vertical position, horizontal extent,
// and font metadata. Fragments are immutable once grouped into a Line.
type Fragment struct {
	Page     int
	Top      float64
	Left     float64
	Width    float64
	Text     string
	FontSize float64
	Bold     bool
}

// Line groups fragments sharing a page and vertical position, in reading
// order. Text-level properties are derived from the fragments on demand
// and never stored.
type Line struct {
	Page      int
	Top       float64
	Fragments []Fragment
}

func (l *Line) sortFragments() {
	sort.SliceStable(l.Fragments, func(i, j int) bool {
		return l.Fragments[i].Left < l.Fragments[j].Left
	})
}

// Text concatenates the fragments left to right, inserting a space
// wherever the horizontal gap between consecutive fragments exceeds
// mergeGap layout units.
func (l *Line) Text(mergeGap float64) string {
	l.sortFragments()
	var b strings.Builder
	lastRight := 0.0
	first := true
	for _, f := range l.Fragments {
		if f.Text == "" {
			continue
		}
		if !first && f.Left-lastRight > mergeGap {
			b.WriteByte(' ')
		}
		b.WriteString(f.Text)
		lastRight = f.Left + f.Width
		first = false
	}
	return b.String()
}

// CleanedText is Text with runs of whitespace collapsed to single spaces
// and the ends trimmed.
func (l *Line) CleanedText(mergeGap float64) string {
	return strings.Join(strings.Fields(l.Text(mergeGap)), " ")
}

// MaxFontSize is the largest font size across the fragments, 0 if none.
func (l *Line) MaxFontSize() float64 {
	max := 0.0
	for _, f := range l.Fragments {
		if f.FontSize > max {
			max = f.FontSize
		}
	}
	return max
}

// BoldRatio is the trimmed-character weight of bold fragments over the
// trimmed-character weight of all fragments, 0 if the line has no text.
func (l *Line) BoldRatio() float64 {
	total, bold := 0, 0
	for _, f := range l.Fragments {
		n := len(strings.TrimSpace(f.Text))
		total += n
		if f.Bold {
			bold += n
		}
	}
	if total == 0 {
		return 0
	}
	return float64(bold) / float64(total)
}

func (l *Line) firstLeft() float64 {
	if len(l.Fragments) == 0 {
		return 0
	}
	return l.Fragments[0].Left
}
