package layout

import (
	"fmt"
	"io"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/dgallion1/clausegest/internal/config"
)

// Default page height when no MediaBox can be resolved (US Letter).
const defaultPageHeight = 792.0

// ExtractFile opens a PDF on disk and returns its assembled lines.
func ExtractFile(path string, cfg config.Config) ([]Line, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return extract(r, cfg)
}

// ExtractReader reads a PDF from an in-memory or seekable source.
func ExtractReader(ra io.ReaderAt, size int64, cfg config.Config) ([]Line, error) {
	r, err := pdflib.NewReader(ra, size)
	if err != nil {
		return nil, err
	}
	return extract(r, cfg)
}

func extract(r *pdflib.Reader, cfg config.Config) ([]Line, error) {
	var fragments []Fragment
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		frags, err := pageFragments(page, i, cfg)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, frags...)
	}
	return Assemble(fragments, cfg), nil
}

// pageFragments converts one page's positioned glyph runs into fragments.
// Malformed content streams make the underlying library panic, so decode
// failures are converted to errors here.
func pageFragments(page pdflib.Page, pageNumber int, cfg config.Config) (fragments []Fragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode page %d content: %v", pageNumber, r)
		}
	}()

	height := pageHeight(page)
	texts := page.Content().Text

	// Coalesce consecutive same-style glyph runs whose horizontal gap is
	// below the merge threshold; larger gaps stay separate fragments so
	// the line assembler can insert the word break.
	var run *Fragment
	var runY float64
	var runFont string
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		top := height - (t.Y + t.FontSize)
		if top < 0 {
			top = 0
		}
		if run != nil &&
			t.Y == runY &&
			t.Font == runFont &&
			t.FontSize == run.FontSize &&
			t.X-(run.Left+run.Width) <= cfg.FragmentMergeGap {
			run.Text += t.S
			run.Width = t.X + t.W - run.Left
			continue
		}
		if run != nil {
			fragments = append(fragments, *run)
		}
		run = &Fragment{
			Page:     pageNumber,
			Top:      top,
			Left:     t.X,
			Width:    t.W,
			Text:     t.S,
			FontSize: t.FontSize,
			Bold:     isBoldFont(t.Font),
		}
		runY = t.Y
		runFont = t.Font
	}
	if run != nil {
		fragments = append(fragments, *run)
	}
	return fragments, nil
}

// pageHeight resolves the page MediaBox height, walking up the page tree
// for inherited boxes.
func pageHeight(page pdflib.Page) float64 {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.IsNull() || box.Len() < 4 {
			continue
		}
		height := box.Index(3).Float64() - box.Index(1).Float64()
		if height > 0 {
			return height
		}
	}
	return defaultPageHeight
}

// isBoldFont reports whether a font name denotes a bold-weight face.
func isBoldFont(name string) bool {
	lowered := strings.ToLower(name)
	return strings.Contains(lowered, "bold") ||
		strings.Contains(lowered, "black") ||
		strings.Contains(lowered, "heavy")
}
