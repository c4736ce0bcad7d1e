// Package extract is the end-to-end pipeline entry: a PDF in, the clause
// forest and its tabular projection out, or one of the terminal error
// kinds. There is no partial-result mode; heuristic misses degrade the
// output silently and are not surfaced as errors.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dgallion1/clausegest/internal/clause"
	"github.com/dgallion1/clausegest/internal/config"
	"github.com/dgallion1/clausegest/internal/layout"
)

var (
	// ErrNotFound: the input path does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrPermissionDenied: the document forbids text extraction.
	ErrPermissionDenied = errors.New("text extraction is not permitted for this document")
	// ErrMalformedInput: the document structure could not be decoded.
	ErrMalformedInput = errors.New("failed to parse document structure")
	// ErrEmptyExtraction: decoding succeeded but produced no lines.
	ErrEmptyExtraction = errors.New("no text extracted from document")
	// ErrNoStructure: lines were produced but no clause headings were
	// recognized.
	ErrNoStructure = errors.New("no clauses were detected in the document")
)

// Result holds one document's recovered structure in both output shapes.
type Result struct {
	Clauses []*clause.Clause
	Rows    [][]string
}

// File runs the pipeline over a PDF on disk.
func File(path string, cfg config.Config) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	lines, err := layout.ExtractFile(path, cfg)
	if err != nil {
		return nil, classify(err)
	}
	return build(lines, cfg)
}

// Reader runs the pipeline over an in-memory or seekable PDF source.
func Reader(ra io.ReaderAt, size int64, cfg config.Config) (*Result, error) {
	lines, err := layout.ExtractReader(ra, size, cfg)
	if err != nil {
		return nil, classify(err)
	}
	return build(lines, cfg)
}

// Bytes runs the pipeline over a PDF held in memory.
func Bytes(data []byte, cfg config.Config) (*Result, error) {
	return Reader(bytes.NewReader(data), int64(len(data)), cfg)
}

func build(lines []layout.Line, cfg config.Config) (*Result, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyExtraction
	}
	clauses := clause.BuildTree(lines, cfg)
	if len(clauses) == 0 {
		return nil, ErrNoStructure
	}
	return &Result{Clauses: clauses, Rows: clause.Rows(clauses)}, nil
}

// classify maps decode-layer failures onto the error kinds. The PDF
// library reports encryption and password failures only through error
// text.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "encrypt") || strings.Contains(msg, "password") {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %v", ErrMalformedInput, err)
}
