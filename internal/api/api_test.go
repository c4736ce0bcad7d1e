package api

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/dgallion1/clausegest/internal/clause"
	"github.com/dgallion1/clausegest/internal/config"
	"github.com/dgallion1/clausegest/internal/extract"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func fixedResult() *extract.Result {
	leaf := &clause.Clause{Identifier: "4.1", Title: "General", BodyLines: []string{"Body text."}}
	root := &clause.Clause{Identifier: "4", Title: "Safety requirements", Children: []*clause.Clause{leaf}}
	clauses := []*clause.Clause{root}
	return &extract.Result{Clauses: clauses, Rows: clause.Rows(clauses)}
}

func uploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestIndex_RendersUploadForm(t *testing.T) {
	srv := NewServer(func([]byte) (*extract.Result, error) {
		t.Fatal("extract must not run on GET")
		return nil, nil
	}, discardLogger(), config.Default())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	doc, err := html.Parse(rec.Body)
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	input := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "input" && attr(n, "name") == "pdf"
	})
	if input == nil {
		t.Fatal("expected a file input named pdf")
	}
	if attr(input, "type") != "file" {
		t.Errorf("expected file input, got %q", attr(input, "type"))
	}
}

func TestUpload_Success(t *testing.T) {
	srv := NewServer(func(data []byte) (*extract.Result, error) {
		if len(data) == 0 {
			t.Error("expected upload bytes to reach the extractor")
		}
		return fixedResult(), nil
	}, discardLogger(), config.Default())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "pdf", "standard.pdf", []byte("%PDF-fake")))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	page := rec.Body.String()
	if !strings.Contains(page, "Extracted 2 clauses from standard.pdf.") {
		t.Errorf("missing status message in page:\n%s", page)
	}
	if !strings.Contains(page, `download="standard.json"`) || !strings.Contains(page, `download="standard.xlsx"`) {
		t.Error("missing download links")
	}
	if !strings.Contains(page, "data:application/json;base64,") {
		t.Error("missing JSON data URI")
	}

	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	var cells []string
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "td" {
			cells = append(cells, textContent(n))
		}
	})
	joined := strings.Join(cells, "|")
	if !strings.Contains(joined, "4.1") || !strings.Contains(joined, "Safety requirements") {
		t.Errorf("expected clause rows in table, got %q", joined)
	}
}

func TestUpload_MissingFile(t *testing.T) {
	srv := NewServer(func([]byte) (*extract.Result, error) {
		t.Fatal("extract must not run without a file")
		return nil, nil
	}, discardLogger(), config.Default())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "other", "standard.pdf", []byte("%PDF-fake")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No PDF file provided.") {
		t.Error("expected missing-file message")
	}
}

func TestUpload_EmptyFile(t *testing.T) {
	srv := NewServer(func([]byte) (*extract.Result, error) {
		t.Fatal("extract must not run on empty upload")
		return nil, nil
	}, discardLogger(), config.Default())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "pdf", "standard.pdf", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpload_ExtractionFailure(t *testing.T) {
	srv := NewServer(func([]byte) (*extract.Result, error) {
		return nil, errors.New("boom")
	}, discardLogger(), config.Default())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "pdf", "standard.pdf", []byte("%PDF-fake")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to process PDF") {
		t.Error("expected failure message")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	srv := NewServer(func([]byte) (*extract.Result, error) { return fixedResult(), nil },
		discardLogger(), config.Default())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return strings.TrimSpace(b.String())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
