package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/clausegest/internal/config"
)

func TestFile_NotFound(t *testing.T) {
	cfg := config.Default()
	_, err := File(filepath.Join(t.TempDir(), "missing.pdf"), cfg)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFile_MalformedInput(t *testing.T) {
	cfg := config.Default()
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf document at all"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := File(path, cfg)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestBytes_MalformedInput(t *testing.T) {
	cfg := config.Default()
	_, err := Bytes([]byte("still not a pdf"), cfg)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestClassify_EncryptionBecomesPermissionDenied(t *testing.T) {
	err := classify(errors.New("encrypted PDF: unsupported filter"))
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	err = classify(errors.New("invalid password"))
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	err = classify(errors.New("malformed xref table"))
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}
