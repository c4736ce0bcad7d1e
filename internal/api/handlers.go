package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/clausegest/internal/clause"
	"github.com/dgallion1/clausegest/internal/workbook"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, pageData{MaxUploadMiB: s.cfg.MaxUploadBytes >> 20})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > s.cfg.MaxUploadBytes+1024*1024 {
		s.renderMessage(w, http.StatusRequestEntityTooLarge, "Upload exceeds size limit.")
		return
	}

	// Extra headroom for multipart framing around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.renderMessage(w, http.StatusBadRequest, "Failed to parse upload: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("pdf")
	if err != nil {
		s.renderMessage(w, http.StatusBadRequest, "No PDF file provided.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		s.renderMessage(w, http.StatusInternalServerError, "Failed to read upload.")
		return
	}
	if len(data) == 0 {
		s.renderMessage(w, http.StatusBadRequest, "Uploaded file is empty.")
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		s.renderMessage(w, http.StatusRequestEntityTooLarge, "Uploaded file exceeds size limit.")
		return
	}

	result, err := s.extract(data)
	if err != nil {
		s.log.Error("extraction failed", "filename", header.Filename, "error", err)
		s.renderMessage(w, http.StatusInternalServerError, "Failed to process PDF: "+err.Error())
		return
	}

	jsonPayload, err := json.MarshalIndent(clause.Tree(result.Clauses), "", "  ")
	if err != nil {
		s.renderMessage(w, http.StatusInternalServerError, "Failed to encode results.")
		return
	}
	var xlsxBuf bytes.Buffer
	if err := workbook.Write(&xlsxBuf, result.Rows); err != nil {
		s.renderMessage(w, http.StatusInternalServerError, "Failed to build workbook.")
		return
	}

	filename := header.Filename
	if filename == "" {
		filename = "clauses"
	}

	page := pageData{
		MaxUploadMiB: s.cfg.MaxUploadBytes >> 20,
		Message:      fmt.Sprintf("Extracted %d clauses from %s.", len(result.Rows)-1, filename),
		Headers:      result.Rows[0],
		Rows:         tableRows(result.Rows[1:]),
		JSONB64:      base64.StdEncoding.EncodeToString(jsonPayload),
		ExcelB64:     base64.StdEncoding.EncodeToString(xlsxBuf.Bytes()),
		Filename:     strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
	}
	s.renderPage(w, http.StatusOK, page)
}

func (s *Server) renderMessage(w http.ResponseWriter, status int, message string) {
	s.renderPage(w, status, pageData{
		MaxUploadMiB: s.cfg.MaxUploadBytes >> 20,
		Message:      message,
	})
}
