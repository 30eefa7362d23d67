package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"fincopilot/internal/extract"
	"fincopilot/internal/ocr"
)

// Receipt uploads larger than this are rejected outright.
const maxImageBytes = 10 << 20

type voiceRequest struct {
	Transcript string `json:"transcript"`
}

type receiptTextRequest struct {
	Text string `json:"text"`
}

// handleParseVoice extracts transaction fields from a spoken command
// transcript. Extraction outcomes, including failures, are reported in
// the result body with status 200; only malformed requests get an error
// status.
func (s *Server) handleParseVoice(w http.ResponseWriter, r *http.Request) {
	var req voiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := extract.ParseVoiceCommand(req.Transcript)

	slog.InfoContext(r.Context(), "Voice command parsed",
		"success", result.Success,
		"transcript_len", len(req.Transcript))

	writeJSON(w, http.StatusOK, result)
}

// handleParseReceipt accepts either a multipart image upload (field
// "image") routed through OCR, or a JSON body with pre-extracted text.
func (s *Server) handleParseReceipt(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		s.parseReceiptImage(w, r)
		return
	}

	var req receiptTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, extract.ParseReceiptText(req.Text))
}

func (s *Server) parseReceiptImage(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "receipt image processing is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer file.Close()

	img, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image")
		return
	}
	if len(img) > maxImageBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "image too large")
		return
	}
	if _, err := ocr.ValidateImage(img); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "unsupported image format")
		return
	}

	text, err := s.extractor.ExtractText(r.Context(), img)
	if err != nil {
		slog.ErrorContext(r.Context(), "OCR extraction failed", "error", err)
		writeJSON(w, http.StatusOK, extract.ParseReceiptText(""))
		return
	}

	result := extract.ParseReceiptText(text)

	slog.InfoContext(r.Context(), "Receipt parsed",
		"success", result.Success,
		"text_len", len(text))

	writeJSON(w, http.StatusOK, result)
}
