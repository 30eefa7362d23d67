package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fincopilot/internal/dashboard"
	"fincopilot/internal/export"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if summary, ok := s.summaryCache.Get(summaryCacheKey); ok {
		slog.DebugContext(r.Context(), "Dashboard cache hit")
		writeJSON(w, http.StatusOK, summary)
		return
	}

	txs, err := s.store.LoadAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	summary := dashboard.Summarize(txs)
	s.summaryCache.Set(summaryCacheKey, summary)

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	txs, err := s.store.LoadAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, txs, dashboard.Summarize(txs)); err != nil {
		slog.ErrorContext(r.Context(), "Workbook export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}

	filename := "transactions-" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
