/*
handlers.go - HTTP handlers for the settlement reporting service

PURPOSE:
  Exposes the aggregation engine over REST. Handlers parse the uploaded
  batch, finalize it, summarize it, and serialize the result. All state
  lives in the request; Summarize is a pure function, so the service is
  safe to invoke concurrently per request.

ENDPOINTS:
  POST /api/batches/summarize  TSV batch in, summary tables as JSON out
  POST /api/batches/report     TSV batch in, reference text rendering out
  GET  /api/calendars          Active working-day configuration
  GET  /api/healthz            Liveness

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed instruction batch (line/field named in details)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/warp/settlement-engine/ingest"
	"github.com/warp/settlement-engine/report"
	"github.com/warp/settlement-engine/settlement"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Calendar *settlement.Calendar
	Parser   ingest.Parser
	Engine   *settlement.Engine

	log zerolog.Logger
}

// NewHandler wires a handler around the given calendar.
func NewHandler(cal *settlement.Calendar, log zerolog.Logger) *Handler {
	return &Handler{
		Calendar: cal,
		Parser:   ingest.NewTSVParser(cal),
		Engine:   settlement.NewEngine(),
		log:      log.With().Str("component", "api").Logger(),
	}
}

// SummarizeBatch parses the request body as a TSV batch and responds with
// the three summary tables as JSON. An empty body yields empty tables.
func (h *Handler) SummarizeBatch(w http.ResponseWriter, r *http.Request) {
	instructions, ok := h.parseBatch(w, r)
	if !ok {
		return
	}
	summary := h.Engine.Summarize(instructions)
	writeJSON(w, http.StatusOK, toSummaryDTO(summary, len(instructions)))
}

// ReportBatch parses the request body as a TSV batch and responds with the
// reference plain-text rendering of all three reports.
func (h *Handler) ReportBatch(w http.ResponseWriter, r *http.Request) {
	instructions, ok := h.parseBatch(w, r)
	if !ok {
		return
	}
	summary := h.Engine.Summarize(instructions)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(report.Full(summary)))
}

// GetCalendars returns the active working-day calendar table.
func (h *Handler) GetCalendars(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCalendarDTO(h.Calendar))
}

// Healthz is the liveness endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) parseBatch(w http.ResponseWriter, r *http.Request) ([]settlement.Instruction, bool) {
	instructions, err := h.Parser.Parse(r.Body)
	if err != nil {
		if settlement.IsClientError(err) {
			h.log.Warn().Err(err).Msg("rejected malformed batch")
			writeMalformed(w, err)
			return nil, false
		}
		h.log.Error().Err(err).Msg("failed to read batch")
		writeError(w, http.StatusInternalServerError, "Failed to read batch", err)
		return nil, false
	}
	return instructions, true
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeMalformed(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: "Malformed instruction batch", Code: "malformed_instruction"}
	var malformed *settlement.MalformedInstructionError
	if errors.As(err, &malformed) {
		resp.Details = map[string]any{
			"line":  malformed.Line,
			"field": malformed.Field,
			"value": malformed.Value,
		}
	} else {
		resp.Details = err.Error()
	}
	writeJSON(w, http.StatusBadRequest, resp)
}
