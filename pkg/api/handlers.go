package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
)

const maxBodyBytes = 1 << 16

// Handler handles HTTP requests for the API.
type Handler struct {
	controller coordinator.Controller
	log        *logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(controller coordinator.Controller, log *logger.Logger) *Handler {
	return &Handler{
		controller: controller,
		log:        log,
	}
}

// Health returns the liveness of the API.
// @Summary Health check
// @Description Liveness probe; does not require an API key
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

// Status returns the indexing status.
// @Summary Indexing status
// @Description Control state, chain head, per-strategy progress and the in-flight run
// @Tags Control
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} coordinator.StatusSnapshot
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.controller.Status(r.Context())
	if err != nil {
		h.log.Errorf("failed to build status: %v", err)
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// Pause stops indexing at the next batch boundary.
// @Summary Pause indexing
// @Description Stops all strategies after their current batch. Pausing twice succeeds.
// @Tags Control
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} coordinator.CommandResult
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Router /pause [post]
func (h *Handler) Pause(w http.ResponseWriter, r *http.Request) {
	h.command(w, func() (coordinator.CommandResult, error) {
		return h.controller.Pause(r.Context())
	})
}

// Resume continues indexing from the last committed blocks.
// @Summary Resume indexing
// @Description Resumes paused strategies. Resuming a running system succeeds.
// @Tags Control
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} coordinator.CommandResult
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Router /resume [post]
func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	h.command(w, func() (coordinator.CommandResult, error) {
		return h.controller.Resume(r.Context())
	})
}

// Reindex starts reindexing a block range.
// @Summary Reindex a block range
// @Description Reprocesses [from, to] for one strategy or all of them. from defaults to the indexed from_block, to to the chain head. An empty body reindexes everything.
// @Tags Control
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body coordinator.ReindexRequest false "Range and strategy"
// @Success 200 {object} coordinator.CommandResult
// @Failure 400 {object} ErrorResponse "Invalid range or unknown strategy"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 409 {object} ErrorResponse "Strategy already reindexing"
// @Router /reindex [post]
func (h *Handler) Reindex(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req coordinator.ReindexRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	h.command(w, func() (coordinator.CommandResult, error) {
		return h.controller.Reindex(r.Context(), req)
	})
}

func (h *Handler) command(w http.ResponseWriter, fn func() (coordinator.CommandResult, error)) {
	result, err := fn()
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.log.Errorf("command failed: %v", err)
		}
		respondError(w, status, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Encode JSON first to catch any errors before writing status
	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)

	// headers are sent, a failed write can only be dropped
	_, _ = w.Write(encoded)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	response := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	respondJSON(w, status, response)
}
