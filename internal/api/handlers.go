package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"gl-reconciliation/internal/domain"
	"gl-reconciliation/internal/logger"
	"gl-reconciliation/internal/usecase"
)

// Reconciler is the usecase surface the handlers need.
type Reconciler interface {
	Reconcile(ctx context.Context, req usecase.ReconcileRequest) (*domain.ReconciliationReport, error)
	GetRun(ctx context.Context, id string, reportMode domain.ReportMode) (*domain.ReconciliationReport, error)
	ListRuns(ctx context.Context, accountCode string, limit int) ([]domain.ReconciliationReport, error)
	ImportEntries(ctx context.Context, req usecase.ImportRequest) (*usecase.ImportResult, error)
}

const maxBodyBytes = 10 << 20

// Handlers contains all HTTP handlers
type Handlers struct {
	reconciler Reconciler
	now        func() time.Time
}

// NewHandlers creates new handlers
func NewHandlers(reconciler Reconciler) *Handlers {
	return &Handlers{reconciler: reconciler, now: time.Now}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "gl-reconciliation",
		"time":    h.now().UTC().Format(time.RFC3339),
	})
}

// AutoReconcile runs the matcher over the posted or stored entries.
func (h *Handlers) AutoReconcile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var body AutoReconcileRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		respondError(w, r, domain.NewInvalidInputError("", "invalid request body: %v", err))
		return
	}

	req, err := body.toReconcileRequest(log)
	if err != nil {
		respondError(w, r, err)
		return
	}

	report, err := h.reconciler.Reconcile(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, report)
}

// ImportEntries stores posted ledger and statement entries for later runs.
func (h *Handlers) ImportEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var body ImportEntriesRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		respondError(w, r, domain.NewInvalidInputError("", "invalid request body: %v", err))
		return
	}

	req, err := body.toImportRequest(log)
	if err != nil {
		respondError(w, r, err)
		return
	}

	result, err := h.reconciler.ImportEntries(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusCreated, result)
}

// ListRuns lists stored runs, newest first.
func (h *Handlers) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, r, domain.NewInvalidInputError("limit", "must be a non-negative integer, got %q", v))
			return
		}
		limit = n
	}

	reports, err := h.reconciler.ListRuns(r.Context(), r.URL.Query().Get("accountCode"), limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, reports)
}

// GetRun returns one stored run.
func (h *Handlers) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	mode := domain.ReportMode(r.URL.Query().Get("reportMode"))

	report, err := h.reconciler.GetRun(r.Context(), id, mode)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, report)
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError maps error kinds to status codes. Internal errors are logged and their
// text is not exposed.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *domain.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		respond(w, http.StatusBadRequest, ErrorResponse{Code: "invalid_input", Message: invalid.Error()})
	case errors.Is(err, domain.ErrRunNotFound):
		respond(w, http.StatusNotFound, ErrorResponse{Code: "not_found", Message: domain.ErrRunNotFound.Error()})
	default:
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		respond(w, http.StatusInternalServerError, ErrorResponse{Code: "internal", Message: "internal server error"})
	}
}
