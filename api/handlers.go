package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/internal/export"
	"github.com/calcsuite/calcsuite/internal/history"
)

// maxBatchSize bounds POST /api/v1/batch.
const maxBatchSize = 20

// batchConcurrency bounds parallel evaluations within one batch.
const batchConcurrency = 4

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Fields  interface{} `json:"fields,omitempty"` // field-level validation errors
}

// ComputeRequest is the body for POST /api/v1/calculators/{slug}/compute.
type ComputeRequest struct {
	Inputs map[string]any `json:"inputs"`
}

// ComputeResponse pairs a result with its history record ID.
type ComputeResponse struct {
	Slug     string       `json:"slug"`
	RecordID string       `json:"record_id,omitempty"`
	Result   *calc.Result `json:"result"`
}

// BatchRequest is the body for POST /api/v1/batch.
type BatchRequest struct {
	Items []BatchItem `json:"items"`
}

// BatchItem is one calculation within a batch.
type BatchItem struct {
	Slug   string         `json:"slug"`
	Inputs map[string]any `json:"inputs"`
}

// BatchEntry is the outcome of one batch item, success or failure.
type BatchEntry struct {
	Slug   string       `json:"slug"`
	Result *calc.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// DescribeResponse is the full description of a calculator.
type DescribeResponse struct {
	Info   calc.Info   `json:"info"`
	Schema calc.Schema `json:"schema"`
	Guide  calc.Guide  `json:"guide"`
}

// CategoryEntry summarises one category for GET /api/v1/categories.
type CategoryEntry struct {
	Category calc.Category `json:"category"`
	Count    int           `json:"count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":      "ok",
			"version":     s.version,
			"calculators": s.registry.Count(),
			"ws_clients":  s.wsHub.ClientCount(),
		},
	})
}

func (s *Server) handleListCalculators(w http.ResponseWriter, r *http.Request) {
	category := calc.Category(r.URL.Query().Get("category"))
	if category != "" {
		if _, ok := s.registry.CategoryCounts()[category]; !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("unknown category: %s", category))
			return
		}
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.registry.List(category),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	counts := s.registry.CategoryCounts()
	entries := make([]CategoryEntry, 0, len(counts))
	for _, cat := range calc.Categories() {
		if n, ok := counts[cat]; ok {
			entries = append(entries, CategoryEntry{Category: cat, Count: n})
		}
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    entries,
	})
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: DescribeResponse{
			Info:   c.Info(),
			Schema: c.Schema(),
			Guide:  c.Guide(),
		},
	})
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	info := c.Info()

	// Results are deterministic, so identical submissions hit the cache.
	key := cacheKey(info.Slug, req.Inputs)
	if cached, hit := s.cache.Get(key); hit {
		writeJSON(w, http.StatusOK, APIResponse{
			Success: true,
			Data:    cached.(ComputeResponse),
		})
		return
	}

	result, err := calc.Evaluate(r.Context(), c, req.Inputs)
	if err != nil {
		writeComputeError(w, err)
		return
	}

	rec := history.NewRecord(info, req.Inputs, result)
	if err := s.store.Add(r.Context(), rec); err != nil {
		// History is best effort; the computation still succeeded.
		s.logger.Warn("history add failed", zap.String("slug", info.Slug), zap.Error(err))
		rec.ID = ""
	}

	s.wsHub.Broadcast(WSMessage{
		Type: "calculation_complete",
		Data: map[string]interface{}{
			"slug":      info.Slug,
			"category":  info.Category,
			"record_id": rec.ID,
		},
	})

	resp := ComputeResponse{Slug: info.Slug, RecordID: rec.ID, Result: result}
	s.cache.Set(key, resp)

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    resp,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := calc.Evaluate(r.Context(), c, req.Inputs)
	if err != nil {
		writeComputeError(w, err)
		return
	}

	info := c.Info()
	var buf bytes.Buffer
	if err := export.Workbook(&buf, info, req.Inputs, result); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("%s-%s.xlsx", info.Slug, time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "items is required")
		return
	}
	if len(req.Items) > maxBatchSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch size %d exceeds limit %d", len(req.Items), maxBatchSize))
		return
	}

	entries := make([]BatchEntry, len(req.Items))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(batchConcurrency)

	for i, item := range req.Items {
		g.Go(func() error {
			entries[i] = BatchEntry{Slug: item.Slug}
			c, err := s.registry.Get(item.Slug)
			if err != nil {
				entries[i].Error = err.Error()
				return nil
			}
			result, err := calc.Evaluate(ctx, c, item.Inputs)
			if err != nil {
				entries[i].Error = err.Error()
				return nil
			}
			entries[i].Result = result
			return nil
		})
	}
	// Per-item failures land in the entry; only context cancellation
	// aborts the batch.
	if err := g.Wait(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    entries,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		n, err := strconv.Atoi(ls)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    recs,
	})
}

func (s *Server) handleHistoryByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if err == history.ErrNotFound {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no record with id %s", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    rec,
	})
}

// handleGetConfig returns the running configuration. Nothing in it is
// sensitive; redis credentials are not supported in the address form.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.cfg,
	})
}

// ============================================================
// Helpers
// ============================================================

// lookup resolves the slug route parameter, writing the 404 itself.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (calc.Calculator, bool) {
	slug := chi.URLParam(r, "slug")
	c, err := s.registry.Get(slug)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return c, true
}

// writeComputeError maps evaluation failures onto status codes:
// validation problems are the client's to fix (422), anything else from
// a compute is a domain rejection of valid-shaped input (400).
func writeComputeError(w http.ResponseWriter, err error) {
	if verr, ok := calc.AsValidationError(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, APIResponse{
			Success: false,
			Error:   "validation failed",
			Fields:  verr.Fields,
		})
		return
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// cacheKey hashes the slug and canonical JSON of the inputs.
func cacheKey(slug string, inputs map[string]any) string {
	payload, err := json.Marshal(inputs)
	if err != nil {
		payload = []byte(fmt.Sprintf("%v", inputs))
	}
	sum := sha256.Sum256(append([]byte(slug+"\x00"), payload...))
	return hex.EncodeToString(sum[:16])
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
