// internal/handlers/wine.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
)

// WineHandler handles wine-related HTTP requests
type WineHandler struct {
	service ports.WineService
	logger  *slog.Logger
}

// NewWineHandler creates a new wine handler
func NewWineHandler(service ports.WineService, logger *slog.Logger) *WineHandler {
	return &WineHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "wine")),
	}
}

// GetWine handles GET /api/v1/wines/{id}
func (h *WineHandler) GetWine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid wine ID format")
		return
	}

	wine, err := h.service.GetWine(ctx, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.respondError(w, http.StatusNotFound, "Wine not found")
			return
		}

		h.logger.ErrorContext(ctx, "failed to get wine",
			slog.Int64("wno", id),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve wine")
		return
	}

	h.respondJSON(w, http.StatusOK, wine)
}

// ListWines handles GET /api/v1/wines
func (h *WineHandler) ListWines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseListParams(r)

	result, err := h.service.List(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list wines",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list wines")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// ListUnassigned handles GET /api/v1/wines/unassigned
func (h *WineHandler) ListUnassigned(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	wines, err := h.service.ListUnassigned(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list unassigned wines",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list unassigned wines")
		return
	}

	if wines == nil {
		wines = []*domain.Wine{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"wines": wines,
		"count": len(wines),
	})
}

// CreateWine handles POST /api/v1/wines
func (h *WineHandler) CreateWine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateWineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wine, err := h.service.CreateWine(ctx, req.toParams())
	if err != nil {
		if isValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.logger.ErrorContext(ctx, "failed to create wine",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to create wine")
		return
	}

	h.respondJSON(w, http.StatusCreated, wine)
}

// UpdateWine handles PUT /api/v1/wines/{id}
func (h *WineHandler) UpdateWine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid wine ID format")
		return
	}

	var req CreateWineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wine, err := h.service.UpdateWine(ctx, id, req.toParams())
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.respondError(w, http.StatusNotFound, "Wine not found")
			return
		}
		if isValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.logger.ErrorContext(ctx, "failed to update wine",
			slog.Int64("wno", id),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to update wine")
		return
	}

	h.respondJSON(w, http.StatusOK, wine)
}

// DeleteWine handles DELETE /api/v1/wines/{id}
func (h *WineHandler) DeleteWine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid wine ID format")
		return
	}

	deleted, err := h.service.DeleteWine(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete wine",
			slog.Int64("wno", id),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete wine")
		return
	}

	if !deleted {
		h.respondError(w, http.StatusNotFound, "Wine not found")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
		"id":      id,
	})
}

func (h *WineHandler) parseListParams(r *http.Request) ports.ListParams {
	q := r.URL.Query()

	params := ports.ListParams{
		Search:    q.Get("search"),
		Color:     q.Get("color"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
		Page:      1,
		PageSize:  50,
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	if pageSize, err := strconv.Atoi(q.Get("page_size")); err == nil && pageSize > 0 && pageSize <= 500 {
		params.PageSize = pageSize
	}
	if year, err := strconv.Atoi(q.Get("year")); err == nil {
		params.Year = &year
	}
	if unassigned, err := strconv.ParseBool(q.Get("unassigned")); err == nil {
		params.Unassigned = unassigned
	}

	return params
}

func (h *WineHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (h *WineHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// isValidationError reports whether err stems from domain validation rather
// than infrastructure.
func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidYear) ||
		errors.Is(err, domain.ErrInvalidVolume) ||
		errors.Is(err, domain.ErrInvalidColor) ||
		errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrNegativePrice)
}

// CreateWineRequest is the JSON payload for creating or updating a wine.
type CreateWineRequest struct {
	Name    string          `json:"name"`
	Year    int             `json:"year"`
	Volume  float64         `json:"volume"`
	Color   string          `json:"color"`
	Price   decimal.Decimal `json:"price"`
	Comment string          `json:"comment,omitempty"`
}

func (r CreateWineRequest) toParams() ports.CreateWineParams {
	return ports.CreateWineParams{
		Name:    r.Name,
		Year:    r.Year,
		Volume:  r.Volume,
		Color:   r.Color,
		Price:   r.Price,
		Comment: r.Comment,
	}
}
