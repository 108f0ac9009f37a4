// internal/handlers/assortment.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
)

// AssortmentHandler handles assortment-related HTTP requests
type AssortmentHandler struct {
	service ports.AssortmentService
	logger  *slog.Logger
}

// NewAssortmentHandler creates a new assortment handler
func NewAssortmentHandler(service ports.AssortmentService, logger *slog.Logger) *AssortmentHandler {
	return &AssortmentHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "assortment")),
	}
}

// CreateAssortmentRequest is the JSON payload for creating an assortment.
type CreateAssortmentRequest struct {
	WineIDs []int64 `json:"wine_ids"`
}

// CreateAssortment handles POST /api/v1/assortments
func (h *AssortmentHandler) CreateAssortment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAssortmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.WineIDs) == 0 {
		h.respondError(w, http.StatusBadRequest, "wine_ids is required")
		return
	}

	assortment, err := h.service.CreateAssortment(ctx, req.WineIDs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyInAssortment), errors.Is(err, domain.ErrYearMismatch):
			h.respondError(w, http.StatusConflict, err.Error())
		case strings.Contains(err.Error(), "not found"):
			h.respondError(w, http.StatusNotFound, err.Error())
		default:
			h.logger.ErrorContext(ctx, "failed to create assortment",
				slog.String("error", err.Error()))
			h.respondError(w, http.StatusInternalServerError, "Failed to create assortment")
		}
		return
	}

	h.respondJSON(w, http.StatusCreated, assortment)
}

// GetAssortment handles GET /api/v1/assortments/{id}
func (h *AssortmentHandler) GetAssortment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid assortment ID format")
		return
	}

	assortment, err := h.service.GetAssortment(ctx, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.respondError(w, http.StatusNotFound, "Assortment not found")
			return
		}

		h.logger.ErrorContext(ctx, "failed to get assortment",
			slog.Int64("ano", id),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve assortment")
		return
	}

	h.respondJSON(w, http.StatusOK, assortment)
}

// ListAssortments handles GET /api/v1/assortments
func (h *AssortmentHandler) ListAssortments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assortments, err := h.service.ListAssortments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list assortments",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list assortments")
		return
	}

	if assortments == nil {
		assortments = []*domain.Assortment{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"assortments": assortments,
		"count":       len(assortments),
	})
}

// DeleteAssortment handles DELETE /api/v1/assortments/{id}
func (h *AssortmentHandler) DeleteAssortment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid assortment ID format")
		return
	}

	deleted, err := h.service.DeleteAssortment(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete assortment",
			slog.Int64("ano", id),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete assortment")
		return
	}

	if !deleted {
		h.respondError(w, http.StatusNotFound, "Assortment not found")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
		"id":      id,
	})
}

// RemoveWine handles DELETE /api/v1/assortments/wines/{id}, unlinking the
// wine from whatever assortment holds it.
func (h *AssortmentHandler) RemoveWine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	wineID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid wine ID format")
		return
	}

	removed, err := h.service.RemoveWineFromAssortment(ctx, wineID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to remove wine from assortment",
			slog.Int64("wno", wineID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to remove wine")
		return
	}

	if !removed {
		h.respondError(w, http.StatusNotFound, "Wine is not in any assortment")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"removed": true,
		"id":      wineID,
	})
}

func (h *AssortmentHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (h *AssortmentHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
