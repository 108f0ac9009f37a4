// internal/handlers/assortment_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/handlers"
	"github.com/lilithmonodia/winestock-be/test/helpers"
	"github.com/lilithmonodia/winestock-be/test/mocks"
)

func setupAssortmentHandler(t *testing.T) (*handlers.AssortmentHandler, *mocks.MockAssortmentService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockAssortmentService(ctrl)
	handler := handlers.NewAssortmentHandler(service, helpers.TestLogger())

	return handler, service
}

func TestAssortmentHandler_CreateAssortment(t *testing.T) {
	t.Run("creates_assortment", func(t *testing.T) {
		handler, service := setupAssortmentHandler(t)

		assortment := domain.NewAssortment()
		assortment.SetID(10)
		service.EXPECT().CreateAssortment(gomock.Any(), []int64{1, 2}).Return(assortment, nil)

		payload, _ := json.Marshal(handlers.CreateAssortmentRequest{WineIDs: []int64{1, 2}})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assortments", bytes.NewReader(payload))
		rec := httptest.NewRecorder()

		handler.CreateAssortment(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("empty_wine_ids", func(t *testing.T) {
		handler, _ := setupAssortmentHandler(t)

		payload, _ := json.Marshal(handlers.CreateAssortmentRequest{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assortments", bytes.NewReader(payload))
		rec := httptest.NewRecorder()

		handler.CreateAssortment(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("year_mismatch_maps_to_conflict", func(t *testing.T) {
		handler, service := setupAssortmentHandler(t)

		service.EXPECT().CreateAssortment(gomock.Any(), []int64{1, 2}).
			Return(nil, fmt.Errorf("cannot add wine 2: %w", domain.ErrYearMismatch))

		payload, _ := json.Marshal(handlers.CreateAssortmentRequest{WineIDs: []int64{1, 2}})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assortments", bytes.NewReader(payload))
		rec := httptest.NewRecorder()

		handler.CreateAssortment(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("member_already_assigned_maps_to_conflict", func(t *testing.T) {
		handler, service := setupAssortmentHandler(t)

		service.EXPECT().CreateAssortment(gomock.Any(), []int64{1}).
			Return(nil, fmt.Errorf("cannot add wine 1: %w", domain.ErrAlreadyInAssortment))

		payload, _ := json.Marshal(handlers.CreateAssortmentRequest{WineIDs: []int64{1}})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assortments", bytes.NewReader(payload))
		rec := httptest.NewRecorder()

		handler.CreateAssortment(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing_wine_maps_to_404", func(t *testing.T) {
		handler, service := setupAssortmentHandler(t)

		service.EXPECT().CreateAssortment(gomock.Any(), []int64{99}).
			Return(nil, fmt.Errorf("wine not found: %d", 99))

		payload, _ := json.Marshal(handlers.CreateAssortmentRequest{WineIDs: []int64{99}})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assortments", bytes.NewReader(payload))
		rec := httptest.NewRecorder()

		handler.CreateAssortment(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAssortmentHandler_GetAssortment(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		handler, service := setupAssortmentHandler(t)

		service.EXPECT().GetAssortment(gomock.Any(), int64(99)).
			Return(nil, fmt.Errorf("assortment not found: %d", 99))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/assortments/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()

		handler.GetAssortment(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAssortmentHandler_ListAssortments(t *testing.T) {
	t.Run("empty_result_encodes_as_empty_array", func(t *testing.T) {
		handler, service := setupAssortmentHandler(t)

		service.EXPECT().ListAssortments(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/assortments", nil)
		rec := httptest.NewRecorder()

		handler.ListAssortments(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"assortments":[]`)
	})
}

func TestAssortmentHandler_DeleteAssortment(t *testing.T) {
	t.Run("absent_assortment_maps_to_404", func(t *testing.T) {
		handler, service := setupAssortmentHandler(t)

		service.EXPECT().DeleteAssortment(gomock.Any(), int64(99)).Return(false, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/assortments/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()

		handler.DeleteAssortment(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAssortmentHandler_RemoveWine(t *testing.T) {
	t.Run("removes_member", func(t *testing.T) {
		handler, service := setupAssortmentHandler(t)

		service.EXPECT().RemoveWineFromAssortment(gomock.Any(), int64(3)).Return(true, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/assortments/wines/3", nil)
		req.SetPathValue("id", "3")
		rec := httptest.NewRecorder()

		handler.RemoveWine(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"removed":true`)
	})

	t.Run("non_member_maps_to_404", func(t *testing.T) {
		handler, service := setupAssortmentHandler(t)

		service.EXPECT().RemoveWineFromAssortment(gomock.Any(), int64(3)).Return(false, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/assortments/wines/3", nil)
		req.SetPathValue("id", "3")
		rec := httptest.NewRecorder()

		handler.RemoveWine(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
