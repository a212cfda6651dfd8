package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"donation_backend/internal/feature/donations/domain/entity"
	"donation_backend/internal/feature/donations/usecase"
)

// mockDonationUsecase is a mock implementation of the DonationUsecase interface.
type mockDonationUsecase struct {
	CreateFunc func(ctx context.Context, d *entity.Donation) (uint, error)
	ListFunc   func(ctx context.Context) ([]entity.Donation, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Donation, error)
	DeleteFunc func(ctx context.Context, id uint) (int64, error)
}

func (m *mockDonationUsecase) Create(ctx context.Context, d *entity.Donation) (uint, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return 1, nil
}

func (m *mockDonationUsecase) List(ctx context.Context) ([]entity.Donation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockDonationUsecase) Get(ctx context.Context, id uint) (*entity.Donation, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrNotFound
}

func (m *mockDonationUsecase) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, nil
}

// newTestRouter wires the handler routes the same way the production router does.
func newTestRouter(uc DonationUsecase) *gin.Engine {
	handler := NewDonationHandler(uc)
	router := gin.New()
	router.POST("/donation", handler.Create)
	router.GET("/donation", handler.List)
	router.GET("/donation/:id", handler.Get)
	router.DELETE("/donation/:id", handler.Delete)
	return router
}

func TestDonationHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: returns inserted id", func(t *testing.T) {
		mockUC := &mockDonationUsecase{
			CreateFunc: func(ctx context.Context, d *entity.Donation) (uint, error) {
				assert.Equal(t, "Winter Campaign", d.Title)
				assert.Equal(t, int64(5000), d.Amount)
				return 42, nil
			},
		}
		router := newTestRouter(mockUC)

		body, _ := json.Marshal(gin.H{
			"image":       "https://example.com/winter.png",
			"title":       "Winter Campaign",
			"category":    "clothing",
			"amount":      5000,
			"description": "Warm clothes for the winter season",
		})
		req, _ := http.NewRequest(http.MethodPost, "/donation", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, true, responseBody["success"])
		assert.Equal(t, "Successfully donation create!", responseBody["message"])
		result := responseBody["result"].(map[string]any)
		assert.Equal(t, float64(42), result["insertedId"])
	})

	t.Run("failure: malformed body", func(t *testing.T) {
		router := newTestRouter(&mockDonationUsecase{})

		req, _ := http.NewRequest(http.MethodPost, "/donation", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failure: usecase error", func(t *testing.T) {
		mockUC := &mockDonationUsecase{
			CreateFunc: func(ctx context.Context, d *entity.Donation) (uint, error) {
				return 0, errors.New("db down")
			},
		}
		router := newTestRouter(mockUC)

		body, _ := json.Marshal(gin.H{
			"image":       "https://example.com/x.png",
			"title":       "X",
			"category":    "misc",
			"amount":      1,
			"description": "x",
		})
		req, _ := http.NewRequest(http.MethodPost, "/donation", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDonationHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: existing donation", func(t *testing.T) {
		mockUC := &mockDonationUsecase{
			GetFunc: func(ctx context.Context, id uint) (*entity.Donation, error) {
				assert.Equal(t, uint(7), id)
				return &entity.Donation{ID: 7, Title: "Food Drive", Amount: 1200}, nil
			},
		}
		router := newTestRouter(mockUC)

		req, _ := http.NewRequest(http.MethodGet, "/donation/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		data := responseBody["data"].(map[string]any)
		assert.Equal(t, "Food Drive", data["title"])
	})

	t.Run("failure: not found returns 404", func(t *testing.T) {
		router := newTestRouter(&mockDonationUsecase{}) // default Get returns ErrNotFound

		req, _ := http.NewRequest(http.MethodGet, "/donation/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, false, responseBody["success"])
		assert.Equal(t, "donation not found", responseBody["message"])
	})

	t.Run("failure: non-numeric id returns 400", func(t *testing.T) {
		router := newTestRouter(&mockDonationUsecase{})

		req, _ := http.NewRequest(http.MethodGet, "/donation/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDonationHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: existing donation", func(t *testing.T) {
		mockUC := &mockDonationUsecase{
			DeleteFunc: func(ctx context.Context, id uint) (int64, error) {
				assert.Equal(t, uint(7), id)
				return 1, nil
			},
		}
		router := newTestRouter(mockUC)

		req, _ := http.NewRequest(http.MethodDelete, "/donation/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		result := responseBody["result"].(map[string]any)
		assert.Equal(t, float64(1), result["deletedCount"])
	})

	t.Run("success: missing donation is idempotent", func(t *testing.T) {
		router := newTestRouter(&mockDonationUsecase{}) // default Delete returns 0

		req, _ := http.NewRequest(http.MethodDelete, "/donation/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Deleting an absent record is not an error, the count just reports 0
		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, true, responseBody["success"])
		result := responseBody["result"].(map[string]any)
		assert.Equal(t, float64(0), result["deletedCount"])
	})
}

func TestDonationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockDonationUsecase{
		ListFunc: func(ctx context.Context) ([]entity.Donation, error) {
			return []entity.Donation{
				{ID: 1, Title: "Food Drive"},
				{ID: 2, Title: "Winter Campaign"},
			}, nil
		},
	}
	router := newTestRouter(mockUC)

	req, _ := http.NewRequest(http.MethodGet, "/donation", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var responseBody gin.H
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
	data := responseBody["data"].([]any)
	assert.Len(t, data, 2)
}
