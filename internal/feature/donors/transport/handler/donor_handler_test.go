package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"donation_backend/internal/feature/donors/domain/entity"
	"donation_backend/internal/feature/donors/usecase"
	"donation_backend/internal/shared/aggregate"
)

// mockDonorUsecase is a mock implementation of the DonorUsecase interface.
type mockDonorUsecase struct {
	ContributeFunc func(ctx context.Context, in usecase.Contribution) (aggregate.Outcome, error)
	ListFunc       func(ctx context.Context) ([]entity.Donor, error)
	GetFunc        func(ctx context.Context, email string) (*entity.Donor, error)
}

func (m *mockDonorUsecase) Contribute(ctx context.Context, in usecase.Contribution) (aggregate.Outcome, error) {
	if m.ContributeFunc != nil {
		return m.ContributeFunc(ctx, in)
	}
	return aggregate.Created, nil
}

func (m *mockDonorUsecase) List(ctx context.Context) ([]entity.Donor, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockDonorUsecase) Get(ctx context.Context, email string) (*entity.Donor, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, email)
	}
	return nil, usecase.ErrNotFound
}

func newDonorRouter(uc DonorUsecase) *gin.Engine {
	handler := NewDonorHandler(uc)
	router := gin.New()
	router.POST("/donor", handler.Contribute)
	router.GET("/donor", handler.List)
	router.GET("/donor/:email", handler.Get)
	return router
}

func TestDonorHandler_Contribute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		outcome         aggregate.Outcome
		expectedMessage string
	}{
		{
			name:            "first donation creates the aggregate",
			outcome:         aggregate.Created,
			expectedMessage: "You provided a donation successfully!",
		},
		{
			name:            "repeat donation updates the aggregate",
			outcome:         aggregate.Updated,
			expectedMessage: "Donation updated successfully!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockDonorUsecase{
				ContributeFunc: func(ctx context.Context, in usecase.Contribution) (aggregate.Outcome, error) {
					assert.Equal(t, "alice@example.com", in.Email)
					assert.Equal(t, int64(500), in.Amount)
					assert.Equal(t, "For the food drive", in.Post)
					return tt.outcome, nil
				},
			}
			router := newDonorRouter(mockUC)

			body, _ := json.Marshal(gin.H{
				"email":        "alice@example.com",
				"name":         "Alice",
				"image":        "https://example.com/alice.png",
				"amount":       500,
				"donationPost": "For the food drive",
			})
			req, _ := http.NewRequest(http.MethodPost, "/donor", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, true, responseBody["success"])
			assert.Equal(t, tt.expectedMessage, responseBody["message"])
		})
	}

	t.Run("failure: malformed body", func(t *testing.T) {
		router := newDonorRouter(&mockDonorUsecase{})

		req, _ := http.NewRequest(http.MethodPost, "/donor", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDonorHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: existing donor", func(t *testing.T) {
		mockUC := &mockDonorUsecase{
			GetFunc: func(ctx context.Context, email string) (*entity.Donor, error) {
				assert.Equal(t, "alice@example.com", email)
				return &entity.Donor{ID: 1, Email: email, Name: "Alice", Amount: 1500}, nil
			},
		}
		router := newDonorRouter(mockUC)

		req, _ := http.NewRequest(http.MethodGet, "/donor/alice@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		data := responseBody["data"].(map[string]any)
		assert.Equal(t, "Alice", data["name"])
		assert.Equal(t, float64(1500), data["amount"])
	})

	t.Run("failure: unknown donor returns 404", func(t *testing.T) {
		router := newDonorRouter(&mockDonorUsecase{}) // default Get returns ErrNotFound

		req, _ := http.NewRequest(http.MethodGet, "/donor/nobody@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, false, responseBody["success"])
		assert.Equal(t, "donor not found", responseBody["message"])
	})
}

func TestDonorHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockDonorUsecase{
		ListFunc: func(ctx context.Context) ([]entity.Donor, error) {
			return []entity.Donor{
				{ID: 1, Email: "a@example.com", Name: "Alice"},
				{ID: 2, Email: "b@example.com", Name: "Bob"},
			}, nil
		},
	}
	router := newDonorRouter(mockUC)

	req, _ := http.NewRequest(http.MethodGet, "/donor", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var responseBody gin.H
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
	data := responseBody["data"].([]any)
	assert.Len(t, data, 2)
}
