package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/google/uuid"
)

func TestStudentHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid request",
			body:           `{"name": "Maria Souza", "email": "maria@example.com"}`,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{"email": "maria@example.com"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid email",
			body:           `{"name": "Maria Souza", "email": "not-an-email"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStudentHandler(&MockStudentService{})

			req := httptest.NewRequest(http.MethodPost, "/v1/students", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
		})
	}
}

func TestStudentHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		studentID := uuid.New()
		mockService := &MockStudentService{
			getByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Student, error) {
				return &domain.Student{ID: id, Name: "Maria Souza", Active: true}, nil
			},
		}
		h := NewStudentHandler(mockService)

		req := requestWithStudentID(http.MethodGet, "/v1/students/"+studentID.String(), studentID.String())
		rec := httptest.NewRecorder()
		h.GetByID(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp domain.StudentResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.ID != studentID || resp.Name != "Maria Souza" {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		h := NewStudentHandler(&MockStudentService{})

		studentID := uuid.New().String()
		req := requestWithStudentID(http.MethodGet, "/v1/students/"+studentID, studentID)
		rec := httptest.NewRecorder()
		h.GetByID(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		h := NewStudentHandler(&MockStudentService{})

		req := requestWithStudentID(http.MethodGet, "/v1/students/nope", "nope")
		rec := httptest.NewRecorder()
		h.GetByID(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}
