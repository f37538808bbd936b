package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ard-guilherme/looper-reports/internal/api/validation"
	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/internal/service"
	"github.com/ard-guilherme/looper-reports/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CheckinHandler handles daily check-in endpoints.
type CheckinHandler struct {
	checkinService service.CheckinService
}

// NewCheckinHandler creates a new CheckinHandler.
func NewCheckinHandler(checkinService service.CheckinService) *CheckinHandler {
	return &CheckinHandler{checkinService: checkinService}
}

// Create handles POST /v1/students/{studentId}/checkins
// @Summary Record a daily check-in
// @Tags checkins
// @Accept json
// @Produce json
// @Param studentId path string true "Student UUID" format(uuid)
// @Param body body domain.CreateCheckinRequest true "Check-in data"
// @Success 201 {object} domain.Checkin "Created check-in"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Student not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Router /students/{studentId}/checkins [post]
func (h *CheckinHandler) Create(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentId"))
	if err != nil {
		problem.BadRequest("Invalid student ID format").Write(w)
		return
	}

	var req domain.CreateCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request validation failed", fieldErrors).Write(w)
		return
	}

	checkin, err := h.checkinService.Create(r.Context(), studentID, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Student not found").Write(w)
			return
		}
		problem.InternalError("Failed to create check-in").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(checkin)
}

// List handles GET /v1/students/{studentId}/checkins
// @Summary List a student's check-ins
// @Description List check-ins newest first with cursor pagination and optional date bounds.
// @Tags checkins
// @Produce json
// @Param studentId path string true "Student UUID" format(uuid)
// @Param from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param cursor query string false "Pagination cursor from a previous response"
// @Param limit query integer false "Page size" default(20) maximum(100)
// @Success 200 {object} domain.CheckinListResponse "Check-in page"
// @Failure 400 {object} problem.Problem "Invalid student ID"
// @Failure 404 {object} problem.Problem "Student not found"
// @Router /students/{studentId}/checkins [get]
func (h *CheckinHandler) List(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentId"))
	if err != nil {
		problem.BadRequest("Invalid student ID format").Write(w)
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	filter := domain.CheckinFilter{
		From:   q.Get("from"),
		To:     q.Get("to"),
		Cursor: q.Get("cursor"),
		Limit:  limit,
	}

	resp, err := h.checkinService.List(r.Context(), studentID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Student not found").Write(w)
			return
		}
		problem.InternalError("Failed to list check-ins").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
