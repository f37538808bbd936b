package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ard-guilherme/looper-reports/internal/api/validation"
	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/internal/service"
	"github.com/ard-guilherme/looper-reports/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// StudentHandler handles student endpoints.
type StudentHandler struct {
	studentService service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Create handles POST /v1/students
// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param body body domain.CreateStudentRequest true "Student data"
// @Success 201 {object} domain.StudentResponse "Created student"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation error"
// @Router /students [post]
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request validation failed", fieldErrors).Write(w)
		return
	}

	student, err := h.studentService.Create(r.Context(), req)
	if err != nil {
		problem.InternalError("Failed to create student").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(student.ToResponse())
}

// GetByID handles GET /v1/students/{studentId}
// @Summary Get a student by ID
// @Tags students
// @Produce json
// @Param studentId path string true "Student UUID" format(uuid)
// @Success 200 {object} domain.StudentResponse "Student"
// @Failure 400 {object} problem.Problem "Invalid student ID"
// @Failure 404 {object} problem.Problem "Student not found"
// @Router /students/{studentId} [get]
func (h *StudentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentId"))
	if err != nil {
		problem.BadRequest("Invalid student ID format").Write(w)
		return
	}

	student, err := h.studentService.GetByID(r.Context(), studentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Student not found").Write(w)
			return
		}
		problem.InternalError("Failed to load student").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(student.ToResponse())
}
