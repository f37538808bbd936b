package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/internal/langfuse"
	"github.com/ard-guilherme/looper-reports/internal/llm"
	"github.com/ard-guilherme/looper-reports/internal/service"
	"github.com/ard-guilherme/looper-reports/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// ReportHandler handles report generation and retrieval endpoints.
type ReportHandler struct {
	reportService  service.ReportService
	bulkService    service.BulkService
	langfuseClient langfuse.Client
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, bulkService service.BulkService, langfuseClient langfuse.Client) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		bulkService:    bulkService,
		langfuseClient: langfuseClient,
	}
}

// Generate handles POST /v1/reports/generate/{studentId}
// @Summary Generate a weekly report
// @Description Run the full report pipeline for one student and return the assembled HTML.
// @Tags reports
// @Produce html
// @Param studentId path string true "Student UUID" format(uuid)
// @Success 200 {string} string "Report HTML"
// @Failure 400 {object} problem.Problem "Invalid student ID"
// @Failure 404 {object} problem.Problem "Student not found"
// @Failure 502 {object} problem.Problem "Generation backend error"
// @Failure 503 {object} problem.Problem "Generation backend not configured"
// @Failure 504 {object} problem.Problem "Generation backend timeout"
// @Router /reports/generate/{studentId} [post]
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentId"))
	if err != nil {
		problem.BadRequest("Invalid student ID format").Write(w)
		return
	}

	html, err := h.reportService.GenerateForStudent(r.Context(), studentID)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	// Expose the trace ID so feedback can be linked back to this run
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		w.Header().Set("X-Trace-ID", span.SpanContext().TraceID().String())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// GenerateBulk handles POST /v1/reports/generate-bulk
// @Summary Generate reports for every active student
// @Description Kick off a background run of the report pipeline for all active students.
// @Tags reports
// @Produce json
// @Success 202 {object} map[string]string "Run accepted"
// @Router /reports/generate-bulk [post]
func (h *ReportHandler) GenerateBulk(w http.ResponseWriter, r *http.Request) {
	// The run outlives the request; detach it from the request context.
	go func() {
		if _, err := h.bulkService.RunAll(context.Background()); err != nil {
			log.Printf("[bulk] run aborted: %v", err)
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"status": "accepted"})
}

// GetLatest handles GET /v1/students/{studentId}/reports/latest
// @Summary Get the latest persisted report
// @Tags reports
// @Produce html
// @Param studentId path string true "Student UUID" format(uuid)
// @Success 200 {string} string "Report HTML"
// @Failure 400 {object} problem.Problem "Invalid student ID"
// @Failure 404 {object} problem.Problem "Student or report not found"
// @Router /students/{studentId}/reports/latest [get]
func (h *ReportHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentId"))
	if err != nil {
		problem.BadRequest("Invalid student ID format").Write(w)
		return
	}

	report, err := h.reportService.LatestForStudent(r.Context(), studentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No report found for student").Write(w)
			return
		}
		problem.InternalError("Failed to load report").Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(report.HTML))
}

// FeedbackRequest is the request body for report feedback.
// @Description Request body for rating a generated report.
type FeedbackRequest struct {
	// Trace ID from the X-Trace-ID response header
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"Relatório muito claro!"`
}

// PostFeedback handles POST /v1/reports/feedback
// @Summary Submit feedback on a generated report
// @Tags reports
// @Accept json
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /reports/feedback [post]
func (h *ReportHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Errors are logged inside the client; feedback is always accepted.
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "coach_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

// writeGenerationError maps pipeline errors onto problem responses.
func writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Student not found").Write(w)
	case errors.Is(err, llm.ErrGenerationUnavailable):
		problem.ServiceUnavailable("Generation backend is not configured").Write(w)
	case errors.Is(err, llm.ErrGenerationTimeout):
		problem.GatewayTimeout("Generation backend timed out").Write(w)
	case errors.Is(err, llm.ErrGenerationRequest), errors.Is(err, llm.ErrGenerationResponse):
		problem.BadGateway("Generation backend request failed").Write(w)
	default:
		problem.InternalError("Failed to generate report").Write(w)
	}
}
