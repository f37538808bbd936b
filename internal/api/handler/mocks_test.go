package handler

import (
	"context"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/internal/langfuse"
	"github.com/ard-guilherme/looper-reports/internal/service"
	"github.com/google/uuid"
)

// MockStudentService is a mock implementation of StudentService
type MockStudentService struct {
	createFunc  func(ctx context.Context, req domain.CreateStudentRequest) (*domain.Student, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Student, error)
}

func (m *MockStudentService) Create(ctx context.Context, req domain.CreateStudentRequest) (*domain.Student, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Student{ID: uuid.New(), Name: req.Name, Email: req.Email, Active: true}, nil
}

func (m *MockStudentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockCheckinService is a mock implementation of CheckinService
type MockCheckinService struct {
	createFunc func(ctx context.Context, studentID uuid.UUID, req domain.CreateCheckinRequest) (*domain.Checkin, error)
	listFunc   func(ctx context.Context, studentID uuid.UUID, filter domain.CheckinFilter) (*domain.CheckinListResponse, error)
}

func (m *MockCheckinService) Create(ctx context.Context, studentID uuid.UUID, req domain.CreateCheckinRequest) (*domain.Checkin, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, studentID, req)
	}
	return &domain.Checkin{
		ID:          uuid.New(),
		StudentID:   studentID,
		CheckinDate: req.CheckinDate,
		Nutrition:   req.Nutrition,
		Sleep:       req.Sleep,
		Training:    req.Training,
	}, nil
}

func (m *MockCheckinService) List(ctx context.Context, studentID uuid.UUID, filter domain.CheckinFilter) (*domain.CheckinListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, studentID, filter)
	}
	return &domain.CheckinListResponse{
		Data:       []domain.Checkin{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	generateFunc func(ctx context.Context, studentID uuid.UUID) (string, error)
	latestFunc   func(ctx context.Context, studentID uuid.UUID) (*domain.Report, error)
}

func (m *MockReportService) GenerateForStudent(ctx context.Context, studentID uuid.UUID) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, studentID)
	}
	return "<html><body>relatório</body></html>", nil
}

func (m *MockReportService) LatestForStudent(ctx context.Context, studentID uuid.UUID) (*domain.Report, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, studentID)
	}
	return nil, domain.ErrNotFound
}

// MockBulkService is a mock implementation of BulkService
type MockBulkService struct {
	runAllFunc func(ctx context.Context) (service.BulkResult, error)
	started    chan struct{}
}

func (m *MockBulkService) RunAll(ctx context.Context) (service.BulkResult, error) {
	if m.started != nil {
		close(m.started)
	}
	if m.runAllFunc != nil {
		return m.runAllFunc(ctx)
	}
	return service.BulkResult{}, nil
}

// MockLangfuseClient records scores created through it.
type MockLangfuseClient struct {
	scores []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return true }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}
