package service

import (
	"context"
	"sync"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/internal/events"
	"github.com/ard-guilherme/looper-reports/internal/langfuse"
	"github.com/google/uuid"
)

// MockStudentRepository is a mock implementation of repository.StudentRepository
type MockStudentRepository struct {
	getByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	existsFunc     func(ctx context.Context, id uuid.UUID) (bool, error)
	listActiveFunc func(ctx context.Context) ([]domain.Student, error)
}

func (m *MockStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	return nil
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Student{ID: id, Name: "Maria Souza", Active: true}, nil
}

func (m *MockStudentRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockStudentRepository) ListActive(ctx context.Context) ([]domain.Student, error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(ctx)
	}
	return nil, nil
}

// MockCheckinRepository is a mock implementation of repository.CheckinRepository
type MockCheckinRepository struct {
	listByDateRangeFunc func(ctx context.Context, studentID uuid.UUID, from, to string) ([]domain.Checkin, error)
	listFunc            func(ctx context.Context, studentID uuid.UUID, filter domain.CheckinFilter) ([]domain.Checkin, error)
}

func (m *MockCheckinRepository) Create(ctx context.Context, checkin *domain.Checkin) error {
	return nil
}

func (m *MockCheckinRepository) ListByDateRange(ctx context.Context, studentID uuid.UUID, from, to string) ([]domain.Checkin, error) {
	if m.listByDateRangeFunc != nil {
		return m.listByDateRangeFunc(ctx, studentID, from, to)
	}
	return nil, nil
}

func (m *MockCheckinRepository) List(ctx context.Context, studentID uuid.UUID, filter domain.CheckinFilter) ([]domain.Checkin, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, studentID, filter)
	}
	return nil, nil
}

// MockMacroGoalRepository is a mock implementation of repository.MacroGoalRepository
type MockMacroGoalRepository struct {
	getActiveFunc func(ctx context.Context, studentID uuid.UUID) (*domain.MacroGoal, error)
}

func (m *MockMacroGoalRepository) Create(ctx context.Context, goal *domain.MacroGoal) error {
	return nil
}

func (m *MockMacroGoalRepository) GetActive(ctx context.Context, studentID uuid.UUID) (*domain.MacroGoal, error) {
	if m.getActiveFunc != nil {
		return m.getActiveFunc(ctx, studentID)
	}
	return nil, nil
}

// MockReportRepository is a mock implementation of repository.ReportRepository
// that records created rows in memory.
type MockReportRepository struct {
	mu         sync.Mutex
	created    []*domain.Report
	createFunc func(ctx context.Context, report *domain.Report) error
	listRecent func(ctx context.Context, studentID uuid.UUID, n int) ([]domain.Report, error)
}

func (m *MockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, report)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	report.ID = uuid.New()
	m.created = append(m.created, report)
	return nil
}

func (m *MockReportRepository) ListRecent(ctx context.Context, studentID uuid.UUID, n int) ([]domain.Report, error) {
	if m.listRecent != nil {
		return m.listRecent(ctx, studentID, n)
	}
	return nil, nil
}

func (m *MockReportRepository) CreatedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

// MockPublisher is a mock implementation of events.Publisher
type MockPublisher struct {
	mu        sync.Mutex
	published []events.ReportGenerated
}

func (m *MockPublisher) PublishReportGenerated(ctx context.Context, event events.ReportGenerated) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, event)
	return nil
}

func (m *MockPublisher) Close() error { return nil }

func (m *MockPublisher) PublishedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.published)
}

// MockLangfuseClient is a no-op langfuse.Client for tests.
type MockLangfuseClient struct{}

func (MockLangfuseClient) IsEnabled() bool { return false }

func (MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	return nil
}

// MockReportService is a mock implementation of ReportService for bulk tests.
type MockReportService struct {
	generateFunc func(ctx context.Context, studentID uuid.UUID) (string, error)
}

func (m *MockReportService) GenerateForStudent(ctx context.Context, studentID uuid.UUID) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, studentID)
	}
	return "<html></html>", nil
}

func (m *MockReportService) LatestForStudent(ctx context.Context, studentID uuid.UUID) (*domain.Report, error) {
	return nil, domain.ErrNotFound
}
