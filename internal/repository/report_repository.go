package repository

import (
	"context"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	// Create persists a new report row. Reports are append-only; there is
	// no update or delete path.
	Create(ctx context.Context, report *domain.Report) error
	// ListRecent returns the most recent reports for a student, newest
	// first, limited to n rows.
	ListRecent(ctx context.Context, studentID uuid.UUID, n int) ([]domain.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) ListRecent(ctx context.Context, studentID uuid.UUID, n int) ([]domain.Report, error) {
	if n <= 0 {
		n = 1
	}
	var reports []domain.Report
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("generated_at DESC").
		Limit(n).
		Find(&reports).Error
	return reports, err
}
