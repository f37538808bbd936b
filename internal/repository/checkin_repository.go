package repository

import (
	"context"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckinRepository interface {
	Create(ctx context.Context, checkin *domain.Checkin) error
	// ListByDateRange returns check-ins whose date key falls inside the
	// inclusive [from, to] ISO-date range, oldest first.
	ListByDateRange(ctx context.Context, studentID uuid.UUID, from, to string) ([]domain.Checkin, error)
	List(ctx context.Context, studentID uuid.UUID, filter domain.CheckinFilter) ([]domain.Checkin, error)
}

type checkinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) CheckinRepository {
	return &checkinRepository{db: db}
}

func (r *checkinRepository) Create(ctx context.Context, checkin *domain.Checkin) error {
	return r.db.WithContext(ctx).Create(checkin).Error
}

func (r *checkinRepository) ListByDateRange(ctx context.Context, studentID uuid.UUID, from, to string) ([]domain.Checkin, error) {
	var checkins []domain.Checkin
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Where("checkin_date >= ?", from).
		Where("checkin_date <= ?", to).
		Order("checkin_date ASC").
		Find(&checkins).Error
	return checkins, err
}

func (r *checkinRepository) List(ctx context.Context, studentID uuid.UUID, filter domain.CheckinFilter) ([]domain.Checkin, error) {
	query := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("checkin_date DESC")

	if filter.From != "" {
		query = query.Where("checkin_date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("checkin_date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: records strictly older than the cursor,
			// breaking ties on id.
			query = query.Where(
				"(checkin_date < ?) OR (checkin_date = ? AND id < ?)",
				cursor.CheckinDate, cursor.CheckinDate, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var checkins []domain.Checkin
	if err := query.Find(&checkins).Error; err != nil {
		return nil, err
	}

	return checkins, nil
}
