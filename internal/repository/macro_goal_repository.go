package repository

import (
	"context"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MacroGoalRepository interface {
	Create(ctx context.Context, goal *domain.MacroGoal) error
	// GetActive returns the student's active macro goals, or nil when none
	// exist. Missing goals are not an error: adherence checks degrade to
	// zero targets.
	GetActive(ctx context.Context, studentID uuid.UUID) (*domain.MacroGoal, error)
}

type macroGoalRepository struct {
	db *gorm.DB
}

func NewMacroGoalRepository(db *gorm.DB) MacroGoalRepository {
	return &macroGoalRepository{db: db}
}

func (r *macroGoalRepository) Create(ctx context.Context, goal *domain.MacroGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *macroGoalRepository) GetActive(ctx context.Context, studentID uuid.UUID) (*domain.MacroGoal, error) {
	var goal domain.MacroGoal
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND active = ?", studentID, true).
		Order("created_at DESC").
		First(&goal).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}
