package service

import (
	"context"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/internal/repository"
	"github.com/google/uuid"
)

type StudentService interface {
	Create(ctx context.Context, req domain.CreateStudentRequest) (*domain.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) Create(ctx context.Context, req domain.CreateStudentRequest) (*domain.Student, error) {
	student := &domain.Student{
		Name:              req.Name,
		Email:             req.Email,
		AdditionalContext: req.AdditionalContext,
		Active:            true,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	return s.repo.GetByID(ctx, id)
}
