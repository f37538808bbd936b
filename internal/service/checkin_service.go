package service

import (
	"context"
	"fmt"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/internal/repository"
	"github.com/ard-guilherme/looper-reports/pkg/pagination"
	"github.com/google/uuid"
)

type CheckinService interface {
	Create(ctx context.Context, studentID uuid.UUID, req domain.CreateCheckinRequest) (*domain.Checkin, error)
	List(ctx context.Context, studentID uuid.UUID, filter domain.CheckinFilter) (*domain.CheckinListResponse, error)
}

type checkinService struct {
	checkinRepo repository.CheckinRepository
	studentRepo repository.StudentRepository
}

func NewCheckinService(checkinRepo repository.CheckinRepository, studentRepo repository.StudentRepository) CheckinService {
	return &checkinService{checkinRepo: checkinRepo, studentRepo: studentRepo}
}

func (s *checkinService) Create(ctx context.Context, studentID uuid.UUID, req domain.CreateCheckinRequest) (*domain.Checkin, error) {
	exists, err := s.studentRepo.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: student %s", domain.ErrNotFound, studentID)
	}

	checkin := &domain.Checkin{
		StudentID:   studentID,
		CheckinDate: req.CheckinDate,
		Nutrition:   req.Nutrition,
		Sleep:       req.Sleep,
		Training:    req.Training,
	}
	if err := s.checkinRepo.Create(ctx, checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}

func (s *checkinService) List(ctx context.Context, studentID uuid.UUID, filter domain.CheckinFilter) (*domain.CheckinListResponse, error) {
	exists, err := s.studentRepo.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: student %s", domain.ErrNotFound, studentID)
	}

	checkins, err := s.checkinRepo.List(ctx, studentID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(checkins) > limit
	if hasMore {
		checkins = checkins[:limit]
	}

	resp := &domain.CheckinListResponse{
		Data:       checkins,
		Pagination: domain.PaginationResponse{HasMore: hasMore},
	}
	if hasMore {
		last := checkins[len(checkins)-1]
		cursor := pagination.Cursor{ID: last.ID, CheckinDate: last.CheckinDate}
		resp.Pagination.NextCursor = cursor.Encode()
	}
	return resp, nil
}
