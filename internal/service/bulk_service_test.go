package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/google/uuid"
)

func TestBulkService_RunAll(t *testing.T) {
	t.Run("runs every active student despite failures", func(t *testing.T) {
		students := []domain.Student{
			{ID: uuid.New(), Name: "Maria Souza", Active: true},
			{ID: uuid.New(), Name: "João Pereira", Active: true},
			{ID: uuid.New(), Name: "Ana Lima", Active: true},
		}
		failing := students[1].ID

		studentRepo := &MockStudentRepository{
			listActiveFunc: func(context.Context) ([]domain.Student, error) {
				return students, nil
			},
		}

		var mu sync.Mutex
		seen := make(map[uuid.UUID]bool)
		reports := &MockReportService{
			generateFunc: func(_ context.Context, studentID uuid.UUID) (string, error) {
				mu.Lock()
				seen[studentID] = true
				mu.Unlock()
				if studentID == failing {
					return "", errors.New("boom")
				}
				return "<html></html>", nil
			},
		}

		result, err := NewBulkService(studentRepo, reports).RunAll(context.Background())
		if err != nil {
			t.Fatalf("RunAll() error = %v", err)
		}

		if result.Total != 3 || result.Succeeded != 2 || result.Failed != 1 {
			t.Errorf("result = %+v, want total 3, succeeded 2, failed 1", result)
		}
		for _, student := range students {
			if !seen[student.ID] {
				t.Errorf("student %s never ran", student.ID)
			}
		}
	})

	t.Run("no active students", func(t *testing.T) {
		studentRepo := &MockStudentRepository{}
		result, err := NewBulkService(studentRepo, &MockReportService{}).RunAll(context.Background())
		if err != nil {
			t.Fatalf("RunAll() error = %v", err)
		}
		if result.Total != 0 || result.Succeeded != 0 || result.Failed != 0 {
			t.Errorf("result = %+v, want all zeros", result)
		}
	})

	t.Run("listing failure propagates", func(t *testing.T) {
		listErr := errors.New("db down")
		studentRepo := &MockStudentRepository{
			listActiveFunc: func(context.Context) ([]domain.Student, error) {
				return nil, listErr
			},
		}
		_, err := NewBulkService(studentRepo, &MockReportService{}).RunAll(context.Background())
		if !errors.Is(err, listErr) {
			t.Fatalf("error = %v, want listing error", err)
		}
	})
}
