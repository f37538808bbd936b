package service

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ard-guilherme/looper-reports/internal/observability"
	"github.com/ard-guilherme/looper-reports/internal/repository"
)

// BulkResult tallies a bulk run after every student has finished.
type BulkResult struct {
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"-"`
}

// BulkService runs the report pipeline for every active student. Students
// are independent: one failure never stops the others, and the run always
// completes with a full tally.
type BulkService interface {
	RunAll(ctx context.Context) (BulkResult, error)
}

type bulkService struct {
	studentRepo repository.StudentRepository
	reports     ReportService
}

func NewBulkService(studentRepo repository.StudentRepository, reports ReportService) BulkService {
	return &bulkService{studentRepo: studentRepo, reports: reports}
}

func (s *bulkService) RunAll(ctx context.Context) (BulkResult, error) {
	students, err := s.studentRepo.ListActive(ctx)
	if err != nil {
		return BulkResult{}, err
	}

	started := time.Now()
	log.Printf("[bulk] starting run for %d active students", len(students))

	var wg sync.WaitGroup
	var succeeded, failed atomic.Int64

	for _, student := range students {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if _, err := s.reports.GenerateForStudent(ctx, student.ID); err != nil {
				failed.Add(1)
				observability.RecordBulkOutcome(false)
				log.Printf("[bulk] student %s (%s) failed: %v", student.ID, student.Name, err)
				return
			}
			succeeded.Add(1)
			observability.RecordBulkOutcome(true)
			log.Printf("[bulk] student %s (%s) done", student.ID, student.Name)
		}()
	}
	wg.Wait()

	result := BulkResult{
		Total:     len(students),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
		Duration:  time.Since(started),
	}
	log.Printf("[bulk] run finished: %d/%d succeeded, %d failed in %s",
		result.Succeeded, result.Total, result.Failed, result.Duration.Round(time.Millisecond))
	return result, nil
}
