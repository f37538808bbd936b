package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ard-guilherme/looper-reports/internal/analysis"
	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/internal/events"
	"github.com/ard-guilherme/looper-reports/internal/langfuse"
	"github.com/ard-guilherme/looper-reports/internal/llm"
	"github.com/ard-guilherme/looper-reports/internal/observability"
	"github.com/ard-guilherme/looper-reports/internal/report"
	"github.com/ard-guilherme/looper-reports/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
)

const (
	// ReportWindowDays is the check-in window a report covers.
	ReportWindowDays = 7
)

// ReportService is the top-level report pipeline: fetch the data window,
// build the chained context, generate every section in order, assemble the
// HTML and persist it.
type ReportService interface {
	// GenerateForStudent runs the full pipeline and returns the populated
	// HTML. The report row is persisted before returning; persistence
	// failure propagates.
	GenerateForStudent(ctx context.Context, studentID uuid.UUID) (string, error)
	// LatestForStudent returns the most recent persisted report.
	LatestForStudent(ctx context.Context, studentID uuid.UUID) (*domain.Report, error)
}

// ReportOptions carries the deployment-level knobs of the pipeline.
type ReportOptions struct {
	TemplatePath string
	OutputDir    string
	LogoURL      string
}

type reportService struct {
	studentRepo repository.StudentRepository
	checkinRepo repository.CheckinRepository
	goalRepo    repository.MacroGoalRepository
	reportRepo  repository.ReportRepository
	generator   *report.Generator
	publisher   events.Publisher
	langfuse    langfuse.Client
	opts        ReportOptions
}

func NewReportService(
	studentRepo repository.StudentRepository,
	checkinRepo repository.CheckinRepository,
	goalRepo repository.MacroGoalRepository,
	reportRepo repository.ReportRepository,
	generator *report.Generator,
	publisher events.Publisher,
	langfuseClient langfuse.Client,
	opts ReportOptions,
) ReportService {
	return &reportService{
		studentRepo: studentRepo,
		checkinRepo: checkinRepo,
		goalRepo:    goalRepo,
		reportRepo:  reportRepo,
		generator:   generator,
		publisher:   publisher,
		langfuse:    langfuseClient,
		opts:        opts,
	}
}

func (s *reportService) GenerateForStudent(ctx context.Context, studentID uuid.UUID) (string, error) {
	tracer := otel.Tracer("looper-reports-api/report")
	ctx, span := tracer.Start(ctx, "ReportService.GenerateForStudent",
		trace.WithAttributes(attribute.String("student.id", studentID.String())),
	)
	defer span.End()

	started := time.Now()

	student, generatedReport, err := s.generate(ctx, studentID)
	if err != nil {
		observability.RecordReportFailed()
		return "", err
	}
	observability.RecordReportGenerated(time.Since(started))

	// Best-effort side channels; failures are logged, never fatal.
	s.writeArtifact(student.Name, generatedReport)
	if err := s.publisher.PublishReportGenerated(ctx, events.ReportGenerated{
		ReportID:    generatedReport.ID,
		StudentID:   generatedReport.StudentID,
		ISOWeek:     generatedReport.ISOWeek,
		Year:        generatedReport.Year,
		GeneratedAt: generatedReport.GeneratedAt,
	}); err != nil {
		log.Printf("[report] event publish failed for student %s: %v", studentID, err)
	}
	_, _ = s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
		UserID:    studentID.String(),
		SessionID: fmt.Sprintf("%d-W%02d", generatedReport.Year, generatedReport.ISOWeek),
		Name:      "weekly-report",
		Input:     map[string]any{"iso_week": generatedReport.ISOWeek, "year": generatedReport.Year},
		Output:    map[string]any{"report_id": generatedReport.ID.String(), "html_bytes": len(generatedReport.HTML)},
		Tags:      []string{"report"},
	})

	return generatedReport.HTML, nil
}

func (s *reportService) generate(ctx context.Context, studentID uuid.UUID) (*domain.Student, *domain.Report, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	weekFrom := now.AddDate(0, 0, -(ReportWindowDays - 1)).Format(domain.CheckinDateLayout)
	weekTo := now.Format(domain.CheckinDateLayout)
	historyFrom := now.AddDate(0, 0, -(analysis.CadenceHistoryWeeks*7 - 1)).Format(domain.CheckinDateLayout)

	window, err := s.checkinRepo.ListByDateRange(ctx, studentID, weekFrom, weekTo)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.checkinRepo.ListByDateRange(ctx, studentID, historyFrom, weekTo)
	if err != nil {
		return nil, nil, err
	}

	goal := domain.MacroGoal{}
	if active, err := s.goalRepo.GetActive(ctx, studentID); err != nil {
		return nil, nil, err
	} else if active != nil {
		goal = *active
	}

	var prior *domain.Report
	if recent, err := s.reportRepo.ListRecent(ctx, studentID, 1); err != nil {
		return nil, nil, err
	} else if len(recent) > 0 {
		prior = &recent[0]
	}

	expected := analysis.InferWeeklyCadence(history)
	weekly := analysis.Analyze(window, goal, expected)
	comparison := report.FromPriorReport(prior)

	weekLabel := report.WeekLabel(now)
	baseContext := report.BuildBaseContext(student, window, weekly, comparison, weekLabel)

	sections, err := s.generator.GenerateAll(ctx, baseContext, student.Name)
	if err != nil {
		return nil, nil, err
	}

	shell, err := os.ReadFile(s.opts.TemplatePath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read report template: %v", llm.ErrGenerationRequest, err)
	}

	values := map[string]string{
		report.PlaceholderStudentName:    student.Name,
		report.PlaceholderWeekLabel:      weekLabel,
		report.PlaceholderNextWeekLabel:  report.NextWeekLabel(now),
		report.PlaceholderGenerationDate: now.Format("02/01/2006"),
		report.PlaceholderLogoURL:        s.opts.LogoURL,

		report.PlaceholderOverview:        sections[report.SectionOverview],
		report.PlaceholderNutrition:       report.BuildNutritionSection(weekly, goal, window, comparison, sections[report.SectionNutrition]),
		report.PlaceholderSleep:           report.BuildSleepSection(weekly, window, sections[report.SectionSleep]),
		report.PlaceholderTraining:        report.BuildTrainingSection(weekly, window, comparison, sections[report.SectionTraining]),
		report.PlaceholderInsights:        sections[report.SectionDetailedInsights],
		report.PlaceholderRecommendations: sections[report.SectionRecommendations],
		report.PlaceholderConclusion:      sections[report.SectionConclusion],

		report.PlaceholderRecoveryScore:    strconv.Itoa(report.RecoveryScore(weekly)),
		report.PlaceholderPerformanceScore: strconv.Itoa(report.PerformanceScore(weekly)),
		report.PlaceholderNutritionScore:   strconv.Itoa(report.NutritionScore(weekly, goal)),
	}

	html, err := report.Populate(string(shell), values)
	if err != nil {
		return nil, nil, err
	}

	year, week := now.ISOWeek()
	row := &domain.Report{
		StudentID:   studentID,
		GeneratedAt: now,
		HTML:        html,
		Metrics: datatypes.NewJSONType(domain.ReportMetrics{
			AvgCalories: weekly.AvgCalories,
			AvgProtein:  weekly.AvgProtein,
			TotalSets:   weekly.TotalSets,
		}),
		ISOWeek: week,
		Year:    year,
	}
	if err := s.reportRepo.Create(ctx, row); err != nil {
		return nil, nil, err
	}

	return student, row, nil
}

func (s *reportService) LatestForStudent(ctx context.Context, studentID uuid.UUID) (*domain.Report, error) {
	exists, err := s.studentRepo.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	recent, err := s.reportRepo.ListRecent(ctx, studentID, 1)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, domain.ErrNotFound
	}
	return &recent[0], nil
}

// writeArtifact copies the finished HTML into a dated directory on local
// storage. Purely a convenience side-channel: failures are logged only.
func (s *reportService) writeArtifact(studentName string, row *domain.Report) {
	if s.opts.OutputDir == "" {
		return
	}

	dir := filepath.Join(s.opts.OutputDir, fmt.Sprintf("%d-W%02d", row.Year, row.ISOWeek))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[artifact] create dir %s: %v", dir, err)
		return
	}

	name := fmt.Sprintf("relatorio_%s_semana%02d_%d.html", slugify(studentName), row.ISOWeek, row.Year)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(row.HTML), 0o644); err != nil {
		log.Printf("[artifact] write %s: %v", path, err)
	}
}

// slugify lowercases and strips a student name down to [a-z0-9-] for use in
// artifact file names.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
