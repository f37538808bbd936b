// Package report assembles the weekly coaching report: it renders check-in
// data into LLM context, chains the per-section generation calls, builds the
// deterministic HTML fragments and populates the final template.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ard-guilherme/looper-reports/internal/domain"
)

// dateBR converts the ISO check-in date key to the dd/mm/yyyy form used in
// every human-readable listing. Unparseable keys pass through unchanged.
func dateBR(isoDate string) string {
	date, err := time.Parse(domain.CheckinDateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return date.Format("02/01/2006")
}

// FormatTrainingDays renders the raw training journals as one plain-text
// block, one dated entry per check-in. Days without a session are listed
// explicitly so the model sees the gap.
func FormatTrainingDays(checkins []domain.Checkin) string {
	if len(checkins) == 0 {
		return "(sem registros de treino)"
	}

	var b strings.Builder
	for i, c := range checkins {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(dateBR(c.CheckinDate))
		b.WriteString(":")
		journal := strings.TrimSpace(c.Training.Journal)
		if journal == "" {
			b.WriteString(" (sem treino)")
		} else {
			b.WriteString("\n")
			b.WriteString(journal)
		}
		if notes := strings.TrimSpace(c.Training.StudentNotes); notes != "" {
			b.WriteString("\nObservações do aluno: ")
			b.WriteString(notes)
		}
	}
	return b.String()
}

// FormatNutritionDays renders one "date: kcal | protein | carbs | fat" line
// per check-in.
func FormatNutritionDays(checkins []domain.Checkin) string {
	if len(checkins) == 0 {
		return "(sem registros de nutrição)"
	}

	lines := make([]string, 0, len(checkins))
	for _, c := range checkins {
		n := c.Nutrition
		lines = append(lines, fmt.Sprintf("%s: %.0fkcal | %.0fg | %.0fg | %.0fg",
			dateBR(c.CheckinDate), n.Calories, n.Protein, n.Carbs, n.Fat))
	}
	return strings.Join(lines, "\n")
}

// FormatSleepDays renders one "date: hours | quality | window" line per
// check-in that has sleep data.
func FormatSleepDays(checkins []domain.Checkin) string {
	var lines []string
	for _, c := range checkins {
		s := c.Sleep
		if s.DurationHours == 0 && s.StartTime == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %.1fh | Qualidade %d/5 | %s-%s",
			dateBR(c.CheckinDate), s.DurationHours, s.QualityRating, s.StartTime, s.EndTime))
	}
	if len(lines) == 0 {
		return "(sem registros de sono)"
	}
	return strings.Join(lines, "\n")
}
