package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ard-guilherme/looper-reports/internal/analysis"
	"github.com/ard-guilherme/looper-reports/internal/domain"
)

// monthsBR maps time.Month to the localized month name used in week labels.
var monthsBR = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// WeekLabel builds the human-readable label for the 7-day window ending on
// weekEnd: ISO week number, localized month of the window end, dd/mm range.
func WeekLabel(weekEnd time.Time) string {
	weekStart := weekEnd.AddDate(0, 0, -6)
	_, week := weekEnd.ISOWeek()
	return fmt.Sprintf("Semana %d · %s (%s–%s)",
		week, monthsBR[weekEnd.Month()-1],
		weekStart.Format("02/01"), weekEnd.Format("02/01"))
}

// NextWeekLabel labels the week following the one ending on weekEnd.
func NextWeekLabel(weekEnd time.Time) string {
	return WeekLabel(weekEnd.AddDate(0, 0, 7))
}

// BuildBaseContext composes the single text block given to the LLM: student
// identity, the week label, raw per-day listings, the analytic summary, the
// prior-week comparison and the coach's free-text context. The block must
// stay plain text, since markup here leaks formatting instructions into the
// generated prose.
func BuildBaseContext(
	student *domain.Student,
	checkins []domain.Checkin,
	a analysis.WeeklyAnalysis,
	cmp Comparison,
	weekLabel string,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ALUNO: %s\n", student.Name)
	fmt.Fprintf(&b, "SEMANA: %s\n", weekLabel)

	b.WriteString("\n=== TREINOS DA SEMANA ===\n")
	b.WriteString(FormatTrainingDays(checkins))

	b.WriteString("\n\n=== NUTRIÇÃO DA SEMANA (kcal | proteína | carboidrato | gordura) ===\n")
	b.WriteString(FormatNutritionDays(checkins))

	b.WriteString("\n\n=== SONO DA SEMANA ===\n")
	b.WriteString(FormatSleepDays(checkins))

	b.WriteString("\n\n=== RESUMO ANALÍTICO ===\n")
	b.WriteString(formatAnalysisSummary(a))

	b.WriteString("\n=== COMPARATIVO COM A SEMANA ANTERIOR ===\n")
	b.WriteString(formatComparison(a, cmp))

	if context := strings.TrimSpace(student.AdditionalContext); context != "" {
		b.WriteString("\nCONTEXTO ADICIONAL:\n")
		b.WriteString(context)
		b.WriteString("\n")
	}

	return b.String()
}

func formatAnalysisSummary(a analysis.WeeklyAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Calorias: média %.0f kcal/dia, variação %.1f%%\n", a.AvgCalories, a.CaloriesCV)
	fmt.Fprintf(&b, "Proteína: média %.0fg/dia, aderência %.0f%%, %d dia(s) dentro da meta\n",
		a.AvgProtein, a.ProteinAdherencePct, a.DaysOnProteinGoal)
	fmt.Fprintf(&b, "Carboidrato: média %.0fg/dia | Gordura: média %.0fg/dia\n", a.AvgCarbs, a.AvgFat)
	fmt.Fprintf(&b, "Sono: média %.1fh, qualidade média %.1f/5, %d noite(s) abaixo de 6h\n",
		a.AvgSleepHours, a.AvgSleepQuality, a.NightsUnderSixHours)
	fmt.Fprintf(&b, "Treino: %d sessão(ões) registradas de %d esperadas (%.0f%%), %d séries no total\n",
		a.SessionsLogged, a.ExpectedSessions, a.SessionAdherencePct, a.TotalSets)
	return b.String()
}

func formatComparison(a analysis.WeeklyAnalysis, cmp Comparison) string {
	if !cmp.Available {
		return "N/A (primeira semana ou relatório anterior indisponível)\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Calorias: %.0f → %.0f kcal/dia\n", cmp.Metrics.AvgCalories, a.AvgCalories)
	fmt.Fprintf(&b, "Proteína: %.0f → %.0f g/dia\n", cmp.Metrics.AvgProtein, a.AvgProtein)
	fmt.Fprintf(&b, "Volume de treino: %d → %d séries\n", cmp.Metrics.TotalSets, a.TotalSets)
	return b.String()
}
