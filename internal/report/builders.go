package report

import (
	"fmt"
	"strings"

	"github.com/ard-guilherme/looper-reports/internal/analysis"
	"github.com/ard-guilherme/looper-reports/internal/domain"
)

// macroTolerancePct is the relative band around a macro goal within which a
// day is considered on track for the day-status classification.
const macroTolerancePct = 0.10

// BuildNutritionSection combines the deterministic nutrition HTML (metric
// grid with week-over-week deltas plus the per-day table) with the generated
// analysis text.
func BuildNutritionSection(a analysis.WeeklyAnalysis, goal domain.MacroGoal, checkins []domain.Checkin, cmp Comparison, generated string) string {
	var b strings.Builder

	b.WriteString(`<div class="metric-grid">`)
	b.WriteString(metricBlock("Média de Calorias", fmt.Sprintf("%.0f kcal", a.AvgCalories),
		deltaBadge(a.AvgCalories, cmp.Metrics.AvgCalories, cmp.Available, false)))
	b.WriteString(metricBlock("Média de Proteína", fmt.Sprintf("%.0f g", a.AvgProtein),
		deltaBadge(a.AvgProtein, cmp.Metrics.AvgProtein, cmp.Available, true)))
	b.WriteString(metricBlock("Variação Calórica", fmt.Sprintf("%.1f%%", a.CaloriesCV), ""))
	b.WriteString(metricBlock("Aderência de Proteína", fmt.Sprintf("%.0f%%", a.ProteinAdherencePct), ""))
	b.WriteString(`</div>`)

	b.WriteString(`<table class="day-table"><thead><tr><th>Dia</th><th>Calorias</th><th>Proteína</th><th>Carboidrato</th><th>Gordura</th><th>Status</th></tr></thead><tbody>`)
	for _, c := range checkins {
		n := c.Nutrition
		status := nutritionDayStatus(n, goal)
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%.0f kcal</td><td>%.0f g</td><td>%.0f g</td><td>%.0f g</td><td class="%s">%s</td></tr>`,
			dateBR(c.CheckinDate), n.Calories, n.Protein, n.Carbs, n.Fat, statusClass(status), status)
	}
	b.WriteString(`</tbody></table>`)

	b.WriteString(`<div class="generated">` + generated + `</div>`)
	return b.String()
}

// BuildSleepSection combines the sleep metric grid and per-day table with
// the generated analysis text.
func BuildSleepSection(a analysis.WeeklyAnalysis, checkins []domain.Checkin, generated string) string {
	var b strings.Builder

	b.WriteString(`<div class="metric-grid">`)
	b.WriteString(metricBlock("Média de Sono", fmt.Sprintf("%.1f h", a.AvgSleepHours), ""))
	b.WriteString(metricBlock("Qualidade Média", fmt.Sprintf("%.1f/5", a.AvgSleepQuality), ""))
	b.WriteString(metricBlock("Noites Abaixo de 6h", fmt.Sprintf("%d", a.NightsUnderSixHours), ""))
	b.WriteString(`</div>`)

	b.WriteString(`<table class="day-table"><thead><tr><th>Dia</th><th>Duração</th><th>Qualidade</th><th>Janela</th></tr></thead><tbody>`)
	for _, c := range checkins {
		s := c.Sleep
		if s.DurationHours == 0 && s.StartTime == "" {
			continue
		}
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%.1f h</td><td>%d/5</td><td>%s-%s</td></tr>`,
			dateBR(c.CheckinDate), s.DurationHours, s.QualityRating, s.StartTime, s.EndTime)
	}
	b.WriteString(`</tbody></table>`)

	b.WriteString(`<div class="generated">` + generated + `</div>`)
	return b.String()
}

// BuildTrainingSection combines the training metric grid (sessions vs the
// cadence-inferred expectation, total set volume) and per-day summary with
// the generated analysis text.
func BuildTrainingSection(a analysis.WeeklyAnalysis, checkins []domain.Checkin, cmp Comparison, generated string) string {
	var b strings.Builder

	b.WriteString(`<div class="metric-grid">`)
	b.WriteString(metricBlock("Sessões Realizadas", fmt.Sprintf("%d de %d", a.SessionsLogged, a.ExpectedSessions), ""))
	b.WriteString(metricBlock("Aderência", fmt.Sprintf("%.0f%%", a.SessionAdherencePct), ""))
	b.WriteString(metricBlock("Volume Total de Treino", fmt.Sprintf("%d séries", a.TotalSets),
		deltaBadge(float64(a.TotalSets), float64(cmp.Metrics.TotalSets), cmp.Available, true)))
	b.WriteString(`</div>`)

	b.WriteString(`<table class="day-table"><thead><tr><th>Dia</th><th>Treino</th><th>Séries</th></tr></thead><tbody>`)
	for _, c := range checkins {
		label := "—"
		if analysis.IsLoggedSession(c.Training.Journal) {
			label = firstJournalLine(c.Training.Journal)
		}
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%d</td></tr>`,
			dateBR(c.CheckinDate), label, analysis.CountSets(c.Training.Journal))
	}
	b.WriteString(`</tbody></table>`)

	b.WriteString(`<div class="generated">` + generated + `</div>`)
	return b.String()
}

// nutritionDayStatus classifies one day against the macro goals: "Crítico"
// when protein falls more than 10% under goal, "Atenção" when any macro with
// a non-zero goal is outside ±10%, otherwise "OK". A zero goal exempts that
// macro from the check.
func nutritionDayStatus(n domain.Nutrition, goal domain.MacroGoal) string {
	if goal.Protein > 0 && n.Protein < goal.Protein*(1-macroTolerancePct) {
		return "Crítico"
	}

	outside := func(value, target float64) bool {
		if target == 0 {
			return false
		}
		return value < target*(1-macroTolerancePct) || value > target*(1+macroTolerancePct)
	}
	if outside(n.Calories, goal.Calories) || outside(n.Protein, goal.Protein) ||
		outside(n.Carbs, goal.Carbs) || outside(n.Fat, goal.Fat) {
		return "Atenção"
	}
	return "OK"
}

func statusClass(status string) string {
	switch status {
	case "Crítico":
		return "status-critical"
	case "Atenção":
		return "status-warning"
	default:
		return "status-ok"
	}
}

func metricBlock(label, value, delta string) string {
	var b strings.Builder
	b.WriteString(`<div class="metric">`)
	b.WriteString(`<span class="metric-label">` + label + `</span>`)
	b.WriteString(`<span class="metric-value">` + value + `</span>`)
	if delta != "" {
		b.WriteString(delta)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// deltaBadge renders the week-over-week delta badge. Deltas within ±5% are
// neutral; beyond that the class follows the sign (for higher-is-better
// metrics a drop below -15% escalates from warning to critical).
func deltaBadge(current, prior float64, available bool, higherIsBetter bool) string {
	if !available || prior == 0 {
		return `<span class="metric-delta neutral">N/A</span>`
	}

	deltaPct := (current - prior) / prior * 100

	class := "neutral"
	switch {
	case deltaPct > 5 && higherIsBetter:
		class = "positive"
	case deltaPct > 5:
		class = "warning"
	case deltaPct < -15 && higherIsBetter:
		class = "critical"
	case deltaPct < -5 && higherIsBetter:
		class = "warning"
	case deltaPct < -5:
		class = "positive"
	}

	sign := ""
	if deltaPct > 0 {
		sign = "+"
	}
	return fmt.Sprintf(`<span class="metric-delta %s">%s%.1f%% vs semana anterior</span>`, class, sign, deltaPct)
}

func firstJournalLine(journal string) string {
	for _, line := range strings.Split(journal, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return "—"
}

// Score cards. The thresholds below are fixed business rules, kept as
// explicit ladders rather than formulas.

// RecoveryScore rates sleep-driven recovery on a 0-10 scale.
func RecoveryScore(a analysis.WeeklyAnalysis) int {
	if a.SleepNights == 0 {
		return 0
	}
	if a.AvgSleepHours >= 7 && a.AvgSleepQuality >= 4 && a.NightsUnderSixHours == 0 {
		return 9
	}
	if a.AvgSleepHours >= 6.5 && a.AvgSleepQuality >= 3.5 && a.NightsUnderSixHours <= 1 {
		return 7
	}
	return 5
}

// PerformanceScore rates training adherence on a 0-10 scale.
func PerformanceScore(a analysis.WeeklyAnalysis) int {
	if a.SessionsLogged == 0 && a.ExpectedSessions == 0 {
		return 0
	}
	if a.SessionAdherencePct >= 100 {
		return 10
	}
	if a.SessionAdherencePct >= 80 {
		return 8
	}
	return 6
}

// NutritionScore rates protein-goal consistency on a 0-10 scale.
func NutritionScore(a analysis.WeeklyAnalysis, goal domain.MacroGoal) int {
	if a.TrackedProteinDays == 0 {
		return 0
	}
	if goal.Protein > 0 && a.DaysOnProteinGoal == a.TrackedProteinDays && a.AvgProtein >= goal.Protein*0.95 {
		return 10
	}
	if float64(a.DaysOnProteinGoal) >= 0.8*float64(a.TrackedProteinDays) {
		return 8
	}
	return 6
}
