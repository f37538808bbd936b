package report

import (
	"strings"
	"testing"

	"github.com/ard-guilherme/looper-reports/internal/analysis"
	"github.com/ard-guilherme/looper-reports/internal/domain"
)

func TestBuildNutritionSection_ScrapesBack(t *testing.T) {
	a := analysis.WeeklyAnalysis{
		AvgCalories:         2378,
		AvgProtein:          168,
		CaloriesCV:          5.2,
		ProteinAdherencePct: 105,
	}
	goal := domain.MacroGoal{Calories: 2400, Protein: 160, Carbs: 250, Fat: 80}
	checkins := []domain.Checkin{
		{CheckinDate: "2025-11-01", Nutrition: domain.Nutrition{Calories: 2378, Protein: 168, Carbs: 247, Fat: 84}},
	}

	section := BuildNutritionSection(a, goal, checkins, Comparison{}, "<p>análise</p>")

	// The fragment must round-trip through the legacy HTML scraper.
	cmp := FromHTML(section)
	if !cmp.Available {
		t.Fatal("nutrition section is not scrapeable")
	}
	if cmp.Metrics.AvgCalories != 2378 {
		t.Errorf("scraped AvgCalories = %.0f, want 2378", cmp.Metrics.AvgCalories)
	}
	if cmp.Metrics.AvgProtein != 168 {
		t.Errorf("scraped AvgProtein = %.0f, want 168", cmp.Metrics.AvgProtein)
	}

	for _, want := range []string{"01/11/2025", "2378 kcal", `<div class="generated"><p>análise</p></div>`} {
		if !strings.Contains(section, want) {
			t.Errorf("section missing %q", want)
		}
	}
}

func TestBuildTrainingSection_ScrapesBack(t *testing.T) {
	a := analysis.WeeklyAnalysis{
		TotalSets:           84,
		SessionsLogged:      5,
		ExpectedSessions:    5,
		SessionAdherencePct: 100,
	}
	checkins := []domain.Checkin{
		{CheckinDate: "2025-11-01", Training: domain.Training{Journal: "Supino\nSérie 1: 60 kg x 10"}},
		{CheckinDate: "2025-11-02", Training: domain.Training{Journal: "não treinei hoje"}},
	}

	section := BuildTrainingSection(a, checkins, Comparison{}, "<p>análise</p>")

	cmp := FromHTML(section)
	if cmp.Metrics.TotalSets != 84 {
		t.Errorf("scraped TotalSets = %d, want 84", cmp.Metrics.TotalSets)
	}
	if !strings.Contains(section, "5 de 5") {
		t.Error("section missing sessions metric")
	}
	// Rest day gets the em dash, not its journal text.
	if !strings.Contains(section, "—") {
		t.Error("section missing rest-day marker")
	}
}

func TestNutritionDayStatus(t *testing.T) {
	goal := domain.MacroGoal{Calories: 2400, Protein: 160, Carbs: 250, Fat: 80}

	tests := []struct {
		name string
		n    domain.Nutrition
		goal domain.MacroGoal
		want string
	}{
		{
			name: "on track",
			n:    domain.Nutrition{Calories: 2400, Protein: 160, Carbs: 250, Fat: 80},
			goal: goal,
			want: "OK",
		},
		{
			name: "protein far under goal is critical",
			n:    domain.Nutrition{Calories: 2400, Protein: 120, Carbs: 250, Fat: 80},
			goal: goal,
			want: "Crítico",
		},
		{
			name: "calories outside band is attention",
			n:    domain.Nutrition{Calories: 3000, Protein: 160, Carbs: 250, Fat: 80},
			goal: goal,
			want: "Atenção",
		},
		{
			name: "protein over goal is attention not critical",
			n:    domain.Nutrition{Calories: 2400, Protein: 200, Carbs: 250, Fat: 80},
			goal: goal,
			want: "Atenção",
		},
		{
			name: "zero goals exempt every check",
			n:    domain.Nutrition{Calories: 123, Protein: 4},
			goal: domain.MacroGoal{},
			want: "OK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nutritionDayStatus(tt.n, tt.goal); got != tt.want {
				t.Errorf("nutritionDayStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeltaBadge(t *testing.T) {
	tests := []struct {
		name           string
		current, prior float64
		available      bool
		higherIsBetter bool
		wantClass      string
		wantContains   string
	}{
		{"unavailable", 100, 90, false, true, "neutral", "N/A"},
		{"zero prior", 100, 0, true, true, "neutral", "N/A"},
		{"within band", 102, 100, true, true, "neutral", "+2.0%"},
		{"rise when higher is better", 110, 100, true, true, "positive", "+10.0%"},
		{"rise when lower is better", 110, 100, true, false, "warning", "+10.0%"},
		{"moderate drop when higher is better", 90, 100, true, true, "warning", "-10.0%"},
		{"steep drop when higher is better", 80, 100, true, true, "critical", "-20.0%"},
		{"drop when lower is better", 90, 100, true, false, "positive", "-10.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deltaBadge(tt.current, tt.prior, tt.available, tt.higherIsBetter)
			if !strings.Contains(got, `metric-delta `+tt.wantClass) {
				t.Errorf("badge %q missing class %q", got, tt.wantClass)
			}
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("badge %q missing %q", got, tt.wantContains)
			}
		})
	}
}

func TestRecoveryScore(t *testing.T) {
	tests := []struct {
		name string
		a    analysis.WeeklyAnalysis
		want int
	}{
		{
			name: "no sleep data",
			a:    analysis.WeeklyAnalysis{},
			want: 0,
		},
		{
			name: "top band at exact boundary",
			a:    analysis.WeeklyAnalysis{SleepNights: 7, AvgSleepHours: 7.0, AvgSleepQuality: 4.0, NightsUnderSixHours: 0},
			want: 9,
		},
		{
			name: "middle band",
			a:    analysis.WeeklyAnalysis{SleepNights: 7, AvgSleepHours: 6.7, AvgSleepQuality: 3.6, NightsUnderSixHours: 1},
			want: 7,
		},
		{
			name: "short nights drop out of top band",
			a:    analysis.WeeklyAnalysis{SleepNights: 7, AvgSleepHours: 7.2, AvgSleepQuality: 4.5, NightsUnderSixHours: 2},
			want: 5,
		},
		{
			name: "low average",
			a:    analysis.WeeklyAnalysis{SleepNights: 7, AvgSleepHours: 6.4, AvgSleepQuality: 4.0, NightsUnderSixHours: 0},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecoveryScore(tt.a); got != tt.want {
				t.Errorf("RecoveryScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPerformanceScore(t *testing.T) {
	tests := []struct {
		name string
		a    analysis.WeeklyAnalysis
		want int
	}{
		{"no sessions no expectation", analysis.WeeklyAnalysis{}, 0},
		{"full adherence", analysis.WeeklyAnalysis{SessionsLogged: 5, ExpectedSessions: 5, SessionAdherencePct: 100}, 10},
		{"over adherence", analysis.WeeklyAnalysis{SessionsLogged: 6, ExpectedSessions: 5, SessionAdherencePct: 120}, 10},
		{"eighty percent", analysis.WeeklyAnalysis{SessionsLogged: 4, ExpectedSessions: 5, SessionAdherencePct: 80}, 8},
		{"below eighty", analysis.WeeklyAnalysis{SessionsLogged: 3, ExpectedSessions: 5, SessionAdherencePct: 60}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PerformanceScore(tt.a); got != tt.want {
				t.Errorf("PerformanceScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNutritionScore(t *testing.T) {
	goal := domain.MacroGoal{Protein: 160}

	tests := []struct {
		name string
		a    analysis.WeeklyAnalysis
		goal domain.MacroGoal
		want int
	}{
		{
			name: "no tracked days",
			a:    analysis.WeeklyAnalysis{},
			goal: goal,
			want: 0,
		},
		{
			name: "every day on goal with solid average",
			a:    analysis.WeeklyAnalysis{TrackedProteinDays: 7, DaysOnProteinGoal: 7, AvgProtein: 158},
			goal: goal,
			want: 10,
		},
		{
			name: "every day on goal but low average",
			a:    analysis.WeeklyAnalysis{TrackedProteinDays: 7, DaysOnProteinGoal: 7, AvgProtein: 150},
			goal: goal,
			want: 8,
		},
		{
			name: "eighty percent of days",
			a:    analysis.WeeklyAnalysis{TrackedProteinDays: 5, DaysOnProteinGoal: 4, AvgProtein: 150},
			goal: goal,
			want: 8,
		},
		{
			name: "low consistency",
			a:    analysis.WeeklyAnalysis{TrackedProteinDays: 7, DaysOnProteinGoal: 3, AvgProtein: 140},
			goal: goal,
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NutritionScore(tt.a, tt.goal); got != tt.want {
				t.Errorf("NutritionScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
