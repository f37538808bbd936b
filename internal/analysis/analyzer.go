// Package analysis computes weekly nutrition, sleep and training statistics
// from check-in records. Everything here is pure: no I/O, no clocks.
//
// Edge-case policy, applied throughout: an average over an empty list is 0
// and a percentage with a zero denominator is 0, never an error or NaN.
package analysis

import (
	"math"
	"strings"

	"github.com/ard-guilherme/looper-reports/internal/domain"
)

const (
	// ProteinToleranceGrams is the absolute band around the protein goal
	// within which a day counts as "on goal".
	ProteinToleranceGrams = 10.0

	// ShortNightHours is the threshold below which a night is flagged.
	ShortNightHours = 6.0

	// setMarker denotes a working-set line in the training journal.
	setMarker = "série"
)

// noTrainingSentinels are journal values that mean "no session happened".
// The journals are written in Portuguese; "skip" shows up from older app
// versions.
var noTrainingSentinels = []string{"não treinei hoje", "nao treinei hoje", "skip"}

// WeeklyAnalysis is the numeric summary of one 7-day check-in window.
type WeeklyAnalysis struct {
	// Nutrition
	AvgCalories         float64
	CaloriesCV          float64 // coefficient of variation, percent
	AvgProtein          float64
	AvgCarbs            float64
	AvgFat              float64
	ProteinAdherencePct float64
	DaysOnProteinGoal   int
	TrackedProteinDays  int

	// Sleep
	AvgSleepHours       float64
	AvgSleepQuality     float64
	NightsUnderSixHours int
	SleepNights         int

	// Training
	TotalSets           int
	SessionsLogged      int
	ExpectedSessions    int
	SessionAdherencePct float64
}

// Analyze computes the weekly summary for a 7-day check-in window.
// expectedSessions comes from cadence inference over longer history; zero
// goals disable the corresponding adherence figures.
func Analyze(checkins []domain.Checkin, goal domain.MacroGoal, expectedSessions int) WeeklyAnalysis {
	a := WeeklyAnalysis{ExpectedSessions: expectedSessions}

	var calories, proteins, carbs, fats []float64
	for _, c := range checkins {
		calories = append(calories, c.Nutrition.Calories)
		proteins = append(proteins, c.Nutrition.Protein)
		carbs = append(carbs, c.Nutrition.Carbs)
		fats = append(fats, c.Nutrition.Fat)

		if c.Nutrition.Protein > 0 {
			a.TrackedProteinDays++
			if goal.Protein > 0 && math.Abs(c.Nutrition.Protein-goal.Protein) <= ProteinToleranceGrams {
				a.DaysOnProteinGoal++
			}
		}

		if c.Sleep.DurationHours > 0 {
			a.SleepNights++
			if c.Sleep.DurationHours < ShortNightHours {
				a.NightsUnderSixHours++
			}
		}

		a.TotalSets += CountSets(c.Training.Journal)
		if IsLoggedSession(c.Training.Journal) {
			a.SessionsLogged++
		}
	}

	a.AvgCalories = mean(calories)
	a.CaloriesCV = coefficientOfVariation(calories)
	a.AvgProtein = mean(proteins)
	a.AvgCarbs = mean(carbs)
	a.AvgFat = mean(fats)
	a.ProteinAdherencePct = percentage(a.AvgProtein, goal.Protein)

	a.AvgSleepHours = avgSleepHours(checkins)
	a.AvgSleepQuality = avgSleepQuality(checkins)

	a.SessionAdherencePct = percentage(float64(a.SessionsLogged), float64(expectedSessions))

	return a
}

// CountSets counts journal lines that follow the working-set convention:
// a trimmed line starting with the set marker word.
func CountSets(journal string) int {
	count := 0
	for _, line := range strings.Split(journal, "\n") {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if strings.HasPrefix(trimmed, setMarker) || strings.HasPrefix(trimmed, "serie") {
			count++
		}
	}
	return count
}

// IsLoggedSession reports whether a journal records an actual session:
// non-empty and not one of the "no training" sentinels.
func IsLoggedSession(journal string) bool {
	normalized := strings.ToLower(strings.TrimSpace(journal))
	if normalized == "" {
		return false
	}
	for _, sentinel := range noTrainingSentinels {
		if normalized == sentinel {
			return false
		}
	}
	return true
}

func avgSleepHours(checkins []domain.Checkin) float64 {
	var hours []float64
	for _, c := range checkins {
		if c.Sleep.DurationHours > 0 {
			hours = append(hours, c.Sleep.DurationHours)
		}
	}
	return mean(hours)
}

func avgSleepQuality(checkins []domain.Checkin) float64 {
	var ratings []float64
	for _, c := range checkins {
		if c.Sleep.QualityRating > 0 {
			ratings = append(ratings, float64(c.Sleep.QualityRating))
		}
	}
	return mean(ratings)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// coefficientOfVariation returns stddev/mean as a percentage, 0 when the
// mean is 0. Population standard deviation over the window.
func coefficientOfVariation(values []float64) float64 {
	m := mean(values)
	if m == 0 || len(values) == 0 {
		return 0
	}
	sumSquares := 0.0
	for _, v := range values {
		diff := v - m
		sumSquares += diff * diff
	}
	std := math.Sqrt(sumSquares / float64(len(values)))
	return std / m * 100
}

// percentage returns value/target*100, 0 when the target is 0.
func percentage(value, target float64) float64 {
	if target == 0 {
		return 0
	}
	return value / target * 100
}
