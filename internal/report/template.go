package report

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder names recognized by the report shell. Any other {{...}} token
// in the shell is a defect, caught by the verification pass in Populate.
const (
	PlaceholderStudentName      = "STUDENT_NAME"
	PlaceholderWeekLabel        = "WEEK_LABEL"
	PlaceholderNextWeekLabel    = "NEXT_WEEK_LABEL"
	PlaceholderGenerationDate   = "GENERATION_DATE"
	PlaceholderLogoURL          = "LOGO_URL"
	PlaceholderOverview         = "OVERVIEW"
	PlaceholderNutrition        = "NUTRITION_ANALYSIS"
	PlaceholderSleep            = "SLEEP_ANALYSIS"
	PlaceholderTraining         = "TRAINING_ANALYSIS"
	PlaceholderInsights         = "DETAILED_INSIGHTS"
	PlaceholderRecommendations  = "RECOMMENDATIONS"
	PlaceholderConclusion       = "CONCLUSION"
	PlaceholderRecoveryScore    = "RECOVERY_SCORE"
	PlaceholderPerformanceScore = "PERFORMANCE_SCORE"
	PlaceholderNutritionScore   = "NUTRITION_SCORE"
)

var placeholderPattern = regexp.MustCompile(`\{\{[A-Z_]+\}\}`)

// Populate substitutes the typed placeholder map into the HTML shell and
// verifies the result: an unresolved {{...}} token means the shell and the
// pipeline disagree about the placeholder set, which is an error rather than
// something to ship.
func Populate(shell string, values map[string]string) (string, error) {
	out := shell
	for name, value := range values {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}

	if leftover := placeholderPattern.FindString(out); leftover != "" {
		return "", fmt.Errorf("unresolved template placeholder %s", leftover)
	}
	return out, nil
}
