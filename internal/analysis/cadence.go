package analysis

import (
	"time"

	"github.com/ard-guilherme/looper-reports/internal/domain"
)

const (
	// DefaultExpectedSessions is used when no training history exists.
	DefaultExpectedSessions = 5

	// CadenceHistoryWeeks is how far back cadence inference looks.
	CadenceHistoryWeeks = 6
)

// InferWeeklyCadence derives the expected weekly training session count from
// history. There is no explicit "program" entity, so the heaviest
// historically-realized week is treated as the student's intended split
// size: check-ins are bucketed by ISO (year, week) and the maximum weekly
// count of logged sessions wins. Falls back to DefaultExpectedSessions when
// history is empty or contains no valid sessions.
func InferWeeklyCadence(history []domain.Checkin) int {
	weekly := make(map[isoWeek]int)
	for _, c := range history {
		if !IsLoggedSession(c.Training.Journal) {
			continue
		}
		date, err := time.Parse(domain.CheckinDateLayout, c.CheckinDate)
		if err != nil {
			continue
		}
		year, week := date.ISOWeek()
		weekly[isoWeek{year, week}]++
	}

	maxSessions := 0
	for _, count := range weekly {
		if count > maxSessions {
			maxSessions = count
		}
	}

	if maxSessions == 0 {
		return DefaultExpectedSessions
	}
	return maxSessions
}

type isoWeek struct {
	year int
	week int
}
