package analysis

import (
	"testing"

	"github.com/ard-guilherme/looper-reports/internal/domain"
)

func sessionOn(date string) domain.Checkin {
	return domain.Checkin{
		CheckinDate: date,
		Training:    domain.Training{Journal: "Série 1: 60 kg x 10"},
	}
}

func restOn(date string) domain.Checkin {
	return domain.Checkin{
		CheckinDate: date,
		Training:    domain.Training{Journal: "não treinei hoje"},
	}
}

func TestInferWeeklyCadence(t *testing.T) {
	tests := []struct {
		name    string
		history []domain.Checkin
		want    int
	}{
		{
			name:    "empty history falls back to default",
			history: nil,
			want:    DefaultExpectedSessions,
		},
		{
			name: "only rest days falls back to default",
			history: []domain.Checkin{
				restOn("2025-11-03"), restOn("2025-11-04"),
			},
			want: DefaultExpectedSessions,
		},
		{
			name: "max weekly count wins",
			history: []domain.Checkin{
				// ISO week 45 of 2025: 4 sessions
				sessionOn("2025-11-03"), sessionOn("2025-11-04"),
				sessionOn("2025-11-06"), sessionOn("2025-11-07"),
				// ISO week 46: 2 sessions
				sessionOn("2025-11-10"), sessionOn("2025-11-12"),
			},
			want: 4,
		},
		{
			name: "rest days inside a week do not count",
			history: []domain.Checkin{
				sessionOn("2025-11-03"), restOn("2025-11-04"), sessionOn("2025-11-05"),
			},
			want: 2,
		},
		{
			name: "year boundary buckets by ISO week",
			history: []domain.Checkin{
				// 2025-12-29 through 2026-01-04 share ISO week 1 of 2026.
				sessionOn("2025-12-29"), sessionOn("2025-12-30"),
				sessionOn("2026-01-02"),
			},
			want: 3,
		},
		{
			name: "unparseable dates are skipped",
			history: []domain.Checkin{
				sessionOn("not-a-date"),
				sessionOn("2025-11-03"),
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferWeeklyCadence(tt.history); got != tt.want {
				t.Errorf("InferWeeklyCadence() = %d, want %d", got, tt.want)
			}
		})
	}
}
