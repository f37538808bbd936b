package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	reportsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "looper_reports",
		Subsystem: "pipeline",
		Name:      "generated_total",
		Help:      "Number of weekly reports generated and persisted.",
	})
	reportsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "looper_reports",
		Subsystem: "pipeline",
		Name:      "failed_total",
		Help:      "Number of report generation runs that ended in error.",
	})
	reportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "looper_reports",
		Subsystem: "pipeline",
		Name:      "duration_seconds",
		Help:      "Wall-clock duration of a full report generation run.",
		Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
	})
	bulkStudents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "looper_reports",
		Subsystem: "bulk",
		Name:      "students_total",
		Help:      "Per-student outcomes of bulk report runs.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(reportsGenerated, reportsFailed, reportDuration, bulkStudents)
}

// RecordReportGenerated marks one successful report run.
func RecordReportGenerated(duration time.Duration) {
	reportsGenerated.Inc()
	reportDuration.Observe(duration.Seconds())
}

// RecordReportFailed marks one failed report run.
func RecordReportFailed() {
	reportsFailed.Inc()
}

// RecordBulkOutcome tallies one student's outcome inside a bulk run.
func RecordBulkOutcome(succeeded bool) {
	outcome := "success"
	if !succeeded {
		outcome = "failure"
	}
	bulkStudents.WithLabelValues(outcome).Inc()
}
