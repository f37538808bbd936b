package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReportMetrics is the structured snapshot persisted alongside each report's
// HTML. Week-over-week comparison reads this record; scraping the prior
// report's markup is kept only as a fallback for legacy rows.
type ReportMetrics struct {
	AvgCalories float64 `json:"avg_calories"`
	AvgProtein  float64 `json:"avg_protein"`
	TotalSets   int     `json:"total_sets"`
}

// IsZero reports whether no comparison metric was recovered.
func (m ReportMetrics) IsZero() bool {
	return m.AvgCalories == 0 && m.AvgProtein == 0 && m.TotalSets == 0
}

// Report is the persisted weekly report. Rows are append-only: the pipeline
// creates exactly one per run and never updates or deletes them. The table
// keeps the original system's Portuguese collection name.
type Report struct {
	ID          uuid.UUID                         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID                         `gorm:"type:uuid;not null;index:idx_relatorios_student_generated" json:"student_id"`
	GeneratedAt time.Time                         `gorm:"not null;index:idx_relatorios_student_generated,sort:desc" json:"generated_at"`
	HTML        string                            `gorm:"type:text;not null" json:"html"`
	Metrics     datatypes.JSONType[ReportMetrics] `json:"metrics"`
	ISOWeek     int                               `gorm:"not null" json:"iso_week"`
	Year        int                               `gorm:"not null" json:"year"`

	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Report) TableName() string {
	return "relatorios"
}
