package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckinDateLayout is the calendar-date key used on check-ins. The key is a
// plain ISO date, not a timestamp: one check-in per day per student.
const CheckinDateLayout = "2006-01-02"

// Nutrition is the self-reported macro intake for one day. Missing fields
// stay at zero; zero is valid data, never an error.
type Nutrition struct {
	Calories float64 `gorm:"column:nutrition_calories;not null;default:0" json:"calories"`
	Protein  float64 `gorm:"column:nutrition_protein;not null;default:0" json:"protein"`
	Carbs    float64 `gorm:"column:nutrition_carbs;not null;default:0" json:"carbs"`
	Fat      float64 `gorm:"column:nutrition_fat;not null;default:0" json:"fat"`
}

// Sleep is the self-reported sleep record for one night. Clock times are
// free-form HH:MM strings as typed by the student.
type Sleep struct {
	DurationHours float64 `gorm:"column:sleep_duration_hours;not null;default:0" json:"sleep_duration_hours"`
	QualityRating int     `gorm:"column:sleep_quality_rating;not null;default:0" json:"sleep_quality_rating"`
	StartTime     string  `gorm:"column:sleep_start_time;type:varchar(16)" json:"sleep_start_time"`
	EndTime       string  `gorm:"column:sleep_end_time;type:varchar(16)" json:"sleep_end_time"`
}

// Training holds the free-text training journal. The journal follows an
// informal convention: blank lines separate exercises and lines starting
// with "Série" denote a working set.
type Training struct {
	Journal      string `gorm:"column:training_journal;type:text" json:"training_journal"`
	StudentNotes string `gorm:"column:training_student_notes;type:text" json:"student_notes"`
}

type Checkin struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;index:idx_checkins_student_date" json:"student_id"`
	CheckinDate string    `gorm:"type:varchar(10);not null;index:idx_checkins_student_date,sort:desc" json:"checkin_date"`
	Nutrition   Nutrition `gorm:"embedded" json:"nutrition"`
	Sleep       Sleep     `gorm:"embedded" json:"sleep"`
	Training    Training  `gorm:"embedded" json:"training"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Checkin) TableName() string {
	return "checkins"
}

// CreateCheckinRequest is the request body for recording a daily check-in.
// @Description Request payload for one day's nutrition/sleep/training record.
type CreateCheckinRequest struct {
	CheckinDate string    `json:"checkin_date" validate:"required,datetime=2006-01-02" example:"2025-11-01"`
	Nutrition   Nutrition `json:"nutrition"`
	Sleep       Sleep     `json:"sleep"`
	Training    Training  `json:"training"`
}

// CheckinFilter narrows check-in listings.
type CheckinFilter struct {
	// From and To are inclusive ISO date bounds on CheckinDate.
	From   string
	To     string
	Cursor string
	Limit  int
}

// CheckinListResponse is the paginated check-in listing.
type CheckinListResponse struct {
	Data       []Checkin          `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse carries cursor pagination state.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}
