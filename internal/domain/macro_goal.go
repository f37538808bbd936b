package domain

import (
	"time"

	"github.com/google/uuid"
)

// MacroGoal holds a student's daily macro targets. At most one active row is
// read per report. A zero target disables the corresponding adherence check
// instead of failing it.
type MacroGoal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Calories  float64   `gorm:"not null;default:0" json:"calories"`
	Protein   float64   `gorm:"not null;default:0" json:"protein"`
	Carbs     float64   `gorm:"not null;default:0" json:"carbs"`
	Fat       float64   `gorm:"not null;default:0" json:"fat"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MacroGoal) TableName() string {
	return "macro_goals"
}
