package domain

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:varchar(255);not null" json:"name"`
	// Email is informational only; the pipeline never sends mail.
	Email string `gorm:"type:varchar(255)" json:"email"`
	// AdditionalContext is free text written by the coach and fed verbatim
	// into the report context.
	AdditionalContext string    `gorm:"type:text" json:"additional_context"`
	Active            bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Student) TableName() string {
	return "students"
}

// CreateStudentRequest is the request body for creating a student.
// @Description Request payload for registering a student.
type CreateStudentRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=255" example:"Maria Souza"`
	Email             string `json:"email" validate:"omitempty,email" example:"maria@example.com"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// StudentResponse is the response body for student endpoints.
type StudentResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email,omitempty"`
	AdditionalContext string    `json:"additional_context,omitempty"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
}

func (s *Student) ToResponse() StudentResponse {
	return StudentResponse{
		ID:                s.ID,
		Name:              s.Name,
		Email:             s.Email,
		AdditionalContext: s.AdditionalContext,
		Active:            s.Active,
		CreatedAt:         s.CreatedAt,
	}
}
