package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission statuses. The update endpoint rejects anything else.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Submission is a visual request: the submitted link or quote, the
// requester's handle, and the administrator's response once reviewed.
type Submission struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Content      string    `json:"content" gorm:"not null"`
	SocialHandle string    `json:"socialHandle" gorm:"not null"`
	Status       string    `json:"status" gorm:"not null;default:'pending'"`
	Response     *string   `json:"response"`
	ResponseURL  *string   `json:"responseUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
