package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuizSubmission is the persisted record of one computed quiz result. The
// catalog itself lives in memory; only outcomes are stored, for the admin
// completion stats.
type QuizSubmission struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	QuizID string `json:"quiz_id" gorm:"not null;size:80;index"`

	TotalPoints    int            `json:"total_points" gorm:"not null"`
	MaxPoints      int            `json:"max_points" gorm:"not null"`
	CategoryPoints datatypes.JSON `json:"category_points" gorm:"type:jsonb"` // map[string]map[string]int

	CreatedAt time.Time `json:"created_at"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}
