package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Feedback struct {
	ID           uint      `gorm:"column:feedback_id;primaryKey" json:"feedback_id"`
	AssignmentID uint      `gorm:"column:assignment_id;not null" json:"assignment_id"`
	UserID       uint      `gorm:"column:user_id;not null" json:"user_id"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Assignment Assignment `gorm:"foreignKey:AssignmentID" json:"-"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
}

func (Feedback) TableName() string {
	return "feedback"
}
