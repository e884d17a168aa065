package models

import "time"

// AssignmentStatusDefault is applied when an assignment is created or
// updated without an explicit status.
const AssignmentStatusDefault = "Assigned"

type Assignment struct {
	ID          uint      `gorm:"column:assignment_id;primaryKey" json:"assignment_id"`
	TaskID      uint      `gorm:"column:task_id;not null" json:"task_id"`
	UserID      uint      `gorm:"column:user_id;not null" json:"user_id"`
	Status      string    `gorm:"type:varchar(50);not null;default:'Assigned'" json:"status"`
	HoursLogged int       `gorm:"column:hours_logged;not null;default:0" json:"hours_logged"`
	AssignedAt  time.Time `gorm:"column:assigned_at" json:"assigned_at"`

	// Relations
	Task     Task       `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	User     User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Feedback []Feedback `gorm:"foreignKey:AssignmentID" json:"-"`
}

func (Assignment) TableName() string {
	return "assignments"
}
