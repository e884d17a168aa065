package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// ValidTaskStatus reports whether s is one of the three task states.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID             uint       `gorm:"column:task_id;primaryKey" json:"task_id"`
	TaskName       string     `gorm:"column:task_name;type:varchar(255);not null" json:"task_name"`
	Description    string     `gorm:"type:text" json:"description"`
	RequiredSkills SkillList  `gorm:"column:required_skills;type:text" json:"required_skills"`
	Status         TaskStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Assignments []Assignment `gorm:"foreignKey:TaskID" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}
