package repository

import (
	"time"

	"github.com/Rampandiyar/Volunteer/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)

	// Update persists the given user row
	Update(user *models.User) error
}

// UserAssignmentRow is the joined task+assignment shape returned by the
// per-user task listing: task fields alongside the assignment id, with
// the task status aliased task_status so callers can present a unified
// task+assignment view.
type UserAssignmentRow struct {
	TaskID         uint              `gorm:"column:task_id" json:"task_id"`
	TaskName       string            `gorm:"column:task_name" json:"task_name"`
	Description    string            `gorm:"column:description" json:"description"`
	RequiredSkills models.SkillList  `gorm:"column:required_skills" json:"required_skills"`
	TaskStatus     models.TaskStatus `gorm:"column:task_status" json:"task_status"`
	AssignmentID   uint              `gorm:"column:assignment_id" json:"assignment_id"`
	AssignedAt     time.Time         `gorm:"column:assigned_at" json:"assigned_at"`
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint) (*models.Task, error)

	// List returns all tasks
	List() ([]models.Task, error)

	// Update persists the given task row
	Update(task *models.Task) error

	// Delete removes a task and its assignments
	Delete(id uint) error

	// ListUserAssignments returns the task+assignment join for one user
	ListUserAssignments(userID uint) ([]UserAssignmentRow, error)
}

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	Create(assignment *models.Assignment) error
	FindByID(id uint) (*models.Assignment, error)
	List() ([]models.Assignment, error)
	Update(assignment *models.Assignment) error
	Delete(id uint) error

	// StatsForUser aggregates a volunteer's workload: total assignments,
	// assignments whose task is completed, and hours logged.
	StatsForUser(userID uint) (total, completed, hours int64, err error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create inserts one notification row
	Create(notification *models.Notification) error

	// ListByUser returns a user's notifications ordered by sent_at descending
	ListByUser(userID uint) ([]models.Notification, error)

	// FindByID finds a notification by ID
	FindByID(id uint) (*models.Notification, error)

	// MarkRead flips one row to Read and returns it
	MarkRead(id uint) (*models.Notification, error)

	// MarkManyRead flips all matching rows to Read in one statement and
	// returns how many rows matched
	MarkManyRead(ids []uint) (int64, error)
}

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	ListByAssignment(assignmentID uint) ([]models.Feedback, error)
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	Create(event *models.Event) error
	List() ([]models.Event, error)
}
