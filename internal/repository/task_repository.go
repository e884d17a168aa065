package repository

import (
	"github.com/Rampandiyar/Volunteer/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *GormTaskRepository) FindByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *GormTaskRepository) List() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Order("task_id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes the task and its assignments atomically.
func (r *GormTaskRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, id).Error
	})
}

// ListUserAssignments joins tasks and assignments for one user. The task
// status is aliased task_status so the caller sees task fields alongside
// the assignment id.
func (r *GormTaskRepository) ListUserAssignments(userID uint) ([]UserAssignmentRow, error) {
	rows := []UserAssignmentRow{}
	err := r.db.Model(&models.Assignment{}).
		Select("tasks.task_id, tasks.task_name, tasks.description, tasks.required_skills, tasks.status AS task_status, assignments.assignment_id, assignments.assigned_at").
		Joins("JOIN tasks ON tasks.task_id = assignments.task_id").
		Where("assignments.user_id = ?", userID).
		Order("assignments.assigned_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
