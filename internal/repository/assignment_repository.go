package repository

import (
	"github.com/Rampandiyar/Volunteer/internal/models"
	"gorm.io/gorm"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

func (r *GormAssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

func (r *GormAssignmentRepository) FindByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *GormAssignmentRepository) List() ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.Order("assignment_id").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *GormAssignmentRepository) Update(assignment *models.Assignment) error {
	return r.db.Save(assignment).Error
}

func (r *GormAssignmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Assignment{}, id).Error
}

// StatsForUser aggregates assignment counts and hours for the dashboard.
// Completed means the assignment's task has reached the Completed status.
func (r *GormAssignmentRepository) StatsForUser(userID uint) (total, completed, hours int64, err error) {
	if err = r.db.Model(&models.Assignment{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, 0, 0, err
	}

	if err = r.db.Model(&models.Assignment{}).
		Joins("JOIN tasks ON tasks.task_id = assignments.task_id").
		Where("assignments.user_id = ? AND tasks.status = ?", userID, models.TaskStatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, 0, err
	}

	var sum struct {
		Hours int64
	}
	if err = r.db.Model(&models.Assignment{}).
		Select("COALESCE(SUM(hours_logged), 0) AS hours").
		Where("user_id = ?", userID).
		Scan(&sum).Error; err != nil {
		return 0, 0, 0, err
	}

	return total, completed, sum.Hours, nil
}
