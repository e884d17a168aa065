package repository

import (
	"github.com/Rampandiyar/Volunteer/internal/models"
	"gorm.io/gorm"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// List returns events soonest first.
func (r *GormEventRepository) List() ([]models.Event, error) {
	events := []models.Event{}
	if err := r.db.Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
