package repository

import (
	"github.com/Rampandiyar/Volunteer/internal/models"
	"gorm.io/gorm"
)

// GormNotificationRepository is a GORM implementation of NotificationRepository
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *GormNotificationRepository) ListByUser(userID uint) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := r.db.Where("user_id = ?", userID).
		Order("sent_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *GormNotificationRepository) FindByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkRead flips one row to Read and returns the updated row. Calling it
// on an already-read row is a no-op that still returns the row; only a
// nonexistent id yields gorm.ErrRecordNotFound.
func (r *GormNotificationRepository) MarkRead(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}

	if notification.Status != models.NotificationStatusRead {
		notification.Status = models.NotificationStatusRead
		if err := r.db.Save(&notification).Error; err != nil {
			return nil, err
		}
	}

	return &notification, nil
}

// MarkManyRead updates all matching rows in a single statement, relying
// on the store's single-statement atomicity. Returns the matched count.
func (r *GormNotificationRepository) MarkManyRead(ids []uint) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("notification_id IN ?", ids).
		Update("status", models.NotificationStatusRead)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
