package models

import "time"

type NotificationStatus string

const (
	NotificationStatusSent NotificationStatus = "Sent"
	NotificationStatusRead NotificationStatus = "Read"
)

// Notification rows only ever move Sent -> Read, never back.
type Notification struct {
	ID      uint               `gorm:"column:notification_id;primaryKey" json:"notification_id"`
	UserID  uint               `gorm:"column:user_id;not null" json:"user_id"`
	Message string             `gorm:"type:text;not null" json:"message"`
	Status  NotificationStatus `gorm:"type:varchar(20);not null;default:'Sent'" json:"status"`
	SentAt  time.Time          `gorm:"column:sent_at;autoCreateTime" json:"sent_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
