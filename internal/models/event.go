package models

import "time"

// Event rows carry no server-side invariants; the apply-for-event flow is
// purely a client affordance.
type Event struct {
	ID          uint      `gorm:"column:event_id;primaryKey" json:"event_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"column:date;not null" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}
