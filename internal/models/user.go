package models

import "time"

type User struct {
	ID           uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Password     string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(50);not null;default:'Volunteer'" json:"role"`
	Department   string    `gorm:"type:varchar(100)" json:"department"`
	Year         string    `gorm:"type:varchar(10)" json:"year"`
	Skills       SkillList `gorm:"type:text" json:"skills"`
	Interests    string    `gorm:"type:text" json:"interests"`
	Availability string    `gorm:"type:varchar(50)" json:"availability"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Assignments   []Assignment   `gorm:"foreignKey:UserID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
	Feedback      []Feedback     `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
