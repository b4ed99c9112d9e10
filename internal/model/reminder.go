package model

import "time"

type Reminder struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	JobApplicationID uint   `gorm:"index;not null" json:"-"`
	Title            string `gorm:"size:255;not null" json:"title"`
	Description      string `gorm:"type:text" json:"description"`
	IsEnabled        bool   `json:"is_enabled"`

	RemindAt   time.Time `json:"reminder_datetime"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `gorm:"autoUpdateTime" json:"modified_at"`
}
