// Package model defines database models
package model

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	FullName     string    `gorm:"size:255" json:"full_name"`
	ProfileURL   string    `gorm:"size:255" json:"profile_url"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Verified     bool      `gorm:"default:false" json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	JobApplications []JobApplication `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
