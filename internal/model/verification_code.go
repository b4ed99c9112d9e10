package model

import "time"

// VerificationCode is a single-use OTP keyed by (email, code). Rows are
// deleted on successful verification. Expired rows are rejected on check
// but not actively swept
type VerificationCode struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"index;not null"`
	Code      string `gorm:"size:6;not null"`
	Purpose   string `gorm:"size:32"`
	CreatedAt time.Time
	ExpiresAt time.Time
}
