package model

import "time"

type JobApplication struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"index;not null" json:"-"`

	PositionTitle  string `gorm:"size:128;not null" json:"position_title"`
	CompanyName    string `gorm:"size:128;not null" json:"company_name"`
	JobPostingLink string `gorm:"size:255" json:"job_posting_link"`
	DateApplied    Date   `gorm:"type:date;not null" json:"date_applied"`
	JobLocation    string `gorm:"size:255" json:"job_location"`
	JobDescription string `gorm:"type:text" json:"job_description"`

	// Lookup references are nullable on purpose. Deleting a lookup row
	// nulls the reference instead of cascading into applications
	EmploymentTypeID       *uint `json:"-"`
	WorkArrangementID      *uint `json:"-"`
	JobApplicationStatusID *uint `json:"-"`

	EmploymentType       *EmploymentType       `gorm:"constraint:OnDelete:SET NULL" json:"employment_type"`
	WorkArrangement      *WorkArrangement      `gorm:"constraint:OnDelete:SET NULL" json:"work_arrangement"`
	JobApplicationStatus *JobApplicationStatus `gorm:"constraint:OnDelete:SET NULL" json:"job_application_status"`

	Reminders []Reminder `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
