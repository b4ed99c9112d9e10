package model

// Static reference rows. Referenced by label or id from job applications,
// never owned by a user.

type EmploymentType struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Label       string `gorm:"size:128;not null" json:"label"`
	Description string `gorm:"size:128" json:"-"`
}

type WorkArrangement struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Label       string `gorm:"size:128;not null" json:"label"`
	Description string `gorm:"size:128" json:"-"`
}

type JobApplicationStatus struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Label       string `gorm:"size:128;not null" json:"label"`
	Description string `gorm:"size:128" json:"-"`
}
