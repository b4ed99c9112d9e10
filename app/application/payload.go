// Package application contains the job application endpoints
package application

import (
	"fmt"
	"strings"
	"time"

	"jobtrack/tracker-api/internal/model"

	"gorm.io/gorm"
)

// applicationPayload is the write shape shared by create and update.
// Pointer fields so that partial updates can tell "absent" from "empty".
// Lookup references are passed by label, matched case-insensitively.
type applicationPayload struct {
	PositionTitle        *string `json:"position_title,omitempty"`
	CompanyName          *string `json:"company_name,omitempty"`
	JobPostingLink       *string `json:"job_posting_link,omitempty"`
	DateApplied          *string `json:"date_applied,omitempty"`
	JobLocation          *string `json:"job_location,omitempty"`
	JobDescription       *string `json:"job_description,omitempty"`
	EmploymentType       *string `json:"employment_type,omitempty"`
	WorkArrangement      *string `json:"work_arrangement,omitempty"`
	JobApplicationStatus *string `json:"job_application_status,omitempty"`
}

// missingFields reports the required fields that are absent or empty.
func (p *applicationPayload) missingFields() []string {
	var missing []string

	required := []struct {
		name  string
		value *string
	}{
		{"position_title", p.PositionTitle},
		{"company_name", p.CompanyName},
		{"job_posting_link", p.JobPostingLink},
		{"date_applied", p.DateApplied},
		{"job_location", p.JobLocation},
	}

	for _, f := range required {
		if f.value == nil || *f.value == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}

// applyTo copies the supplied fields onto the model, resolving lookup
// labels to their rows. Unknown labels and malformed dates come back as
// validation errors.
func (p *applicationPayload) applyTo(app *model.JobApplication, db *gorm.DB) error {
	if p.PositionTitle != nil {
		app.PositionTitle = *p.PositionTitle
	}
	if p.CompanyName != nil {
		app.CompanyName = *p.CompanyName
	}
	if p.JobPostingLink != nil {
		app.JobPostingLink = *p.JobPostingLink
	}
	if p.JobLocation != nil {
		app.JobLocation = *p.JobLocation
	}
	if p.JobDescription != nil {
		app.JobDescription = *p.JobDescription
	}

	if p.DateApplied != nil {
		t, err := time.Parse(model.DateLayout, *p.DateApplied)
		if err != nil {
			return fmt.Errorf("invalid date_applied, expected format %v", model.DateLayout)
		}

		app.DateApplied = model.Date(t)
	}

	if p.EmploymentType != nil {
		var row model.EmploymentType
		if err := findLabel(db, &row, *p.EmploymentType); err != nil {
			return fmt.Errorf("unknown employment_type %q", *p.EmploymentType)
		}

		app.EmploymentTypeID = &row.ID
		app.EmploymentType = &row
	}

	if p.WorkArrangement != nil {
		var row model.WorkArrangement
		if err := findLabel(db, &row, *p.WorkArrangement); err != nil {
			return fmt.Errorf("unknown work_arrangement %q", *p.WorkArrangement)
		}

		app.WorkArrangementID = &row.ID
		app.WorkArrangement = &row
	}

	if p.JobApplicationStatus != nil {
		var row model.JobApplicationStatus
		if err := findLabel(db, &row, *p.JobApplicationStatus); err != nil {
			return fmt.Errorf("unknown job_application_status %q", *p.JobApplicationStatus)
		}

		app.JobApplicationStatusID = &row.ID
		app.JobApplicationStatus = &row
	}

	return nil
}

func findLabel(db *gorm.DB, dst any, label string) error {
	return db.Where("LOWER(label) = ?", strings.ToLower(label)).First(dst).Error
}
