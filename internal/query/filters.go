// Package query translates the optional job application list parameters
// into a deterministic, ordered, paginated result set scoped to one user.
package query

import (
	"net/url"
	"strings"
	"time"

	"jobtrack/tracker-api/internal/model"

	"gorm.io/gorm"
)

// Filters is the set of optional list constraints. Zero values impose no
// constraint; supplied values are combined as a conjunction.
type Filters struct {
	EmploymentType       string
	JobApplicationStatus string
	WorkArrangement      string
	CompanyName          string
	PositionTitle        string
	DateFrom             *model.Date
	DateTo               *model.Date
	DateExact            *model.Date
}

// InvalidDateError names every date parameter that failed to parse.
// Malformed dates reject the request instead of being silently ignored.
type InvalidDateError struct {
	Fields []string
}

func (e *InvalidDateError) Error() string {
	return "Invalid date values: " + strings.Join(e.Fields, ", ") + ". Expected format " + model.DateLayout
}

// ParseFilters reads the supported query parameters. Unknown parameters
// are ignored, malformed dates are not.
func ParseFilters(values url.Values) (*Filters, error) {
	f := &Filters{
		EmploymentType:       values.Get("employment_type"),
		JobApplicationStatus: values.Get("job_application_status"),
		WorkArrangement:      values.Get("work_arrangement"),
		CompanyName:          values.Get("company_name"),
		PositionTitle:        values.Get("position_title"),
	}

	var bad []string

	for _, p := range []struct {
		name string
		dst  **model.Date
	}{
		{"date_from", &f.DateFrom},
		{"date_to", &f.DateTo},
		{"date_exact", &f.DateExact},
	} {
		raw := values.Get(p.name)
		if raw == "" {
			continue
		}

		t, err := time.Parse(model.DateLayout, raw)
		if err != nil {
			bad = append(bad, p.name)
			continue
		}

		d := model.Date(t)
		*p.dst = &d
	}

	if len(bad) > 0 {
		return nil, &InvalidDateError{Fields: bad}
	}

	return f, nil
}

// scope builds the filtered queryset for one user. Label filters are
// case-insensitive exact matches through the lookup tables, name filters
// are case-insensitive substring matches, date bounds are inclusive.
func (f *Filters) scope(db *gorm.DB, userID string) *gorm.DB {
	q := db.Model(&model.JobApplication{}).
		Where("job_applications.user_id = ?", userID)

	if f.EmploymentType != "" {
		q = q.Joins("JOIN employment_types ON employment_types.id = job_applications.employment_type_id").
			Where("LOWER(employment_types.label) = LOWER(?)", f.EmploymentType)
	}

	if f.JobApplicationStatus != "" {
		q = q.Joins("JOIN job_application_statuses ON job_application_statuses.id = job_applications.job_application_status_id").
			Where("LOWER(job_application_statuses.label) = LOWER(?)", f.JobApplicationStatus)
	}

	if f.WorkArrangement != "" {
		q = q.Joins("JOIN work_arrangements ON work_arrangements.id = job_applications.work_arrangement_id").
			Where("LOWER(work_arrangements.label) = LOWER(?)", f.WorkArrangement)
	}

	if f.CompanyName != "" {
		q = q.Where(`LOWER(job_applications.company_name) LIKE ? ESCAPE '\'`, likeContains(f.CompanyName))
	}

	if f.PositionTitle != "" {
		q = q.Where(`LOWER(job_applications.position_title) LIKE ? ESCAPE '\'`, likeContains(f.PositionTitle))
	}

	if f.DateExact != nil {
		q = q.Where("job_applications.date_applied = ?", *f.DateExact)
	}

	if f.DateFrom != nil {
		q = q.Where("job_applications.date_applied >= ?", *f.DateFrom)
	}

	if f.DateTo != nil {
		q = q.Where("job_applications.date_applied <= ?", *f.DateTo)
	}

	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeContains builds a case-insensitive substring pattern. LIKE
// wildcards in the input are escaped so they match literally.
func likeContains(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// Echo reports which filters were applied, absent ones as null, so the
// caller can see exactly what constrained the result set.
func (f *Filters) Echo() map[string]any {
	echo := map[string]any{
		"employment_type":        nil,
		"job_application_status": nil,
		"work_arrangement":       nil,
		"company_name":           nil,
		"position_title":         nil,
		"date_from":              nil,
		"date_to":                nil,
		"date_exact":             nil,
	}

	if f.EmploymentType != "" {
		echo["employment_type"] = f.EmploymentType
	}
	if f.JobApplicationStatus != "" {
		echo["job_application_status"] = f.JobApplicationStatus
	}
	if f.WorkArrangement != "" {
		echo["work_arrangement"] = f.WorkArrangement
	}
	if f.CompanyName != "" {
		echo["company_name"] = f.CompanyName
	}
	if f.PositionTitle != "" {
		echo["position_title"] = f.PositionTitle
	}
	if f.DateFrom != nil {
		echo["date_from"] = f.DateFrom.String()
	}
	if f.DateTo != nil {
		echo["date_to"] = f.DateTo.String()
	}
	if f.DateExact != nil {
		echo["date_exact"] = f.DateExact.String()
	}

	return echo
}
