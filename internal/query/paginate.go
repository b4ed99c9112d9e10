package query

import (
	"errors"
	"net/url"
	"strconv"

	"jobtrack/tracker-api/internal/model"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var (
	// ErrPageOutOfRange means the requested page lies past the end of a
	// non-empty result set.
	ErrPageOutOfRange = errors.New("page is out of range")

	ErrInvalidPage     = errors.New("page must be a positive number")
	ErrInvalidPageSize = errors.New("page_size must be a number between 1 and 100")
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// ParsePage reads the pagination controls. A missing page parameter means
// the caller wants the full result set, reported as a nil Page.
func ParsePage(values url.Values) (*Page, error) {
	raw := values.Get("page")
	if raw == "" {
		return nil, nil
	}

	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		return nil, ErrInvalidPage
	}

	size := defaultPageSize
	if rawSize := values.Get("page_size"); rawSize != "" {
		size, err = strconv.Atoi(rawSize)
		if err != nil || size < 1 || size > maxPageSize {
			return nil, ErrInvalidPageSize
		}
	}

	return &Page{Number: number, Size: size}, nil
}

// Result is one page (or the whole set) of a user's filtered applications.
type Result struct {
	Results []model.JobApplication

	// Pagination metadata, only meaningful when Paged is set
	Paged       bool
	CurrentPage int
	TotalPages  int
	Count       int64
}

// Run executes the filtered query for one user. Ordering is by creation
// time descending, newest application record first. That is deliberately
// not "most recently applied" - the date_applied column plays no part in
// ordering.
func Run(db *gorm.DB, userID string, f *Filters, page *Page) (*Result, error) {
	var count int64

	if err := f.scope(db, userID).Count(&count).Error; err != nil {
		return nil, err
	}

	q := f.scope(db, userID).
		Preload("EmploymentType").
		Preload("WorkArrangement").
		Preload("JobApplicationStatus").
		Order("job_applications.created_at DESC, job_applications.id DESC")

	if page == nil {
		res := &Result{Results: []model.JobApplication{}, Count: count}
		if err := q.Find(&res.Results).Error; err != nil {
			return nil, err
		}

		return res, nil
	}

	totalPages := int((count + int64(page.Size) - 1) / int64(page.Size))
	if count > 0 && page.Number > totalPages {
		return nil, ErrPageOutOfRange
	}

	res := &Result{
		Results:     []model.JobApplication{},
		Paged:       true,
		CurrentPage: page.Number,
		TotalPages:  totalPages,
		Count:       count,
	}

	err := q.
		Offset((page.Number - 1) * page.Size).
		Limit(page.Size).
		Find(&res.Results).
		Error
	if err != nil {
		return nil, err
	}

	return res, nil
}
