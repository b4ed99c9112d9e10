package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time component. Stored as a plain
// YYYY-MM-DD string so that range comparisons work the same on SQLite
// and Postgres.
type Date time.Time

// Value implements the driver.Valuer interface.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d).Format(DateLayout), nil
}

// Scan implements the sql.Scanner interface.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = Date(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("failed to scan Date, %v", value)
	}
}

func (d *Date) parse(s string) error {
	// Postgres date columns may come back with a time suffix
	if i := strings.IndexAny(s, "T "); i > 0 {
		s = s[:i]
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}

	*d = Date(t)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}

	return d.parse(s)
}

func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}
