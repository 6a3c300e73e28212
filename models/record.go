package models

import (
	"fmt"
	"time"
)

// Category is the top-level vehicle category tag from the Vahan data.
// Unknown tags are carried through aggregation untouched; only the
// growth table and the generator enumerate the known set.
type Category string

const (
	TwoWheeler   Category = "2W"
	ThreeWheeler Category = "3W"
	FourWheeler  Category = "4W"
)

// KnownCategories lists the three standard categories in display order.
var KnownCategories = []Category{TwoWheeler, ThreeWheeler, FourWheeler}

// Label returns the long display name for a category.
func (c Category) Label() string {
	switch c {
	case TwoWheeler:
		return "Two Wheeler (2W)"
	case ThreeWheeler:
		return "Three Wheeler (3W)"
	case FourWheeler:
		return "Four Wheeler (4W)"
	default:
		return string(c)
	}
}

// RegistrationRecord is one row of the registration table: the count of
// vehicles registered for a (month, category, class, manufacturer,
// state, RTO) combination. Dates are day-granular but semantically
// month-level — always the first of the month in source data.
type RegistrationRecord struct {
	Date          time.Time `json:"date"`
	Category      Category  `json:"vehicle_category"`
	VehicleClass  string    `json:"vehicle_class"`
	Manufacturer  string    `json:"manufacturer"`
	State         string    `json:"state"`
	RTO           string    `json:"rto"`
	Registrations int64     `json:"registrations"`
	Quarter       string    `json:"quarter"`
	Year          int       `json:"year"`
}

// NewRegistrationRecord builds a record and fills the derived Quarter
// and Year fields from the date.
func NewRegistrationRecord(date time.Time, category Category, class, manufacturer, state, rto string, registrations int64) RegistrationRecord {
	return RegistrationRecord{
		Date:          date,
		Category:      category,
		VehicleClass:  class,
		Manufacturer:  manufacturer,
		State:         state,
		RTO:           rto,
		Registrations: registrations,
		Quarter:       QuarterOf(date),
		Year:          date.Year(),
	}
}

// QuarterOf returns the "YYYY-Qn" label for a date.
func QuarterOf(date time.Time) string {
	return fmt.Sprintf("%d-Q%d", date.Year(), (int(date.Month())-1)/3+1)
}

// Validate reports whether the record satisfies the table invariants.
// Ingestion boundaries call this and reject bad rows; the analytics
// core assumes it already passed.
func (r RegistrationRecord) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("record: zero date")
	}
	if r.Registrations < 0 {
		return fmt.Errorf("record: negative registrations %d", r.Registrations)
	}
	if r.Manufacturer == "" {
		return fmt.Errorf("record: empty manufacturer")
	}
	return nil
}
