package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"vahan-analytics/models"
)

const dateLayout = "2006-01-02"

var csvHeader = []string{
	"date", "vehicle_category", "vehicle_class", "manufacturer",
	"state", "rto", "registrations", "quarter", "year",
}

// CSVStore caches the processed registration dataset as a flat file so
// later runs skip generation. Write truncates; Load reads the whole
// file back.
type CSVStore struct {
	path string
}

// NewCSVStore creates a store for the given cache path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Exists reports whether a cache file is already present.
func (s *CSVStore) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Write persists the collection, creating intermediate directories and
// truncating any previous cache.
func (s *CSVStore) Write(records []models.RegistrationRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("csv: create cache dir: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Date.Format(dateLayout),
			string(r.Category),
			r.VehicleClass,
			r.Manufacturer,
			r.State,
			r.RTO,
			strconv.FormatInt(r.Registrations, 10),
			r.Quarter,
			strconv.Itoa(r.Year),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// FetchAll loads the cached dataset. The cache is machine-written, so
// a malformed row means a corrupt cache: loading fails fast with a
// row-numbered error instead of silently skipping.
func (s *CSVStore) FetchAll() ([]models.RegistrationRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv: %q has no header row", s.path)
	}

	records := make([]models.RegistrationRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("csv: row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close satisfies RecordWriter; the store holds no open handles.
func (s *CSVStore) Close() error { return nil }

func parseRow(row []string) (models.RegistrationRecord, error) {
	if len(row) != len(csvHeader) {
		return models.RegistrationRecord{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(row))
	}

	date, err := time.Parse(dateLayout, row[0])
	if err != nil {
		return models.RegistrationRecord{}, fmt.Errorf("bad date %q: %w", row[0], err)
	}

	registrations, err := strconv.ParseInt(row[6], 10, 64)
	if err != nil {
		return models.RegistrationRecord{}, fmt.Errorf("bad registrations %q: %w", row[6], err)
	}

	rec := models.NewRegistrationRecord(
		date, models.Category(row[1]), row[2], row[3], row[4], row[5], registrations,
	)
	if err := rec.Validate(); err != nil {
		return models.RegistrationRecord{}, err
	}
	return rec, nil
}
