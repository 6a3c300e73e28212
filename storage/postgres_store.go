package storage

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"

	"vahan-analytics/models"
)

const tableRegistrations = "registrations"

// PostgresStore persists the registration table to PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// builder returns a squirrel statement builder with $n placeholders.
func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// NewPostgresStore opens a connection, waits for the database to come
// up, runs schema migration, and returns a ready-to-use store.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(db.Ping, policy); err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	st := &PostgresStore{db: db}
	if err := st.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return st, nil
}

func (s *PostgresStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS registrations (
			id               SERIAL PRIMARY KEY,
			date             DATE         NOT NULL,
			vehicle_category VARCHAR(10)  NOT NULL,
			vehicle_class    TEXT         NOT NULL DEFAULT '',
			manufacturer     TEXT         NOT NULL,
			state            TEXT         NOT NULL DEFAULT '',
			rto              VARCHAR(10)  NOT NULL DEFAULT '',
			registrations    BIGINT       NOT NULL CHECK (registrations >= 0),
			quarter          VARCHAR(10)  NOT NULL,
			year             INT          NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_registrations_date         ON registrations(date);
		CREATE INDEX IF NOT EXISTS idx_registrations_category     ON registrations(vehicle_category);
		CREATE INDEX IF NOT EXISTS idx_registrations_manufacturer ON registrations(manufacturer);
		CREATE INDEX IF NOT EXISTS idx_registrations_state        ON registrations(state);
	`)
	return err
}

// Clear deletes all stored registrations.
func (s *PostgresStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM registrations"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write replaces the stored dataset with records, inserting in batches.
func (s *PostgresStore) Write(records []models.RegistrationRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := s.Clear(); err != nil {
		return err
	}

	const batchSize = 500
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := s.insertBatch(records[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) insertBatch(batch []models.RegistrationRecord) error {
	insert := builder().Insert(tableRegistrations).Columns(
		"date", "vehicle_category", "vehicle_class", "manufacturer",
		"state", "rto", "registrations", "quarter", "year",
	)
	for _, r := range batch {
		insert = insert.Values(
			r.Date, string(r.Category), r.VehicleClass, r.Manufacturer,
			r.State, r.RTO, r.Registrations, r.Quarter, r.Year,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("postgres: build insert: %w", err)
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

// FetchAll retrieves the whole stored dataset in insertion order.
func (s *PostgresStore) FetchAll() ([]models.RegistrationRecord, error) {
	return s.fetch(builder().
		Select("date", "vehicle_category", "vehicle_class", "manufacturer",
			"state", "rto", "registrations").
		From(tableRegistrations).
		OrderBy("id"))
}

// FetchOptions narrows a FetchFiltered query; zero values mean no
// constraint.
type FetchOptions struct {
	From       time.Time
	To         time.Time
	Categories []models.Category
}

// FetchFiltered retrieves the records matching opts.
func (s *PostgresStore) FetchFiltered(opts FetchOptions) ([]models.RegistrationRecord, error) {
	query := builder().
		Select("date", "vehicle_category", "vehicle_class", "manufacturer",
			"state", "rto", "registrations").
		From(tableRegistrations).
		OrderBy("id")

	if !opts.From.IsZero() {
		query = query.Where(sq.GtOrEq{"date": opts.From})
	}
	if !opts.To.IsZero() {
		query = query.Where(sq.LtOrEq{"date": opts.To})
	}
	if len(opts.Categories) > 0 {
		cats := make([]string, len(opts.Categories))
		for i, c := range opts.Categories {
			cats[i] = string(c)
		}
		query = query.Where(sq.Eq{"vehicle_category": cats})
	}

	return s.fetch(query)
}

func (s *PostgresStore) fetch(query sq.SelectBuilder) ([]models.RegistrationRecord, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build select: %w", err)
	}

	rows, err := s.db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch: %w", err)
	}
	defer rows.Close()

	var records []models.RegistrationRecord
	for rows.Next() {
		var (
			date          time.Time
			category      string
			class         string
			manufacturer  string
			state         string
			rto           string
			registrations int64
		)
		if err := rows.Scan(&date, &category, &class, &manufacturer, &state, &rto, &registrations); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		records = append(records, models.NewRegistrationRecord(
			date, models.Category(category), class, manufacturer, state, rto, registrations,
		))
	}
	return records, rows.Err()
}

// Close closes the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
