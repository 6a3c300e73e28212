package storage

import "vahan-analytics/models"

// RecordWriter is the interface any storage backend must satisfy.
type RecordWriter interface {
	Write(records []models.RegistrationRecord) error
	Close() error
}

// RecordReader retrieves a stored registration dataset.
type RecordReader interface {
	FetchAll() ([]models.RegistrationRecord, error)
}
