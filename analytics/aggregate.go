package analytics

import (
	"fmt"
	"strings"
	"time"

	"vahan-analytics/models"
)

// Dimension names a grouping key for Aggregate.
type Dimension string

const (
	DimCategory     Dimension = "category"
	DimManufacturer Dimension = "manufacturer"
	DimState        Dimension = "state"
	DimVehicleClass Dimension = "vehicle_class"
	DimRTO          Dimension = "rto"
)

// DateBucket truncates record dates to a period before grouping. When
// not BucketNone it acts as an implicit leading grouping key.
type DateBucket int

const (
	BucketNone DateBucket = iota
	BucketMonth
	BucketQuarter
	BucketYear
)

// keySep joins composite key parts; it never occurs in dimension values.
const keySep = "\x1f"

// Entry is one aggregated combination: the period bucket (empty when
// no bucket was requested), one key per requested dimension, and the
// exact sum of registrations.
type Entry struct {
	Bucket string   `json:"bucket,omitempty"`
	Keys   []string `json:"keys"`
	Total  int64    `json:"total"`
}

// Result maps composite keys to summed registration totals. Entries
// keep first-appearance order; callers sort explicitly when order
// matters.
type Result struct {
	entries []Entry
	index   map[string]int
}

// Aggregate sums registrations for every distinct combination of
// (bucket, dimensions...) present in records. Combinations absent from
// the input are absent from the output — callers needing zero-fill
// synthesize it themselves. Sums are exact int64; totals do not depend
// on input row order.
func Aggregate(records []models.RegistrationRecord, dims []Dimension, bucket DateBucket) *Result {
	res := &Result{index: make(map[string]int)}

	for _, rec := range records {
		bucketKey := bucketLabel(rec.Date, bucket)
		keys := make([]string, len(dims))
		for i, d := range dims {
			keys[i] = dimensionValue(rec, d)
		}

		composite := compositeKey(bucketKey, keys)
		if pos, ok := res.index[composite]; ok {
			res.entries[pos].Total += rec.Registrations
			continue
		}

		res.index[composite] = len(res.entries)
		res.entries = append(res.entries, Entry{Bucket: bucketKey, Keys: keys, Total: rec.Registrations})
	}

	return res
}

// Entries returns the aggregated combinations in first-appearance order.
func (r *Result) Entries() []Entry { return r.entries }

// Len returns the number of distinct combinations.
func (r *Result) Len() int { return len(r.entries) }

// Total looks up the sum for one combination. The second return value
// is false when the combination never occurred in the input.
func (r *Result) Total(bucket string, keys ...string) (int64, bool) {
	pos, ok := r.index[compositeKey(bucket, keys)]
	if !ok {
		return 0, false
	}
	return r.entries[pos].Total, true
}

// GrandTotal sums every entry — equal to the registration total of the
// input regardless of grouping.
func (r *Result) GrandTotal() int64 {
	var total int64
	for _, e := range r.entries {
		total += e.Total
	}
	return total
}

func compositeKey(bucket string, keys []string) string {
	if len(keys) == 0 {
		return bucket
	}
	return bucket + keySep + strings.Join(keys, keySep)
}

// dimensionValue reads a grouping key from a record. Derived keys are
// computed here, never written back onto the shared collection.
func dimensionValue(rec models.RegistrationRecord, dim Dimension) string {
	switch dim {
	case DimCategory:
		return string(rec.Category)
	case DimManufacturer:
		return rec.Manufacturer
	case DimState:
		return rec.State
	case DimVehicleClass:
		return rec.VehicleClass
	case DimRTO:
		return rec.RTO
	default:
		return ""
	}
}

func bucketLabel(date time.Time, bucket DateBucket) string {
	switch bucket {
	case BucketMonth:
		return date.Format("2006-01")
	case BucketQuarter:
		return models.QuarterOf(date)
	case BucketYear:
		return fmt.Sprintf("%d", date.Year())
	default:
		return ""
	}
}

// ParseDimensions converts a comma-separated list ("category,state")
// into Dimension values, rejecting unknown names.
func ParseDimensions(s string) ([]Dimension, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	known := map[string]Dimension{
		string(DimCategory):     DimCategory,
		string(DimManufacturer): DimManufacturer,
		string(DimState):        DimState,
		string(DimVehicleClass): DimVehicleClass,
		string(DimRTO):          DimRTO,
	}

	var dims []Dimension
	for _, part := range strings.Split(s, ",") {
		d, ok := known[strings.TrimSpace(part)]
		if !ok {
			return nil, fmt.Errorf("unknown dimension %q", strings.TrimSpace(part))
		}
		dims = append(dims, d)
	}
	return dims, nil
}

// ParseBucket converts a bucket name to a DateBucket.
func ParseBucket(s string) (DateBucket, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BucketNone, nil
	case "month":
		return BucketMonth, nil
	case "quarter":
		return BucketQuarter, nil
	case "year":
		return BucketYear, nil
	default:
		return BucketNone, fmt.Errorf("unknown date bucket %q", s)
	}
}
