// Package analytics computes descriptive statistics over small in-memory
// datasets. A dataset is a slice of flat records; numeric columns get
// mean/median/min/max/stddev, and an optional group-by column yields
// per-group means.
package analytics

import (
	"math"

	"github.com/fatih/structs"
	"golang.org/x/exp/slices"
)

// Record is one row of a dataset, keyed by column name.
type Record map[string]any

// ColumnStats is the summary of a single numeric column.
type ColumnStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// NewRecord flattens a tagged struct into a Record. Field names come from
// `structs` tags.
func NewRecord(obj any) Record {
	return structs.Map(obj)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// numericColumns returns the values of every column whose value is numeric in
// every record. A column with even one non-numeric value is skipped entirely.
func numericColumns(records []Record) map[string][]float64 {
	columns := map[string][]float64{}
	excluded := map[string]bool{}
	for _, r := range records {
		for key, value := range r {
			if excluded[key] {
				continue
			}

			n, ok := toFloat(value)
			if !ok {
				excluded[key] = true
				delete(columns, key)
				continue
			}

			columns[key] = append(columns[key], n)
		}
	}

	return columns
}

// Describe summarizes every all-numeric column of the dataset.
func Describe(records []Record) map[string]ColumnStats {
	statistics := map[string]ColumnStats{}
	for key, values := range numericColumns(records) {
		statistics[key] = describeColumn(values)
	}

	return statistics
}

func describeColumn(values []float64) ColumnStats {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	slices.Sort(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	// Sample standard deviation. A single observation has no spread.
	var stddev float64
	if len(sorted) >= 2 {
		var squares float64
		for _, v := range sorted {
			squares += (v - mean) * (v - mean)
		}
		stddev = math.Sqrt(squares / float64(len(sorted)-1))
	}

	return ColumnStats{
		Mean:   mean,
		Median: median,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		StdDev: stddev,
	}
}

// GroupMeans buckets records by the string value of groupBy and computes the
// mean of every all-numeric column within each bucket.
func GroupMeans(records []Record, groupBy string) map[string]map[string]float64 {
	buckets := map[string][]Record{}
	for _, r := range records {
		key, ok := r[groupBy].(string)
		if !ok {
			continue
		}
		buckets[key] = append(buckets[key], r)
	}

	grouped := map[string]map[string]float64{}
	for key, bucket := range buckets {
		means := map[string]float64{}
		for column, values := range numericColumns(bucket) {
			var sum float64
			for _, v := range values {
				sum += v
			}
			means[column] = sum / float64(len(values))
		}
		grouped[key] = means
	}

	return grouped
}
