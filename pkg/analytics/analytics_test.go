package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Describe(t *testing.T) {
	records := []Record{
		{"group": "a", "distance": 1.0, "count": int64(2)},
		{"group": "a", "distance": 3.0, "count": int64(4)},
		{"group": "b", "distance": 5.0, "count": int64(6)},
		{"group": "b", "distance": 7.0, "count": int64(8)},
	}

	statistics := Describe(records)
	require.Len(t, statistics, 2)
	require.NotContains(t, statistics, "group")

	distance := statistics["distance"]
	require.Equal(t, 4.0, distance.Mean)
	require.Equal(t, 4.0, distance.Median)
	require.Equal(t, 1.0, distance.Min)
	require.Equal(t, 7.0, distance.Max)
	require.InDelta(t, 2.5819889, distance.StdDev, 1e-6)
}

func Test_Describe_oddMedian(t *testing.T) {
	records := []Record{
		{"v": 9.0},
		{"v": 1.0},
		{"v": 5.0},
	}

	statistics := Describe(records)
	require.Equal(t, 5.0, statistics["v"].Median)
}

func Test_Describe_singleValueHasNoSpread(t *testing.T) {
	statistics := Describe([]Record{{"v": 42.0}})
	require.Equal(t, 42.0, statistics["v"].Mean)
	require.Equal(t, 0.0, statistics["v"].StdDev)
}

func Test_Describe_mixedColumnExcluded(t *testing.T) {
	records := []Record{
		{"v": 1.0},
		{"v": "oops"},
		{"v": 2.0},
	}

	statistics := Describe(records)
	require.NotContains(t, statistics, "v")
}

func Test_Describe_empty(t *testing.T) {
	require.Empty(t, Describe(nil))
}

func Test_GroupMeans(t *testing.T) {
	records := []Record{
		{"group": "a", "distance": 1.0},
		{"group": "a", "distance": 3.0},
		{"group": "b", "distance": 10.0},
	}

	grouped := GroupMeans(records, "group")
	require.Len(t, grouped, 2)
	require.Equal(t, 2.0, grouped["a"]["distance"])
	require.Equal(t, 10.0, grouped["b"]["distance"])
}

func Test_NewRecord(t *testing.T) {
	type row struct {
		Name  string  `structs:"name"`
		Speed float64 `structs:"speed,omitempty"`
	}

	record := NewRecord(row{Name: "x"})
	require.Equal(t, "x", record["name"])
	require.NotContains(t, record, "speed")
}
