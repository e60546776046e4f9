package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday
var sample = time.Date(2024, time.March, 13, 9, 45, 12, 0, time.UTC)

func TestParseGranularity(t *testing.T) {
	cases := map[string]Granularity{
		"hourly": Hourly, "hour": Hourly,
		"daily": Daily, "day": Daily,
		"weekly": Weekly, "week": Weekly,
		"monthly": Monthly, "month": Monthly,
		"yearly": Yearly, "year": Yearly,
		"Daily": Daily,
	}
	for in, want := range cases {
		got, ok := ParseGranularity(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	got, ok := ParseGranularity("fortnightly")
	assert.False(t, ok)
	assert.Equal(t, Hourly, got)
}

func TestPositionKeyer(t *testing.T) {
	k := NewBucketKeyer(BucketPosition, time.UTC)

	assert.Equal(t, int64(9), k.Key(sample, Hourly))
	assert.Equal(t, int64(13), k.Key(sample, Daily))
	assert.Equal(t, int64(4), k.Key(sample, Weekly))
	assert.Equal(t, int64(3), k.Key(sample, Monthly))
	assert.Equal(t, int64(2024), k.Key(sample, Yearly))
}

func TestPositionKeyer_HourIsZeroBased(t *testing.T) {
	k := NewBucketKeyer(BucketPosition, time.UTC)

	midnight := time.Date(2024, time.March, 13, 0, 10, 0, 0, time.UTC)
	lastHour := time.Date(2024, time.March, 13, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, int64(0), k.Key(midnight, Hourly))
	assert.Equal(t, int64(23), k.Key(lastHour, Hourly))
}

func TestPositionKeyer_SundayIsOne(t *testing.T) {
	k := NewBucketKeyer(BucketPosition, time.UTC)
	sunday := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, time.March, 16, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(1), k.Key(sunday, Weekly))
	assert.Equal(t, int64(7), k.Key(saturday, Weekly))
}

func TestPositionKeyer_CollapsesCycles(t *testing.T) {
	k := NewBucketKeyer(BucketPosition, time.UTC)
	nextDay := sample.AddDate(0, 0, 1)

	assert.Equal(t, k.Key(sample, Hourly), k.Key(nextDay, Hourly))
}

func TestPositionKeyer_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	k := NewBucketKeyer(BucketPosition, loc)

	assert.Equal(t, int64(11), k.Key(sample, Hourly))
}

func TestKeyer_UnknownGranularityFallsBackToHourly(t *testing.T) {
	for _, b := range []Bucketing{BucketPosition, BucketDense} {
		k := NewBucketKeyer(b, time.UTC)
		assert.Equal(t, k.Key(sample, Hourly), k.Key(sample, Granularity(42)), b)
	}
}

func TestDenseKeyer(t *testing.T) {
	k := NewBucketKeyer(BucketDense, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC).Unix(), k.Key(sample, Hourly))
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC).Unix(), k.Key(sample, Daily))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Unix(), k.Key(sample, Weekly))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Unix(), k.Key(sample, Monthly))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix(), k.Key(sample, Yearly))
}

func TestDenseKeyer_SeparatesCycles(t *testing.T) {
	k := NewBucketKeyer(BucketDense, time.UTC)
	nextDay := sample.AddDate(0, 0, 1)

	assert.NotEqual(t, k.Key(sample, Hourly), k.Key(nextDay, Hourly))
}

func TestKeyer_Deterministic(t *testing.T) {
	for _, b := range []Bucketing{BucketPosition, BucketDense} {
		k := NewBucketKeyer(b, time.UTC)
		for g := Hourly; g <= Yearly; g++ {
			first := k.Key(sample, g)
			for i := 0; i < 5; i++ {
				require.Equal(t, first, k.Key(sample, g), "%s/%s", b, g)
			}
		}
	}
}

func TestParseBucketing(t *testing.T) {
	b, ok := ParseBucketing("")
	assert.True(t, ok)
	assert.Equal(t, BucketPosition, b)

	b, ok = ParseBucketing("dense")
	assert.True(t, ok)
	assert.Equal(t, BucketDense, b)

	_, ok = ParseBucketing("sparse")
	assert.False(t, ok)
}
