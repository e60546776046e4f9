package domain

import (
	"strings"
	"time"
)

type Granularity int

const (
	Hourly Granularity = iota
	Daily
	Weekly
	Monthly
	Yearly
)

var granularityNames = map[string]Granularity{
	"hourly":  Hourly,
	"hour":    Hourly,
	"daily":   Daily,
	"day":     Daily,
	"weekly":  Weekly,
	"week":    Weekly,
	"monthly": Monthly,
	"month":   Monthly,
	"yearly":  Yearly,
	"year":    Yearly,
}

// ParseGranularity maps a timePeriod value to a Granularity.
// Unknown values fall back to Hourly with ok=false.
func ParseGranularity(s string) (g Granularity, ok bool) {
	g, ok = granularityNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Hourly, false
	}
	return g, true
}

func (g Granularity) String() string {
	switch g {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "hourly"
	}
}

// Bucketing selects how a timestamp becomes a bucket key.
type Bucketing string

const (
	// BucketPosition keys by position inside the natural period
	// (hour of day, day of month, ...). Same-position events from
	// different cycles share a bucket.
	BucketPosition Bucketing = "position"
	// BucketDense keys by the unix start of the truncated period.
	BucketDense Bucketing = "dense"
)

// ParseBucketing returns BucketPosition for an empty value.
func ParseBucketing(s string) (Bucketing, bool) {
	switch Bucketing(strings.ToLower(strings.TrimSpace(s))) {
	case "", BucketPosition:
		return BucketPosition, true
	case BucketDense:
		return BucketDense, true
	default:
		return BucketPosition, false
	}
}

type BucketKeyer interface {
	Key(t time.Time, g Granularity) int64
}

type keyRule func(t time.Time) int64

// Hours are zero-based (0-23) for every record kind.
var positionRules = map[Granularity]keyRule{
	Hourly:  func(t time.Time) int64 { return int64(t.Hour()) },
	Daily:   func(t time.Time) int64 { return int64(t.Day()) },
	Weekly:  func(t time.Time) int64 { return int64(t.Weekday()) + 1 },
	Monthly: func(t time.Time) int64 { return int64(t.Month()) },
	Yearly:  func(t time.Time) int64 { return int64(t.Year()) },
}

var denseRules = map[Granularity]keyRule{
	Hourly: func(t time.Time) int64 {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location()).Unix()
	},
	Daily: func(t time.Time) int64 {
		return startOfDay(t).Unix()
	},
	Weekly: func(t time.Time) int64 {
		d := startOfDay(t)
		return d.AddDate(0, 0, -int(d.Weekday())).Unix()
	},
	Monthly: func(t time.Time) int64 {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Unix()
	},
	Yearly: func(t time.Time) int64 {
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location()).Unix()
	},
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type ruleKeyer struct {
	rules map[Granularity]keyRule
	loc   *time.Location
}

func (k ruleKeyer) Key(t time.Time, g Granularity) int64 {
	rule, ok := k.rules[g]
	if !ok {
		rule = k.rules[Hourly]
	}
	return rule(t.In(k.loc))
}

// NewBucketKeyer returns the keyer for the given strategy, reading wall-clock
// fields in loc. A nil loc means UTC.
func NewBucketKeyer(b Bucketing, loc *time.Location) BucketKeyer {
	if loc == nil {
		loc = time.UTC
	}
	if b == BucketDense {
		return ruleKeyer{rules: denseRules, loc: loc}
	}
	return ruleKeyer{rules: positionRules, loc: loc}
}
