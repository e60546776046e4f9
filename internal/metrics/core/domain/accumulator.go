package domain

import "time"

// Buckets is a sparse bucket map: keys without records are absent.
type Buckets[M any] map[int64]M

// Fold buckets records in the order given and merges each one into its bucket.
// A bucket starts from the zero value returned by newMetrics on first touch.
func Fold[R, M any](
	records []R,
	keyer BucketKeyer,
	g Granularity,
	at func(R) time.Time,
	newMetrics func() M,
	merge func(M, R) M,
) Buckets[M] {
	out := make(Buckets[M])
	for _, r := range records {
		key := keyer.Key(at(r), g)
		m, ok := out[key]
		if !ok {
			m = newMetrics()
		}
		out[key] = merge(m, r)
	}
	return out
}

type ConversationMetrics struct {
	CallbackCount     int64
	Initialisations   int64
	AiInitialisations int64
}

func (m ConversationMetrics) Merge(r ConversationRecord) ConversationMetrics {
	m.Initialisations++
	if r.TranscriptCount > 0 {
		m.AiInitialisations++
	}
	if r.Callback.Contactable() {
		m.CallbackCount++
	}
	return m
}

type CallbackMetrics struct {
	Count int64
}

func (m CallbackMetrics) Merge(r ConversationRecord) CallbackMetrics {
	if r.Callback.Contactable() {
		m.Count++
	}
	return m
}

// NoResponseTime marks a bucket in which no snapshot reported a response time.
const NoResponseTime = -1

// StatsMetrics sums snapshot counters. AverageResponseTime is not averaged:
// it holds the reading of the newest snapshot that carried one.
type StatsMetrics struct {
	Completed           int64
	UserMessages        int64
	CallbackAsked       int64
	ChatTime            float64
	AverageResponseTime float64

	readingAt  time.Time
	hasReading bool
}

func NewStatsMetrics() StatsMetrics {
	return StatsMetrics{AverageResponseTime: NoResponseTime}
}

func (m StatsMetrics) Merge(r StatsRecord) StatsMetrics {
	if r.Completed {
		m.Completed++
	}
	m.UserMessages += r.UserMessages
	if r.CallbackAsked {
		m.CallbackAsked++
	}
	if r.ChatTime != nil {
		m.ChatTime += *r.ChatTime
	}
	if r.AverageResponseTime != nil && (!m.hasReading || !r.CreatedAt.Before(m.readingAt)) {
		m.AverageResponseTime = *r.AverageResponseTime
		m.readingAt = r.CreatedAt
		m.hasReading = true
	}
	return m
}

// StatsMetric selects which stats fields a response carries.
type StatsMetric string

const (
	MetricAll                 StatsMetric = "all"
	MetricCompleted           StatsMetric = "completed"
	MetricUserMessages        StatsMetric = "userMessages"
	MetricCallbackAsked       StatsMetric = "callbackAsked"
	MetricAverageResponseTime StatsMetric = "averageResponseTime"
	MetricChatTime            StatsMetric = "chatTime"
)

func ParseStatsMetric(s string) (StatsMetric, bool) {
	switch m := StatsMetric(s); m {
	case MetricAll, MetricCompleted, MetricUserMessages, MetricCallbackAsked,
		MetricAverageResponseTime, MetricChatTime:
		return m, true
	}
	return "", false
}

// Includes reports whether field is selected by m.
func (m StatsMetric) Includes(field StatsMetric) bool {
	return m == MetricAll || m == field
}
