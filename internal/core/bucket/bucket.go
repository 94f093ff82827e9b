// Package bucket converts a date range into chart bucketing parameters:
// the valid display granularities for the span, per point spacing, and
// axis boundary anchors. Pure value transforms, no shared state
package bucket

import (
	"time"

	"themewatch/internal/core/facet"
)

// Millisecond spans per granularity. A month is a fixed 30 days for chart
// point spacing purposes
const (
	msQuarterHour = 900_000
	msHalfHour    = 1_800_000
	msHour        = 3_600_000
	msDay         = 86_400_000
	msWeek        = 604_800_000
	msMonth       = 2_592_000_000
)

var subDay = []facet.Granularity{facet.Hour, facet.HalfHour, facet.QuarterHour}

// branch pairs a span predicate with its granularity choices.
// Evaluated top down, first match wins. The predicates overlap at the
// boundaries (1, 7, 30 days) and the observable result depends on this
// exact order, so the list must not be reordered or "cleaned up" into
// disjoint intervals
var branches = []struct {
	match func(days float64) bool
	out   []facet.Granularity
}{
	{func(d float64) bool { return d > 7 && d < 30 }, []facet.Granularity{facet.Week, facet.Day}},
	{func(d float64) bool { return d > 1 && d <= 7 }, []facet.Granularity{facet.Week, facet.Day}},
	{func(d float64) bool { return d >= 30 }, []facet.Granularity{facet.Month, facet.Week}},
	{func(d float64) bool { return d <= 1 }, subDay},
}

// Classify returns the granularity choices valid for a span of rangeDays.
// Zero and negative spans land in the sub day branch, which doubles as the
// default for any input no predicate claims (NaN)
func Classify(rangeDays float64) []facet.Granularity {
	for _, b := range branches {
		if b.match(rangeDays) {
			out := make([]facet.Granularity, len(b.out))
			copy(out, b.out)
			return out
		}
	}
	out := make([]facet.Granularity, len(subDay))
	copy(out, subDay)
	return out
}

// Valid reports whether g is a legal display granularity for rangeDays
func Valid(g facet.Granularity, rangeDays float64) bool {
	for _, v := range Classify(rangeDays) {
		if v == g {
			return true
		}
	}
	return false
}

// Coerce returns g unchanged when it is valid for rangeDays, otherwise the
// first valid choice. Used to correct a chart period left over from a
// previous, differently sized range
func Coerce(g facet.Granularity, rangeDays float64) facet.Granularity {
	valid := Classify(rangeDays)
	for _, v := range valid {
		if v == g {
			return g
		}
	}
	return valid[0]
}

// PointInterval returns the per point spacing in milliseconds for a
// granularity. Unrecognized input gets the month spacing
func PointInterval(g facet.Granularity) int64 {
	switch g {
	case facet.QuarterHour:
		return msQuarterHour
	case facet.HalfHour:
		return msHalfHour
	case facet.Hour:
		return msHour
	case facet.Day:
		return msDay
	case facet.Week:
		return msWeek
	case facet.Month:
		return msMonth
	default:
		return msMonth
	}
}

// UTCDayStart truncates t to UTC midnight and returns it as Unix
// milliseconds. A nil t falls back to fallback, a zero fallback means now.
// Both the axis minimum and the series pointStart anchor use this so every
// series begins label aligned regardless of its own timestamps
func UTCDayStart(t *time.Time, fallback time.Time) int64 {
	v := fallback
	if t != nil {
		v = *t
	}
	if v.IsZero() {
		v = time.Now()
	}
	v = v.UTC()
	midnight := time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.UnixMilli()
}

// AxisMax returns the chart axis upper bound for a granularity. Only month
// charts get a fixed bound (UTC midnight of the range end, or now); for
// every other granularity ok is false and the chart auto scales
func AxisMax(g facet.Granularity, end *time.Time) (int64, bool) {
	if g != facet.Month {
		return 0, false
	}
	return UTCDayStart(end, time.Time{}), true
}

// SeriesToMillis converts [unixSeconds, value] pairs to [unixMillis, value]
// in place order, returning a new slice. Upstream emits seconds, charts
// consume milliseconds; this is the single conversion point
func SeriesToMillis(points [][2]int64) [][2]int64 {
	if points == nil {
		return nil
	}
	out := make([][2]int64, len(points))
	for i, p := range points {
		out[i] = [2]int64{p[0] * 1000, p[1]}
	}
	return out
}
