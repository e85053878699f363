// Package analytics implements the dashboard's aggregation engine: symbolic
// date ranges, time-bucketed series, per-game/per-product/per-payment
// summaries and the query context consumed by charts and the assistant.
package analytics

import "time"

// Period is a symbolic date range selectable on the dashboard.
type Period string

// Supported periods. Anything else resolves like Period30Days.
const (
	PeriodToday  Period = "today"
	Period7Days  Period = "7days"
	Period30Days Period = "30days"
	Period1Year  Period = "1year"
)

// Bucketing is the granularity a range's series is grouped by.
type Bucketing int

const (
	BucketHour Bucketing = iota
	BucketDay
	BucketMonth
)

// Range is a concrete window with inclusive Start and End.
type Range struct {
	Period Period
	Start  time.Time
	End    time.Time
	Bucket Bucketing
}

// Contains reports whether t falls inside the range, inclusive on both ends.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// EffectiveNow clamps the wall clock to the dataset's reference anchor: when
// the real time is still before the anchor date, the end of the anchor day is
// treated as "now", so the bounded dataset always has a current window. Once
// the wall clock passes the anchor the real time takes over.
func EffectiveNow(now, anchor time.Time) time.Time {
	anchor = midnight(anchor)
	if now.Before(anchor) {
		return anchor.Add(24*time.Hour - time.Second)
	}
	return now
}

// ResolveRange maps a symbolic period to a concrete window and bucketing.
//
//	today:   01:00-12:00 on the anchor date, hourly buckets
//	7days:   7 calendar days ending on the effective date, daily buckets
//	30days:  30 calendar days ending on the effective date, daily buckets
//	1year:   Jan 1 of the anchor year through effective now, monthly buckets
//
// Unrecognized periods fall back to the 30days rule.
func ResolveRange(period Period, now, anchor time.Time) Range {
	eff := EffectiveNow(now, anchor)
	anchorDay := midnight(anchor)

	switch period {
	case PeriodToday:
		return Range{
			Period: PeriodToday,
			Start:  anchorDay.Add(1 * time.Hour),
			End:    anchorDay.Add(12 * time.Hour),
			Bucket: BucketHour,
		}
	case Period7Days:
		return Range{
			Period: Period7Days,
			Start:  midnight(eff).AddDate(0, 0, -6),
			End:    eff,
			Bucket: BucketDay,
		}
	case Period1Year:
		return Range{
			Period: Period1Year,
			Start:  time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
			End:    eff,
			Bucket: BucketMonth,
		}
	default:
		return Range{
			Period: Period30Days,
			Start:  midnight(eff).AddDate(0, 0, -29),
			End:    eff,
			Bucket: BucketDay,
		}
	}
}

// PreviousRange derives the window of equal length immediately preceding r,
// used for period-over-period growth. The previous window excludes r.Start:
// it covers [Start, End) where End == r.Start, except for 1year which
// compares against the same window one calendar year earlier.
func PreviousRange(r Range) Range {
	switch r.Period {
	case Period1Year:
		return Range{
			Period: r.Period,
			Start:  r.Start.AddDate(-1, 0, 0),
			End:    r.End.AddDate(-1, 0, 0),
			Bucket: r.Bucket,
		}
	case PeriodToday:
		// Same hour window on the previous calendar day.
		return Range{
			Period: r.Period,
			Start:  r.Start.AddDate(0, 0, -1),
			End:    r.End.AddDate(0, 0, -1),
			Bucket: r.Bucket,
		}
	default:
		length := r.End.Sub(r.Start)
		return Range{
			Period: r.Period,
			Start:  r.Start.Add(-length),
			End:    r.Start.Add(-time.Second),
			Bucket: r.Bucket,
		}
	}
}

// Growth returns the period-over-period revenue change in percent. A zero
// previous base yields 0, never NaN or Inf.
func Growth(current, previous int64) float64 {
	if previous <= 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
