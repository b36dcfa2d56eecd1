package models

import (
	"fmt"
	"time"
)

// Period is an aggregation granularity for summary counters. Every tracked
// event is counted once per period, in the bucket obtained by truncating the
// event time down to the period boundary in UTC.
type Period string

const (
	PeriodHour  Period = "hour"
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
)

// AllPeriods returns the periods every dimension is summarized over, coarsest
// last.
func AllPeriods() []Period {
	return []Period{PeriodHour, PeriodDay, PeriodMonth}
}

func NewPeriodFromString(s string) (Period, error) {
	switch Period(s) {
	case PeriodHour, PeriodDay, PeriodMonth:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period: %q", s)
}

// TableSuffix returns the period part of a summary table name
// (e.g. usage_url_hourly).
func (p Period) TableSuffix() string {
	switch p {
	case PeriodHour:
		return "hourly"
	case PeriodDay:
		return "daily"
	case PeriodMonth:
		return "monthly"
	default:
		panic(fmt.Sprintf("invalid Period: %q", p))
	}
}

// Truncate floors t to the start of the bucket containing it, in UTC.
// Hour buckets zero minutes and seconds, day buckets additionally zero the
// hour, month buckets additionally reset the day of month to 1.
func (p Period) Truncate(t time.Time) time.Time {
	utc := t.UTC()

	switch p {
	case PeriodHour:
		return time.Date(utc.Year(), utc.Month(), utc.Day(), utc.Hour(), 0, 0, 0, time.UTC)
	case PeriodDay:
		return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	case PeriodMonth:
		return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		panic(fmt.Sprintf("invalid Period: %q", p))
	}
}

// BucketID returns a low-cardinality label for the bucket within its parent
// span, used as a metric label.
func (p Period) BucketID(t time.Time) string {
	utc := t.UTC()

	switch p {
	case PeriodHour:
		return fmt.Sprintf("hour-%02d", utc.Hour())
	case PeriodDay:
		return fmt.Sprintf("day-%02d", utc.Day())
	case PeriodMonth:
		return fmt.Sprintf("month-%02d", int(utc.Month()))
	default:
		panic(fmt.Sprintf("invalid Period: %q", p))
	}
}

// BucketTimes computes the hour, day and month buckets of t in one call.
func BucketTimes(t time.Time) (hour, day, month time.Time) {
	return PeriodHour.Truncate(t), PeriodDay.Truncate(t), PeriodMonth.Truncate(t)
}
