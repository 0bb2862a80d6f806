package pocketbook

import (
	"fmt"
	"strings"
	"time"
)

// Period selects a reporting window anchored on a reference instant.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "day", "week").
func (p Period) Name() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Title returns a report heading for the period anchored on now.
func (p Period) Title(now time.Time) string {
	switch p {
	case Daily:
		return now.Format("2006-01-02")
	case Weekly:
		year, week := now.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return now.Format("2006-January")
	case Yearly:
		return now.Format("2006")
	default:
		return now.Format("2006-01-02")
	}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}

// Contains reports whether t falls in the window selected by p around now:
// the same calendar day, the trailing 7 calendar days ending on now's day,
// the same calendar month, or the same calendar year.
func (p Period) Contains(now, t time.Time) bool {
	now, t = now.UTC(), t.UTC()
	switch p {
	case Daily:
		return sameDay(now, t)
	case Weekly:
		day := dayOf(t)
		anchor := dayOf(now)
		return !day.After(anchor) && !day.Before(anchor.AddDate(0, 0, -6))
	case Monthly:
		return now.Year() == t.Year() && now.Month() == t.Month()
	case Yearly:
		return now.Year() == t.Year()
	default:
		return false
	}
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// dayOf truncates t to midnight UTC of its calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sameMonth reports whether a and b fall in the same calendar month.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// monthBefore returns an instant inside the calendar month preceding now's.
func monthBefore(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
}
