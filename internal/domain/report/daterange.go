package report

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateRange is returned for unparseable or reversed date filters.
var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is the half-open interval [From, To).
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// String renders the range for document subtitles. A range ending at
// midnight is shown with its last included day.
func (r DateRange) String() string {
	last := r.To
	if isMidnight(last) && last.After(r.From) {
		last = last.Add(-time.Nanosecond)
	}
	from := r.From.Format("2006-01-02")
	to := last.Format("2006-01-02")
	if from == to {
		return from
	}
	return from + " to " + to
}

var (
	yearPattern      = regexp.MustCompile(`^\d{4}$`)
	monthYearPattern = regexp.MustCompile(`^([a-z]+)\s+(\d{4})$`)

	dateOnlyLayout = "2006-01-02"
	timeLayouts    = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	}
)

// ResolveDateRange maps request filters to a concrete range.
//
// A complete from/to pair wins over the keyword. A recognized keyword wins
// over a lone from or to; a lone side without a keyword is an open-ended
// range. Date-only values are calendar days with an inclusive "to"; values
// with a time are used as given, inclusive to the second. With none of these
// the range is today so far.
func ResolveDateRange(now time.Time, from, to, keyword string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	if from != "" && to != "" {
		return explicitRange(now, from, to, loc)
	}
	if r, ok := KeywordRange(now, keyword); ok {
		return r, nil
	}
	if from != "" || to != "" {
		return explicitRange(now, from, to, loc)
	}
	return DefaultRange(now), nil
}

// DefaultRange is the window used when a report gets no filters at all.
func DefaultRange(now time.Time) DateRange {
	return DateRange{From: startOfDay(now), To: now}
}

// TodayAndYesterday returns the two whole-day ranges for the sales counters.
func TodayAndYesterday(now time.Time, loc *time.Location) (today, yesterday DateRange) {
	if loc == nil {
		loc = time.UTC
	}
	sod := startOfDay(now.In(loc))
	today = DateRange{From: sod, To: addDays(sod, 1)}
	yesterday = DateRange{From: addDays(sod, -1), To: sod}
	return today, yesterday
}

// KeywordRange resolves a report type keyword. ok is false for an empty or
// unrecognized keyword.
func KeywordRange(now time.Time, keyword string) (DateRange, bool) {
	kw := strings.ToLower(strings.Join(strings.Fields(keyword), " "))
	sod := startOfDay(now)
	loc := now.Location()

	switch kw {
	case "":
		return DateRange{}, false
	case "today":
		return DateRange{From: sod, To: addDays(sod, 1)}, true
	case "yesterday":
		return DateRange{From: addDays(sod, -1), To: sod}, true
	case "week", "weekly":
		sunday := addDays(sod, -int(sod.Weekday()))
		return DateRange{From: sunday, To: addDays(sunday, 7)}, true
	case "month", "monthly":
		return monthRange(now.Year(), now.Month(), loc), true
	case "year", "yearly":
		return yearRange(now.Year(), loc), true
	}

	if yearPattern.MatchString(kw) {
		year, _ := strconv.Atoi(kw)
		return yearRange(year, loc), true
	}

	if m := monthYearPattern.FindStringSubmatch(kw); m != nil {
		month, ok := parseMonth(m[1])
		if !ok {
			return DateRange{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return monthRange(year, month, loc), true
	}

	return DateRange{}, false
}

func explicitRange(now time.Time, from, to string, loc *time.Location) (DateRange, error) {
	var r DateRange

	if to != "" {
		t, dateOnly, err := parseBound(to, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: toDate %q", ErrInvalidDateRange, to)
		}
		if dateOnly {
			r.To = addDays(t, 1)
		} else {
			r.To = t.Truncate(time.Second).Add(time.Second)
		}
		r.From = startOfDay(t)
	} else {
		r.To = now
	}

	if from != "" {
		t, dateOnly, err := parseBound(from, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: fromDate %q", ErrInvalidDateRange, from)
		}
		if dateOnly {
			t = startOfDay(t)
		}
		r.From = t
	}

	if r.From.After(r.To) {
		return DateRange{}, fmt.Errorf("%w: fromDate is after toDate", ErrInvalidDateRange)
	}
	return r, nil
}

func parseBound(value string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(dateOnlyLayout, value, loc); err == nil {
		return t, true, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognized date %q", value)
}

func parseMonth(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || name == full[:3] {
			return m, true
		}
	}
	return 0, false
}

func monthRange(year int, month time.Month, loc *time.Location) DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return DateRange{From: start, To: start.AddDate(0, 1, 0)}
}

func yearRange(year int, loc *time.Location) DateRange {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return DateRange{From: start, To: start.AddDate(1, 0, 0)}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func addDays(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, t.Location())
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}
