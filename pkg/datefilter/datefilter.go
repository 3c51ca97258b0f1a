package datefilter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// DefaultColumn is filtered when the caller does not name a column.
const DefaultColumn = "created_at"

// Request parameter keys
const (
	KeyFilterType = "filter_type"
	KeyDate       = "date"
	KeyMonth      = "month"
	KeyYear       = "year"
	KeyDateFrom   = "date_from"
	KeyDateTo     = "date_to"
)

// Mode selects which predicate Apply adds.
type Mode string

const (
	ModeDate  Mode = "date"
	ModeMonth Mode = "month"
	ModeYear  Mode = "year"
	ModeRange Mode = "range"
)

var ErrInvalidDate = errors.New("invalid date")

// Params is the request-side parameter source.
type Params interface {
	Has(key string) bool
	Get(key string) string
}

// Query receives the predicate. Implementations mutate themselves and
// return the same value so calls can be chained.
type Query interface {
	WhereDate(column string, day time.Time) Query
	WhereYear(column string, year int) Query
	WhereYearMonth(column string, year, month int) Query
	WhereBetween(column string, from, to time.Time) Query
}

// Filter scopes a query to a date, month, year or day range of one column.
type Filter struct {
	Column   string
	Location *time.Location
}

// New returns a Filter on column, or on DefaultColumn when column is empty.
func New(column string) *Filter {
	if column == "" {
		column = DefaultColumn
	}
	return &Filter{Column: column, Location: time.UTC}
}

// WithLocation sets the zone dates are interpreted in.
func (f *Filter) WithLocation(loc *time.Location) *Filter {
	if loc != nil {
		f.Location = loc
	}
	return f
}

// Apply adds at most one predicate to q, chosen by the filter_type parameter.
// Unknown modes and missing parameters leave q untouched. An unparsable date
// is returned as an error wrapping ErrInvalidDate and nothing is added.
func (f *Filter) Apply(q Query, params Params) (Query, error) {
	if params == nil {
		return q, nil
	}

	switch Mode(params.Get(KeyFilterType)) {
	case ModeDate:
		if !filled(params, KeyDate) {
			return q, nil
		}
		day, err := f.parseDay(params, KeyDate)
		if err != nil {
			return q, err
		}
		return q.WhereDate(f.Column, now.With(day).BeginningOfDay()), nil

	case ModeMonth:
		if !filled(params, KeyMonth) || !filled(params, KeyYear) {
			return q, nil
		}
		return q.WhereYearMonth(f.Column, toInt(params.Get(KeyYear)), toInt(params.Get(KeyMonth))), nil

	case ModeYear:
		if !filled(params, KeyYear) {
			return q, nil
		}
		return q.WhereYear(f.Column, toInt(params.Get(KeyYear))), nil

	case ModeRange:
		if !filled(params, KeyDateFrom) || !filled(params, KeyDateTo) {
			return q, nil
		}
		from, err := f.parseDay(params, KeyDateFrom)
		if err != nil {
			return q, err
		}
		to, err := f.parseDay(params, KeyDateTo)
		if err != nil {
			return q, err
		}
		return q.WhereBetween(f.Column, now.With(from).BeginningOfDay(), now.With(to).EndOfDay()), nil
	}

	return q, nil
}

// Apply filters column (DefaultColumn when empty) in UTC.
func Apply(q Query, params Params, column string) (Query, error) {
	return New(column).Apply(q, params)
}

func (f *Filter) parseDay(params Params, key string) (time.Time, error) {
	raw := strings.TrimSpace(params.Get(key))
	t, err := ParseTime(raw, f.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidDate, key, raw, err)
	}
	return t, nil
}

// ParseTime reads a loose date or date-time ("2024-03-15", "2024-03-15 09:30",
// RFC3339) in loc, or UTC when loc is nil.
func ParseTime(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	config := &now.Config{WeekStartDay: time.Monday, TimeLocation: loc, TimeFormats: now.TimeFormats}
	return config.Parse(strings.TrimSpace(raw))
}

func filled(params Params, key string) bool {
	return params.Has(key) && strings.TrimSpace(params.Get(key)) != ""
}

// toInt is lenient: anything that is not a base-10 integer becomes 0.
func toInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
