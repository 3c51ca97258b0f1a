package datefilter

import (
	"net/url"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type predicate struct {
	kind   string
	column string
	day    time.Time
	year   int
	month  int
	from   time.Time
	to     time.Time
}

// recorder is a Query that remembers every predicate it receives
type recorder struct {
	predicates []predicate
}

func (r *recorder) WhereDate(column string, day time.Time) Query {
	r.predicates = append(r.predicates, predicate{kind: "date", column: column, day: day})
	return r
}

func (r *recorder) WhereYear(column string, year int) Query {
	r.predicates = append(r.predicates, predicate{kind: "year", column: column, year: year})
	return r
}

func (r *recorder) WhereYearMonth(column string, year, month int) Query {
	r.predicates = append(r.predicates, predicate{kind: "month", column: column, year: year, month: month})
	return r
}

func (r *recorder) WhereBetween(column string, from, to time.Time) Query {
	r.predicates = append(r.predicates, predicate{kind: "range", column: column, from: from, to: to})
	return r
}

func params(kv ...string) Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return Values(v)
}

func TestApply_DateMode(t *testing.T) {
	q := &recorder{}

	got, err := Apply(q, params("filter_type", "date", "date", "2024-03-15"), "")
	require.NoError(t, err)
	assert.Same(t, q, got)

	require.Len(t, q.predicates, 1)
	p := q.predicates[0]
	assert.Equal(t, "date", p.kind)
	assert.Equal(t, DefaultColumn, p.column)
	assert.True(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC).Equal(p.day))
}

func TestApply_DateModeDropsTimeOfDay(t *testing.T) {
	q := &recorder{}

	_, err := Apply(q, params("filter_type", "date", "date", "2024-03-15 17:45:10"), "visited_at")
	require.NoError(t, err)

	require.Len(t, q.predicates, 1)
	assert.Equal(t, "visited_at", q.predicates[0].column)
	assert.Equal(t, "2024-03-15T00:00:00", q.predicates[0].day.Format("2006-01-02T15:04:05"))
}

func TestApply_MonthMode(t *testing.T) {
	q := &recorder{}

	_, err := Apply(q, params("filter_type", "month", "month", "3", "year", "2024"), "")
	require.NoError(t, err)

	require.Len(t, q.predicates, 1)
	assert.Equal(t, predicate{kind: "month", column: DefaultColumn, year: 2024, month: 3}, q.predicates[0])
}

func TestApply_MonthModeNeedsBoth(t *testing.T) {
	for _, p := range []Values{
		params("filter_type", "month", "month", "3"),
		params("filter_type", "month", "year", "2024"),
		params("filter_type", "month", "month", "", "year", "2024"),
		params("filter_type", "month", "month", "3", "year", "  "),
	} {
		q := &recorder{}
		got, err := Apply(q, p, "")
		require.NoError(t, err)
		assert.Same(t, q, got)
		assert.Empty(t, q.predicates)
	}
}

func TestApply_YearMode(t *testing.T) {
	q := &recorder{}

	_, err := Apply(q, params("filter_type", "year", "year", "2023"), "recorded_at")
	require.NoError(t, err)

	require.Len(t, q.predicates, 1)
	assert.Equal(t, predicate{kind: "year", column: "recorded_at", year: 2023}, q.predicates[0])
}

func TestApply_NonNumericCoercesToZero(t *testing.T) {
	q := &recorder{}

	_, err := Apply(q, params("filter_type", "month", "month", "march", "year", "twenty"), "")
	require.NoError(t, err)

	require.Len(t, q.predicates, 1)
	assert.Equal(t, 0, q.predicates[0].year)
	assert.Equal(t, 0, q.predicates[0].month)
}

func TestApply_LeadingZeroMonth(t *testing.T) {
	q := &recorder{}

	_, err := Apply(q, params("filter_type", "month", "month", "08", "year", "2024"), "")
	require.NoError(t, err)

	require.Len(t, q.predicates, 1)
	assert.Equal(t, 8, q.predicates[0].month)
}

func TestApply_RangeMode(t *testing.T) {
	q := &recorder{}

	_, err := Apply(q, params("filter_type", "range", "date_from", "2024-01-01", "date_to", "2024-01-31"), "")
	require.NoError(t, err)

	require.Len(t, q.predicates, 1)
	p := q.predicates[0]
	assert.Equal(t, "range", p.kind)
	assert.Equal(t, "2024-01-01T00:00:00.000000", p.from.Format("2006-01-02T15:04:05.000000"))
	assert.Equal(t, "2024-01-31T23:59:59.999999", p.to.Format("2006-01-02T15:04:05.000000"))
	assert.Equal(t, time.Second-time.Nanosecond, time.Duration(p.to.Nanosecond()))
}

func TestApply_RangeModeSameDay(t *testing.T) {
	q := &recorder{}

	_, err := Apply(q, params("filter_type", "range", "date_from", "2024-02-29", "date_to", "2024-02-29"), "")
	require.NoError(t, err)

	require.Len(t, q.predicates, 1)
	p := q.predicates[0]
	assert.True(t, p.from.Before(p.to))
	assert.Equal(t, 24*time.Hour-time.Nanosecond, p.to.Sub(p.from))
}

func TestApply_RangeModeNeedsBoth(t *testing.T) {
	q := &recorder{}

	got, err := Apply(q, params("filter_type", "range", "date_from", "2024-01-01"), "")
	require.NoError(t, err)
	assert.Same(t, q, got)
	assert.Empty(t, q.predicates)
}

func TestApply_UnknownOrMissingMode(t *testing.T) {
	all := []string{"date", "2024-03-15", "month", "3", "year", "2024", "date_from", "2024-01-01", "date_to", "2024-01-31"}

	for _, p := range []Values{
		params(all...),
		params(append([]string{"filter_type", "bogus"}, all...)...),
		params(append([]string{"filter_type", ""}, all...)...),
		params(append([]string{"filter_type", "DATE"}, all...)...),
	} {
		q := &recorder{}
		got, err := Apply(q, p, "")
		require.NoError(t, err)
		assert.Same(t, q, got)
		assert.Empty(t, q.predicates)
	}
}

func TestApply_MissingValueIsNoop(t *testing.T) {
	for _, mode := range []string{"date", "year"} {
		q := &recorder{}
		_, err := Apply(q, params("filter_type", mode), "")
		require.NoError(t, err)
		assert.Empty(t, q.predicates)
	}
}

func TestApply_NilParams(t *testing.T) {
	q := &recorder{}
	got, err := Apply(q, nil, "")
	require.NoError(t, err)
	assert.Same(t, q, got)
	assert.Empty(t, q.predicates)
}

func TestApply_UnparsableDate(t *testing.T) {
	tests := []struct {
		name   string
		params Values
	}{
		{"date mode", params("filter_type", "date", "date", "not-a-date")},
		{"range from", params("filter_type", "range", "date_from", "yesterday", "date_to", "2024-01-31")},
		{"range to", params("filter_type", "range", "date_from", "2024-01-01", "date_to", "2024-13-45")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &recorder{}
			_, err := Apply(q, tt.params, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDate)
			assert.Empty(t, q.predicates)
		})
	}
}

func TestFilter_WithLocation(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	q := &recorder{}
	_, err = New("scheduled_at").WithLocation(manila).Apply(q, params("filter_type", "range", "date_from", "2024-05-01", "date_to", "2024-05-01"))
	require.NoError(t, err)

	require.Len(t, q.predicates, 1)
	p := q.predicates[0]
	assert.Equal(t, "Asia/Manila", p.from.Location().String())
	assert.True(t, time.Date(2024, 4, 30, 16, 0, 0, 0, time.UTC).Equal(p.from))
}

func TestMapParams(t *testing.T) {
	m := Map{
		"filter_type": "month",
		"month":       float64(7),
		"year":        2024,
		"date":        nil,
	}

	assert.True(t, m.Has("month"))
	assert.False(t, m.Has("date"))
	assert.False(t, m.Has("date_from"))
	assert.Equal(t, "7", m.Get("month"))
	assert.Equal(t, "", m.Get("date"))

	q := &recorder{}
	_, err := Apply(q, m, "")
	require.NoError(t, err)
	require.Len(t, q.predicates, 1)
	assert.Equal(t, predicate{kind: "month", column: DefaultColumn, year: 2024, month: 7}, q.predicates[0])
}

func TestParseTime(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	got, err := ParseTime("2024-03-15 09:30", manila)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 3, 15, 1, 30, 0, 0, time.UTC).Equal(got))

	got, err = ParseTime("2024-03-15T09:30:00Z", manila)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC).Equal(got))

	_, err = ParseTime("soon", nil)
	assert.Error(t, err)
}

func TestParseTime_PartialDatesFillFromStart(t *testing.T) {
	got, err := ParseTime("2024", nil)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(got))

	got, err = ParseTime("2024-3", nil)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(got))
}
