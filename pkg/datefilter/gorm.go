package datefilter

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormQuery adapts a *gorm.DB statement to Query using PostgreSQL date functions.
type GormQuery struct {
	db *gorm.DB
}

func NewGormQuery(db *gorm.DB) *GormQuery {
	return &GormQuery{db: db}
}

// DB returns the statement with any added predicate.
func (q *GormQuery) DB() *gorm.DB {
	return q.db
}

func (q *GormQuery) WhereDate(column string, day time.Time) Query {
	q.db = q.db.Where("DATE(?) = ?", clause.Column{Name: column}, day.Format("2006-01-02"))
	return q
}

func (q *GormQuery) WhereYear(column string, year int) Query {
	q.db = q.db.Where("EXTRACT(YEAR FROM ?) = ?", clause.Column{Name: column}, year)
	return q
}

func (q *GormQuery) WhereYearMonth(column string, year, month int) Query {
	col := clause.Column{Name: column}
	q.db = q.db.Where("EXTRACT(YEAR FROM ?) = ? AND EXTRACT(MONTH FROM ?) = ?", col, year, col, month)
	return q
}

func (q *GormQuery) WhereBetween(column string, from, to time.Time) Query {
	q.db = q.db.Where("? BETWEEN ? AND ?", clause.Column{Name: column}, from, to)
	return q
}

// Scope applies the filter to db and returns the narrowed statement.
func (f *Filter) Scope(db *gorm.DB, params Params) (*gorm.DB, error) {
	q := NewGormQuery(db)
	if _, err := f.Apply(q, params); err != nil {
		return db, err
	}
	return q.DB(), nil
}
