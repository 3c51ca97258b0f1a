package repository

import (
	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/pkg/datefilter"

	"gorm.io/gorm"
)

// scopeDates narrows db to the request's date filter on column.
func scopeDates(db *gorm.DB, column string, dates entity.DateFilter) (*gorm.DB, error) {
	return datefilter.New(column).WithLocation(dates.Location).Scope(db, dates.Params)
}

func paginate(db *gorm.DB, p entity.Pagination) *gorm.DB {
	p = p.Normalize()
	return db.Offset(p.Offset()).Limit(p.Limit)
}
