package handler

import (
	"net/http"
	"strconv"
	"time"

	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/pkg/datefilter"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

// pagination reads page and limit from the query string
func pagination(r *http.Request) entity.Pagination {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return entity.Pagination{Page: page, Limit: limit}.Normalize()
}

// dateFilter reads filter_type, date, month, year, date_from and date_to
func dateFilter(r *http.Request, loc *time.Location) entity.DateFilter {
	return entity.DateFilter{
		Params:   datefilter.Values(r.URL.Query()),
		Location: loc,
	}
}
