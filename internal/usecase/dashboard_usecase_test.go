package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/pkg/datefilter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_GetSummary(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	var mu sync.Mutex
	var todayFilter *entity.AppointmentFilter
	appointments := &fakeAppointmentRepo{countFn: func(filter *entity.AppointmentFilter) (int64, error) {
		if filter.Status == entity.AppointmentStatusPending {
			return 4, nil
		}
		mu.Lock()
		todayFilter = filter
		mu.Unlock()
		return 7, nil
	}}
	medicines := &fakeMedicineRepo{lowStock: 2}

	uc := NewDashboardUsecase(nil, quietLogger(), &fakePatientRepo{count: 31}, appointments, medicines, manila).(*dashboardUsecase)
	// 20:30 UTC on the 14th is already the 15th in Manila
	uc.now = func() time.Time { return time.Date(2024, 3, 14, 20, 30, 0, 0, time.UTC) }

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(31), summary.Patients)
	assert.Equal(t, int64(7), summary.AppointmentsToday)
	assert.Equal(t, int64(4), summary.PendingAppointments)
	assert.Equal(t, int64(2), summary.LowStockMedicines)
	assert.Equal(t, entity.LowStockThreshold, medicines.threshold)

	require.NotNil(t, todayFilter)
	params := todayFilter.Dates.Params
	assert.Equal(t, string(datefilter.ModeDate), params.Get(datefilter.KeyFilterType))
	assert.Equal(t, "2024-03-15", params.Get(datefilter.KeyDate))
	assert.Equal(t, manila, todayFilter.Dates.Location)
}

func TestDashboard_GetSummaryError(t *testing.T) {
	boom := errors.New("boom")
	appointments := &fakeAppointmentRepo{countFn: func(filter *entity.AppointmentFilter) (int64, error) {
		return 0, nil
	}}

	uc := NewDashboardUsecase(nil, quietLogger(), &fakePatientRepo{}, appointments, &fakeMedicineRepo{lowStockErr: boom}, nil)

	summary, err := uc.GetSummary(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, summary)
}
