package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHomePathForRole(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", HomePathForRole(RoleIDAdmin))
	assert.Equal(t, "/doctor/appointments", HomePathForRole(RoleIDDoctor))
	assert.Equal(t, "/receptionist/patients", HomePathForRole(RoleIDReceptionist))
	assert.Equal(t, "/", HomePathForRole(42))
}

func TestRoleNameAndID(t *testing.T) {
	for _, id := range []int{RoleIDAdmin, RoleIDDoctor, RoleIDReceptionist} {
		assert.Equal(t, id, RoleIDByName(RoleNameByID(id)))
	}
	assert.Equal(t, "", RoleNameByID(0))
	assert.Equal(t, 0, RoleIDByName("owner"))
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointment_IsClosed(t *testing.T) {
	assert.False(t, (&Appointment{Status: AppointmentStatusPending}).IsClosed())
	assert.True(t, (&Appointment{Status: AppointmentStatusCompleted}).IsClosed())
	assert.True(t, (&Appointment{Status: AppointmentStatusCancelled}).IsClosed())
}

func TestPrescription_Total(t *testing.T) {
	p := &Prescription{Items: []PrescriptionItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
		{Quantity: 3, UnitPrice: decimal.RequireFromString("0.75")},
	}}

	assert.True(t, decimal.RequireFromString("27.25").Equal(p.Total()))
	assert.True(t, decimal.Zero.Equal((&Prescription{}).Total()))
}

func TestMedicine_IsLowStock(t *testing.T) {
	assert.True(t, (&Medicine{Stock: 9}).IsLowStock())
	assert.False(t, (&Medicine{Stock: 10}).IsLowStock())
}

func TestUser_Flags(t *testing.T) {
	inactive := false
	verifiedAt := time.Now()

	assert.True(t, (&User{}).Active())
	assert.False(t, (&User{IsActive: &inactive}).Active())
	assert.False(t, (&User{}).IsVerified())
	assert.True(t, (&User{EmailVerifiedAt: &verifiedAt}).IsVerified())
}

func TestPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Limit: DefaultPageLimit}, Pagination{}.Normalize())
	assert.Equal(t, Pagination{Page: 3, Limit: MaxPageLimit}, Pagination{Page: 3, Limit: 500}.Normalize())
	assert.Equal(t, 0, Pagination{}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, Limit: 20}.Offset())
}
