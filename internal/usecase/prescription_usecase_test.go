package usecase

import (
	"testing"

	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prescriptionFixture struct {
	usecase       PrescriptionUsecase
	pool          *txPool
	medicines     *fakeMedicineRepo
	prescriptions *fakePrescriptionRepo
	audit         *fakeAuditService
	doctorID      uuid.UUID
	patientID     uuid.UUID
}

func newPrescriptionFixture(t *testing.T) *prescriptionFixture {
	t.Helper()

	doctorID := uuid.New()
	patientID := uuid.New()
	db, pool := txDB(t)

	medicines := &fakeMedicineRepo{medicines: map[int]entity.Medicine{
		1: {ID: 1, Name: "Amoxicillin", Unit: "tablet", Price: decimal.RequireFromString("12.50"), Stock: 10},
		2: {ID: 2, Name: "Meloxicam", Unit: "ml", Price: decimal.RequireFromString("80"), Stock: 2},
	}}
	patients := &fakePatientRepo{patients: map[uuid.UUID]*entity.Patient{patientID: {ID: patientID, Name: "Bantay"}}}
	doctors := &fakeDoctorProfileRepo{profiles: map[uuid.UUID]*entity.DoctorProfile{doctorID: {UserID: doctorID}}}
	prescriptions := &fakePrescriptionRepo{}
	audit := &fakeAuditService{}

	uc := NewPrescriptionUsecase(db, quietLogger(), prescriptions, patients, nil, medicines, doctors, audit)
	return &prescriptionFixture{
		usecase:       uc,
		pool:          pool,
		medicines:     medicines,
		prescriptions: prescriptions,
		audit:         audit,
		doctorID:      doctorID,
		patientID:     patientID,
	}
}

func TestCreatePrescription_TakesStockAndCopiesPrices(t *testing.T) {
	f := newPrescriptionFixture(t)

	resp, err := f.usecase.CreatePrescription(withActor(f.doctorID), f.patientID, &dto.CreatePrescriptionRequest{
		Items: []dto.PrescriptionItemRequest{
			{MedicineID: 1, Dosage: "1 tab twice a day", Quantity: 4},
			{MedicineID: 2, Dosage: "0.5 ml", Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, f.medicines.medicines[1].Stock)
	assert.Equal(t, 0, f.medicines.medicines[2].Stock)
	require.Len(t, resp.Items, 2)
	assert.True(t, decimal.RequireFromString("12.50").Equal(resp.Items[0].UnitPrice))
	assert.True(t, decimal.RequireFromString("210").Equal(resp.Total))
	assert.Equal(t, []string{entity.AuditActionPrescriptionCreate}, f.audit.events)
	assert.Equal(t, 1, f.pool.committed)
}

func TestCreatePrescription_InsufficientStockRollsBack(t *testing.T) {
	f := newPrescriptionFixture(t)

	_, err := f.usecase.CreatePrescription(withActor(f.doctorID), f.patientID, &dto.CreatePrescriptionRequest{
		Items: []dto.PrescriptionItemRequest{
			{MedicineID: 1, Dosage: "1 tab", Quantity: 1},
			{MedicineID: 2, Dosage: "1 ml", Quantity: 3},
		},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 2, f.medicines.medicines[2].Stock)
	assert.Empty(t, f.prescriptions.created)
	assert.Empty(t, f.audit.events)
	assert.Equal(t, 0, f.pool.committed)
	assert.Equal(t, 1, f.pool.rolledBack)
}

func TestCreatePrescription_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		actor   func(f *prescriptionFixture) uuid.UUID
		patient func(f *prescriptionFixture) uuid.UUID
		items   []dto.PrescriptionItemRequest
		want    error
	}{
		{
			name:    "not a doctor",
			actor:   func(f *prescriptionFixture) uuid.UUID { return uuid.New() },
			patient: func(f *prescriptionFixture) uuid.UUID { return f.patientID },
			items:   []dto.PrescriptionItemRequest{{MedicineID: 1, Dosage: "1 tab", Quantity: 1}},
			want:    ErrDoctorNotFound,
		},
		{
			name:    "unknown patient",
			actor:   func(f *prescriptionFixture) uuid.UUID { return f.doctorID },
			patient: func(f *prescriptionFixture) uuid.UUID { return uuid.New() },
			items:   []dto.PrescriptionItemRequest{{MedicineID: 1, Dosage: "1 tab", Quantity: 1}},
			want:    ErrPatientNotFound,
		},
		{
			name:    "unknown medicine",
			actor:   func(f *prescriptionFixture) uuid.UUID { return f.doctorID },
			patient: func(f *prescriptionFixture) uuid.UUID { return f.patientID },
			items:   []dto.PrescriptionItemRequest{{MedicineID: 99, Dosage: "1 tab", Quantity: 1}},
			want:    ErrMedicineNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPrescriptionFixture(t)

			_, err := f.usecase.CreatePrescription(withActor(tt.actor(f)), tt.patient(f), &dto.CreatePrescriptionRequest{Items: tt.items})
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, f.pool.committed)
		})
	}
}
