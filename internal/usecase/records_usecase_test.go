package usecase

import (
	"context"
	"testing"
	"time"

	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWeight_RejectsBadInput(t *testing.T) {
	uc := NewWeightUsecase(nil, quietLogger(), nil, &fakePatientRepo{}, &fakeAuditService{}, time.UTC)

	for _, kg := range []string{"0", "-1.5"} {
		_, err := uc.RecordWeight(context.Background(), uuid.New(), &dto.RecordWeightRequest{WeightKg: decimal.RequireFromString(kg)})
		assert.ErrorIs(t, err, ErrInvalidWeight, kg)
	}

	_, err := uc.RecordWeight(context.Background(), uuid.New(), &dto.RecordWeightRequest{
		WeightKg:   decimal.RequireFromString("4.2"),
		RecordedAt: "last week",
	})
	assert.ErrorIs(t, err, ErrInvalidRecordTime)
}

func TestGetWeightHistory_UnknownPatient(t *testing.T) {
	uc := NewWeightUsecase(nil, quietLogger(), nil, &fakePatientRepo{}, &fakeAuditService{}, time.UTC)

	_, err := uc.GetWeightHistory(context.Background(), &entity.PatientRecordFilter{PatientID: uuid.New()})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreateMedicine_RejectsNonPositivePrice(t *testing.T) {
	uc := NewCatalogUsecase(nil, quietLogger(), nil, &fakeMedicineRepo{}, &fakeAuditService{})

	_, err := uc.CreateMedicine(context.Background(), &dto.CreateMedicineRequest{
		Name:  "Amoxicillin",
		Unit:  "tablet",
		Price: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	negative := decimal.RequireFromString("-3")
	_, err = uc.UpdateMedicine(context.Background(), 1, &dto.UpdateMedicineRequest{Price: &negative})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestClinicalRecords_RequireDoctor(t *testing.T) {
	diagnoses := NewDiagnosisUsecase(nil, quietLogger(), nil, nil, nil, nil, nil, &fakeAuditService{}, time.UTC)
	_, err := diagnoses.CreateDiagnosis(context.Background(), uuid.New(), &dto.CreateDiagnosisRequest{DiseaseID: 1})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	prescriptions := NewPrescriptionUsecase(nil, quietLogger(), nil, nil, nil, nil, nil, &fakeAuditService{})
	_, err = prescriptions.CreatePrescription(context.Background(), uuid.New(), &dto.CreatePrescriptionRequest{
		Items: []dto.PrescriptionItemRequest{{MedicineID: 1, Dosage: "1 tab", Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCreateDiagnosis_InvalidTime(t *testing.T) {
	uc := NewDiagnosisUsecase(nil, quietLogger(), nil, nil, nil, nil, nil, &fakeAuditService{}, time.UTC)

	_, err := uc.CreateDiagnosis(withActor(uuid.New()), uuid.New(), &dto.CreateDiagnosisRequest{
		DiseaseID:   1,
		DiagnosedAt: "whenever",
	})
	assert.ErrorIs(t, err, ErrInvalidRecordTime)
}

func TestRecordTime(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	got, err := recordTime("", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.After(before))

	got, err = recordTime("2024-06-01 08:15", time.UTC)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 6, 1, 8, 15, 0, 0, time.UTC).Equal(got))
}
