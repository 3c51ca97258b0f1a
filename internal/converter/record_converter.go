package converter

import (
	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DiagnosisToResponse converts a Diagnosis entity to DiagnosisResponse DTO
func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}

	return &dto.DiagnosisResponse{
		ID:            diagnosis.ID,
		PatientID:     diagnosis.PatientID,
		DoctorID:      diagnosis.DoctorID,
		DoctorName:    diagnosis.Doctor.User.FullName,
		AppointmentID: diagnosis.AppointmentID,
		Disease:       DiseaseToResponse(&diagnosis.Disease),
		Notes:         diagnosis.Notes,
		DiagnosedAt:   diagnosis.DiagnosedAt,
	}
}

func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i := range diagnoses {
		responses[i] = *DiagnosisToResponse(&diagnoses[i])
	}
	return responses
}

// PrescriptionToResponse converts a Prescription entity, items included, to PrescriptionResponse DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	items := make([]dto.PrescriptionItemResponse, len(prescription.Items))
	for i := range prescription.Items {
		item := &prescription.Items[i]
		items[i] = dto.PrescriptionItemResponse{
			MedicineID:   item.MedicineID,
			MedicineName: item.Medicine.Name,
			Unit:         item.Medicine.Unit,
			Dosage:       item.Dosage,
			Quantity:     item.Quantity,
			Instructions: item.Instructions,
			UnitPrice:    item.UnitPrice,
			Subtotal:     item.Subtotal(),
		}
	}

	return &dto.PrescriptionResponse{
		ID:           prescription.ID,
		PatientID:    prescription.PatientID,
		DoctorID:     prescription.DoctorID,
		DoctorName:   prescription.Doctor.User.FullName,
		DiagnosisID:  prescription.DiagnosisID,
		Notes:        prescription.Notes,
		Items:        items,
		Total:        prescription.Total(),
		PrescribedAt: prescription.PrescribedAt,
	}
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}

func WeightRecordToResponse(record *entity.WeightRecord) *dto.WeightRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.WeightRecordResponse{
		ID:         record.ID,
		WeightKg:   record.WeightKg,
		Notes:      record.Notes,
		RecordedAt: record.RecordedAt,
	}
}

// WeightHistoryToResponse converts the history plus the latest records (newest first)
// into a WeightHistoryResponse with the change between the two newest weighings
func WeightHistoryToResponse(history []entity.WeightRecord, latest []entity.WeightRecord) *dto.WeightHistoryResponse {
	records := make([]dto.WeightRecordResponse, len(history))
	for i := range history {
		records[i] = *WeightRecordToResponse(&history[i])
	}

	response := &dto.WeightHistoryResponse{
		Records: records,
		Total:   len(records),
	}

	if len(latest) > 0 {
		response.Latest = WeightRecordToResponse(&latest[0])
	}
	if len(latest) > 1 {
		change := WeightChange(latest[0], latest[1])
		response.Change = &change
	}

	return response
}

// WeightChange is the difference between two weighings
func WeightChange(current, previous entity.WeightRecord) decimal.Decimal {
	return current.WeightKg.Sub(previous.WeightKg)
}
