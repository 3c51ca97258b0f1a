package converter

import (
	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil || patient.ID == uuid.Nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:           patient.ID,
		Name:         patient.Name,
		Species:      patient.Species,
		Breed:        patient.Breed,
		Sex:          patient.Sex,
		OwnerName:    patient.OwnerName,
		OwnerPhone:   patient.OwnerPhone,
		OwnerEmail:   patient.OwnerEmail,
		OwnerAddress: patient.OwnerAddress,
		CreatedAt:    patient.CreatedAt,
		UpdatedAt:    patient.UpdatedAt,
	}

	if patient.DateOfBirth != nil {
		response.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}

	return response
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		if resp := PatientToResponse(&patients[i]); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
