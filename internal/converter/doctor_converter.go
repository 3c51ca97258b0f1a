package converter

import (
	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil || profile.UserID == uuid.Nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             profile.UserID,
		Email:          profile.User.Email,
		FullName:       profile.User.FullName,
		PhoneNumber:    profile.User.PhoneNumber,
		LicenseNumber:  profile.LicenseNumber,
		Specialization: profile.Specialization,
		Biography:      profile.Biography,
		IsActive:       profile.User.IsActive,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(profiles))
	for i := range profiles {
		if resp := DoctorProfileToResponse(&profiles[i]); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
