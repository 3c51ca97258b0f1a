package converter

import (
	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"
)

func DiseaseToResponse(disease *entity.Disease) *dto.DiseaseResponse {
	if disease == nil || disease.ID == 0 {
		return nil
	}

	return &dto.DiseaseResponse{
		ID:          disease.ID,
		Name:        disease.Name,
		Description: disease.Description,
		CreatedAt:   disease.CreatedAt,
		UpdatedAt:   disease.UpdatedAt,
	}
}

func DiseasesToResponses(diseases []entity.Disease) []dto.DiseaseResponse {
	responses := make([]dto.DiseaseResponse, 0, len(diseases))
	for i := range diseases {
		if resp := DiseaseToResponse(&diseases[i]); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}

func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:          medicine.ID,
		Name:        medicine.Name,
		Description: medicine.Description,
		Unit:        medicine.Unit,
		Price:       medicine.Price,
		Stock:       medicine.Stock,
		LowStock:    medicine.IsLowStock(),
		CreatedAt:   medicine.CreatedAt,
		UpdatedAt:   medicine.UpdatedAt,
	}
}

func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}
