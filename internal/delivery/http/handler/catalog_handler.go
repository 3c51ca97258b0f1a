package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/usecase"
	"go-vet-clinic/pkg/response"
	"go-vet-clinic/pkg/validator"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

func (h *CatalogHandler) CreateDisease(w http.ResponseWriter, r *http.Request) {
	var req dto.DiseaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	disease, err := h.catalogUsecase.CreateDisease(r.Context(), &req)
	if err != nil {
		writeCatalogError(w, err, "Failed to create disease")
		return
	}

	response.Success(w, http.StatusCreated, "Disease created successfully", disease)
}

func (h *CatalogHandler) GetDisease(w http.ResponseWriter, r *http.Request) {
	diseaseID, err := intParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid disease ID", nil)
		return
	}

	disease, err := h.catalogUsecase.GetDisease(r.Context(), diseaseID)
	if err != nil {
		writeCatalogError(w, err, "Failed to get disease")
		return
	}

	response.Success(w, http.StatusOK, "Disease retrieved successfully", disease)
}

func (h *CatalogHandler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	diseases, err := h.catalogUsecase.ListDiseases(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
	if err != nil {
		response.InternalServerError(w, "Failed to get diseases")
		return
	}

	response.Success(w, http.StatusOK, "Diseases retrieved successfully", diseases)
}

func (h *CatalogHandler) UpdateDisease(w http.ResponseWriter, r *http.Request) {
	diseaseID, err := intParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid disease ID", nil)
		return
	}

	var req dto.DiseaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	disease, err := h.catalogUsecase.UpdateDisease(r.Context(), diseaseID, &req)
	if err != nil {
		writeCatalogError(w, err, "Failed to update disease")
		return
	}

	response.Success(w, http.StatusOK, "Disease updated successfully", disease)
}

func (h *CatalogHandler) DeleteDisease(w http.ResponseWriter, r *http.Request) {
	diseaseID, err := intParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid disease ID", nil)
		return
	}

	if err := h.catalogUsecase.DeleteDisease(r.Context(), diseaseID); err != nil {
		writeCatalogError(w, err, "Failed to delete disease")
		return
	}

	response.Success(w, http.StatusOK, "Disease deleted successfully", nil)
}

func (h *CatalogHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.catalogUsecase.CreateMedicine(r.Context(), &req)
	if err != nil {
		writeCatalogError(w, err, "Failed to create medicine")
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

func (h *CatalogHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, err := intParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	medicine, err := h.catalogUsecase.GetMedicine(r.Context(), medicineID)
	if err != nil {
		writeCatalogError(w, err, "Failed to get medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine retrieved successfully", medicine)
}

func (h *CatalogHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.catalogUsecase.ListMedicines(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
	if err != nil {
		response.InternalServerError(w, "Failed to get medicines")
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", medicines)
}

func (h *CatalogHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, err := intParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	var req dto.UpdateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.catalogUsecase.UpdateMedicine(r.Context(), medicineID, &req)
	if err != nil {
		writeCatalogError(w, err, "Failed to update medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated successfully", medicine)
}

func (h *CatalogHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, err := intParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	if err := h.catalogUsecase.DeleteMedicine(r.Context(), medicineID); err != nil {
		writeCatalogError(w, err, "Failed to delete medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}

func writeCatalogError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrDiseaseNotFound:
		response.NotFound(w, "Disease not found")
	case usecase.ErrMedicineNotFound:
		response.NotFound(w, "Medicine not found")
	case usecase.ErrDiseaseAlreadyExists, usecase.ErrMedicineAlreadyExists,
		usecase.ErrDiseaseInUse, usecase.ErrMedicineInUse:
		response.Conflict(w, err.Error())
	case usecase.ErrInvalidPrice:
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
