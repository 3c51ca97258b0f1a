package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/internal/usecase"
	"go-vet-clinic/pkg/datefilter"
	"go-vet-clinic/pkg/response"
	"go-vet-clinic/pkg/validator"
)

// RecordHandler serves a patient's diagnoses, prescriptions and weight history.
type RecordHandler struct {
	diagnosisUsecase    usecase.DiagnosisUsecase
	prescriptionUsecase usecase.PrescriptionUsecase
	weightUsecase       usecase.WeightUsecase
	validator           *validator.CustomValidator
	location            *time.Location
}

func NewRecordHandler(
	diagnosisUsecase usecase.DiagnosisUsecase,
	prescriptionUsecase usecase.PrescriptionUsecase,
	weightUsecase usecase.WeightUsecase,
	validator *validator.CustomValidator,
	location *time.Location,
) *RecordHandler {
	return &RecordHandler{
		diagnosisUsecase:    diagnosisUsecase,
		prescriptionUsecase: prescriptionUsecase,
		weightUsecase:       weightUsecase,
		validator:           validator,
		location:            location,
	}
}

func (h *RecordHandler) CreateDiagnosis(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuidParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.CreateDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnosis, err := h.diagnosisUsecase.CreateDiagnosis(r.Context(), patientID, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to create diagnosis")
		return
	}

	response.Success(w, http.StatusCreated, "Diagnosis created successfully", diagnosis)
}

func (h *RecordHandler) ListDiagnoses(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.recordFilter(w, r)
	if !ok {
		return
	}

	diagnoses, err := h.diagnosisUsecase.ListDiagnoses(r.Context(), filter)
	if err != nil {
		writeRecordError(w, err, "Failed to get diagnoses")
		return
	}

	response.Success(w, http.StatusOK, "Diagnoses retrieved successfully", diagnoses)
}

func (h *RecordHandler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuidParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.CreatePrescription(r.Context(), patientID, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to create prescription")
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *RecordHandler) GetPrescription(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := uuidParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	prescription, err := h.prescriptionUsecase.GetPrescription(r.Context(), prescriptionID)
	if err != nil {
		writeRecordError(w, err, "Failed to get prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *RecordHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.recordFilter(w, r)
	if !ok {
		return
	}

	prescriptions, err := h.prescriptionUsecase.ListPrescriptions(r.Context(), filter)
	if err != nil {
		writeRecordError(w, err, "Failed to get prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

func (h *RecordHandler) RecordWeight(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuidParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.RecordWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.weightUsecase.RecordWeight(r.Context(), patientID, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to record weight")
		return
	}

	response.Success(w, http.StatusCreated, "Weight recorded successfully", record)
}

func (h *RecordHandler) GetWeightHistory(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.recordFilter(w, r)
	if !ok {
		return
	}

	history, err := h.weightUsecase.GetWeightHistory(r.Context(), filter)
	if err != nil {
		writeRecordError(w, err, "Failed to get weight history")
		return
	}

	response.Success(w, http.StatusOK, "Weight history retrieved successfully", history)
}

func (h *RecordHandler) recordFilter(w http.ResponseWriter, r *http.Request) (*entity.PatientRecordFilter, bool) {
	patientID, err := uuidParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return nil, false
	}
	return &entity.PatientRecordFilter{
		Dates:     dateFilter(r, h.location),
		PatientID: patientID,
	}, true
}

func writeRecordError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrDiseaseNotFound):
		response.NotFound(w, "Disease not found")
	case errors.Is(err, usecase.ErrMedicineNotFound):
		response.NotFound(w, "Medicine not found")
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrDiagnosisNotFound):
		response.NotFound(w, "Diagnosis not found")
	case errors.Is(err, usecase.ErrPrescriptionNotFound):
		response.NotFound(w, "Prescription not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.Forbidden(w, "Only doctors with a profile can write medical records")
	case errors.Is(err, usecase.ErrInsufficientStock):
		response.Conflict(w, err.Error())
	case errors.Is(err, usecase.ErrAppointmentMismatch), errors.Is(err, usecase.ErrDiagnosisMismatch),
		errors.Is(err, usecase.ErrInvalidRecordTime), errors.Is(err, usecase.ErrInvalidWeight),
		errors.Is(err, datefilter.ErrInvalidDate):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
