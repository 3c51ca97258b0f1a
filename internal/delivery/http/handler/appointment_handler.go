package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/delivery/http/middleware"
	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/internal/usecase"
	"go-vet-clinic/pkg/datefilter"
	"go-vet-clinic/pkg/response"
	"go-vet-clinic/pkg/validator"

	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	location           *time.Location
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, location *time.Location) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		location:           location,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuidParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		h.writeError(w, err, "Failed to get appointment")
		return
	}

	// Doctors only see their own appointments
	if middleware.IsDoctor(r) {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		if appointment.DoctorID != userID {
			response.NotFound(w, "Appointment not found")
			return
		}
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// ListAppointments filters on scheduled_at plus optional status, doctor_id and patient_id
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := pagination(r)
	filter := &entity.AppointmentFilter{
		Dates:      dateFilter(r, h.location),
		Pagination: page,
	}

	if status := query.Get("status"); status != "" {
		switch s := entity.AppointmentStatus(status); s {
		case entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed,
			entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled:
			filter.Status = s
		default:
			response.BadRequest(w, "Invalid status")
			return
		}
	}
	if raw := query.Get("doctor_id"); raw != "" {
		doctorID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid doctor ID")
			return
		}
		filter.DoctorID = &doctorID
	}
	if raw := query.Get("patient_id"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid patient ID")
			return
		}
		filter.PatientID = &patientID
	}
	if middleware.IsDoctor(r) {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		filter.DoctorID = &userID
	}

	result, err := h.appointmentUsecase.ListAppointments(r.Context(), filter)
	if err != nil {
		h.writeError(w, err, "Failed to get appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", result.Appointments, response.NewMeta(page.Page, page.Limit, result.Total))
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuidParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), appointmentID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	h.transition(w, r, entity.AppointmentStatus(req.Status))
}

func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entity.AppointmentStatusConfirmed)
}

func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entity.AppointmentStatusCompleted)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entity.AppointmentStatusCancelled)
}

func (h *AppointmentHandler) transition(w http.ResponseWriter, r *http.Request, status entity.AppointmentStatus) {
	appointmentID, err := uuidParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), appointmentID, status)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment "+string(appointment.Status), appointment)
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrInvalidScheduleTime), errors.Is(err, datefilter.ErrInvalidDate):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidStatusTransition), errors.Is(err, usecase.ErrAppointmentClosed),
		errors.Is(err, usecase.ErrAppointmentConflict):
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
