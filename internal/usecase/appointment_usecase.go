package usecase

import (
	"context"
	"errors"
	"time"

	"go-vet-clinic/internal/converter"
	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/internal/domain/repository"
	"go-vet-clinic/internal/service"
	"go-vet-clinic/pkg/datefilter"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentClosed       = errors.New("appointment is already completed or cancelled")
	ErrInvalidStatusTransition = errors.New("invalid appointment status transition")
	ErrAppointmentConflict     = errors.New("appointment was changed by another request")
	ErrInvalidScheduleTime     = errors.New("invalid scheduled_at, use RFC3339 or YYYY-MM-DD HH:MM")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	patientRepo       repository.PatientRepository
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
	location          *time.Location
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
	location *time.Location,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                db,
		log:               log,
		appointmentRepo:   appointmentRepo,
		patientRepo:       patientRepo,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
		location:          location,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := datefilter.ParseTime(req.ScheduledAt, u.location)
	if err != nil {
		return nil, ErrInvalidScheduleTime
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorProfileRepo.FindByUserID(ctx, tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.User.Active() {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.UserID,
		ScheduledAt: scheduledAt,
		Reason:      req.Reason,
		Status:      entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Doctor = *doctor
	resp := converter.AppointmentToResponse(appointment)

	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, total, err := u.appointmentRepo.List(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, nil
}

// UpdateAppointment reschedules an open appointment or reassigns its doctor
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var scheduledAt time.Time
	if req.ScheduledAt != "" {
		t, err := datefilter.ParseTime(req.ScheduledAt, u.location)
		if err != nil {
			return nil, ErrInvalidScheduleTime
		}
		scheduledAt = t
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsClosed() {
		return nil, ErrAppointmentClosed
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if req.DoctorID != uuid.Nil && req.DoctorID != appointment.DoctorID {
		doctor, err := u.doctorProfileRepo.FindByUserID(ctx, tx, req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return nil, err
		}
		if doctor == nil || !doctor.User.Active() {
			return nil, ErrDoctorNotFound
		}
		appointment.DoctorID = doctor.UserID
		appointment.Doctor = *doctor
	}
	if !scheduledAt.IsZero() {
		appointment.ScheduledAt = scheduledAt
	}
	if req.Reason != "" {
		appointment.Reason = req.Reason
	}

	if err := u.appointmentRepo.Update(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	newValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentUpdate, "appointment", id.String(), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// UpdateStatus moves an appointment along pending -> confirmed -> completed,
// or to cancelled from pending or confirmed.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.CanTransitionTo(status) {
		return nil, ErrInvalidStatusTransition
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	from := appointment.Status
	affected, err := u.appointmentRepo.UpdateStatus(ctx, tx, id, from, status)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentConflict
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentStatus, "appointment", id.String(),
		map[string]string{"status": string(from)},
		map[string]string{"status": string(status)},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = status
	return converter.AppointmentToResponse(appointment), nil
}
