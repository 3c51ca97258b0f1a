package usecase

import (
	"context"
	"time"

	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/internal/domain/repository"
	"go-vet-clinic/pkg/datefilter"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetSummary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	medicineRepo    repository.MedicineRepository
	location        *time.Location
	now             func() time.Time
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	medicineRepo repository.MedicineRepository,
	location *time.Location,
) DashboardUsecase {
	if location == nil {
		location = time.UTC
	}
	return &dashboardUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		medicineRepo:    medicineRepo,
		location:        location,
		now:             time.Now,
	}
}

// GetSummary runs the four counts concurrently; the first failure cancels the rest.
func (u *dashboardUsecase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	var summary dto.DashboardResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := u.patientRepo.Count(gctx, u.db)
		summary.Patients = n
		return err
	})

	g.Go(func() error {
		today := u.now().In(u.location).Format("2006-01-02")
		n, err := u.appointmentRepo.Count(gctx, u.db, &entity.AppointmentFilter{
			Dates: entity.DateFilter{
				Params: datefilter.Map{
					datefilter.KeyFilterType: string(datefilter.ModeDate),
					datefilter.KeyDate:       today,
				},
				Location: u.location,
			},
		})
		summary.AppointmentsToday = n
		return err
	})

	g.Go(func() error {
		n, err := u.appointmentRepo.Count(gctx, u.db, &entity.AppointmentFilter{
			Status: entity.AppointmentStatusPending,
		})
		summary.PendingAppointments = n
		return err
	})

	g.Go(func() error {
		n, err := u.medicineRepo.CountLowStock(gctx, u.db, entity.LowStockThreshold)
		summary.LowStockMedicines = n
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to build dashboard summary: %+v", err)
		return nil, err
	}

	return &summary, nil
}
