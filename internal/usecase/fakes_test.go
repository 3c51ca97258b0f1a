package usecase

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"
	"time"

	"go-vet-clinic/internal/delivery/http/middleware"
	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/internal/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var errNoStatements = errors.New("statements are not supported by the test pool")

// txPool opens and closes transactions and refuses every statement. The
// repositories in these tests are fakes, so only Begin and Commit reach it.
type txPool struct {
	begun      int
	committed  int
	rolledBack int
}

func (p *txPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errNoStatements
}
func (p *txPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, errNoStatements
}
func (p *txPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errNoStatements
}
func (p *txPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}
func (p *txPool) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	p.begun++
	return &txConn{txPool: p}, nil
}

type txConn struct {
	*txPool
	done bool
}

func (c *txConn) Commit() error {
	if c.done {
		return sql.ErrTxDone
	}
	c.done = true
	c.committed++
	return nil
}

func (c *txConn) Rollback() error {
	if c.done {
		return sql.ErrTxDone
	}
	c.done = true
	c.rolledBack++
	return nil
}

func txDB(t *testing.T) (*gorm.DB, *txPool) {
	t.Helper()

	pool := &txPool{}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, pool
}

func withActor(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}
func (r *fakeUserRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}
func (r *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return r.byID[id], nil
}
func (r *fakeUserRepo) Update(ctx context.Context, db *gorm.DB, user *entity.User) error { return nil }
func (r *fakeUserRepo) MarkVerified(ctx context.Context, db *gorm.DB, id uuid.UUID, at time.Time) (int64, error) {
	user := r.byID[id]
	if user == nil || user.EmailVerifiedAt != nil {
		return 0, nil
	}
	user.EmailVerifiedAt = &at
	return 1, nil
}

type fakeRoleRepo struct{}

func (r *fakeRoleRepo) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Role, error) {
	switch name {
	case entity.RoleDoctor:
		return &entity.Role{ID: entity.RoleIDDoctor, RoleName: name}, nil
	case entity.RoleReceptionist:
		return &entity.Role{ID: entity.RoleIDReceptionist, RoleName: name}, nil
	}
	return nil, nil
}

type fakeDoctorProfileRepo struct {
	profiles map[uuid.UUID]*entity.DoctorProfile
}

func (r *fakeDoctorProfileRepo) Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	r.profiles[profile.UserID] = profile
	return nil
}
func (r *fakeDoctorProfileRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	return r.profiles[userID], nil
}
func (r *fakeDoctorProfileRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.DoctorProfile, error) {
	return nil, nil
}
func (r *fakeDoctorProfileRepo) Update(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	return nil
}

type fakePrescriptionRepo struct {
	created []*entity.Prescription
}

func (r *fakePrescriptionRepo) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error {
	prescription.ID = uuid.New()
	r.created = append(r.created, prescription)
	return nil
}
func (r *fakePrescriptionRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	return nil, nil
}
func (r *fakePrescriptionRepo) ListByPatient(ctx context.Context, db *gorm.DB, filter *entity.PatientRecordFilter) ([]entity.Prescription, error) {
	return nil, nil
}

type fakeTokenStore struct {
	saved         map[string]time.Duration
	activeRefresh map[string]bool
	revoked       []string
	revokedAll    []uuid.UUID
	verification  map[string]uuid.UUID
	saveErr       error
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{
		saved:         map[string]time.Duration{},
		activeRefresh: map[string]bool{},
		verification:  map[string]uuid.UUID{},
	}
}

func (s *fakeTokenStore) SaveTokenPair(ctx context.Context, userID uuid.UUID, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error {
	s.saved[cache.AccessTokenKey(userID, accessID)] = accessTTL
	s.saved[cache.RefreshTokenKey(userID, refreshID)] = refreshTTL
	s.activeRefresh[refreshID] = true
	return nil
}
func (s *fakeTokenStore) IsRefreshTokenActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return s.activeRefresh[tokenID], nil
}
func (s *fakeTokenStore) RevokeTokens(ctx context.Context, userID uuid.UUID, accessID, refreshID string) error {
	s.revoked = append(s.revoked, accessID, refreshID)
	delete(s.activeRefresh, refreshID)
	return nil
}
func (s *fakeTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	s.revokedAll = append(s.revokedAll, userID)
	return nil
}
func (s *fakeTokenStore) SaveVerification(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.verification[token] = userID
	return nil
}
func (s *fakeTokenStore) LookupVerification(ctx context.Context, token string) (uuid.UUID, error) {
	id, ok := s.verification[token]
	if !ok {
		return uuid.Nil, cache.ErrVerificationNotFound
	}
	return id, nil
}
func (s *fakeTokenStore) DeleteVerification(ctx context.Context, token string) error {
	delete(s.verification, token)
	return nil
}

type fakeAuditService struct {
	events []string
}

func (s *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	s.events = append(s.events, action)
	return nil
}
func (s *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	s.events = append(s.events, action)
	return nil
}
func (s *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	s.events = append(s.events, action)
	return nil
}
func (s *fakeAuditService) LogEvent(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	s.events = append(s.events, action)
	return nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*entity.Patient
	count    int64
}

func (r *fakePatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return nil
}
func (r *fakePatientRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return r.patients[id], nil
}
func (r *fakePatientRepo) List(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error) {
	return nil, 0, nil
}
func (r *fakePatientRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return r.count, nil
}
func (r *fakePatientRepo) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return nil
}
func (r *fakePatientRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
	countFn      func(filter *entity.AppointmentFilter) (int64, error)
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}
func (r *fakeAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return r.appointments[id], nil
}
func (r *fakeAppointmentRepo) List(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	return nil, 0, nil
}
func (r *fakeAppointmentRepo) Count(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) (int64, error) {
	return r.countFn(filter)
}
func (r *fakeAppointmentRepo) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}
func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	return 0, nil
}

type fakeMedicineRepo struct {
	lowStock    int64
	lowStockErr error
	threshold   int
	medicines   map[int]entity.Medicine
}

func (r *fakeMedicineRepo) Create(ctx context.Context, db *gorm.DB, medicine *entity.Medicine) error {
	return nil
}
func (r *fakeMedicineRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Medicine, error) {
	return nil, nil
}
func (r *fakeMedicineRepo) FindByIDs(ctx context.Context, db *gorm.DB, ids []int) ([]entity.Medicine, error) {
	var found []entity.Medicine
	for _, id := range ids {
		if m, ok := r.medicines[id]; ok {
			found = append(found, m)
		}
	}
	return found, nil
}
func (r *fakeMedicineRepo) FindAll(ctx context.Context, db *gorm.DB, search string) ([]entity.Medicine, error) {
	return nil, nil
}
func (r *fakeMedicineRepo) CountLowStock(ctx context.Context, db *gorm.DB, threshold int) (int64, error) {
	r.threshold = threshold
	return r.lowStock, r.lowStockErr
}
func (r *fakeMedicineRepo) Update(ctx context.Context, db *gorm.DB, medicine *entity.Medicine) error {
	return nil
}
// DecrementStock mirrors the guarded UPDATE: nothing changes unless the
// whole quantity is on the shelf.
func (r *fakeMedicineRepo) DecrementStock(ctx context.Context, db *gorm.DB, id int, quantity int) (int64, error) {
	m, ok := r.medicines[id]
	if !ok || m.Stock < quantity {
		return 0, nil
	}
	m.Stock -= quantity
	r.medicines[id] = m
	return 1, nil
}
func (r *fakeMedicineRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	return 0, nil
}
