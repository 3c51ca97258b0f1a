package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"go-vet-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAuditRepo struct {
	created []*entity.AuditLog
	err     error
}

func (r *fakeAuditRepo) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, log)
	return nil
}

func (r *fakeAuditRepo) List(ctx context.Context, db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	return nil, 0, nil
}

func (r *fakeAuditRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return nil, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditService_LogUpdate(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(quietLogger(), repo)
	userID := uuid.New()

	err := svc.LogUpdate(context.Background(), nil, &userID, entity.AuditActionPatientUpdate, "patient", "p-1",
		map[string]string{"name": "Bantay"}, map[string]string{"name": "Brownie"})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	got := repo.created[0]
	assert.Equal(t, &userID, got.UserID)
	assert.Equal(t, entity.AuditActionPatientUpdate, got.Action)
	assert.Equal(t, "patient", got.Metadata["entity"])
	assert.Equal(t, "p-1", got.Metadata["entity_id"])
	assert.Equal(t, map[string]string{"name": "Bantay"}, got.Metadata["old_value"])
	assert.Equal(t, map[string]string{"name": "Brownie"}, got.Metadata["new_value"])
}

func TestAuditService_CreateAndDeleteLeaveOneSideNil(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(quietLogger(), repo)

	require.NoError(t, svc.LogCreate(context.Background(), nil, nil, entity.AuditActionDiseaseCreate, "disease", "1", "Parvo"))
	require.NoError(t, svc.LogDelete(context.Background(), nil, nil, entity.AuditActionDiseaseDelete, "disease", "1", "Parvo"))

	require.Len(t, repo.created, 2)
	assert.Nil(t, repo.created[0].Metadata["old_value"])
	assert.Equal(t, "Parvo", repo.created[0].Metadata["new_value"])
	assert.Equal(t, "Parvo", repo.created[1].Metadata["old_value"])
	assert.Nil(t, repo.created[1].Metadata["new_value"])
}

func TestAuditService_PropagatesRepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewAuditService(quietLogger(), &fakeAuditRepo{err: boom})

	err := svc.LogEvent(context.Background(), nil, nil, entity.AuditActionUserLogin, entity.JSON{"email": "a@b.c"})
	assert.ErrorIs(t, err, boom)
}
