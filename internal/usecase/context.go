package usecase

import (
	"context"

	"go-vet-clinic/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// actorFromContext returns the authenticated user, or nil for system actions
func actorFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok || userID == uuid.Nil {
		return nil
	}
	return &userID
}
