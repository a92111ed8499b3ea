package staff

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
	"github.com/chukwumela909/Web-App-sub001/pkg/logger"
)

// ActivityLogger implementa ports.ActivityRecorder. Guarda en el repositorio (MongoDB) cuando hay uno
// configurado y siempre deja una línea en el log estructurado. Un fallo al guardar sólo se loguea.
type ActivityLogger struct {
	repo repository.StaffActivityRepository
	log  *logger.Logger
	now  func() time.Time
}

var _ ports.ActivityRecorder = (*ActivityLogger)(nil)

// NewActivityLogger repo puede ser nil.
func NewActivityLogger(repo repository.StaffActivityRepository, log *logger.Logger) *ActivityLogger {
	if log == nil {
		log = logger.Nop()
	}
	return &ActivityLogger{repo: repo, log: log, now: time.Now}
}

// Record registra la acción.
func (a *ActivityLogger) Record(ctx context.Context, actor ports.Actor, action, resource, resourceID string, details map[string]any) {
	a.log.Info().
		Str("tenant_id", actor.TenantID).
		Str("user_id", actor.UserID).
		Str("staff_id", actor.StaffID).
		Str("action", action).
		Str("resource", resource).
		Str("resource_id", resourceID).
		Msg("actividad")
	if a.repo == nil {
		return
	}
	entry := &entity.StaffActivity{
		ID:         uuid.New().String(),
		TenantID:   actor.TenantID,
		StaffID:    actor.StaffID,
		UserID:     actor.UserID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    details,
		CreatedAt:  a.now(),
	}
	if err := a.repo.Append(ctx, entry); err != nil {
		a.log.Warn().Err(err).Str("action", action).Msg("no se pudo guardar la actividad")
	}
}
