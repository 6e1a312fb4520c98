package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/kmazurov/fuelcard-backend/internal/models"
	repo "github.com/kmazurov/fuelcard-backend/internal/repository"
	"github.com/kmazurov/fuelcard-backend/internal/worker"
)

// Auditor writes audit records off the request path. Failures are
// logged, never surfaced to callers.
type Auditor struct {
	logs repo.AuditLogs
	wp   *worker.Pool
}

func NewAuditor(logs repo.AuditLogs, wp *worker.Pool) *Auditor {
	return &Auditor{logs: logs, wp: wp}
}

func (a *Auditor) Record(entityType, entityID, action string, details map[string]any) {
	if a == nil {
		return
	}
	id := entityID
	a.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		l := models.AuditLog{
			EntityType: entityType,
			Action:     action,
			Details:    details,
		}
		if id != "" {
			l.EntityID = &id
		}
		if err := a.logs.Create(ctx, l); err != nil {
			slog.Warn("audit write failed", "entity", entityType, "action", action, "err", err)
		}
	})
}
