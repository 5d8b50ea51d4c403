package auditlog

import (
	"log"

	auditLogRepo "assetdesk/internal/auditlog"
	"assetdesk/pkg/models"
)

type Auditlog struct {
	r *auditLogRepo.AuditLogRepository
}

type Auditable interface {
	CreateLogView() models.AuditLog
}

func NewAuditLog(repository *auditLogRepo.AuditLogRepository) *Auditlog {
	return &Auditlog{r: repository}
}

// Log records an action against a resource. Audit writes are best-effort:
// a failed entry is logged and dropped, never surfaced to the caller.
func (a *Auditlog) Log(action string, data interface{}, item Auditable) {
	auditLog := item.CreateLogView()
	auditLog.Action = action

	if err := a.r.PersistLog(auditLog, data); err != nil {
		log.Println("Unable to create audit log entry for id ", auditLog.ResourceID)
		return
	}
}
