package auditlog

import (
	"encoding/json"
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type AuditLogRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AuditLogRepository {
	return &AuditLogRepository{repository: r}
}

func (r *AuditLogRepository) PersistLog(auditlog models.AuditLog, auditLogData interface{}) error {
	dataJSON, err := json.Marshal(auditLogData)
	if err != nil {
		return fmt.Errorf("failed to marshal audit log data: %w", err)
	}

	query := r.repository.GoquDBWrapper.Insert("audit_logs").
		Rows(goqu.Record{
			"resource_id":   auditlog.ResourceID,
			"resource_type": auditlog.ResourceType,
			"action":        auditlog.Action,
			"data":          dataJSON,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}

	return nil
}

func (r *AuditLogRepository) GetResourceLog(id int, resourceType string) ([]models.AuditLog, error) {
	var auditLogs []models.AuditLog
	query := r.repository.GoquDBWrapper.
		From("audit_logs").
		Select("id", "resource_id", "resource_type", "action", goqu.C("data").As("data"), "created_at").
		Where(goqu.Ex{
			"resource_id":   id,
			"resource_type": resourceType,
		}).
		Order(goqu.C("created_at").Desc())

	if err := query.ScanStructs(&auditLogs); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	for i := range auditLogs {
		auditLogs[i].LoadFromDB()
	}

	return auditLogs, nil
}
