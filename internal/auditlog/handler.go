package auditlog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repository *AuditLogRepository
}

func NewHandler(repository *AuditLogRepository) *Handler {
	return &Handler{repository: repository}
}

// GetResourceLog returns the audit trail for one resource, newest first.
func (h *Handler) GetResourceLog(c *gin.Context) {
	resourceType := c.Param("resource_type")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid resource id", "error_kind": "validation_error"})
		return
	}

	logs, err := h.repository.GetResourceLog(id, resourceType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load audit log", "error_kind": "internal"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
