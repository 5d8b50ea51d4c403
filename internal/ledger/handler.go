package ledger

import (
	"net/http"

	"assetdesk/pkg/models"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repository *LedgerRepository
}

func NewHandler(repository *LedgerRepository) *Handler {
	return &Handler{repository: repository}
}

func (h *Handler) GetEmployeeAllocations(c *gin.Context) {
	empID := c.Param("emp_id")
	if empID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "emp_id is required", "error_kind": "validation_error"})
		return
	}

	allocations, err := h.repository.AllocationsForEmployee(empID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch allocations", "error_kind": "internal"})
		return
	}

	count, err := h.repository.CountAllocatedFor(empID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch allocations", "error_kind": "internal"})
		return
	}

	if allocations == nil {
		allocations = []models.AllocationRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"allocations": allocations, "count": count})
}

// GetAllocatedAssetIDs is the admin overview of every unit currently out.
func (h *Handler) GetAllocatedAssetIDs(c *gin.Context) {
	assetIDs, err := h.repository.ListAllocatedAssetIDs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch allocations", "error_kind": "internal"})
		return
	}

	if assetIDs == nil {
		assetIDs = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"asset_ids": assetIDs, "count": len(assetIDs)})
}

func (h *Handler) GetUnitStatus(c *gin.Context) {
	assetID := c.Param("asset_id")

	free, err := h.repository.IsUnitFree(assetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to check unit status", "error_kind": "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset_id": assetID, "free": free})
}
