package catalog

import (
	"log"
	"net/http"

	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service    *Service
	repository *CatalogRepository
}

func NewHandler(service *Service, repository *CatalogRepository) *Handler {
	return &Handler{
		service:    service,
		repository: repository,
	}
}

func (h *Handler) GetNames(c *gin.Context) {
	names, err := h.repository.DistinctNames()
	if err != nil {
		log.Println("failed to list hardware names:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load hardware names", "error_kind": "internal"})
		return
	}

	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

func (h *Handler) GetModels(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusOK, []string{})
		return
	}

	modelNames, err := h.repository.DistinctModels(name)
	if err != nil {
		log.Println("failed to list models:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load models", "error_kind": "internal"})
		return
	}

	if modelNames == nil {
		modelNames = []string{}
	}
	c.JSON(http.StatusOK, modelNames)
}

// GetCount degrades to {available: 0} instead of an error status; the
// request form polls this endpoint and treats any answer as a count.
func (h *Handler) GetCount(c *gin.Context) {
	name := c.Query("name")
	model := c.Query("model")
	if name == "" || model == "" {
		c.JSON(http.StatusOK, gin.H{"available": 0})
		return
	}

	available, err := h.service.Available(name, model)
	if err != nil {
		log.Println("failed to compute availability:", err)
		c.JSON(http.StatusOK, gin.H{"available": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// GetUnits lists individual units, optionally narrowed by name and model.
func (h *Handler) GetUnits(c *gin.Context) {
	units, err := h.repository.ListUnits(c.Query("name"), c.Query("model"))
	if err != nil {
		log.Println("failed to list units:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load units", "error_kind": "internal"})
		return
	}

	if units == nil {
		units = []models.HardwareUnit{}
	}
	c.JSON(http.StatusOK, gin.H{"units": units, "total": len(units)})
}

func (h *Handler) GetInventory(c *gin.Context) {
	nameFilter := c.Query("item")
	if nameFilter == "All" {
		nameFilter = ""
	}

	rows, err := h.repository.GetStockSummary(nameFilter)
	if err != nil {
		log.Println("failed to load inventory:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load inventory", "error_kind": "internal"})
		return
	}

	if rows == nil {
		rows = []StockSummaryRow{}
	}
	c.JSON(http.StatusOK, gin.H{"items": rows, "total": len(rows)})
}

func (h *Handler) AddInventory(c *gin.Context) {
	var req AddInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields", "error_kind": "validation_error"})
		return
	}

	result, err := h.service.AddInventory(req)
	if err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added successfully", "data": result})
}
