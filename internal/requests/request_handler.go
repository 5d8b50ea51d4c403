package requests

import (
	"net/http"
	"strconv"

	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"
	"assetdesk/pkg/security"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service    *FulfillmentService
	repository *RequestRepository
}

func NewHandler(service *FulfillmentService, repository *RequestRepository) *Handler {
	return &Handler{
		service:    service,
		repository: repository,
	}
}

func (h *Handler) SubmitRequest(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields", "error_kind": "validation_error"})
		return
	}

	// The request is filed for the authenticated employee only; the body
	// emp_id must match the token identity.
	authEmpID, err := security.GetEmpIDFromContext(c)
	if err != nil || authEmpID != req.EmpID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Requests can only be submitted for your own employee id", "error_kind": "authorization_error"})
		return
	}

	result, err := h.service.Submit(req)
	if err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	// Rejection is a recorded outcome, not a failure: the row exists and
	// the caller branches on the status field.
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) AssignRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request id", "error_kind": "validation_error"})
		return
	}

	assetID, err := h.service.Assign(requestID)
	if err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset assigned successfully", "asset_id": assetID})
}

func (h *Handler) GetRequests(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	reqs, err := h.repository.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load requests", "error_kind": "internal"})
		return
	}

	if reqs == nil {
		reqs = []models.HardwareRequest{}
	}
	c.JSON(http.StatusOK, reqs)
}
