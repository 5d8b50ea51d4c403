package issues

import (
	"net/http"
	"strconv"
	"time"

	"assetdesk/internal/rate_limiter"
	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"
	"assetdesk/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service     *Service
	repository  *IssueRepository
	rateLimiter *rate_limiter.RateLimiter
}

func NewHandler(service *Service, repository *IssueRepository) *Handler {
	return &Handler{
		service:     service,
		repository:  repository,
		rateLimiter: rate_limiter.NewRateLimiter(15, time.Minute),
	}
}

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.repository.CatalogCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load categories", "error_kind": "internal"})
		return
	}

	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetIssuesByCategory(c *gin.Context) {
	category := c.Param("category")
	entries, err := h.repository.CatalogIssuesByCategory(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load issues", "error_kind": "internal"})
		return
	}

	if entries == nil {
		entries = []models.CatalogIssue{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) CreateIssue(c *gin.Context) {
	clientIP := c.ClientIP()
	if !h.rateLimiter.IsAllowed(clientIP) {
		remaining := h.rateLimiter.GetRemainingRequests(clientIP)
		c.Header("X-RateLimit-Limit", "15")
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"message":   "Too many issue reports. Try again later.",
			"remaining": remaining,
		})
		return
	}

	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "emp_id, asset_id, category and issue are required", "error_kind": "validation_error"})
		return
	}

	// Issues are filed for the authenticated employee only; the body emp_id
	// must match the token identity.
	authEmpID, err := security.GetEmpIDFromContext(c)
	if err != nil || authEmpID != req.EmpID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Issues can only be reported for your own employee id", "error_kind": "authorization_error"})
		return
	}

	issue, err := h.service.Create(req)
	if err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Issue request created successfully",
		"request_id": issue.ID,
		"request":    issue,
	})
}

func (h *Handler) Analyze(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid issue id", "error_kind": "validation_error"})
		return
	}

	analysis, err := h.service.Analyze(id)
	if err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "AI analysis completed",
		"aianalysis": analysis,
	})
}

func (h *Handler) GetIssues(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	issues, err := h.repository.List(c.Query("priority"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load issue requests", "error_kind": "internal"})
		return
	}

	c.JSON(http.StatusOK, issues)
}

func (h *Handler) GetEmployeeIssues(c *gin.Context) {
	empID := c.Param("emp_id")
	if empID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "emp_id is required", "error_kind": "validation_error"})
		return
	}

	issues, err := h.repository.ListByEmployee(empID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load issue requests", "error_kind": "internal"})
		return
	}

	c.JSON(http.StatusOK, issues)
}

func (h *Handler) GetIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid issue id", "error_kind": "validation_error"})
		return
	}

	issue, err := h.repository.Get(id)
	if err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusOK, issue)
}

func (h *Handler) UpdateIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid issue id", "error_kind": "validation_error"})
		return
	}

	var changes IssueChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error_kind": "validation_error"})
		return
	}

	if err := h.repository.Update(id, changes); err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue request updated successfully"})
}

func (h *Handler) DeleteIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid issue id", "error_kind": "validation_error"})
		return
	}

	if err := h.repository.Delete(id); err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue request deleted successfully", "request_id": id})
}
