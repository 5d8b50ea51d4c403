package issues

import (
	"strings"

	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"

	"github.com/google/uuid"
)

// IssueStore is the slice of IssueRepository the service needs.
type IssueStore interface {
	FindCatalogIssue(category, issue string) (*models.CatalogIssue, error)
	Insert(issue *models.IssueRequest) error
	Get(id uuid.UUID) (*models.IssueRequest, error)
	SaveAnalysis(id uuid.UUID, analysis models.AIAnalysis) error
}

// OwnershipChecker answers whether the unit is actively allocated to the
// employee.
type OwnershipChecker interface {
	ExistsAllocated(empID, assetID string) (bool, error)
}

type Service struct {
	store  IssueStore
	ledger OwnershipChecker
}

func NewService(store IssueStore, ledger OwnershipChecker) *Service {
	return &Service{
		store:  store,
		ledger: ledger,
	}
}

type CreateIssueRequest struct {
	EmpID       string `json:"emp_id" binding:"required"`
	AssetID     string `json:"asset_id" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Issue       string `json:"issue" binding:"required"`
	Description string `json:"description"`
}

// Create files an issue ticket. The asset must be actively allocated to the
// reporting employee, and the category+issue pair must exist in the fixed
// catalog, whose default priority seeds the ticket.
func (s *Service) Create(req CreateIssueRequest) (*models.IssueRequest, error) {
	owned, err := s.ledger.ExistsAllocated(req.EmpID, req.AssetID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, custom_error.NewAuthorization("Asset not allocated to this employee")
	}

	catalogEntry, err := s.store.FindCatalogIssue(req.Category, req.Issue)
	if err != nil {
		return nil, err
	}

	issue := &models.IssueRequest{
		ID:               uuid.New(),
		EmpID:            req.EmpID,
		AssetID:          req.AssetID,
		Category:         req.Category,
		Issue:            req.Issue,
		Priority:         catalogEntry.Priority,
		Description:      req.Description,
		TechnicianStatus: models.TechnicianUnassigned,
	}

	if err := s.store.Insert(issue); err != nil {
		return nil, err
	}

	return issue, nil
}

// Analyze runs the rule-based classifier over an existing ticket and
// persists the result. Classification is allowed only while no technician
// is assigned; once handed over, the analysis is frozen. The analysis is
// advisory and never changes technician_status.
func (s *Service) Analyze(id uuid.UUID) (*models.AIAnalysis, error) {
	issue, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(issue.TechnicianStatus, models.TechnicianUnassigned) {
		return nil, custom_error.NewNotAllowed("AI analysis allowed only when technician is unassigned")
	}

	analysis := Classify(*issue)
	if err := s.store.SaveAnalysis(id, analysis); err != nil {
		return nil, err
	}

	return &analysis, nil
}
