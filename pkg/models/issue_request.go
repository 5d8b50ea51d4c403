package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	PriorityPending = "Pending"
	PriorityLow     = "Low"
	PriorityMedium  = "Medium"
	PriorityHigh    = "High"
)

const (
	TechnicianUnassigned = "Unassigned"
	TechnicianAssigned   = "assigned"
)

// AIAnalysis is the advisory classification attached to an issue by the
// rule-based classifier. It never gates any other operation.
type AIAnalysis struct {
	Priority       string `json:"priority"`
	Recommendation string `json:"recommendation"`
	Reason         string `json:"reason"`
}

// IssueRequest is an employee-reported hardware problem tied to an asset
// currently allocated to that employee.
type IssueRequest struct {
	ID               uuid.UUID   `json:"request_id"`
	EmpID            string      `json:"emp_id"`
	AssetID          string      `json:"asset_id"`
	Category         string      `json:"category"`
	Issue            string      `json:"issue"`
	Priority         string      `json:"priority"`
	Description      string      `json:"description"`
	TechnicianStatus string      `json:"technician_status"`
	TechnicianID     *string     `json:"technician_id,omitempty"`
	Analysis         *AIAnalysis `json:"aianalysis"`
	CreatedAt        time.Time   `json:"created_at"`
}

// CatalogIssue is one entry of the fixed category/issue catalog with its
// default priority.
type CatalogIssue struct {
	Category string `json:"category" db:"category"`
	Issue    string `json:"issue" db:"issue"`
	Priority string `json:"priority" db:"priority"`
}

// FlatIssueRecord is the scan target for issue rows; the aianalysis column
// is jsonb and arrives as raw bytes.
type FlatIssueRecord struct {
	ID               string     `db:"id"`
	EmpID            string     `db:"emp_id"`
	AssetID          string     `db:"asset_id"`
	Category         string     `db:"category"`
	Issue            string     `db:"issue"`
	Priority         string     `db:"priority"`
	Description      string     `db:"description"`
	TechnicianStatus string     `db:"technician_status"`
	TechnicianID     *string    `db:"technician_id"`
	AnalysisRaw      []byte     `db:"aianalysis"`
	CreatedAt        time.Time  `db:"created_at"`
}

func (f *FlatIssueRecord) TransformToIssue() (IssueRequest, error) {
	id, err := uuid.Parse(f.ID)
	if err != nil {
		return IssueRequest{}, fmt.Errorf("failed to parse issue id: %w", err)
	}

	issue := IssueRequest{
		ID:               id,
		EmpID:            f.EmpID,
		AssetID:          f.AssetID,
		Category:         f.Category,
		Issue:            f.Issue,
		Priority:         f.Priority,
		Description:      f.Description,
		TechnicianStatus: f.TechnicianStatus,
		TechnicianID:     f.TechnicianID,
		CreatedAt:        f.CreatedAt,
	}

	if len(f.AnalysisRaw) > 0 {
		var analysis AIAnalysis
		if err := json.Unmarshal(f.AnalysisRaw, &analysis); err != nil {
			return IssueRequest{}, fmt.Errorf("failed to unmarshal aianalysis: %w", err)
		}
		issue.Analysis = &analysis
	}

	return issue, nil
}
