package issues

import (
	"encoding/json"
	"fmt"

	"assetdesk/internal/repository"
	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type IssueRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *IssueRepository {
	return &IssueRepository{repository: r}
}

func (r *IssueRepository) CatalogCategories() ([]string, error) {
	var categories []string
	query := r.repository.GoquDBWrapper.
		From("hardware_issues").
		Select(goqu.DISTINCT("category")).
		Order(goqu.C("category").Asc())

	if err := query.ScanVals(&categories); err != nil {
		return nil, fmt.Errorf("failed to list issue categories: %w", err)
	}

	return categories, nil
}

func (r *IssueRepository) CatalogIssuesByCategory(category string) ([]models.CatalogIssue, error) {
	var entries []models.CatalogIssue
	query := r.repository.GoquDBWrapper.
		From("hardware_issues").
		Select("category", "issue", "priority").
		Where(goqu.Ex{"category": category}).
		Order(goqu.C("issue").Asc())

	if err := query.ScanStructs(&entries); err != nil {
		return nil, fmt.Errorf("failed to list issues for category: %w", err)
	}

	return entries, nil
}

// FindCatalogIssue resolves a category+issue pair against the fixed catalog.
func (r *IssueRepository) FindCatalogIssue(category, issue string) (*models.CatalogIssue, error) {
	var entry models.CatalogIssue
	found, err := r.repository.GoquDBWrapper.
		From("hardware_issues").
		Select("category", "issue", "priority").
		Where(goqu.Ex{"category": category, "issue": issue}).
		ScanStruct(&entry)
	if err != nil {
		return nil, fmt.Errorf("failed to look up issue catalog: %w", err)
	}
	if !found {
		return nil, custom_error.NewInvalidIssue("Invalid issue selected")
	}

	return &entry, nil
}

func (r *IssueRepository) Insert(issue *models.IssueRequest) error {
	query := r.repository.GoquDBWrapper.Insert("issue_requests").
		Rows(goqu.Record{
			"id":                issue.ID.String(),
			"emp_id":            issue.EmpID,
			"asset_id":          issue.AssetID,
			"category":          issue.Category,
			"issue":             issue.Issue,
			"priority":          issue.Priority,
			"description":       issue.Description,
			"technician_status": issue.TechnicianStatus,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert issue request: %w", err)
	}

	return nil
}

func (r *IssueRepository) Get(id uuid.UUID) (*models.IssueRequest, error) {
	var flat models.FlatIssueRecord
	found, err := r.repository.GoquDBWrapper.
		From("issue_requests").
		Select("id", "emp_id", "asset_id", "category", "issue", "priority", "description", "technician_status", "technician_id", "aianalysis", "created_at").
		Where(goqu.Ex{"id": id.String()}).
		ScanStruct(&flat)
	if err != nil {
		return nil, fmt.Errorf("failed to load issue request: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFound("Issue not found")
	}

	issue, err := flat.TransformToIssue()
	if err != nil {
		return nil, err
	}

	return &issue, nil
}

func (r *IssueRepository) scanList(query *goqu.SelectDataset) ([]models.IssueRequest, error) {
	var flats []models.FlatIssueRecord
	if err := query.ScanStructs(&flats); err != nil {
		return nil, fmt.Errorf("failed to list issue requests: %w", err)
	}

	issues := make([]models.IssueRequest, 0, len(flats))
	for i := range flats {
		issue, err := flats[i].TransformToIssue()
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}

	return issues, nil
}

func (r *IssueRepository) List(priority string, limit, offset int) ([]models.IssueRequest, error) {
	conditions := goqu.Ex{}
	if priority != "" {
		conditions["priority"] = priority
	}

	query := r.repository.GoquDBWrapper.
		From("issue_requests").
		Select("id", "emp_id", "asset_id", "category", "issue", "priority", "description", "technician_status", "technician_id", "aianalysis", "created_at").
		Where(conditions).
		Order(goqu.C("created_at").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset))

	return r.scanList(query)
}

func (r *IssueRepository) ListByEmployee(empID string) ([]models.IssueRequest, error) {
	query := r.repository.GoquDBWrapper.
		From("issue_requests").
		Select("id", "emp_id", "asset_id", "category", "issue", "priority", "description", "technician_status", "technician_id", "aianalysis", "created_at").
		Where(goqu.Ex{"emp_id": empID}).
		Order(goqu.C("created_at").Desc())

	return r.scanList(query)
}

func (r *IssueRepository) SaveAnalysis(id uuid.UUID, analysis models.AIAnalysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	query := r.repository.GoquDBWrapper.Update("issue_requests").
		Set(goqu.Record{"aianalysis": payload}).
		Where(goqu.Ex{"id": id.String()})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to persist analysis: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return custom_error.NewNotFound("Issue not found")
	}

	return nil
}

// IssueChanges carries the admin-mutable part of an issue; nil means
// unchanged.
type IssueChanges struct {
	Priority         *string `json:"priority"`
	TechnicianStatus *string `json:"technician_status"`
	TechnicianID     *string `json:"technician_id"`
	Description      *string `json:"description"`
}

func (r *IssueRepository) Update(id uuid.UUID, changes IssueChanges) error {
	record := goqu.Record{}
	if changes.Priority != nil {
		record["priority"] = *changes.Priority
	}
	if changes.TechnicianStatus != nil {
		record["technician_status"] = *changes.TechnicianStatus
	}
	if changes.TechnicianID != nil {
		record["technician_id"] = *changes.TechnicianID
	}
	if changes.Description != nil {
		record["description"] = *changes.Description
	}
	if len(record) == 0 {
		return custom_error.NewValidation("No changes provided")
	}

	result, err := r.repository.GoquDBWrapper.Update("issue_requests").
		Set(record).
		Where(goqu.Ex{"id": id.String()}).
		Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to update issue request: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return custom_error.NewNotFound("Issue not found")
	}

	return nil
}

func (r *IssueRepository) Delete(id uuid.UUID) error {
	result, err := r.repository.GoquDBWrapper.Delete("issue_requests").
		Where(goqu.Ex{"id": id.String()}).
		Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to delete issue request: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return custom_error.NewNotFound("Issue not found")
	}

	return nil
}
