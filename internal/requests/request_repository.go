package requests

import (
	"database/sql"
	"errors"
	"fmt"

	"assetdesk/internal/repository"
	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type RequestRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *RequestRepository {
	return &RequestRepository{repository: r}
}

func (r *RequestRepository) NextRequestID(tx *goqu.TxDatabase) (int, error) {
	var n int64
	if _, err := tx.ScanVal(&n, "SELECT nextval('request_id_seq')"); err != nil {
		return 0, fmt.Errorf("failed to generate request id: %w", err)
	}
	return int(n), nil
}

func (r *RequestRepository) InsertRequest(tx *goqu.TxDatabase, req models.HardwareRequest) error {
	record := goqu.Record{
		"request_id": req.RequestID,
		"emp_id":     req.EmpID,
		"quantity":   req.Quantity,
		"status":     req.Status,
	}
	if req.AssetID != nil {
		record["asset_id"] = *req.AssetID
	}

	if _, err := tx.Insert("hardware_requests").Rows(record).Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert hardware request: %w", err)
	}

	return nil
}

func (r *RequestRepository) GetByRequestID(requestID int) (*models.HardwareRequest, error) {
	var req models.HardwareRequest
	found, err := r.repository.GoquDBWrapper.
		From("hardware_requests").
		Select("id", "request_id", "asset_id", "emp_id", "quantity", "status", "order_date").
		Where(goqu.Ex{"request_id": requestID}).
		ScanStruct(&req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, custom_error.NewNotFound("Request not found")
		}
		return nil, fmt.Errorf("failed to load hardware request: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFound("Request not found")
	}

	return &req, nil
}

func (r *RequestRepository) UpdateStatus(tx *goqu.TxDatabase, requestID int, status string) error {
	query := tx.Update("hardware_requests").
		Set(goqu.Record{"status": status}).
		Where(goqu.Ex{"request_id": requestID})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	return nil
}

// FreeUnits lists units of name+model with no active allocation, oldest
// first. The orchestrator picks candidates in this order (FIFO by unit
// creation), so the chosen unit is deterministic.
func (r *RequestRepository) FreeUnits(tx *goqu.TxDatabase, name, model string) ([]models.HardwareUnit, error) {
	var units []models.HardwareUnit
	query := tx.
		From(goqu.T("hardware_units").As("h")).
		Select(
			goqu.I("h.id").As("id"),
			goqu.I("h.asset_id").As("asset_id"),
			goqu.I("h.name").As("name"),
			goqu.I("h.model").As("model"),
			goqu.I("h.created_at").As("created_at"),
		).
		Where(
			goqu.Ex{"h.name": name, "h.model": model},
			goqu.L("NOT EXISTS (SELECT 1 FROM allocations a WHERE a.asset_id = h.asset_id AND a.status = ?)", models.StatusAllocated),
		).
		Order(goqu.I("h.id").Asc())

	if err := query.ScanStructs(&units); err != nil {
		return nil, fmt.Errorf("failed to list free units: %w", err)
	}

	return units, nil
}

func (r *RequestRepository) List(limit, offset int) ([]models.HardwareRequest, error) {
	var reqs []models.HardwareRequest
	query := r.repository.GoquDBWrapper.
		From("hardware_requests").
		Select("id", "request_id", "asset_id", "emp_id", "quantity", "status", "order_date").
		Order(goqu.C("order_date").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset))

	if err := query.ScanStructs(&reqs); err != nil {
		return nil, fmt.Errorf("failed to list hardware requests: %w", err)
	}

	return reqs, nil
}
