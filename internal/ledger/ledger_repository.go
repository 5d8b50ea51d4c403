package ledger

import (
	"fmt"

	"assetdesk/internal/repository"
	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// LedgerRepository owns the allocations table. No other component writes it.
type LedgerRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *LedgerRepository {
	return &LedgerRepository{repository: r}
}

// Allocate inserts an active allocation for rec.AssetID as a single
// conditional write. The partial unique index on allocations(asset_id)
// WHERE status='allocated' turns a concurrent double-allocation into a
// no-op insert, which is reported as a conflict. There is no separate
// existence check to race against.
func (r *LedgerRepository) Allocate(tx *goqu.TxDatabase, rec models.AllocationRecord) error {
	query := tx.Insert("allocations").
		Rows(goqu.Record{
			"asset_id":   rec.AssetID,
			"emp_id":     rec.EmpID,
			"request_id": rec.RequestID,
			"status":     models.StatusAllocated,
		}).
		OnConflict(goqu.DoNothing())

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to insert allocation record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read allocation insert result: %w", err)
	}
	if rows == 0 {
		return custom_error.NewConflict("Asset already allocated")
	}

	return nil
}

// IsUnitFree reports whether no active allocation exists for the unit.
// Allocate does not call this; its conditional insert carries the check.
func (r *LedgerRepository) IsUnitFree(assetID string) (bool, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		From("allocations").
		Select(goqu.COUNT("id")).
		Where(goqu.Ex{"asset_id": assetID, "status": models.StatusAllocated})

	if _, err := query.ScanVal(&count); err != nil {
		return false, fmt.Errorf("failed to check unit allocation: %w", err)
	}

	return count == 0, nil
}

func (r *LedgerRepository) ListAllocatedAssetIDs() ([]string, error) {
	var assetIDs []string
	query := r.repository.GoquDBWrapper.
		From("allocations").
		Select("asset_id").
		Where(goqu.Ex{"status": models.StatusAllocated}).
		Order(goqu.C("asset_id").Asc())

	if err := query.ScanVals(&assetIDs); err != nil {
		return nil, fmt.Errorf("failed to list allocated asset ids: %w", err)
	}

	return assetIDs, nil
}

func (r *LedgerRepository) CountAllocatedFor(empID string) (int, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		From("allocations").
		Select(goqu.COUNT("id")).
		Where(goqu.Ex{"emp_id": empID, "status": models.StatusAllocated})

	if _, err := query.ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count allocations for employee: %w", err)
	}

	return count, nil
}

// AllocatedCountForItem counts active allocations across all units of one
// name+model, used by the available-stock computation.
func (r *LedgerRepository) AllocatedCountForItem(name, model string) (int, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		From(goqu.T("allocations").As("a")).
		Join(
			goqu.T("hardware_units").As("h"),
			goqu.On(goqu.L("h.asset_id = a.asset_id")),
		).
		Select(goqu.COUNT(goqu.I("a.id"))).
		Where(goqu.Ex{
			"a.status": models.StatusAllocated,
			"h.name":   name,
			"h.model":  model,
		})

	if _, err := query.ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count allocations for item: %w", err)
	}

	return count, nil
}

// ExistsAllocated reports whether the unit is actively allocated to the
// given employee. Issue intake uses this as its ownership check.
func (r *LedgerRepository) ExistsAllocated(empID, assetID string) (bool, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		From("allocations").
		Select(goqu.COUNT("id")).
		Where(goqu.Ex{
			"emp_id":   empID,
			"asset_id": assetID,
			"status":   models.StatusAllocated,
		})

	if _, err := query.ScanVal(&count); err != nil {
		return false, fmt.Errorf("failed to check allocation ownership: %w", err)
	}

	return count > 0, nil
}

func (r *LedgerRepository) AllocationsForEmployee(empID string) ([]models.AllocationRecord, error) {
	var records []models.AllocationRecord
	query := r.repository.GoquDBWrapper.
		From("allocations").
		Select("id", "asset_id", "emp_id", "request_id", "status", "allocated_date").
		Where(goqu.Ex{"emp_id": empID, "status": models.StatusAllocated}).
		Order(goqu.C("allocated_date").Desc())

	if err := query.ScanStructs(&records); err != nil {
		return nil, fmt.Errorf("failed to list allocations for employee: %w", err)
	}

	return records, nil
}
