package catalog

import (
	"fmt"

	"assetdesk/internal/repository"
	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

// CatalogRepository owns hardware_units, purchases and vendors.
type CatalogRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *CatalogRepository {
	return &CatalogRepository{repository: r}
}

// FormatAssetID renders a sequence value as a human-readable asset id.
// Widths past 999 grow naturally.
func FormatAssetID(n int64) string {
	return fmt.Sprintf("HW-%03d", n)
}

func FormatPurchaseID(n int64) string {
	return fmt.Sprintf("PO-%04d", n)
}

// NextAssetID draws from asset_id_seq. nextval never hands the same value
// to two callers, unlike the old parse-last-and-increment approach.
func (r *CatalogRepository) NextAssetID(tx *goqu.TxDatabase) (string, error) {
	var n int64
	if _, err := tx.ScanVal(&n, "SELECT nextval('asset_id_seq')"); err != nil {
		return "", fmt.Errorf("failed to generate asset id: %w", err)
	}
	return FormatAssetID(n), nil
}

func (r *CatalogRepository) NextPurchaseID(tx *goqu.TxDatabase) (string, error) {
	var n int64
	if _, err := tx.ScanVal(&n, "SELECT nextval('purchase_id_seq')"); err != nil {
		return "", fmt.Errorf("failed to generate purchase id: %w", err)
	}
	return FormatPurchaseID(n), nil
}

func (r *CatalogRepository) InsertUnit(tx *goqu.TxDatabase, unit *models.HardwareUnit) error {
	query := tx.Insert("hardware_units").
		Rows(goqu.Record{
			"asset_id": unit.AssetID,
			"name":     unit.Name,
			"model":    unit.Model,
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&unit.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return custom_error.WrapDBError("Duplicate asset id", string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert hardware unit: %w", err)
	}

	return nil
}

func (r *CatalogRepository) InsertPurchase(tx *goqu.TxDatabase, rec *models.PurchaseRecord) error {
	query := tx.Insert("purchases").
		Rows(goqu.Record{
			"purchase_id":  rec.PurchaseID,
			"asset_name":   rec.AssetName,
			"model_name":   rec.ModelName,
			"quantity":     rec.Quantity,
			"seller_id":    rec.SellerID,
			"arrival_date": rec.ArrivalDate,
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&rec.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return custom_error.WrapDBError("Duplicate purchase id", string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert purchase record: %w", err)
	}

	return nil
}

// EnsureVendor is an idempotent upsert keyed by seller_id: the first
// inventory intake naming a seller creates the vendor, later intakes reuse it
// and refresh its contact fields. The conflict clause targets seller_id only,
// so a gst_number collision between two different sellers still raises 23505
// instead of silently skipping the insert.
func (r *CatalogRepository) EnsureVendor(tx *goqu.TxDatabase, vendor *models.VendorRecord) error {
	insert := tx.Insert("vendors").
		Rows(goqu.Record{
			"seller_id":   vendor.SellerID,
			"seller_name": vendor.SellerName,
			"phone":       vendor.Phone,
			"gst_number":  vendor.GSTNumber,
		}).
		OnConflict(goqu.DoUpdate("seller_id", goqu.Record{
			"seller_name": vendor.SellerName,
			"phone":       vendor.Phone,
		}))

	if _, err := insert.Executor().Exec(); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return custom_error.WrapDBError("Duplicate GST number", string(pqErr.Code))
		}
		return fmt.Errorf("failed to upsert vendor: %w", err)
	}

	found, err := tx.From("vendors").
		Select("id", "seller_id", "seller_name", "phone", "gst_number").
		Where(goqu.Ex{"seller_id": vendor.SellerID}).
		ScanStruct(vendor)
	if err != nil {
		return fmt.Errorf("failed to load vendor: %w", err)
	}
	if !found {
		return fmt.Errorf("vendor %s missing after upsert", vendor.SellerID)
	}

	return nil
}

func (r *CatalogRepository) DistinctNames() ([]string, error) {
	var names []string
	query := r.repository.GoquDBWrapper.
		From("hardware_units").
		Select(goqu.DISTINCT("name")).
		Order(goqu.C("name").Asc())

	if err := query.ScanVals(&names); err != nil {
		return nil, fmt.Errorf("failed to list hardware names: %w", err)
	}

	return names, nil
}

func (r *CatalogRepository) DistinctModels(name string) ([]string, error) {
	var modelNames []string
	query := r.repository.GoquDBWrapper.
		From("hardware_units").
		Select(goqu.DISTINCT("model")).
		Where(goqu.Ex{"name": name}).
		Order(goqu.C("model").Asc())

	if err := query.ScanVals(&modelNames); err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	return modelNames, nil
}

// ListUnits returns units in creation order; fulfillment's FIFO pick relies
// on this ordering.
func (r *CatalogRepository) ListUnits(name, model string) ([]models.HardwareUnit, error) {
	conditions := goqu.Ex{}
	if name != "" {
		conditions["name"] = name
	}
	if model != "" {
		conditions["model"] = model
	}

	var units []models.HardwareUnit
	query := r.repository.GoquDBWrapper.
		From("hardware_units").
		Select("id", "asset_id", "name", "model", "created_at").
		Where(conditions).
		Order(goqu.C("id").Asc())

	if err := query.ScanStructs(&units); err != nil {
		return nil, fmt.Errorf("failed to list hardware units: %w", err)
	}

	return units, nil
}

func (r *CatalogRepository) CountUnits(name, model string) (int, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		From("hardware_units").
		Select(goqu.COUNT("id")).
		Where(goqu.Ex{"name": name, "model": model})

	if _, err := query.ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count hardware units: %w", err)
	}

	return count, nil
}

func (r *CatalogRepository) TotalPurchased(name, model string) (int, error) {
	var total int
	query := r.repository.GoquDBWrapper.
		From("purchases").
		Select(goqu.COALESCE(goqu.SUM("quantity"), 0)).
		Where(goqu.Ex{"asset_name": name, "model_name": model})

	if _, err := query.ScanVal(&total); err != nil {
		return 0, fmt.Errorf("failed to sum purchases: %w", err)
	}

	return total, nil
}

// StockSummaryRow is one name+model group of the inventory listing.
type StockSummaryRow struct {
	Name     string  `json:"name" db:"name"`
	Model    string  `json:"model" db:"model"`
	Stock    int     `json:"stock" db:"stock"`
	Seller   string  `json:"seller" db:"seller"`
	VendorID *string `json:"vendor_id" db:"vendor_id"`
}

// GetStockSummary returns per-item stock (purchased minus allocated) with
// the vendor of the latest purchase, optionally filtered by item name.
func (r *CatalogRepository) GetStockSummary(nameFilter string) ([]StockSummaryRow, error) {
	query := `
		SELECT h.name,
		       h.model,
		       COALESCE(p.total_qty, 0) - COALESCE(a.allocated, 0) AS stock,
		       COALESCE(v.seller_name, 'N/A') AS seller,
		       v.seller_id AS vendor_id
		FROM (SELECT DISTINCT name, model FROM hardware_units) h
		LEFT JOIN (
			SELECT asset_name, model_name, SUM(quantity) AS total_qty
			FROM purchases GROUP BY asset_name, model_name
		) p ON p.asset_name = h.name AND p.model_name = h.model
		LEFT JOIN (
			SELECT hu.name, hu.model, COUNT(*) AS allocated
			FROM allocations al
			JOIN hardware_units hu ON hu.asset_id = al.asset_id
			WHERE al.status = 'allocated'
			GROUP BY hu.name, hu.model
		) a ON a.name = h.name AND a.model = h.model
		LEFT JOIN LATERAL (
			SELECT ve.seller_name, ve.seller_id
			FROM purchases pp
			JOIN vendors ve ON ve.seller_id = pp.seller_id
			WHERE pp.asset_name = h.name AND pp.model_name = h.model
			ORDER BY pp.arrival_date DESC
			LIMIT 1
		) v ON true
		WHERE ($1 = '' OR h.name = $1)
		ORDER BY h.name, h.model`

	var rows []StockSummaryRow
	if err := r.repository.GoquDBWrapper.ScanStructs(&rows, query, nameFilter); err != nil {
		return nil, fmt.Errorf("failed to load stock summary: %w", err)
	}

	return rows, nil
}
