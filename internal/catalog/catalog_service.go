package catalog

import (
	"fmt"
	"time"

	"assetdesk/pkg/auditlog"
	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// Store is the slice of CatalogRepository the service needs.
type Store interface {
	NextAssetID(tx *goqu.TxDatabase) (string, error)
	NextPurchaseID(tx *goqu.TxDatabase) (string, error)
	InsertUnit(tx *goqu.TxDatabase, unit *models.HardwareUnit) error
	InsertPurchase(tx *goqu.TxDatabase, rec *models.PurchaseRecord) error
	EnsureVendor(tx *goqu.TxDatabase, vendor *models.VendorRecord) error
	TotalPurchased(name, model string) (int, error)
}

// LedgerCounter is the ledger read used by the stock computation.
type LedgerCounter interface {
	AllocatedCountForItem(name, model string) (int, error)
}

type TxRunner interface {
	RunInTransaction(fn func(tx *goqu.TxDatabase) error) error
}

type Service struct {
	tx       TxRunner
	store    Store
	ledger   LedgerCounter
	auditLog *auditlog.Auditlog
}

func NewService(tx TxRunner, store Store, ledger LedgerCounter, auditLog *auditlog.Auditlog) *Service {
	return &Service{
		tx:       tx,
		store:    store,
		ledger:   ledger,
		auditLog: auditLog,
	}
}

type AddInventoryRequest struct {
	ItemName    string `json:"itemName" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	SellerID    string `json:"seller_id" binding:"required"`
	Supplier    string `json:"supplier" binding:"required"`
	Phone       string `json:"phone"`
	GST         string `json:"gst"`
	ArrivalDate string `json:"arrival_date"`
}

type InventoryAdded struct {
	PurchaseID string   `json:"purchase_id"`
	AssetIDs   []string `json:"asset_ids"`
	Vendor     string   `json:"vendor"`
}

// AddInventory records one purchase batch: the vendor is upserted, one
// hardware unit row is created per unit of quantity, and the purchase row
// is written, all in one transaction.
func (s *Service) AddInventory(req AddInventoryRequest) (*InventoryAdded, error) {
	if req.Quantity < 1 {
		return nil, custom_error.NewValidation("quantity must be at least 1")
	}

	arrival := time.Now()
	if req.ArrivalDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ArrivalDate)
		if err != nil {
			return nil, custom_error.NewValidation("arrival_date must be YYYY-MM-DD")
		}
		arrival = parsed
	}

	gst := req.GST
	if gst == "" {
		gst = "N/A"
	}

	var result InventoryAdded
	var purchase models.PurchaseRecord

	err := s.tx.RunInTransaction(func(tx *goqu.TxDatabase) error {
		vendor := models.VendorRecord{
			SellerID:   req.SellerID,
			SellerName: req.Supplier,
			Phone:      req.Phone,
			GSTNumber:  gst,
		}
		if err := s.store.EnsureVendor(tx, &vendor); err != nil {
			return err
		}
		result.Vendor = vendor.SellerName

		for i := 0; i < req.Quantity; i++ {
			assetID, err := s.store.NextAssetID(tx)
			if err != nil {
				return err
			}
			unit := models.HardwareUnit{
				AssetID: assetID,
				Name:    req.ItemName,
				Model:   req.Model,
			}
			if err := s.store.InsertUnit(tx, &unit); err != nil {
				return err
			}
			result.AssetIDs = append(result.AssetIDs, assetID)
		}

		purchaseID, err := s.store.NextPurchaseID(tx)
		if err != nil {
			return err
		}
		purchase = models.PurchaseRecord{
			PurchaseID:  purchaseID,
			AssetName:   req.ItemName,
			ModelName:   req.Model,
			Quantity:    req.Quantity,
			SellerID:    req.SellerID,
			ArrivalDate: arrival,
		}
		if err := s.store.InsertPurchase(tx, &purchase); err != nil {
			return err
		}
		result.PurchaseID = purchaseID

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add inventory: %w", err)
	}

	if s.auditLog != nil {
		s.auditLog.Log("create", result, &purchase)
	}

	return &result, nil
}

// Available computes purchased minus allocated for one name+model, clamped
// at zero. Two calls with no intervening writes return the same value.
func (s *Service) Available(name, model string) (int, error) {
	purchased, err := s.store.TotalPurchased(name, model)
	if err != nil {
		return 0, err
	}

	allocated, err := s.ledger.AllocatedCountForItem(name, model)
	if err != nil {
		return 0, err
	}

	available := purchased - allocated
	if available < 0 {
		available = 0
	}

	return available, nil
}
