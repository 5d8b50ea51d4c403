package requests

import (
	"assetdesk/pkg/auditlog"
	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"go.uber.org/zap"
)

// RequestStore is the slice of RequestRepository the orchestrator needs.
type RequestStore interface {
	NextRequestID(tx *goqu.TxDatabase) (int, error)
	InsertRequest(tx *goqu.TxDatabase, req models.HardwareRequest) error
	GetByRequestID(requestID int) (*models.HardwareRequest, error)
	UpdateStatus(tx *goqu.TxDatabase, requestID int, status string) error
	FreeUnits(tx *goqu.TxDatabase, name, model string) ([]models.HardwareUnit, error)
}

// LedgerWriter performs the conditional allocation insert.
type LedgerWriter interface {
	Allocate(tx *goqu.TxDatabase, rec models.AllocationRecord) error
}

// CatalogReader answers whether any unit of name+model exists at all.
type CatalogReader interface {
	CountUnits(name, model string) (int, error)
}

type TxRunner interface {
	RunInTransaction(fn func(tx *goqu.TxDatabase) error) error
}

type FulfillmentService struct {
	tx       TxRunner
	store    RequestStore
	ledger   LedgerWriter
	catalog  CatalogReader
	auditLog *auditlog.Auditlog
	logger   *zap.Logger
}

func NewFulfillmentService(tx TxRunner, store RequestStore, ledger LedgerWriter, catalog CatalogReader, auditLog *auditlog.Auditlog, logger *zap.Logger) *FulfillmentService {
	return &FulfillmentService{
		tx:       tx,
		store:    store,
		ledger:   ledger,
		catalog:  catalog,
		auditLog: auditLog,
		logger:   logger,
	}
}

type SubmitRequest struct {
	EmpID    string `json:"emp_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// FulfillmentResult is the recorded outcome of a submission. A rejection is
// a successful response carrying a business rejection: the request row
// exists, Status is "rejected" and AssetID is nil. Callers branch on Status,
// not on the HTTP code.
type FulfillmentResult struct {
	RequestID int     `json:"request_id"`
	AssetID   *string `json:"asset_id"`
	Status    string  `json:"status"`
	Message   string  `json:"message"`
}

func (s *FulfillmentService) validate(req SubmitRequest) error {
	if req.EmpID == "" || req.Name == "" || req.Model == "" || req.Quantity == 0 {
		return custom_error.NewValidation("Missing fields")
	}
	if req.Quantity != 1 {
		return custom_error.NewUnsupportedQuantity("Only 1 asset can be allocated per request")
	}

	count, err := s.catalog.CountUnits(req.Name, req.Model)
	if err != nil {
		return err
	}
	if count == 0 {
		return custom_error.NewNoSuchHardware("No such hardware exists")
	}

	return nil
}

// Submit runs the auto-allocate flow. The request row and the allocation row
// are written in one transaction, so a request can never end up allocated
// without its ledger entry. Availability is decided here, not in validation:
// "no free unit" is a recorded rejection, not an error.
func (s *FulfillmentService) Submit(req SubmitRequest) (*FulfillmentResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var result FulfillmentResult

	err := s.tx.RunInTransaction(func(tx *goqu.TxDatabase) error {
		requestID, err := s.store.NextRequestID(tx)
		if err != nil {
			return err
		}

		candidates, err := s.store.FreeUnits(tx, req.Name, req.Model)
		if err != nil {
			return err
		}

		// Candidates are ordered FIFO by unit creation. A concurrent
		// transaction may win the first unit between our read and our
		// insert; the conditional write reports that as a conflict and we
		// move on to the next candidate.
		for _, unit := range candidates {
			allocErr := s.ledger.Allocate(tx, models.AllocationRecord{
				AssetID:   unit.AssetID,
				EmpID:     req.EmpID,
				RequestID: requestID,
			})
			if allocErr != nil {
				if custom_error.IsKind(allocErr, custom_error.KindConflict) {
					continue
				}
				return allocErr
			}

			assetID := unit.AssetID
			if err := s.store.InsertRequest(tx, models.HardwareRequest{
				RequestID: requestID,
				AssetID:   &assetID,
				EmpID:     req.EmpID,
				Quantity:  req.Quantity,
				Status:    models.StatusAllocated,
			}); err != nil {
				return err
			}

			result = FulfillmentResult{
				RequestID: requestID,
				AssetID:   &assetID,
				Status:    models.StatusAllocated,
				Message:   "Asset allocated successfully",
			}
			return nil
		}

		if err := s.store.InsertRequest(tx, models.HardwareRequest{
			RequestID: requestID,
			EmpID:     req.EmpID,
			Quantity:  req.Quantity,
			Status:    models.StatusRejected,
		}); err != nil {
			return err
		}

		result = FulfillmentResult{
			RequestID: requestID,
			Status:    models.StatusRejected,
			Message:   "No assets available. Request rejected.",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logFulfillment(req.EmpID, result)

	return &result, nil
}

// Assign runs the manual admin-assign flow for a request that already
// carries an asset_id but is not yet allocated. Both writes share one
// transaction.
func (s *FulfillmentService) Assign(requestID int) (string, error) {
	request, err := s.store.GetByRequestID(requestID)
	if err != nil {
		return "", err
	}
	if request.AssetID == nil {
		return "", custom_error.NewValidation("Request has no asset_id to assign")
	}

	assetID := *request.AssetID

	err = s.tx.RunInTransaction(func(tx *goqu.TxDatabase) error {
		if err := s.ledger.Allocate(tx, models.AllocationRecord{
			AssetID:   assetID,
			EmpID:     request.EmpID,
			RequestID: request.RequestID,
		}); err != nil {
			return err
		}

		return s.store.UpdateStatus(tx, request.RequestID, models.StatusAllocated)
	})
	if err != nil {
		return "", err
	}

	s.logFulfillment(request.EmpID, FulfillmentResult{
		RequestID: request.RequestID,
		AssetID:   &assetID,
		Status:    models.StatusAllocated,
	})

	return assetID, nil
}

func (s *FulfillmentService) logFulfillment(empID string, result FulfillmentResult) {
	if s.logger != nil {
		fields := []zap.Field{
			zap.Int("request_id", result.RequestID),
			zap.String("emp_id", empID),
			zap.String("status", result.Status),
		}
		if result.AssetID != nil {
			fields = append(fields, zap.String("asset_id", *result.AssetID))
		}
		s.logger.Info("request fulfilled", fields...)
	}

	if s.auditLog != nil {
		record := models.HardwareRequest{RequestID: result.RequestID, EmpID: empID, Status: result.Status, AssetID: result.AssetID}
		s.auditLog.Log(result.Status, result, &record)
	}
}
