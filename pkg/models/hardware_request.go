package models

import "time"

// HardwareRequest is one employee request for a single unit of name+model.
// AssetID is nil when the request was recorded but rejected (no free unit).
type HardwareRequest struct {
	ID        int       `json:"id" db:"id"`
	RequestID int       `json:"request_id" db:"request_id"`
	AssetID   *string   `json:"asset_id" db:"asset_id"`
	EmpID     string    `json:"emp_id" db:"emp_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Status    string    `json:"status" db:"status"`
	OrderDate time.Time `json:"order_date" db:"order_date"`
}

func (r *HardwareRequest) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   r.RequestID,
		ResourceType: "hardware_request",
	}
}
