package models

import "time"

const (
	StatusAllocated = "allocated"
	StatusRejected  = "rejected"
)

// AllocationRecord binds one hardware unit to one employee for one request.
// At most one record with status=allocated may exist per asset_id; the
// allocations table carries a partial unique index enforcing this.
type AllocationRecord struct {
	ID            int       `json:"id" db:"id"`
	AssetID       string    `json:"asset_id" db:"asset_id"`
	EmpID         string    `json:"emp_id" db:"emp_id"`
	RequestID     int       `json:"request_id" db:"request_id"`
	Status        string    `json:"status" db:"status"`
	AllocatedDate time.Time `json:"allocated_date" db:"allocated_date"`
}

func (a *AllocationRecord) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   a.ID,
		ResourceType: "allocation",
	}
}
