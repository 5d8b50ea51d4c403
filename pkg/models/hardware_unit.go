package models

import "time"

// HardwareUnit is one physical, individually trackable piece of hardware.
// asset_id is generated once on inventory intake and never changes.
type HardwareUnit struct {
	ID        int       `json:"id" db:"id"`
	AssetID   string    `json:"asset_id" db:"asset_id"`
	Name      string    `json:"name" db:"name"`
	Model     string    `json:"model" db:"model"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
}

func (u *HardwareUnit) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   u.ID,
		ResourceType: "hardware_unit",
	}
}
