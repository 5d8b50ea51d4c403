package models

import "time"

// PurchaseRecord is one purchase batch. Stock counts are computed as
// sum(quantity) grouped by asset_name+model_name.
type PurchaseRecord struct {
	ID          int       `json:"id" db:"id"`
	PurchaseID  string    `json:"purchase_id" db:"purchase_id"`
	AssetName   string    `json:"asset_name" db:"asset_name"`
	ModelName   string    `json:"model_name" db:"model_name"`
	Quantity    int       `json:"quantity" db:"quantity"`
	SellerID    string    `json:"seller_id" db:"seller_id"`
	ArrivalDate time.Time `json:"arrival_date" db:"arrival_date"`
}

func (p *PurchaseRecord) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   p.ID,
		ResourceType: "purchase",
	}
}

type VendorRecord struct {
	ID         int    `json:"id" db:"id"`
	SellerID   string `json:"seller_id" db:"seller_id"`
	SellerName string `json:"seller_name" db:"seller_name"`
	Phone      string `json:"phone" db:"phone"`
	GSTNumber  string `json:"gst_number" db:"gst_number"`
}
