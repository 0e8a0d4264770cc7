package models

import (
	"time"
)

// Payment is a ledger row against a CustomerPackage. Payments are never
// reconciled against CustomerPackage.AmountPaid.
type Payment struct {
	ID                string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	CustomerPackageID string    `json:"customer_package_id" gorm:"type:varchar;not null;index"`
	Amount            float64   `json:"amount" gorm:"type:numeric;not null"`
	PaymentDate       Date      `json:"payment_date" gorm:"type:date;not null;index"`
	PaymentMethod     string    `json:"payment_method" gorm:"not null"`
	Notes             *string   `json:"notes" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at" gorm:"not null;index"`
}

func (Payment) TableName() string { return "payments" }

func (p Payment) Key() string { return p.ID }

func (p Payment) Created() time.Time { return p.CreatedAt }

func (p Payment) Field(column string) (interface{}, bool) {
	switch column {
	case "id":
		return p.ID, true
	case "created_at":
		return p.CreatedAt, true
	case "customer_package_id":
		return p.CustomerPackageID, true
	case "payment_date":
		return p.PaymentDate, true
	case "amount":
		return p.Amount, true
	}
	return nil, false
}

type PaymentCreate struct {
	CustomerPackageID string   `json:"customer_package_id" binding:"required"`
	Amount            *float64 `json:"amount" binding:"required"`
	PaymentDate       Date     `json:"payment_date" binding:"required,datetime=2006-01-02"`
	PaymentMethod     string   `json:"payment_method" binding:"required"`
	Notes             *string  `json:"notes"`
}

func (in PaymentCreate) Build(id string, createdAt time.Time) Payment {
	p := Payment{
		ID:                id,
		CustomerPackageID: in.CustomerPackageID,
		PaymentDate:       in.PaymentDate,
		PaymentMethod:     in.PaymentMethod,
		Notes:             in.Notes,
		CreatedAt:         createdAt,
	}
	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	return p
}
