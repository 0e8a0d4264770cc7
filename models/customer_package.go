package models

import (
	"time"
)

type CustomerPackageStatus string

const (
	CustomerPackageActive    CustomerPackageStatus = "active"
	CustomerPackageExpired   CustomerPackageStatus = "expired"
	CustomerPackageCancelled CustomerPackageStatus = "cancelled"
)

// CustomerPackage is one purchase of a Package by a Customer. RemainingSessions
// and Status are stored as given; nothing decrements or expires them.
type CustomerPackage struct {
	ID                string                `json:"id" gorm:"type:varchar(36);primaryKey"`
	CustomerID        string                `json:"customer_id" gorm:"type:varchar;not null;index"`
	PackageID         string                `json:"package_id" gorm:"type:varchar;not null;index"`
	PurchaseDate      Date                  `json:"purchase_date" gorm:"type:date;not null"`
	AmountPaid        float64               `json:"amount_paid" gorm:"type:numeric;not null"`
	PaymentMethod     string                `json:"payment_method" gorm:"not null"`
	Status            CustomerPackageStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	RemainingSessions *int                  `json:"remaining_sessions"`
	ExpiryDate        *Date                 `json:"expiry_date" gorm:"type:date"`
	CreatedAt         time.Time             `json:"created_at" gorm:"not null;index"`
}

func (CustomerPackage) TableName() string { return "customer_packages" }

func (cp CustomerPackage) Key() string { return cp.ID }

func (cp CustomerPackage) Created() time.Time { return cp.CreatedAt }

func (cp CustomerPackage) Field(column string) (interface{}, bool) {
	switch column {
	case "id":
		return cp.ID, true
	case "created_at":
		return cp.CreatedAt, true
	case "customer_id":
		return cp.CustomerID, true
	case "package_id":
		return cp.PackageID, true
	case "status":
		return cp.Status, true
	case "purchase_date":
		return cp.PurchaseDate, true
	}
	return nil, false
}

type CustomerPackageCreate struct {
	CustomerID        string   `json:"customer_id" binding:"required"`
	PackageID         string   `json:"package_id" binding:"required"`
	PurchaseDate      Date     `json:"purchase_date" binding:"required,datetime=2006-01-02"`
	AmountPaid        *float64 `json:"amount_paid" binding:"required"`
	PaymentMethod     string   `json:"payment_method" binding:"required"`
	Status            string   `json:"status" binding:"omitempty,oneof=active expired cancelled"`
	RemainingSessions *int     `json:"remaining_sessions"`
	ExpiryDate        *Date    `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
}

func (in CustomerPackageCreate) Build(id string, createdAt time.Time) CustomerPackage {
	cp := CustomerPackage{
		ID:                id,
		CustomerID:        in.CustomerID,
		PackageID:         in.PackageID,
		PurchaseDate:      in.PurchaseDate,
		PaymentMethod:     in.PaymentMethod,
		Status:            CustomerPackageActive,
		RemainingSessions: in.RemainingSessions,
		ExpiryDate:        in.ExpiryDate,
		CreatedAt:         createdAt,
	}
	if in.AmountPaid != nil {
		cp.AmountPaid = *in.AmountPaid
	}
	if in.Status != "" {
		cp.Status = CustomerPackageStatus(in.Status)
	}
	return cp
}
