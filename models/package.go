package models

import (
	"time"
)

// Known package types. Type is stored as free text and is not restricted to these.
const (
	PackageTypeMonthly    = "monthly"
	PackageTypePerSession = "per_session"
	PackageTypeProcedure  = "procedure"
)

type Package struct {
	ID          string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Type        string  `json:"type" gorm:"not null"`
	Price       float64 `json:"price" gorm:"type:numeric;not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	// DurationDays only applies to monthly packages.
	DurationDays *int `json:"duration_days"`
	// SessionsIncluded only applies to per_session and procedure packages.
	SessionsIncluded *int      `json:"sessions_included"`
	CreatedAt        time.Time `json:"created_at" gorm:"not null;index"`
}

func (Package) TableName() string { return "packages" }

func (p Package) Key() string { return p.ID }

func (p Package) Created() time.Time { return p.CreatedAt }

func (p Package) Field(column string) (interface{}, bool) {
	switch column {
	case "id":
		return p.ID, true
	case "created_at":
		return p.CreatedAt, true
	case "name":
		return p.Name, true
	case "type":
		return p.Type, true
	case "price":
		return p.Price, true
	}
	return nil, false
}

type PackageCreate struct {
	Name             string   `json:"name" binding:"required"`
	Type             string   `json:"type" binding:"required"`
	Price            *float64 `json:"price" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	DurationDays     *int     `json:"duration_days"`
	SessionsIncluded *int     `json:"sessions_included"`
}

func (in PackageCreate) Build(id string, createdAt time.Time) Package {
	p := Package{
		ID:               id,
		Name:             in.Name,
		Type:             in.Type,
		Description:      in.Description,
		DurationDays:     in.DurationDays,
		SessionsIncluded: in.SessionsIncluded,
		CreatedAt:        createdAt,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	return p
}
