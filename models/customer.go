package models

import (
	"time"
)

type Customer struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	CPF          string    `json:"cpf" gorm:"column:cpf;not null"`
	Email        string    `json:"email" gorm:"not null"`
	Phone        string    `json:"phone" gorm:"not null"`
	Address      string    `json:"address" gorm:"not null"`
	BirthDate    Date      `json:"birth_date" gorm:"type:date;not null"`
	Photo        *string   `json:"photo" gorm:"type:text"` // base64 image, stored verbatim
	MedicalNotes *string   `json:"medical_notes" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;index"`
}

func (Customer) TableName() string { return "customers" }

func (c Customer) Key() string { return c.ID }

func (c Customer) Created() time.Time { return c.CreatedAt }

func (c Customer) Field(column string) (interface{}, bool) {
	switch column {
	case "id":
		return c.ID, true
	case "created_at":
		return c.CreatedAt, true
	case "name":
		return c.Name, true
	case "cpf":
		return c.CPF, true
	case "email":
		return c.Email, true
	case "birth_date":
		return c.BirthDate, true
	}
	return nil, false
}

// CustomerCreate is the client-supplied shape for creating or replacing a customer.
type CustomerCreate struct {
	Name         string  `json:"name" binding:"required"`
	CPF          string  `json:"cpf" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	BirthDate    Date    `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Photo        *string `json:"photo"`
	MedicalNotes *string `json:"medical_notes"`
}

func (in CustomerCreate) Build(id string, createdAt time.Time) Customer {
	return Customer{
		ID:           id,
		Name:         in.Name,
		CPF:          in.CPF,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		BirthDate:    in.BirthDate,
		Photo:        in.Photo,
		MedicalNotes: in.MedicalNotes,
		CreatedAt:    createdAt,
	}
}
