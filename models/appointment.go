package models

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment books a customer into a session. No check is made against other
// appointments for the same instructor or time slot.
type Appointment struct {
	ID          string            `json:"id" gorm:"type:varchar(36);primaryKey"`
	CustomerID  string            `json:"customer_id" gorm:"type:varchar;not null;index"`
	PackageID   string            `json:"package_id" gorm:"type:varchar;not null;index"`
	Date        Date              `json:"date" gorm:"type:date;not null;index"`
	Time        string            `json:"time" gorm:"type:varchar;not null"` // free text, usually HH:MM
	ServiceType string            `json:"service_type" gorm:"not null"`
	Instructor  *string           `json:"instructor"`
	Status      AppointmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	Notes       *string           `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time         `json:"created_at" gorm:"not null;index"`
}

func (Appointment) TableName() string { return "appointments" }

func (a Appointment) Key() string { return a.ID }

func (a Appointment) Created() time.Time { return a.CreatedAt }

func (a Appointment) Field(column string) (interface{}, bool) {
	switch column {
	case "id":
		return a.ID, true
	case "created_at":
		return a.CreatedAt, true
	case "customer_id":
		return a.CustomerID, true
	case "package_id":
		return a.PackageID, true
	case "date":
		return a.Date, true
	case "time":
		return a.Time, true
	case "status":
		return a.Status, true
	}
	return nil, false
}

type AppointmentCreate struct {
	CustomerID  string  `json:"customer_id" binding:"required"`
	PackageID   string  `json:"package_id" binding:"required"`
	Date        Date    `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string  `json:"time" binding:"required"`
	ServiceType string  `json:"service_type" binding:"required"`
	Instructor  *string `json:"instructor"`
	Status      string  `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	Notes       *string `json:"notes"`
}

func (in AppointmentCreate) Build(id string, createdAt time.Time) Appointment {
	a := Appointment{
		ID:          id,
		CustomerID:  in.CustomerID,
		PackageID:   in.PackageID,
		Date:        in.Date,
		Time:        in.Time,
		ServiceType: in.ServiceType,
		Instructor:  in.Instructor,
		Status:      AppointmentScheduled,
		Notes:       in.Notes,
		CreatedAt:   createdAt,
	}
	if in.Status != "" {
		a.Status = AppointmentStatus(in.Status)
	}
	return a
}
