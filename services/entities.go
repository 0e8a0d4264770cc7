package services

import (
	"context"
	"fmt"

	"fitmanager-backend/models"
	"fitmanager-backend/repositories"
)

type CustomerService struct {
	*CRUDService[models.Customer, models.CustomerCreate]
}

type PackageService struct {
	*CRUDService[models.Package, models.PackageCreate]
}

type CustomerPackageService struct {
	*CRUDService[models.CustomerPackage, models.CustomerPackageCreate]
	customers repositories.Repository[models.Customer]
}

// ListByCustomer returns the purchases of one customer in creation order. The
// customer itself must exist.
func (s *CustomerPackageService) ListByCustomer(ctx context.Context, customerID string) ([]models.CustomerPackage, error) {
	if _, err := s.customers.Get(ctx, customerID); err != nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, err)
	}
	return s.list(ctx, repositories.Where("customer_id", customerID))
}

type AppointmentService struct {
	*CRUDService[models.Appointment, models.AppointmentCreate]
}

// ListByDate returns the appointments booked on exactly date.
func (s *AppointmentService) ListByDate(ctx context.Context, date models.Date) ([]models.Appointment, error) {
	return s.list(ctx, repositories.Where("date", date))
}

type PaymentService struct {
	*CRUDService[models.Payment, models.PaymentCreate]
	customerPackages repositories.Repository[models.CustomerPackage]
}

func (s *PaymentService) ListByCustomerPackage(ctx context.Context, customerPackageID string) ([]models.Payment, error) {
	if _, err := s.customerPackages.Get(ctx, customerPackageID); err != nil {
		return nil, fmt.Errorf("customer_package %s: %w", customerPackageID, err)
	}
	return s.list(ctx, repositories.Where("customer_package_id", customerPackageID))
}
