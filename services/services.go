// Package services holds the business operations behind the HTTP handlers.
package services

import (
	"fitmanager-backend/models"
	"fitmanager-backend/repositories"

	"go.uber.org/zap"
)

// Services is the set of services served by the API.
type Services struct {
	Customers        *CustomerService
	Packages         *PackageService
	CustomerPackages *CustomerPackageService
	Appointments     *AppointmentService
	Payments         *PaymentService
	Dashboard        *DashboardService
}

func New(store *repositories.Store, logger *zap.Logger, opts ...Option) *Services {
	return &Services{
		Customers: &CustomerService{
			NewCRUDService[models.Customer, models.CustomerCreate](store.Customers, "customer", logger, opts...),
		},
		Packages: &PackageService{
			NewCRUDService[models.Package, models.PackageCreate](store.Packages, "package", logger, opts...),
		},
		CustomerPackages: &CustomerPackageService{
			CRUDService: NewCRUDService[models.CustomerPackage, models.CustomerPackageCreate](store.CustomerPackages, "customer_package", logger, opts...),
			customers:   store.Customers,
		},
		Appointments: &AppointmentService{
			NewCRUDService[models.Appointment, models.AppointmentCreate](store.Appointments, "appointment", logger, opts...),
		},
		Payments: &PaymentService{
			CRUDService:      NewCRUDService[models.Payment, models.PaymentCreate](store.Payments, "payment", logger, opts...),
			customerPackages: store.CustomerPackages,
		},
		Dashboard: NewDashboardService(store, logger, opts...),
	}
}
