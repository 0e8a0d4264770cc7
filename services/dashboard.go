package services

import (
	"context"
	"fmt"
	"time"

	"fitmanager-backend/models"
	"fitmanager-backend/repositories"

	"go.uber.org/zap"
)

const recentPaymentsLimit = 5

// DashboardService aggregates read-only counters across all stores. Nothing
// is cached; every call queries the repositories again.
type DashboardService struct {
	store  *repositories.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewDashboardService(store *repositories.Store, logger *zap.Logger, opts ...Option) *DashboardService {
	o := buildOptions(opts)
	return &DashboardService{store: store, logger: logger, now: o.now}
}

func (s *DashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	var err error

	if stats.TotalCustomers, err = s.store.Customers.Count(ctx, repositories.Query{}); err != nil {
		return stats, s.fail("total_customers", err)
	}
	if stats.TotalPackages, err = s.store.Packages.Count(ctx, repositories.Query{}); err != nil {
		return stats, s.fail("total_packages", err)
	}
	if stats.TotalAppointments, err = s.store.Appointments.Count(ctx, repositories.Query{}); err != nil {
		return stats, s.fail("total_appointments", err)
	}

	active := repositories.Where("status", models.CustomerPackageActive)
	if stats.ActiveCustomerPackages, err = s.store.CustomerPackages.Count(ctx, active); err != nil {
		return stats, s.fail("active_customer_packages", err)
	}

	// server-local calendar date
	today := repositories.Where("date", models.NewDate(s.now()))
	if stats.TodayAppointments, err = s.store.Appointments.Count(ctx, today); err != nil {
		return stats, s.fail("today_appointments", err)
	}

	recent := repositories.Query{}.Desc("payment_date").Asc("id").Take(recentPaymentsLimit)
	if stats.RecentPayments, err = s.store.Payments.List(ctx, recent); err != nil {
		return stats, s.fail("recent_payments", err)
	}
	if stats.RecentPayments == nil {
		stats.RecentPayments = []models.Payment{}
	}
	return stats, nil
}

func (s *DashboardService) fail(counter string, err error) error {
	s.logger.Error("Failed to compute dashboard counter", zap.String("counter", counter), zap.Error(err))
	return fmt.Errorf("dashboard %s: %w", counter, err)
}
