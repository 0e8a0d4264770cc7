package models

// DashboardStats is the fixed summary served by the dashboard.
type DashboardStats struct {
	TotalCustomers         int64     `json:"total_customers"`
	TotalPackages          int64     `json:"total_packages"`
	TotalAppointments      int64     `json:"total_appointments"`
	ActiveCustomerPackages int64     `json:"active_customer_packages"`
	TodayAppointments      int64     `json:"today_appointments"`
	RecentPayments         []Payment `json:"recent_payments"`
}
