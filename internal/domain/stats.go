package domain

// DashboardStats counters shown on the admin dashboard
type DashboardStats struct {
	TodayBookings   int `json:"today_bookings"`
	PendingBookings int `json:"pending_bookings"`
	UnreadMessages  int `json:"unread_messages"`
	MonthlyBookings int `json:"monthly_bookings"`
}
