package user

// AdminDashboard aggregates system-wide account counts. Admin accounts
// are excluded from every user figure.
type AdminDashboard struct {
	TotalUsers    int64
	TotalContacts int64
	NewUsersToday int64
	ActiveUsers   int64
	InactiveUsers int64
}

// AccountSummary is a user row in the admin listing.
type AccountSummary struct {
	User
	TotalContacts int64
}
