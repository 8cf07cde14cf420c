package contact

// OwnerDashboard is the per-user landing page summary.
type OwnerDashboard struct {
	TotalContacts        int64
	NewContactsThisMonth int64
}

// ContactWithOwner augments a contact with its owning account, for the
// cross-tenant admin listing.
type ContactWithOwner struct {
	Contact
	OwnerName  string
	OwnerEmail string
}
