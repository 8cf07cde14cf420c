package importexport

// ContactRecord is the pipeline-internal shape of one contact. It is
// built either from a spreadsheet row or from storage, and is not
// mutated after construction.
type ContactRecord struct {
	FullName    string
	PhoneNumber string
	Email       string
	Address     string
	Notes       string
	OwnerID     int64
}

// ImportOutcome summarizes one import run. Accepted holds the net-new
// records in first-seen order; rejected and duplicate rows are only
// counted.
type ImportOutcome struct {
	Accepted       []ContactRecord
	DuplicateCount int
	InvalidCount   int
}
