package importexport

import "strings"

// Fixed positional layout shared by import and export.
const (
	colFullName = iota
	colPhone
	colEmail
	colAddress
	colNotes
	columnCount
)

// ColumnTitles is the export header row, in the same order ParseRow
// reads cells.
func ColumnTitles() []string {
	return []string{"Full Name", "Phone Number", "Email", "Address", "Notes"}
}

// ParseRow converts one row of cell text into a candidate record. A row
// missing a full name or a (normalized) phone number is rejected; no
// other format validation happens on the bulk path.
func ParseRow(ownerID int64, cells []string) (ContactRecord, bool) {
	padded := make([]string, columnCount)
	for i := 0; i < columnCount && i < len(cells); i++ {
		padded[i] = strings.TrimSpace(cells[i])
	}

	phone := NormalizePhone(padded[colPhone])
	if padded[colFullName] == "" || phone == "" {
		return ContactRecord{}, false
	}

	return ContactRecord{
		FullName:    padded[colFullName],
		PhoneNumber: phone,
		Email:       padded[colEmail],
		Address:     padded[colAddress],
		Notes:       padded[colNotes],
		OwnerID:     ownerID,
	}, true
}
