package importexport

import "errors"

var (
	ErrUnreadableFile    = errors.New("could not read file")
	ErrFetchPhoneNumbers = errors.New("failed to load existing phone numbers")
	ErrPersistContacts   = errors.New("failed to persist imported contacts")
	ErrFetchContacts     = errors.New("failed to load contacts for export")
	ErrWriteSpreadsheet  = errors.New("failed to write spreadsheet")
)
