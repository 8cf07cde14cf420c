package importexport

import (
	"context"
	"fmt"
)

type contactFetcher interface {
	// FetchContacts returns the owner's non-deleted contacts,
	// newest-created-first.
	FetchContacts(ctx context.Context, ownerID int64) ([]ContactRecord, error)
}

type RunExportInput struct {
	OwnerID int64
}

type RunExportOutput struct {
	Data []byte
}

type RunExport interface {
	Execute(ctx context.Context, in RunExportInput) (RunExportOutput, error)
}

type runExport struct {
	contacts contactFetcher
	codec    SpreadsheetCodec
}

func NewRunExport(contacts contactFetcher, codec SpreadsheetCodec) RunExport {
	return &runExport{contacts: contacts, codec: codec}
}

func (uc *runExport) Execute(ctx context.Context, in RunExportInput) (RunExportOutput, error) {
	records, err := uc.contacts.FetchContacts(ctx, in.OwnerID)
	if err != nil {
		return RunExportOutput{}, fmt.Errorf("%w: %v", ErrFetchContacts, err)
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.FullName,
			record.PhoneNumber,
			record.Email,
			record.Address,
			record.Notes,
		})
	}

	data, err := uc.codec.Write(ColumnTitles(), rows)
	if err != nil {
		return RunExportOutput{}, fmt.Errorf("%w: %v", ErrWriteSpreadsheet, err)
	}

	exportRuns.Inc()
	return RunExportOutput{Data: data}, nil
}
