package importexport

import (
	"context"
	"fmt"
)

// SpreadsheetCodec parses an uploaded container into rows of cell text
// and serializes a header+rows structure back to container bytes. The
// concrete format is an infrastructure concern.
type SpreadsheetCodec interface {
	ReadRows(data []byte) ([][]string, error)
	Write(header []string, rows [][]string) ([]byte, error)
}

type phoneNumberFetcher interface {
	FetchPhoneNumbers(ctx context.Context, ownerID int64) ([]string, error)
}

// contactBulkInserter must commit all records or none; the pipeline has
// no compensating rollback of its own.
type contactBulkInserter interface {
	InsertContacts(ctx context.Context, records []ContactRecord) error
}

type RunImportInput struct {
	OwnerID int64
	Data    []byte
}

type RunImportOutput struct {
	ImportedCount  int `json:"imported_count"`
	DuplicateCount int `json:"duplicate_count"`
	InvalidCount   int `json:"invalid_count"`
}

type RunImport interface {
	Execute(ctx context.Context, in RunImportInput) (RunImportOutput, error)
}

type runImport struct {
	numbers  phoneNumberFetcher
	inserter contactBulkInserter
	codec    SpreadsheetCodec
}

func NewRunImport(numbers phoneNumberFetcher, inserter contactBulkInserter, codec SpreadsheetCodec) RunImport {
	return &runImport{numbers: numbers, inserter: inserter, codec: codec}
}

// BuildOutcome folds data rows (header already stripped) through
// parse -> normalize -> dedupe. Pure; persistence is the caller's job.
func BuildOutcome(ownerID int64, existing []string, rows [][]string) ImportOutcome {
	state := newDedupState(existing)
	invalid := 0
	for _, cells := range rows {
		record, ok := ParseRow(ownerID, cells)
		if !ok {
			invalid++
			continue
		}
		state.add(record)
	}
	return ImportOutcome{
		Accepted:       state.accepted,
		DuplicateCount: state.duplicateCount,
		InvalidCount:   invalid,
	}
}

func (uc *runImport) Execute(ctx context.Context, in RunImportInput) (RunImportOutput, error) {
	rows, err := uc.codec.ReadRows(in.Data)
	if err != nil {
		return RunImportOutput{}, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	// First row is the fixed header.
	if len(rows) > 0 {
		rows = rows[1:]
	}

	existing, err := uc.numbers.FetchPhoneNumbers(ctx, in.OwnerID)
	if err != nil {
		return RunImportOutput{}, fmt.Errorf("%w: %v", ErrFetchPhoneNumbers, err)
	}

	outcome := BuildOutcome(in.OwnerID, existing, rows)

	if len(outcome.Accepted) > 0 {
		if err := uc.inserter.InsertContacts(ctx, outcome.Accepted); err != nil {
			return RunImportOutput{}, fmt.Errorf("%w: %v", ErrPersistContacts, err)
		}
	}

	importAcceptedRows.Add(len(outcome.Accepted))
	importDuplicateRows.Add(outcome.DuplicateCount)
	importInvalidRows.Add(outcome.InvalidCount)

	return RunImportOutput{
		ImportedCount:  len(outcome.Accepted),
		DuplicateCount: outcome.DuplicateCount,
		InvalidCount:   outcome.InvalidCount,
	}, nil
}
