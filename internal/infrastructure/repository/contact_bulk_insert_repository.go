package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haanhduc/mycontact/internal/application/importexport"
)

// ContactBulkInsertRepository streams accepted import rows into the
// contacts table inside one transaction, so a failed batch leaves no
// partial state behind.
type ContactBulkInsertRepository struct {
	pool *pgxpool.Pool
}

func NewContactBulkInsertRepository(pool *pgxpool.Pool) *ContactBulkInsertRepository {
	return &ContactBulkInsertRepository{pool: pool}
}

func (r *ContactBulkInsertRepository) InsertContacts(ctx context.Context, records []importexport.ContactRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	rows := make([][]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, []any{
			record.OwnerID,
			record.FullName,
			record.PhoneNumber,
			record.Email,
			record.Address,
			record.Notes,
			false,
			now,
		})
	}

	if _, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"contacts"},
		[]string{"user_id", "full_name", "phone_number", "email", "address", "notes", "is_deleted", "created_at"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy contacts: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit bulk insert: %w", err)
	}
	return nil
}
