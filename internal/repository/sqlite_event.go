package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lumicello/boothlog/internal/db"
	"github.com/lumicello/boothlog/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.BoothEvent) error {
	query := `INSERT INTO events (id, description, staff_device, seller_id, timestamp)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Description,
		e.StaffDevice,
		nullableStringValue(e.SellerID),
		e.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) ListSince(ctx context.Context, since *time.Time) ([]*domain.BoothEvent, error) {
	query := `SELECT id, description, staff_device, seller_id, timestamp FROM events`
	var args []any
	// The bound is rendered in UTC to match stored timestamps, which
	// compare as strings.
	if since != nil {
		query += ` WHERE timestamp >= ?`
		args = append(args, since.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY timestamp DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []*domain.BoothEvent
	for rows.Next() {
		var e domain.BoothEvent
		var sellerID sql.NullString
		var timestampStr string
		if err := rows.Scan(&e.ID, &e.Description, &e.StaffDevice, &sellerID, &timestampStr); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		e.SellerID = stringPtrFromNull(sellerID)
		e.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("event: %w", ErrNotFound)
	}
	return nil
}
