package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lumicello/boothlog/internal/db"
	"github.com/lumicello/boothlog/internal/domain"
)

// SQLiteStaffRepo implements StaffRepo using a SQLite database.
type SQLiteStaffRepo struct {
	db db.DBTX
}

// NewSQLiteStaffRepo creates a new SQLiteStaffRepo.
func NewSQLiteStaffRepo(conn db.DBTX) *SQLiteStaffRepo {
	return &SQLiteStaffRepo{db: conn}
}

func (r *SQLiteStaffRepo) Upsert(ctx context.Context, s *domain.Staff) error {
	query := `INSERT INTO staff (device_name, display_name, active_seller, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(device_name) DO UPDATE SET display_name = excluded.display_name`
	_, err := r.db.ExecContext(ctx, query,
		s.DeviceName,
		s.DisplayName,
		nullableStringValue(s.ActiveSeller),
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting staff device: %w", err)
	}
	return nil
}

func (r *SQLiteStaffRepo) GetByDevice(ctx context.Context, deviceName string) (*domain.Staff, error) {
	query := `SELECT device_name, display_name, active_seller, created_at
		FROM staff WHERE device_name = ?`
	row := r.db.QueryRowContext(ctx, query, deviceName)

	var s domain.Staff
	var activeSeller sql.NullString
	var createdAtStr string
	err := row.Scan(&s.DeviceName, &s.DisplayName, &activeSeller, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("staff device: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning staff device: %w", err)
	}
	s.ActiveSeller = stringPtrFromNull(activeSeller)
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}

func (r *SQLiteStaffRepo) SetActiveSeller(ctx context.Context, deviceName string, sellerID *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE staff SET active_seller = ? WHERE device_name = ?`,
		nullableStringValue(sellerID), deviceName)
	if err != nil {
		return fmt.Errorf("updating active seller: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("staff device: %w", ErrNotFound)
	}
	return nil
}
