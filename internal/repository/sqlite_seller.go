package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lumicello/boothlog/internal/db"
	"github.com/lumicello/boothlog/internal/domain"
)

// SQLiteSellerRepo implements SellerRepo using a SQLite database.
type SQLiteSellerRepo struct {
	db db.DBTX
}

// NewSQLiteSellerRepo creates a new SQLiteSellerRepo.
func NewSQLiteSellerRepo(conn db.DBTX) *SQLiteSellerRepo {
	return &SQLiteSellerRepo{db: conn}
}

func (r *SQLiteSellerRepo) Create(ctx context.Context, s *domain.Seller) error {
	query := `INSERT INTO sellers (id, display_name, is_active, created_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.DisplayName,
		boolToInt(s.IsActive),
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting seller: %w", err)
	}
	return nil
}

func (r *SQLiteSellerRepo) GetByID(ctx context.Context, id string) (*domain.Seller, error) {
	query := `SELECT id, display_name, is_active, created_at FROM sellers WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Seller
	var isActive int
	var createdAtStr string
	err := row.Scan(&s.ID, &s.DisplayName, &isActive, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("seller: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning seller: %w", err)
	}
	s.IsActive = intToBool(isActive)
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSellerRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Seller, error) {
	query := `SELECT id, display_name, is_active, created_at FROM sellers`
	if !includeInactive {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY display_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sellers: %w", err)
	}
	defer rows.Close()

	var sellers []*domain.Seller
	for rows.Next() {
		var s domain.Seller
		var isActive int
		var createdAtStr string
		if err := rows.Scan(&s.ID, &s.DisplayName, &isActive, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning seller row: %w", err)
		}
		s.IsActive = intToBool(isActive)
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		sellers = append(sellers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sellers: %w", err)
	}
	return sellers, nil
}

func (r *SQLiteSellerRepo) UpdateDisplayName(ctx context.Context, id, displayName string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sellers SET display_name = ? WHERE id = ?`, displayName, id)
	if err != nil {
		return fmt.Errorf("renaming seller: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("seller: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteSellerRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sellers SET is_active = ? WHERE id = ?`, boolToInt(active), id)
	if err != nil {
		return fmt.Errorf("updating seller: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("seller: %w", ErrNotFound)
	}
	return nil
}
