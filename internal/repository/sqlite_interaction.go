package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lumicello/boothlog/internal/db"
	"github.com/lumicello/boothlog/internal/domain"
)

// interactionColumns is the canonical SELECT column list for interactions.
const interactionColumns = `id, interaction_type, engaged, staff_device, seller_id,
		persona, hook, sale_type, quantity, unit_price, total_amount,
		lead_type, objection, notes, timestamp, deleted_at, updated_at`

// SQLiteInteractionRepo implements InteractionRepo using a SQLite database.
type SQLiteInteractionRepo struct {
	db db.DBTX
}

// NewSQLiteInteractionRepo creates a new SQLiteInteractionRepo.
func NewSQLiteInteractionRepo(conn db.DBTX) *SQLiteInteractionRepo {
	return &SQLiteInteractionRepo{db: conn}
}

func (r *SQLiteInteractionRepo) Create(ctx context.Context, i *domain.Interaction) error {
	query := `INSERT INTO interactions (` + interactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		string(i.Type),
		boolToInt(i.Engaged),
		i.StaffDevice,
		nullableStringValue(i.SellerID),
		enumValue(i.Persona),
		enumValue(i.Hook),
		enumValue(i.SaleType),
		nullableIntToValue(i.Quantity),
		nullableIntToValue(i.UnitPrice),
		nullableIntToValue(i.Total),
		enumValue(i.LeadType),
		enumValue(i.Objection),
		i.Notes,
		i.Timestamp.UTC().Format(time.RFC3339),
		nullableTimeToString(i.DeletedAt, time.RFC3339),
		nullableTimeToString(i.UpdatedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}
	return nil
}

func (r *SQLiteInteractionRepo) GetByID(ctx context.Context, id string) (*domain.Interaction, error) {
	query := `SELECT ` + interactionColumns + ` FROM interactions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanInteraction(row)
}

func (r *SQLiteInteractionRepo) List(ctx context.Context, f InteractionFilter) ([]*domain.Interaction, error) {
	var conds []string
	var args []any

	conds = append(conds, "deleted_at IS NULL")
	// Bounds are rendered in UTC to match stored timestamps, which compare
	// as strings.
	if f.Since != nil {
		conds = append(conds, "timestamp >= ?")
		args = append(args, f.Since.UTC().Format(time.RFC3339))
	}
	if f.Until != nil {
		conds = append(conds, "timestamp < ?")
		args = append(args, f.Until.UTC().Format(time.RFC3339))
	}
	if f.SellerID != "" {
		conds = append(conds, "seller_id = ?")
		args = append(args, f.SellerID)
	}
	if f.Type != "" {
		conds = append(conds, "interaction_type = ?")
		args = append(args, string(f.Type))
	}
	if f.SalesOnly {
		conds = append(conds, "sale_type IS NOT NULL AND sale_type != 'none'")
	}

	query := `SELECT ` + interactionColumns + ` FROM interactions WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY timestamp DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing interactions: %w", err)
	}
	defer rows.Close()
	return r.scanInteractions(rows)
}

func (r *SQLiteInteractionRepo) ListTrash(ctx context.Context) ([]*domain.Interaction, error) {
	query := `SELECT ` + interactionColumns + ` FROM interactions
		WHERE deleted_at IS NOT NULL ORDER BY deleted_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing trash: %w", err)
	}
	defer rows.Close()
	return r.scanInteractions(rows)
}

func (r *SQLiteInteractionRepo) Update(ctx context.Context, i *domain.Interaction) error {
	query := `UPDATE interactions SET
		interaction_type = ?, engaged = ?, staff_device = ?, seller_id = ?,
		persona = ?, hook = ?, sale_type = ?, quantity = ?, unit_price = ?,
		total_amount = ?, lead_type = ?, objection = ?, notes = ?, timestamp = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(i.Type),
		boolToInt(i.Engaged),
		i.StaffDevice,
		nullableStringValue(i.SellerID),
		enumValue(i.Persona),
		enumValue(i.Hook),
		enumValue(i.SaleType),
		nullableIntToValue(i.Quantity),
		nullableIntToValue(i.UnitPrice),
		nullableIntToValue(i.Total),
		enumValue(i.LeadType),
		enumValue(i.Objection),
		i.Notes,
		i.Timestamp.UTC().Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating interaction: %w", err)
	}
	return r.requireRow(res, "interaction")
}

func (r *SQLiteInteractionRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE interactions SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("deleting interaction: %w", err)
	}
	return r.requireRow(res, "interaction")
}

func (r *SQLiteInteractionRepo) Restore(ctx context.Context, id string) error {
	query := `UPDATE interactions SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("restoring interaction: %w", err)
	}
	return r.requireRow(res, "interaction")
}

func (r *SQLiteInteractionRepo) Purge(ctx context.Context, id string) error {
	query := `DELETE FROM interactions WHERE id = ? AND deleted_at IS NOT NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("purging interaction: %w", err)
	}
	return r.requireRow(res, "interaction")
}

func (r *SQLiteInteractionRepo) PurgeTrash(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM interactions WHERE deleted_at IS NOT NULL`)
	if err != nil {
		return 0, fmt.Errorf("emptying trash: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged rows: %w", err)
	}
	return int(n), nil
}

// requireRow maps a zero-row write to ErrNotFound.
func (r *SQLiteInteractionRepo) requireRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

// scanInteraction scans a single interaction from a *sql.Row.
func (r *SQLiteInteractionRepo) scanInteraction(row *sql.Row) (*domain.Interaction, error) {
	var i domain.Interaction
	var engaged int
	var sellerID, persona, hook, saleType, leadType, objection sql.NullString
	var quantity, unitPrice, total sql.NullInt64
	var timestampStr string
	var deletedAt, updatedAt sql.NullString

	err := row.Scan(
		&i.ID, &i.Type, &engaged, &i.StaffDevice, &sellerID,
		&persona, &hook, &saleType, &quantity, &unitPrice, &total,
		&leadType, &objection, &i.Notes, &timestampStr, &deletedAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("interaction: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning interaction: %w", err)
	}

	return r.populateInteraction(&i, engaged, sellerID, persona, hook, saleType,
		quantity, unitPrice, total, leadType, objection, timestampStr, deletedAt, updatedAt)
}

// scanInteractions scans multiple interactions from *sql.Rows.
func (r *SQLiteInteractionRepo) scanInteractions(rows *sql.Rows) ([]*domain.Interaction, error) {
	var interactions []*domain.Interaction
	for rows.Next() {
		var i domain.Interaction
		var engaged int
		var sellerID, persona, hook, saleType, leadType, objection sql.NullString
		var quantity, unitPrice, total sql.NullInt64
		var timestampStr string
		var deletedAt, updatedAt sql.NullString

		err := rows.Scan(
			&i.ID, &i.Type, &engaged, &i.StaffDevice, &sellerID,
			&persona, &hook, &saleType, &quantity, &unitPrice, &total,
			&leadType, &objection, &i.Notes, &timestampStr, &deletedAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning interaction row: %w", err)
		}

		interaction, parseErr := r.populateInteraction(&i, engaged, sellerID, persona, hook,
			saleType, quantity, unitPrice, total, leadType, objection, timestampStr, deletedAt, updatedAt)
		if parseErr != nil {
			return nil, parseErr
		}

		interactions = append(interactions, interaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interactions: %w", err)
	}
	return interactions, nil
}

// populateInteraction fills in parsed fields after scanning raw values.
func (r *SQLiteInteractionRepo) populateInteraction(
	i *domain.Interaction,
	engaged int,
	sellerID, persona, hook, saleType sql.NullString,
	quantity, unitPrice, total sql.NullInt64,
	leadType, objection sql.NullString,
	timestampStr string,
	deletedAt, updatedAt sql.NullString,
) (*domain.Interaction, error) {
	i.Engaged = intToBool(engaged)
	i.SellerID = stringPtrFromNull(sellerID)
	i.Persona = enumPtr[domain.Persona](persona)
	i.Hook = enumPtr[domain.Hook](hook)
	i.SaleType = enumPtr[domain.SaleType](saleType)
	i.Quantity = intPtrFromNull(quantity)
	i.UnitPrice = intPtrFromNull(unitPrice)
	i.Total = intPtrFromNull(total)
	i.LeadType = enumPtr[domain.LeadType](leadType)
	i.Objection = enumPtr[domain.Objection](objection)

	var parseErr error
	i.Timestamp, parseErr = time.Parse(time.RFC3339, timestampStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing timestamp: %w", parseErr)
	}
	i.DeletedAt = parseNullableTime(deletedAt, time.RFC3339)
	i.UpdatedAt = parseNullableTime(updatedAt, time.RFC3339)

	return i, nil
}
