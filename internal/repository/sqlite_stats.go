package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lumicello/boothlog/internal/db"
	"github.com/lumicello/boothlog/internal/domain"
)

// SQLiteStatsRepo implements StatsRepo with aggregate queries over the
// interactions table. All queries exclude trashed rows.
type SQLiteStatsRepo struct {
	db db.DBTX
}

// NewSQLiteStatsRepo creates a new SQLiteStatsRepo.
func NewSQLiteStatsRepo(conn db.DBTX) *SQLiteStatsRepo {
	return &SQLiteStatsRepo{db: conn}
}

// sinceClause builds the shared WHERE tail for an optional period lower bound.
// The bound is rendered in UTC to match stored timestamps, which compare as
// strings.
func sinceClause(since *time.Time) (string, []any) {
	if since == nil {
		return "", nil
	}
	return " AND timestamp >= ?", []any{since.UTC().Format(time.RFC3339)}
}

func (r *SQLiteStatsRepo) PeriodStats(ctx context.Context, period domain.Period, since *time.Time) (*domain.PeriodStats, error) {
	tail, args := sinceClause(since)

	stats := &domain.PeriodStats{
		Period:     period,
		ProductMix: make(map[domain.SaleType]int),
		Personas:   make(map[domain.Persona]int),
		Hooks:      make(map[domain.Hook]int),
		Objections: make(map[domain.Objection]int),
	}

	query := `SELECT
			COUNT(*),
			COUNT(CASE WHEN interaction_type = 'conversation' THEN 1 END),
			COUNT(CASE WHEN interaction_type = 'walk_by' THEN 1 END),
			COUNT(CASE WHEN sale_type IS NOT NULL AND sale_type != 'none' THEN 1 END),
			COALESCE(SUM(total_amount), 0),
			COALESCE(SUM(CASE sale_type
				WHEN 'single' THEN COALESCE(quantity, 1)
				WHEN 'bundle_3' THEN 3
				WHEN 'full_year' THEN 12
				ELSE 0 END), 0),
			COUNT(CASE WHEN sale_type = 'single' AND unit_price = 990 THEN 1 END),
			COUNT(CASE WHEN sale_type = 'single' AND unit_price = 1290 THEN 1 END),
			COUNT(CASE WHEN lead_type = 'line' THEN 1 END),
			COUNT(CASE WHEN lead_type = 'email' THEN 1 END)
		FROM interactions WHERE deleted_at IS NULL` + tail
	row := r.db.QueryRowContext(ctx, query, args...)
	err := row.Scan(
		&stats.Visitors,
		&stats.Conversations,
		&stats.WalkBys,
		&stats.Sales.Count,
		&stats.Sales.Revenue,
		&stats.Sales.Boxes,
		&stats.Prices.Price990,
		&stats.Prices.Price1290,
		&stats.Leads.Line,
		&stats.Leads.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning period totals: %w", err)
	}
	if stats.Sales.Count > 0 {
		stats.Sales.AvgPerSale = stats.Sales.Revenue / stats.Sales.Count
	}

	if err := r.countGroups(ctx, "sale_type", tail, args, func(k string, n int) {
		stats.ProductMix[domain.SaleType(k)] = n
	}); err != nil {
		return nil, err
	}
	if err := r.countGroups(ctx, "persona", tail, args, func(k string, n int) {
		stats.Personas[domain.Persona(k)] = n
	}); err != nil {
		return nil, err
	}
	if err := r.countGroups(ctx, "hook", tail, args, func(k string, n int) {
		stats.Hooks[domain.Hook(k)] = n
	}); err != nil {
		return nil, err
	}
	if err := r.countGroups(ctx, "objection", tail, args, func(k string, n int) {
		stats.Objections[domain.Objection(k)] = n
	}); err != nil {
		return nil, err
	}

	return stats, nil
}

// countGroups tallies the non-null values of one enum column.
func (r *SQLiteStatsRepo) countGroups(ctx context.Context, column, tail string, args []any, add func(key string, n int)) error {
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM interactions
		WHERE deleted_at IS NULL AND %s IS NOT NULL%s GROUP BY %s`,
		column, column, tail, column)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("grouping by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("scanning %s group: %w", column, err)
		}
		add(key, n)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating %s groups: %w", column, err)
	}
	return nil
}

func (r *SQLiteStatsRepo) FunnelCounts(ctx context.Context, since *time.Time) (*FunnelCounts, error) {
	tail, args := sinceClause(since)

	query := `SELECT
			COUNT(*),
			COUNT(CASE WHEN interaction_type = 'walk_by' THEN 1 END),
			COUNT(CASE WHEN interaction_type = 'conversation' THEN 1 END),
			COUNT(CASE WHEN sale_type = 'none' THEN 1 END),
			COUNT(CASE WHEN sale_type = 'single' THEN 1 END),
			COUNT(CASE WHEN sale_type = 'bundle_3' THEN 1 END),
			COUNT(CASE WHEN sale_type = 'full_year' THEN 1 END),
			COALESCE(SUM(total_amount), 0)
		FROM interactions WHERE deleted_at IS NULL` + tail
	row := r.db.QueryRowContext(ctx, query, args...)

	var c FunnelCounts
	err := row.Scan(
		&c.TotalPaused, &c.NotEngaged, &c.Engaged,
		&c.NoSale, &c.Single, &c.Bundle3, &c.FullYear,
		&c.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning funnel counts: %w", err)
	}
	return &c, nil
}

func (r *SQLiteStatsRepo) SellerStats(ctx context.Context, since *time.Time) ([]*domain.SellerStats, error) {
	tail, args := sinceClause(since)

	query := `SELECT s.id, s.display_name,
			COUNT(CASE WHEN i.interaction_type = 'conversation' THEN 1 END),
			COUNT(CASE WHEN i.sale_type IS NOT NULL AND i.sale_type != 'none' THEN 1 END),
			COALESCE(SUM(i.total_amount), 0)
		FROM sellers s
		LEFT JOIN interactions i
			ON i.seller_id = s.id AND i.deleted_at IS NULL` + joinTail(tail) + `
		GROUP BY s.id, s.display_name
		ORDER BY s.display_name`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying seller stats: %w", err)
	}
	defer rows.Close()

	var stats []*domain.SellerStats
	byID := make(map[string]*domain.SellerStats)
	for rows.Next() {
		var s domain.SellerStats
		if err := rows.Scan(&s.SellerID, &s.DisplayName, &s.TotalEngaged, &s.TotalSales, &s.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scanning seller stats: %w", err)
		}
		if s.TotalEngaged > 0 {
			s.ConversionRate = float64(s.TotalSales) / float64(s.TotalEngaged)
		}
		if s.TotalSales > 0 {
			s.AvgSaleValue = s.TotalRevenue / s.TotalSales
		}
		stats = append(stats, &s)
		byID[s.SellerID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seller stats: %w", err)
	}

	if err := r.topEnumBySeller(ctx, "hook", tail, args, func(sellerID, top string) {
		if s, ok := byID[sellerID]; ok {
			h := domain.Hook(top)
			s.TopHook = &h
		}
	}); err != nil {
		return nil, err
	}
	if err := r.topEnumBySeller(ctx, "persona", tail, args, func(sellerID, top string) {
		if s, ok := byID[sellerID]; ok {
			p := domain.Persona(top)
			s.TopPersona = &p
		}
	}); err != nil {
		return nil, err
	}

	return stats, nil
}

// topEnumBySeller finds each seller's most frequent value of one enum column.
// Ties break on the value string so results stay deterministic.
func (r *SQLiteStatsRepo) topEnumBySeller(ctx context.Context, column, tail string, args []any, set func(sellerID, top string)) error {
	query := fmt.Sprintf(`SELECT seller_id, %s, COUNT(*) AS n FROM interactions
		WHERE deleted_at IS NULL AND seller_id IS NOT NULL AND %s IS NOT NULL%s
		GROUP BY seller_id, %s
		ORDER BY seller_id, n DESC, %s`,
		column, column, tail, column, column)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("grouping %s by seller: %w", column, err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	for rows.Next() {
		var sellerID, value string
		var n int
		if err := rows.Scan(&sellerID, &value, &n); err != nil {
			return fmt.Errorf("scanning %s by seller: %w", column, err)
		}
		// First row per seller wins under the ORDER BY.
		if !seen[sellerID] {
			seen[sellerID] = true
			set(sellerID, value)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating %s by seller: %w", column, err)
	}
	return nil
}

// joinTail rewrites a WHERE tail on the bare interactions table into one
// usable inside the LEFT JOIN condition.
func joinTail(tail string) string {
	if tail == "" {
		return ""
	}
	return " AND i.timestamp >= ?"
}
