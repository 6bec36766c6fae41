package repository

import (
	"context"
	"errors"
	"time"

	"github.com/lumicello/boothlog/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. Callers
// match it with errors.Is.
var ErrNotFound = errors.New("not found")

// InteractionFilter narrows a browse query. Zero values mean "no constraint".
type InteractionFilter struct {
	Since     *time.Time
	Until     *time.Time
	SellerID  string
	Type      domain.InteractionType
	SalesOnly bool
	Limit     int
	Offset    int
}

// FunnelCounts is the raw per-stage tally behind the funnel diagram.
type FunnelCounts struct {
	TotalPaused int
	NotEngaged  int
	Engaged     int
	NoSale      int
	Single      int
	Bundle3     int
	FullYear    int
	Revenue     int
}

type InteractionRepo interface {
	Create(ctx context.Context, i *domain.Interaction) error
	GetByID(ctx context.Context, id string) (*domain.Interaction, error)
	List(ctx context.Context, f InteractionFilter) ([]*domain.Interaction, error)
	ListTrash(ctx context.Context) ([]*domain.Interaction, error)
	Update(ctx context.Context, i *domain.Interaction) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Purge(ctx context.Context, id string) error
	PurgeTrash(ctx context.Context) (int, error)
}

type SellerRepo interface {
	Create(ctx context.Context, s *domain.Seller) error
	GetByID(ctx context.Context, id string) (*domain.Seller, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Seller, error)
	UpdateDisplayName(ctx context.Context, id, displayName string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type StaffRepo interface {
	Upsert(ctx context.Context, s *domain.Staff) error
	GetByDevice(ctx context.Context, deviceName string) (*domain.Staff, error)
	SetActiveSeller(ctx context.Context, deviceName string, sellerID *string) error
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.BoothEvent) error
	ListSince(ctx context.Context, since *time.Time) ([]*domain.BoothEvent, error)
	Delete(ctx context.Context, id string) error
}

type StatsRepo interface {
	PeriodStats(ctx context.Context, period domain.Period, since *time.Time) (*domain.PeriodStats, error)
	FunnelCounts(ctx context.Context, since *time.Time) (*FunnelCounts, error)
	SellerStats(ctx context.Context, since *time.Time) ([]*domain.SellerStats, error)
}
