package service

import (
	"context"
	"time"

	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/funnel"
	"github.com/lumicello/boothlog/internal/repository"
)

// ConversationInput carries the wizard answers plus logging context for one
// submission.
type ConversationInput struct {
	StaffDevice string
	Persona     domain.Persona
	Hook        domain.Hook
	SaleType    domain.SaleType
	Quantity    int
	UnitPrice   int
	Objection   *domain.Objection
	LeadType    *domain.LeadType
	Notes       string
	Timestamp   *time.Time // nil means now
}

type InteractionService interface {
	LogConversation(ctx context.Context, in ConversationInput) (*domain.Interaction, error)
	LogWalkBy(ctx context.Context, staffDevice string, at *time.Time) (*domain.Interaction, error)
	GetByID(ctx context.Context, id string) (*domain.Interaction, error)
	Browse(ctx context.Context, f repository.InteractionFilter) ([]*domain.Interaction, error)
	UpdateNotes(ctx context.Context, id, notes string) error
	Trash(ctx context.Context, id string) error
	ListTrash(ctx context.Context) ([]*domain.Interaction, error)
	Restore(ctx context.Context, id string) error
	Purge(ctx context.Context, id string) error
	EmptyTrash(ctx context.Context) (int, error)
}

type StatsService interface {
	PeriodStats(ctx context.Context, period domain.Period) (*domain.PeriodStats, error)
	SellerStats(ctx context.Context, period domain.Period) ([]*domain.SellerStats, error)
}

type FunnelService interface {
	Metrics(ctx context.Context, period domain.Period) (*funnel.Metrics, error)
}

type SellerService interface {
	Add(ctx context.Context, displayName string) (*domain.Seller, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Seller, error)
	Rename(ctx context.Context, id, displayName string) error
	Deactivate(ctx context.Context, id string) error
}

type SessionService interface {
	RegisterDevice(ctx context.Context, deviceName, displayName string) (*domain.Staff, error)
	SetActiveSeller(ctx context.Context, deviceName, sellerID string) error
	ClearActiveSeller(ctx context.Context, deviceName string) error
	ActiveSeller(ctx context.Context, deviceName string) (*domain.Seller, error)
}

// TimelineEntry is one row of the merged activity feed: either a logged
// interaction or a milestone event.
type TimelineEntry struct {
	Timestamp   time.Time
	Interaction *domain.Interaction
	Event       *domain.BoothEvent
}

type EventService interface {
	LogEvent(ctx context.Context, staffDevice, description string) (*domain.BoothEvent, error)
	Timeline(ctx context.Context, period domain.Period) ([]TimelineEntry, error)
	Delete(ctx context.Context, id string) error
}
