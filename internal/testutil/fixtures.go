package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/lumicello/boothlog/internal/domain"
)

// Interaction options
type InteractionOption func(*domain.Interaction)

func WithTimestamp(ts time.Time) InteractionOption {
	return func(i *domain.Interaction) {
		i.Timestamp = ts
	}
}

func WithSeller(sellerID string) InteractionOption {
	return func(i *domain.Interaction) {
		i.SellerID = &sellerID
	}
}

func WithPersona(p domain.Persona) InteractionOption {
	return func(i *domain.Interaction) {
		i.Persona = &p
	}
}

func WithHook(h domain.Hook) InteractionOption {
	return func(i *domain.Interaction) {
		i.Hook = &h
	}
}

func WithObjection(o domain.Objection) InteractionOption {
	return func(i *domain.Interaction) {
		i.Objection = &o
	}
}

func WithLead(l domain.LeadType) InteractionOption {
	return func(i *domain.Interaction) {
		i.LeadType = &l
	}
}

func WithNotes(notes string) InteractionOption {
	return func(i *domain.Interaction) {
		i.Notes = notes
	}
}

// WithSale sets the outcome fields and derives the total the way the
// submission path does.
func WithSale(st domain.SaleType, quantity, unitPrice int) InteractionOption {
	return func(i *domain.Interaction) {
		i.SaleType = &st
		if st == domain.SaleSingle {
			i.Quantity = &quantity
			i.UnitPrice = &unitPrice
		}
		total := domain.DeriveTotal(st, quantity, unitPrice)
		if st != domain.SaleNone {
			i.Total = &total
		}
	}
}

// NewTestConversation builds a minimal engaged conversation record.
func NewTestConversation(device string, opts ...InteractionOption) *domain.Interaction {
	i := &domain.Interaction{
		ID:          uuid.New().String(),
		Type:        domain.InteractionConversation,
		Engaged:     true,
		StaffDevice: device,
		Timestamp:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// NewTestWalkBy builds a walk-by record.
func NewTestWalkBy(device string, opts ...InteractionOption) *domain.Interaction {
	i := &domain.Interaction{
		ID:          uuid.New().String(),
		Type:        domain.InteractionWalkBy,
		Engaged:     false,
		StaffDevice: device,
		Timestamp:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// NewTestSeller builds a seller with an id derived from the display name.
func NewTestSeller(name string) *domain.Seller {
	return &domain.Seller{
		ID:          domain.SellerIDFromName(name),
		DisplayName: name,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
}

// NewTestStaff builds a registered logging device.
func NewTestStaff(device string) *domain.Staff {
	return &domain.Staff{
		DeviceName:  device,
		DisplayName: device,
		CreatedAt:   time.Now().UTC(),
	}
}

// NewTestEvent builds a milestone annotation.
func NewTestEvent(device, description string) *domain.BoothEvent {
	return &domain.BoothEvent{
		ID:          uuid.New().String(),
		Description: description,
		StaffDevice: device,
		Timestamp:   time.Now().UTC(),
	}
}
