package domain

import (
	"fmt"
	"time"
)

// MaxBackdateDays limits how far in the past a custom timestamp may fall.
const MaxBackdateDays = 30

// Interaction is one logged booth contact: either a walk-by (paused but did
// not engage) or a full conversation with persona, hook, outcome and lead
// fields. Pointer fields are nil for walk-bys and for branches the
// conversation did not take.
type Interaction struct {
	ID          string
	Type        InteractionType
	Engaged     bool
	StaffDevice string
	SellerID    *string

	Persona   *Persona
	Hook      *Hook
	SaleType  *SaleType
	Quantity  *int
	UnitPrice *int
	Total     *int
	LeadType  *LeadType
	Objection *Objection

	Notes     string
	Timestamp time.Time
	DeletedAt *time.Time
	UpdatedAt *time.Time
}

// IsSale reports whether the interaction closed with a paid outcome.
func (i *Interaction) IsSale() bool {
	return i.SaleType != nil && *i.SaleType != SaleNone
}

// IsDeleted reports whether the interaction is in the trash.
func (i *Interaction) IsDeleted() bool {
	return i.DeletedAt != nil
}

// Validate checks enum membership and numeric constraints on the record.
// Walk-bys must not carry conversation fields.
func (i *Interaction) Validate() error {
	switch i.Type {
	case InteractionWalkBy, InteractionConversation:
	default:
		return fmt.Errorf("invalid interaction type %q", i.Type)
	}
	if i.Type == InteractionWalkBy {
		if i.Persona != nil || i.Hook != nil || i.SaleType != nil || i.LeadType != nil || i.Objection != nil {
			return fmt.Errorf("walk_by must not carry conversation fields")
		}
		return nil
	}
	if i.Persona != nil && !ValidPersonas[*i.Persona] {
		return fmt.Errorf("invalid persona %q", *i.Persona)
	}
	if i.Hook != nil && !ValidHooks[*i.Hook] {
		return fmt.Errorf("invalid hook %q", *i.Hook)
	}
	if i.SaleType != nil && !ValidSaleTypes[*i.SaleType] {
		return fmt.Errorf("invalid sale type %q", *i.SaleType)
	}
	if i.LeadType != nil && !ValidLeadTypes[*i.LeadType] {
		return fmt.Errorf("invalid lead type %q", *i.LeadType)
	}
	if i.Objection != nil && !ValidObjections[*i.Objection] {
		return fmt.Errorf("invalid objection %q", *i.Objection)
	}
	if i.Quantity != nil && *i.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	if i.UnitPrice != nil && !ValidUnitPrice(*i.UnitPrice) {
		return fmt.Errorf("unit price must be %d or %d", PriceSale, PriceSticker)
	}
	if i.Total != nil && *i.Total < 0 {
		return fmt.Errorf("total amount cannot be negative")
	}
	return nil
}

// ValidateTimestamp rejects future timestamps and backdating beyond the limit.
func ValidateTimestamp(ts, now time.Time) error {
	if ts.After(now) {
		return fmt.Errorf("timestamp cannot be in the future")
	}
	if ts.Before(now.AddDate(0, 0, -MaxBackdateDays)) {
		return fmt.Errorf("timestamp cannot be more than %d days in the past", MaxBackdateDays)
	}
	return nil
}
