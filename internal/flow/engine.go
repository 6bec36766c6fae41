package flow

import (
	"fmt"

	"github.com/lumicello/boothlog/internal/domain"
)

// Engine drives one wizard session. It owns the only mutable draft for the
// session; the draft is destroyed on submit or cancel and never persisted
// partially.
type Engine struct {
	state State
}

// NewEngine starts a session at the persona step with an empty draft.
func NewEngine() *Engine {
	return &Engine{}
}

// Step returns the active step.
func (e *Engine) Step() Step { return e.state.Step }

// Draft returns a copy of the accumulated answers.
func (e *Engine) Draft() Draft { return e.state.Draft }

// Done reports whether the session reached the submitted state.
func (e *Engine) Done() bool { return e.state.Step == StepSubmitted }

// Apply feeds one answer to the session.
func (e *Engine) Apply(ev Event) error {
	next, err := Next(e.state, ev)
	if err != nil {
		return err
	}
	e.state = next
	return nil
}

// Back rewinds one step along the taken path. Returns false at the first
// step, where the caller should cancel the session instead.
func (e *Engine) Back() bool {
	prev, ok := Back(e.state)
	if !ok {
		return false
	}
	e.state = prev
	return true
}

// Record assembles the normalized conversation record once the session is
// complete. Quantity defaults to 1; unit price is only carried for single
// sales, the objection only for no-sales, and the total is derived from the
// outcome.
func (e *Engine) Record() (*domain.Interaction, error) {
	if e.state.Step != StepSubmitted {
		return nil, fmt.Errorf("flow not complete: at %s step", e.state.Step)
	}
	d := e.state.Draft

	quantity := d.Quantity
	if quantity < 1 {
		quantity = 1
	}
	persona := d.Persona
	hook := d.Hook
	saleType := d.SaleType
	leadType := d.LeadType

	rec := &domain.Interaction{
		Type:     domain.InteractionConversation,
		Engaged:  true,
		Persona:  &persona,
		Hook:     &hook,
		SaleType: &saleType,
		Quantity: &quantity,
		LeadType: &leadType,
	}
	switch saleType {
	case domain.SaleSingle:
		unitPrice := d.UnitPrice
		total := domain.DeriveTotal(saleType, quantity, unitPrice)
		rec.UnitPrice = &unitPrice
		rec.Total = &total
	case domain.SaleBundle3, domain.SaleFullYear:
		total := domain.DeriveTotal(saleType, quantity, 0)
		rec.Total = &total
	case domain.SaleNone:
		objection := d.Objection
		rec.Objection = &objection
	}
	return rec, nil
}

// WalkBy builds the single-step quick-log record for a passerby who paused
// without engaging. It bypasses the wizard entirely.
func WalkBy() *domain.Interaction {
	return &domain.Interaction{
		Type:    domain.InteractionWalkBy,
		Engaged: false,
	}
}
