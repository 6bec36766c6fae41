// Package flow implements the branching conversation-capture wizard as a
// pure state machine: a tagged step type, a draft accumulator, and
// transition functions with no rendering dependency.
package flow

import (
	"fmt"

	"github.com/lumicello/boothlog/internal/domain"
)

// Step identifies the active wizard state.
type Step int

const (
	StepPersona Step = iota
	StepHook
	StepOutcome
	StepObjection
	StepQuantity
	StepLead
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepPersona:
		return "persona"
	case StepHook:
		return "hook"
	case StepOutcome:
		return "outcome"
	case StepObjection:
		return "objection"
	case StepQuantity:
		return "quantity"
	case StepLead:
		return "lead"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Draft accumulates answers as the wizard advances. Zero values mean unset.
type Draft struct {
	Persona   domain.Persona
	Hook      domain.Hook
	SaleType  domain.SaleType
	Quantity  int
	UnitPrice int
	Objection domain.Objection
	LeadType  domain.LeadType

	// Set distinguishes a chosen SaleType/LeadType from their zero values,
	// since "none" is a legal choice for both.
	SaleTypeSet bool
	LeadTypeSet bool
}

// State is one point in a wizard session: the active step plus the draft.
type State struct {
	Step  Step
	Draft Draft
}

// Event is one user answer fed to the transition function.
type Event interface{ isEvent() }

type ChoosePersona struct{ Persona domain.Persona }
type ChooseHook struct{ Hook domain.Hook }
type ChooseOutcome struct{ SaleType domain.SaleType }
type ChooseObjection struct{ Objection domain.Objection }
type EnterQuantity struct{ Quantity, UnitPrice int }
type ChooseLead struct{ LeadType domain.LeadType }

func (ChoosePersona) isEvent()   {}
func (ChooseHook) isEvent()      {}
func (ChooseOutcome) isEvent()   {}
func (ChooseObjection) isEvent() {}
func (EnterQuantity) isEvent()   {}
func (ChooseLead) isEvent()      {}

// Next applies one event to a state and returns the successor state.
// Events arriving at the wrong step are rejected; guards reject values
// outside the allowed enums or ranges.
func Next(s State, ev Event) (State, error) {
	switch ev := ev.(type) {
	case ChoosePersona:
		if s.Step != StepPersona {
			return s, stepError(s.Step, "persona")
		}
		if !domain.ValidPersonas[ev.Persona] {
			return s, fmt.Errorf("invalid persona %q", ev.Persona)
		}
		s.Draft.Persona = ev.Persona
		s.Step = StepHook
		return s, nil

	case ChooseHook:
		if s.Step != StepHook {
			return s, stepError(s.Step, "hook")
		}
		if !domain.ValidHooks[ev.Hook] {
			return s, fmt.Errorf("invalid hook %q", ev.Hook)
		}
		s.Draft.Hook = ev.Hook
		s.Step = StepOutcome
		return s, nil

	case ChooseOutcome:
		if s.Step != StepOutcome {
			return s, stepError(s.Step, "outcome")
		}
		if !domain.ValidSaleTypes[ev.SaleType] {
			return s, fmt.Errorf("invalid sale type %q", ev.SaleType)
		}
		// Re-choosing the outcome abandons any previously entered branch
		// fields so untaken branches never leak into the record.
		s.Draft.SaleType = ev.SaleType
		s.Draft.SaleTypeSet = true
		s.Draft.Quantity = 0
		s.Draft.UnitPrice = 0
		s.Draft.Objection = ""
		s.Draft.LeadType = ""
		s.Draft.LeadTypeSet = false
		switch ev.SaleType {
		case domain.SaleNone:
			s.Step = StepObjection
		case domain.SaleSingle:
			s.Step = StepQuantity
		default: // bundle_3, full_year: price is fixed, skip straight to lead
			s.Step = StepLead
		}
		return s, nil

	case ChooseObjection:
		if s.Step != StepObjection {
			return s, stepError(s.Step, "objection")
		}
		if !domain.ValidObjections[ev.Objection] {
			return s, fmt.Errorf("invalid objection %q", ev.Objection)
		}
		s.Draft.Objection = ev.Objection
		s.Step = StepLead
		return s, nil

	case EnterQuantity:
		if s.Step != StepQuantity {
			return s, stepError(s.Step, "quantity")
		}
		if ev.Quantity < 1 {
			return s, fmt.Errorf("quantity must be at least 1")
		}
		if !domain.ValidUnitPrice(ev.UnitPrice) {
			return s, fmt.Errorf("unit price must be %d or %d", domain.PriceSale, domain.PriceSticker)
		}
		s.Draft.Quantity = ev.Quantity
		s.Draft.UnitPrice = ev.UnitPrice
		s.Step = StepLead
		return s, nil

	case ChooseLead:
		if s.Step != StepLead {
			return s, stepError(s.Step, "lead")
		}
		if !domain.ValidLeadTypes[ev.LeadType] {
			return s, fmt.Errorf("invalid lead type %q", ev.LeadType)
		}
		s.Draft.LeadType = ev.LeadType
		s.Draft.LeadTypeSet = true
		s.Step = StepSubmitted
		return s, nil

	default:
		return s, fmt.Errorf("unknown event %T", ev)
	}
}

// Back returns the state one step earlier along the path actually taken.
// From the lead step the predecessor depends on the chosen outcome. The
// second return is false at the first step, where backing out means
// cancelling the whole flow.
func Back(s State) (State, bool) {
	switch s.Step {
	case StepHook:
		s.Step = StepPersona
	case StepOutcome:
		s.Step = StepHook
	case StepObjection, StepQuantity:
		s.Step = StepOutcome
	case StepLead:
		switch s.Draft.SaleType {
		case domain.SaleNone:
			s.Step = StepObjection
		case domain.SaleSingle:
			s.Step = StepQuantity
		default:
			s.Step = StepOutcome
		}
	case StepSubmitted:
		// Rewinding a completed but unsubmitted session, e.g. after a
		// failed save, lands back on the lead step.
		s.Step = StepLead
	default:
		return s, false
	}
	return s, true
}

func stepError(at Step, want string) error {
	return fmt.Errorf("%s answer not accepted at %s step", want, at)
}
