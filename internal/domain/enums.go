package domain

type InteractionType string

const (
	InteractionWalkBy       InteractionType = "walk_by"
	InteractionConversation InteractionType = "conversation"
)

type Persona string

const (
	PersonaParent       Persona = "parent"
	PersonaGiftBuyer    Persona = "gift_buyer"
	PersonaExpat        Persona = "expat"
	PersonaFutureParent Persona = "future_parent"
)

type Hook string

const (
	HookPhysicalKits Hook = "physical_kits"
	HookBigGarden    Hook = "big_garden"
	HookSignage      Hook = "signage"
)

type SaleType string

const (
	SaleNone     SaleType = "none"
	SaleSingle   SaleType = "single"
	SaleBundle3  SaleType = "bundle_3"
	SaleFullYear SaleType = "full_year"
)

type LeadType string

const (
	LeadLine  LeadType = "line"
	LeadEmail LeadType = "email"
	LeadNone  LeadType = "none"
)

type Objection string

const (
	ObjectionTooExpensive Objection = "too_expensive"
	ObjectionHasToys      Objection = "has_toys"
	ObjectionNeedToThink  Objection = "need_to_think"
	ObjectionAgeMismatch  Objection = "age_mismatch"
	ObjectionOther        Objection = "other"
)

// Period names an aggregation window for stats queries.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodAll   Period = "all"
)

// ValidPersonas is the canonical set of accepted persona strings.
var ValidPersonas = map[Persona]bool{
	PersonaParent: true, PersonaGiftBuyer: true,
	PersonaExpat: true, PersonaFutureParent: true,
}

// ValidHooks is the canonical set of accepted hook strings.
var ValidHooks = map[Hook]bool{
	HookPhysicalKits: true, HookBigGarden: true, HookSignage: true,
}

// ValidSaleTypes is the canonical set of accepted sale type strings.
var ValidSaleTypes = map[SaleType]bool{
	SaleNone: true, SaleSingle: true, SaleBundle3: true, SaleFullYear: true,
}

// ValidLeadTypes is the canonical set of accepted lead type strings.
var ValidLeadTypes = map[LeadType]bool{
	LeadLine: true, LeadEmail: true, LeadNone: true,
}

// ValidObjections is the canonical set of accepted objection strings.
var ValidObjections = map[Objection]bool{
	ObjectionTooExpensive: true, ObjectionHasToys: true,
	ObjectionNeedToThink: true, ObjectionAgeMismatch: true,
	ObjectionOther: true,
}
