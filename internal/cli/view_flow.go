package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/flow"
	"github.com/lumicello/boothlog/internal/service"
)

// conversationLoggedMsg reports the submission outcome of a finished flow.
type conversationLoggedMsg struct {
	rec *domain.Interaction
	err error
}

// flowView walks one conversation through the branching capture wizard.
// Each step is rendered as a small huh form; escape rewinds along the path
// actually taken and cancels from the first step.
type flowView struct {
	state  *SharedState
	engine *flow.Engine
	form   *huh.Form

	// Form-bound values for the active step.
	choice   string
	qtyStr   string
	priceStr string

	submitting bool
}

func newFlowView(state *SharedState) *flowView {
	v := &flowView{
		state:  state,
		engine: flow.NewEngine(),
	}
	v.buildForm()
	return v
}

func (v *flowView) ID() ViewID    { return ViewFlow }
func (v *flowView) Title() string { return "Conversation" }

func (v *flowView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *flowView) Init() tea.Cmd {
	if v.form != nil {
		return v.form.Init()
	}
	return nil
}

// buildForm constructs the huh form for the engine's current step, seeding
// defaults from the draft so rewinding shows the previous answer.
func (v *flowView) buildForm() {
	d := v.engine.Draft()

	switch v.engine.Step() {
	case flow.StepPersona:
		v.choice = string(d.Persona)
		v.form = selectForm("Who stopped by?", v.personaOptions(), &v.choice)

	case flow.StepHook:
		v.choice = string(d.Hook)
		v.form = selectForm("What caught their eye?", v.hookOptions(), &v.choice)

	case flow.StepOutcome:
		v.choice = ""
		if d.SaleTypeSet {
			v.choice = string(d.SaleType)
		}
		v.form = selectForm("How did it end?", v.outcomeOptions(), &v.choice)

	case flow.StepObjection:
		v.choice = string(d.Objection)
		v.form = selectForm("Why no sale?", v.objectionOptions(), &v.choice)

	case flow.StepQuantity:
		v.qtyStr = "1"
		if d.Quantity > 0 {
			v.qtyStr = strconv.Itoa(d.Quantity)
		}
		v.priceStr = strconv.Itoa(domain.PriceSale)
		if d.UnitPrice > 0 {
			v.priceStr = strconv.Itoa(d.UnitPrice)
		}
		v.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("How many boxes?").
					Value(&v.qtyStr).
					Validate(func(s string) error {
						n, err := strconv.Atoi(s)
						if err != nil || n < 1 {
							return fmt.Errorf("enter a number of 1 or more")
						}
						return nil
					}),
				huh.NewSelect[string]().
					Title("At which price?").
					Options(
						huh.NewOption(formatter.FormatBaht(domain.PriceSale)+" (discount)", strconv.Itoa(domain.PriceSale)),
						huh.NewOption(formatter.FormatBaht(domain.PriceSticker)+" (sticker)", strconv.Itoa(domain.PriceSticker)),
					).
					Value(&v.priceStr),
			),
		).WithTheme(boothHuhTheme()).WithShowHelp(false)

	case flow.StepLead:
		v.choice = ""
		if d.LeadTypeSet {
			v.choice = string(d.LeadType)
		}
		v.form = selectForm("Any follow-up channel?", v.leadOptions(), &v.choice)

	default:
		v.form = nil
	}
}

func selectForm(title string, options []huh.Option[string], value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(value),
		),
	).WithTheme(boothHuhTheme()).WithShowHelp(false)
}

func (v *flowView) personaOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Parent", string(domain.PersonaParent)),
		huh.NewOption("Gift buyer", string(domain.PersonaGiftBuyer)),
		huh.NewOption("Expat", string(domain.PersonaExpat)),
		huh.NewOption("Future parent", string(domain.PersonaFutureParent)),
	}
}

func (v *flowView) hookOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Physical kits", string(domain.HookPhysicalKits)),
		huh.NewOption("Big garden", string(domain.HookBigGarden)),
		huh.NewOption("Signage", string(domain.HookSignage)),
	}
}

func (v *flowView) outcomeOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("No sale", string(domain.SaleNone)),
		huh.NewOption("Single box", string(domain.SaleSingle)),
		huh.NewOption("3-box bundle "+formatter.FormatBaht(domain.PriceBundle3), string(domain.SaleBundle3)),
		huh.NewOption("Full year "+formatter.FormatBaht(domain.PriceYear), string(domain.SaleFullYear)),
	}
}

func (v *flowView) objectionOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Too expensive", string(domain.ObjectionTooExpensive)),
		huh.NewOption("Already has toys", string(domain.ObjectionHasToys)),
		huh.NewOption("Needs to think", string(domain.ObjectionNeedToThink)),
		huh.NewOption("Age mismatch", string(domain.ObjectionAgeMismatch)),
		huh.NewOption("Other", string(domain.ObjectionOther)),
	}
}

func (v *flowView) leadOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("LINE", string(domain.LeadLine)),
		huh.NewOption("Email", string(domain.LeadEmail)),
		huh.NewOption("No lead", string(domain.LeadNone)),
	}
}

// stepEvent translates the completed form's values into the engine event for
// the active step.
func (v *flowView) stepEvent() (flow.Event, error) {
	switch v.engine.Step() {
	case flow.StepPersona:
		return flow.ChoosePersona{Persona: domain.Persona(v.choice)}, nil
	case flow.StepHook:
		return flow.ChooseHook{Hook: domain.Hook(v.choice)}, nil
	case flow.StepOutcome:
		return flow.ChooseOutcome{SaleType: domain.SaleType(v.choice)}, nil
	case flow.StepObjection:
		return flow.ChooseObjection{Objection: domain.Objection(v.choice)}, nil
	case flow.StepQuantity:
		qty, err := strconv.Atoi(v.qtyStr)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q", v.qtyStr)
		}
		price, err := strconv.Atoi(v.priceStr)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q", v.priceStr)
		}
		return flow.EnterQuantity{Quantity: qty, UnitPrice: price}, nil
	case flow.StepLead:
		return flow.ChooseLead{LeadType: domain.LeadType(v.choice)}, nil
	default:
		return nil, fmt.Errorf("no event for %s step", v.engine.Step())
	}
}

func (v *flowView) submit() tea.Cmd {
	d := v.engine.Draft()
	app := v.state.App
	device := v.state.DeviceName

	in := service.ConversationInput{
		StaffDevice: device,
		Persona:     d.Persona,
		Hook:        d.Hook,
		SaleType:    d.SaleType,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
	}
	if d.SaleType == domain.SaleNone {
		objection := d.Objection
		in.Objection = &objection
	}
	if d.LeadTypeSet {
		leadType := d.LeadType
		in.LeadType = &leadType
	}

	return func() tea.Msg {
		rec, err := app.Interactions.LogConversation(context.Background(), in)
		return conversationLoggedMsg{rec: rec, err: err}
	}
}

func (v *flowView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case conversationLoggedMsg:
		v.submitting = false
		if msg.err != nil {
			// Keep the draft so the user can retry or back out of it.
			v.form = nil
			return v, flashError(msg.err)
		}
		banner := flash("Logged: no sale")
		if msg.rec.IsSale() && msg.rec.Total != nil {
			banner = flashSale("Logged: " + formatter.SaleTypeLabel(*msg.rec.SaleType) + " · " + formatter.FormatBaht(*msg.rec.Total))
		}
		return v, tea.Batch(popView(), refreshViews(), banner)

	case tea.KeyMsg:
		if v.submitting {
			return v, nil
		}
		if msg.Type == tea.KeyEsc {
			if v.engine.Back() {
				v.buildForm()
				return v, v.form.Init()
			}
			return v, popView()
		}
		if msg.Type == tea.KeyEnter && v.engine.Done() && v.form == nil {
			v.submitting = true
			return v, v.submit()
		}
	}

	if v.form == nil || v.submitting {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		ev, err := v.stepEvent()
		if err != nil {
			return v, flashError(err)
		}
		if err := v.engine.Apply(ev); err != nil {
			return v, flashError(err)
		}
		if v.engine.Done() {
			v.submitting = true
			return v, tea.Batch(cmd, v.submit())
		}
		v.buildForm()
		return v, tea.Batch(cmd, v.form.Init())
	}

	return v, cmd
}

func (v *flowView) View() string {
	if v.submitting {
		return "\n  " + formatter.Dim("Saving...")
	}
	if v.form == nil {
		if v.engine.Done() {
			return "\n" + v.renderBreadcrumb() + "\n\n  " +
				formatter.StyleRed.Render("Could not save.") + " " +
				formatter.Dim("Press enter to retry or esc to go back.")
		}
		return ""
	}
	return "\n" + v.renderBreadcrumb() + "\n" + v.form.View()
}

// renderBreadcrumb shows the answers accumulated so far.
func (v *flowView) renderBreadcrumb() string {
	d := v.engine.Draft()
	var parts []string
	if d.Persona != "" {
		parts = append(parts, formatter.PersonaLabel(d.Persona))
	}
	if d.Hook != "" {
		parts = append(parts, formatter.HookLabel(d.Hook))
	}
	if d.SaleTypeSet {
		parts = append(parts, formatter.SaleTypeLabel(d.SaleType))
	}
	if len(parts) == 0 {
		return "  " + formatter.Dim("New conversation")
	}
	out := "  "
	for i, p := range parts {
		if i > 0 {
			out += formatter.Dim(" › ")
		}
		out += formatter.StyleGreen.Render(p)
	}
	return out
}
