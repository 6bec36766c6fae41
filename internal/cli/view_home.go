package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/domain"
)

// homeLoadedMsg signals that the home ribbon data has been loaded.
type homeLoadedMsg struct {
	stats *domain.PeriodStats
	err   error
}

// walkByLoggedMsg reports the result of a quick walk-by log.
type walkByLoggedMsg struct {
	err error
}

// homeView is the landing screen: today's numbers plus one-key actions for
// logging traffic.
type homeView struct {
	state   *SharedState
	stats   *domain.PeriodStats
	loading bool
	err     error
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state, loading: true}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "conversation")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "walk-by")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timeline")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "trash")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "event")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "handoff")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *homeView) Init() tea.Cmd {
	return v.loadData()
}

func (v *homeView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		stats, err := app.Stats.PeriodStats(context.Background(), domain.PeriodToday)
		return homeLoadedMsg{stats: stats, err: err}
	}
}

func (v *homeView) logWalkBy() tea.Cmd {
	app := v.state.App
	device := v.state.DeviceName
	return func() tea.Msg {
		_, err := app.Interactions.LogWalkBy(context.Background(), device, nil)
		return walkByLoggedMsg{err: err}
	}
}

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		v.loading = false
		v.stats, v.err = msg.stats, msg.err
		return v, nil

	case walkByLoggedMsg:
		if msg.err != nil {
			return v, flashError(msg.err)
		}
		return v, tea.Batch(flash("Walk-by logged"), v.loadData())

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			return v, pushView(newFlowView(v.state))
		case "w":
			return v, v.logWalkBy()
		case "s":
			return v, pushView(newStatsView(v.state))
		case "t":
			return v, pushView(newTimelineView(v.state))
		case "x":
			return v, pushView(newTrashView(v.state))
		case "e":
			return v, v.startEventWizard()
		case "h":
			return v, v.startHandoffWizard()
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *homeView) startEventWizard() tea.Cmd {
	description := new(string)
	form := wizardEventDescription(description)
	state := v.state
	wv := newWizardView(state, "Event", form, func() tea.Cmd {
		return func() tea.Msg {
			_, err := state.App.Events.LogEvent(context.Background(), state.DeviceName, *description)
			if err != nil {
				return flashMsg{text: err.Error(), isError: true}
			}
			return flashMsg{text: "Event logged"}
		}
	})
	return pushView(wv)
}

func (v *homeView) startHandoffWizard() tea.Cmd {
	ctx := context.Background()
	sellerID := new(string)
	form := wizardSelectSeller(ctx, v.state.App, sellerID)
	if form == nil {
		return flashError(fmt.Errorf("no sellers registered; add one with 'boothlog seller add'"))
	}
	state := v.state
	wv := newWizardView(state, "Handoff", form, func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			if err := state.App.Session.SetActiveSeller(ctx, state.DeviceName, *sellerID); err != nil {
				return flashMsg{text: err.Error(), isError: true}
			}
			state.RefreshActiveSeller(ctx)
			return flashMsg{text: "Seller switched to " + state.ActiveSellerName}
		}
	})
	return pushView(wv)
}

func (v *homeView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.stats == nil {
		return ""
	}

	s := v.stats
	var b strings.Builder

	b.WriteString("\n  " + formatter.Header("Today") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s visitors   %s conversations   %s walk-bys\n",
		formatter.Dim("Traffic"),
		formatter.Bold(fmt.Sprintf("%d", s.Visitors)),
		formatter.StyleGreen.Render(fmt.Sprintf("%d", s.Conversations)),
		formatter.Dim(fmt.Sprintf("%d", s.WalkBys)),
	))
	b.WriteString(fmt.Sprintf("  %s  %s sales · %s\n",
		formatter.Dim("Sales  "),
		formatter.Bold(fmt.Sprintf("%d", s.Sales.Count)),
		formatter.StyleGreen.Render(formatter.FormatBaht(s.Sales.Revenue)),
	))
	if s.Leads.Line+s.Leads.Email > 0 {
		b.WriteString(fmt.Sprintf("  %s  %d LINE · %d email\n",
			formatter.Dim("Leads  "), s.Leads.Line, s.Leads.Email))
	}

	b.WriteString("\n")
	if v.state.ActiveSellerName == "" {
		b.WriteString("  " + formatter.StyleYellow.Render("No active seller.") +
			" " + formatter.Dim("Press 'h' to pick who is selling.") + "\n")
	}

	b.WriteString("\n  " + formatter.Dim("c") + " log conversation    " +
		formatter.Dim("w") + " log walk-by\n")

	return b.String()
}
