package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/service"
)

type timelineLoadedMsg struct {
	entries []service.TimelineEntry
	err     error
}

// timelineView is the scrollable merged feed of interactions and booth
// events, newest first.
type timelineView struct {
	state *SharedState
	vp    viewport.Model
	ready bool

	entries []service.TimelineEntry
	loading bool
	err     error
}

func newTimelineView(state *SharedState) *timelineView {
	return &timelineView{state: state, loading: true}
}

func (v *timelineView) ID() ViewID    { return ViewTimeline }
func (v *timelineView) Title() string { return "Timeline" }

func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "period")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *timelineView) Init() tea.Cmd {
	return v.loadData()
}

func (v *timelineView) loadData() tea.Cmd {
	app := v.state.App
	period := v.state.Period
	return func() tea.Msg {
		entries, err := app.Events.Timeline(context.Background(), period)
		return timelineLoadedMsg{entries: entries, err: err}
	}
}

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timelineLoadedMsg:
		v.loading = false
		v.entries, v.err = msg.entries, msg.err
		v.syncViewport()
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.WindowSizeMsg:
		v.syncViewport()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			switch v.state.Period {
			case domain.PeriodToday:
				v.state.Period = domain.PeriodWeek
			case domain.PeriodWeek:
				v.state.Period = domain.PeriodAll
			default:
				v.state.Period = domain.PeriodToday
			}
			v.loading = true
			return v, v.loadData()
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}

	if v.ready {
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *timelineView) syncViewport() {
	width := v.state.Width
	if width <= 0 {
		width = 80
	}
	height := v.state.ContentHeight()

	if !v.ready {
		v.vp = viewport.New(width, height)
		v.ready = true
	} else {
		v.vp.Width = width
		v.vp.Height = height
	}
	v.vp.SetContent(v.renderContent())
}

func (v *timelineView) renderContent() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.entries) == 0 {
		return "\n  " + formatter.Dim("Nothing logged in this period.")
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(periodTitle(v.state.Period)) + "\n\n")

	lastDay := ""
	for _, e := range v.entries {
		day := e.Timestamp.Local().Format("Mon 2 Jan")
		if day != lastDay {
			if lastDay != "" {
				b.WriteString("\n")
			}
			b.WriteString("  " + formatter.Bold(day) + "\n")
			lastDay = day
		}
		switch {
		case e.Interaction != nil:
			b.WriteString("  " + formatter.FormatInteractionLine(e.Interaction) + "\n")
		case e.Event != nil:
			b.WriteString("  " + formatter.FormatEventLine(e.Event) + "\n")
		}
	}
	return b.String()
}

func (v *timelineView) View() string {
	if !v.ready {
		return v.renderContent()
	}
	return v.vp.View()
}
