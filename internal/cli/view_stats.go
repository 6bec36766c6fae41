package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/funnel"
)

type statsLoadedMsg struct {
	stats   *domain.PeriodStats
	sellers []*domain.SellerStats
	metrics *funnel.Metrics
	err     error
}

// statsView shows period stats, the conversion funnel, and the seller
// leaderboard in a scrollable viewport.
type statsView struct {
	state *SharedState
	vp    viewport.Model
	ready bool

	stats   *domain.PeriodStats
	sellers []*domain.SellerStats
	metrics *funnel.Metrics
	loading bool
	err     error

	showSellers bool
}

func newStatsView(state *SharedState) *statsView {
	return &statsView{state: state, loading: true}
}

func (v *statsView) ID() ViewID    { return ViewStats }
func (v *statsView) Title() string { return "Stats" }

func (v *statsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "period")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "leaderboard")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *statsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *statsView) loadData() tea.Cmd {
	app := v.state.App
	period := v.state.Period
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := app.Stats.PeriodStats(ctx, period)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		sellers, err := app.Stats.SellerStats(ctx, period)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		metrics, err := app.Funnel.Metrics(ctx, period)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		return statsLoadedMsg{stats: stats, sellers: sellers, metrics: metrics}
	}
}

func (v *statsView) cyclePeriod() {
	switch v.state.Period {
	case domain.PeriodToday:
		v.state.Period = domain.PeriodWeek
	case domain.PeriodWeek:
		v.state.Period = domain.PeriodAll
	default:
		v.state.Period = domain.PeriodToday
	}
}

func (v *statsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.stats, v.sellers, v.metrics = msg.stats, msg.sellers, msg.metrics
		}
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
			v.cyclePeriod()
			v.loading = true
			return v, v.loadData()
		case "l":
			v.showSellers = !v.showSellers
			v.syncViewport()
			return v, nil
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

// syncViewport resizes the viewport to the current terminal and re-renders
// the content into it.
func (v *statsView) syncViewport() {
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
	v.vp.SetContent(v.renderContent(width))
}

func (v *statsView) renderContent(width int) string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.stats == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatPeriodStats(v.stats))

	if v.metrics != nil {
		b.WriteString("\n  " + formatter.Header("Funnel") + "\n\n")
		b.WriteString(v.renderFunnel(width))
	}

	if v.showSellers {
		b.WriteString("\n")
		b.WriteString(formatter.FormatSellerStats(v.sellers))
	} else {
		b.WriteString("\n  " + formatter.Dim("Press 'l' for the seller leaderboard.") + "\n")
	}

	return b.String()
}

// renderFunnel lays the diagram out in character cells so each canvas unit
// is one terminal column.
func (v *statsView) renderFunnel(width int) string {
	cols := width - 4
	if cols > 72 {
		cols = 72
	}
	if cols < 24 {
		cols = 24
	}

	cfg := funnel.DefaultConfig()
	cfg.MaxWidth = float64(cols)
	cfg.MinWidth = 4
	cfg.NodeGap = 2
	cfg.Row1Y = 0
	cfg.RowGap = 3
	cfg.NodeHeight = 1

	g := funnel.Layout(*v.metrics, float64(cols), 3*cfg.RowGap, cfg)
	return formatter.RenderFunnel(g)
}

func periodTitle(p domain.Period) string {
	switch p {
	case domain.PeriodToday:
		return "Today"
	case domain.PeriodWeek:
		return "Last 7 days"
	default:
		return "All time"
	}
}

func (v *statsView) View() string {
	if !v.ready {
		return v.renderContent(80)
	}
	return v.vp.View()
}
