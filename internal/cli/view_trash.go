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

type trashLoadedMsg struct {
	items []*domain.Interaction
	err   error
}

type trashActionMsg struct {
	text string
	err  error
}

// trashView lists soft-deleted interactions with per-item restore and purge.
type trashView struct {
	state *SharedState

	items   []*domain.Interaction
	cursor  int
	loading bool
	err     error
}

func newTrashView(state *SharedState) *trashView {
	return &trashView{state: state, loading: true}
}

func (v *trashView) ID() ViewID    { return ViewTrash }
func (v *trashView) Title() string { return "Trash" }

func (v *trashView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "purge")),
		key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "empty trash")),
	}
}

func (v *trashView) Init() tea.Cmd {
	return v.loadData()
}

func (v *trashView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		items, err := app.Interactions.ListTrash(context.Background())
		return trashLoadedMsg{items: items, err: err}
	}
}

func (v *trashView) selected() *domain.Interaction {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return nil
	}
	return v.items[v.cursor]
}

func (v *trashView) restore(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		err := app.Interactions.Restore(context.Background(), id)
		return trashActionMsg{text: "Restored", err: err}
	}
}

func (v *trashView) purge(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		err := app.Interactions.Purge(context.Background(), id)
		return trashActionMsg{text: "Deleted permanently", err: err}
	}
}

func (v *trashView) emptyTrash() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		n, err := app.Interactions.EmptyTrash(context.Background())
		return trashActionMsg{text: fmt.Sprintf("Emptied trash (%d removed)", n), err: err}
	}
}

func (v *trashView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trashLoadedMsg:
		v.loading = false
		v.items, v.err = msg.items, msg.err
		if v.cursor >= len(v.items) {
			v.cursor = len(v.items) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		return v, nil

	case trashActionMsg:
		if msg.err != nil {
			return v, flashError(msg.err)
		}
		return v, tea.Batch(flash(msg.text), v.loadData(), refreshViews())

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.items)-1 {
				v.cursor++
			}
		case "r":
			if it := v.selected(); it != nil {
				return v, v.restore(it.ID)
			}
		case "p":
			if it := v.selected(); it != nil {
				return v, v.purge(it.ID)
			}
		case "E":
			if len(v.items) > 0 {
				return v, v.emptyTrash()
			}
		}
	}
	return v, nil
}

func (v *trashView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.items) == 0 {
		return "\n  " + formatter.Dim("Trash is empty.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, it := range v.items {
		marker := "  "
		line := formatter.FormatInteractionLine(it)
		if i == v.cursor {
			marker = formatter.StyleGreen.Render("› ")
		}
		b.WriteString("  " + marker + line + "\n")
	}
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d in trash", len(v.items))) + "\n")
	return b.String()
}
