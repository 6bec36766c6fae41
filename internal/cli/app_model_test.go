package cli

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumicello/boothlog/internal/db"
	"github.com/lumicello/boothlog/internal/repository"
	"github.com/lumicello/boothlog/internal/service"
	"github.com/lumicello/boothlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	t.Helper()

	database := testutil.NewTestDB(t)
	uow := db.NewUnitOfWork(database)

	interactionRepo := repository.NewSQLiteInteractionRepo(database)
	sellerRepo := repository.NewSQLiteSellerRepo(database)
	staffRepo := repository.NewSQLiteStaffRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	statsRepo := repository.NewSQLiteStatsRepo(database)

	return &App{
		Interactions: service.NewInteractionService(interactionRepo, uow),
		Stats:        service.NewStatsService(statsRepo),
		Funnel:       service.NewFunnelService(statsRepo),
		Sellers:      service.NewSellerService(sellerRepo),
		Session:      service.NewSessionService(staffRepo, sellerRepo, uow),
		Events:       service.NewEventService(eventRepo, interactionRepo, staffRepo),

		DeviceName:    "test-device",
		Location:      "Test Mall",
		IsInteractive: func() bool { return false },
	}
}

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return nil }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, nil
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return nil }
func (v *stubView) Title() string            { return v.title }

func newStubView(id ViewID, title string) *stubView {
	return &stubView{id: id, title: title, viewText: title + " view"}
}

func TestNewAppModelStartsAtHome(t *testing.T) {
	m := newAppModel(testApp(t))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewHome, m.activeView().ID())
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newAppModel(testApp(t))
	v2 := newStubView(ViewStats, "Stats")
	v3 := newStubView(ViewTimeline, "Timeline")

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, View(v2), m.activeView())

	model, cmd = m.Update(replaceViewMsg{view: v3})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, View(v3), m.activeView())

	model, _ = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewHome, m.activeView().ID())
}

func TestAppModel_PopNeverRemovesLastView(t *testing.T) {
	m := newAppModel(testApp(t))

	model, _ := m.Update(popViewMsg{})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
}

func TestAppModel_EscPopsNonCapturingView(t *testing.T) {
	m := newAppModel(testApp(t))
	model, _ := m.Update(pushViewMsg{view: newStubView(ViewStats, "Stats")})
	m = model.(appModel)
	require.Len(t, m.viewStack, 2)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_QuitKey(t *testing.T) {
	m := newAppModel(testApp(t))

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(appModel)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestAppModel_FlashLifecycle(t *testing.T) {
	m := newAppModel(testApp(t))

	model, cmd := m.Update(flashMsg{text: "Walk-by logged"})
	m = model.(appModel)
	require.NotNil(t, cmd, "flash must schedule an expiry tick")
	assert.Equal(t, "Walk-by logged", m.flashText)
	token := m.flashToken

	// A stale expiry from an earlier banner must not clear the newer one.
	model, _ = m.Update(flashExpiredMsg{token: token - 1})
	m = model.(appModel)
	assert.Equal(t, "Walk-by logged", m.flashText)

	model, _ = m.Update(flashExpiredMsg{token: token})
	m = model.(appModel)
	assert.Empty(t, m.flashText)
}

func TestFlashDurationFor(t *testing.T) {
	assert.Equal(t, flashDuration, flashDurationFor(flashMsg{text: "Walk-by logged"}))
	assert.Equal(t, flashSaleDuration, flashDurationFor(flashMsg{text: "Logged: bundle", sale: true}))
	assert.Equal(t, flashDuration, flashDurationFor(flashMsg{text: "boom", isError: true}))
}

func TestAppModel_AnyKeyDismissesFlash(t *testing.T) {
	m := newAppModel(testApp(t))

	model, _ := m.Update(flashMsg{text: "Event logged"})
	m = model.(appModel)
	require.NotEmpty(t, m.flashText)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = model.(appModel)
	assert.Empty(t, m.flashText)
}

func TestAppModel_WizardDonePopsForm(t *testing.T) {
	m := newAppModel(testApp(t))
	model, _ := m.Update(pushViewMsg{view: newStubView(ViewForm, "Event")})
	m = model.(appModel)
	require.Len(t, m.viewStack, 2)

	model, cmd := m.Update(wizardDoneMsg{})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd, "done must trigger a refresh")
}

func TestAppModel_RefreshBroadcastsToWholeStack(t *testing.T) {
	m := newAppModel(testApp(t))
	v2 := newStubView(ViewStats, "Stats")
	model, _ := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)

	model, _ = m.Update(refreshViewMsg{})
	m = model.(appModel)

	require.Len(t, v2.updateSeen, 1)
	_, ok := v2.updateSeen[0].(refreshViewMsg)
	assert.True(t, ok)
}

func TestViewCapturesInput(t *testing.T) {
	assert.False(t, viewCapturesInput(nil))
	assert.False(t, viewCapturesInput(newStubView(ViewHome, "")))
	assert.True(t, viewCapturesInput(newStubView(ViewForm, "Event")))
	assert.True(t, viewCapturesInput(newStubView(ViewFlow, "Conversation")))
}
