package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg tells all stacked views to reload their data after a
// mutation made in a view above them.
type refreshViewMsg struct{}

// flashMsg shows a transient confirmation banner that auto-dismisses.
// sale marks a sale confirmation, which lingers longer.
type flashMsg struct {
	text    string
	isError bool
	sale    bool
}

// flashExpiredMsg clears a previously shown banner. The token guards
// against an old timer dismissing a newer banner.
type flashExpiredMsg struct {
	token int
}

// wizardDoneMsg is sent when an embedded form completes or is cancelled.
// The appModel pops the form view and runs nextCmd.
type wizardDoneMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// refreshViews returns a tea.Cmd that broadcasts a reload to the stack.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// flash returns a tea.Cmd that shows a confirmation banner.
func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}

// flashSale returns a tea.Cmd that shows a sale confirmation banner.
func flashSale(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text, sale: true} }
}

// flashError returns a tea.Cmd that shows an error banner.
func flashError(err error) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: err.Error(), isError: true} }
}
