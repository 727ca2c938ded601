package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/deckcalc/internal/estimate"
	"github.com/muurk/deckcalc/internal/form"
	"github.com/muurk/deckcalc/internal/ui"
)

// focusable form controls, in tab order
type focus int

const (
	focusLength focus = iota
	focusWidth
	focusTwoBySix
	focusSubmit
	focusCount
)

// submitDoneMsg is sent when a Submit call returns
type submitDoneMsg struct {
	outcome form.Outcome
}

// Options configures the form model
type Options struct {
	// ServerURL is shown in the header
	ServerURL string
	// Limits bounds the dimension fields; zero means the defaults
	Limits estimate.Limits
	// Logger receives controller logs
	Logger *zap.Logger
}

// Model is the Bubble Tea model for the calculator form
type Model struct {
	page *Page
	ctrl *form.Controller
	ctx  context.Context

	inputs [2]textinput.Model // length, width
	focus  focus

	spinner spinner.Model
	help    help.Model
	keys    formKeyMap

	serverURL  string
	width      int
	quitting   bool
	submitting bool // a submit command is dispatched and has not returned
}

// New creates a form model that submits through calc.
func New(ctx context.Context, calc form.Calculator, opts Options) (Model, error) {
	limits := opts.Limits
	if limits == (estimate.Limits{}) {
		limits = estimate.DefaultLimits()
	}

	page := NewPage()
	ctrl, err := form.NewController(page.Elements(), calc,
		form.WithLogger(opts.Logger),
		form.WithNormalizer(form.NewNormalizer(limits)),
	)
	if err != nil {
		return Model{}, fmt.Errorf("failed to create form controller: %w", err)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.DisabledButtonStyle.Padding(0)

	m := Model{
		page:      page,
		ctrl:      ctrl,
		ctx:       ctx,
		spinner:   s,
		help:      help.New(),
		keys:      newFormKeyMap(),
		serverURL: opts.ServerURL,
		width:     ui.GetTerminalWidth(),
	}

	for i, placeholder := range []string{"e.g. 12", "e.g. 10.5"} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 8
		ti.Width = 10
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	return m, nil
}

// Page returns the form's elements
func (m Model) Page() *Page {
	return m.page
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = ui.ClampWidth(msg.Width)
		m.help.Width = m.width
		return m, nil

	case spinner.TickMsg:
		// the tick can arrive before the submit command takes the guard
		if !m.submitting && !m.ctrl.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case submitDoneMsg:
		// View re-renders from the page the controller just updated
		m.submitting = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// any key dismisses an alert and the results highlight
	m.page.Alerts.Dismiss()
	m.page.Results.clearHighlight()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)

	case key.Matches(msg, m.keys.Submit):
		m.commitFocused()
		m.submitting = true
		return m, tea.Batch(m.spinner.Tick, m.submitCmd())

	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
		m.syncInputs()
		return m.setFocus(focusLength)

	case key.Matches(msg, m.keys.Toggle) && m.focus == focusTwoBySix:
		m.page.UseTwoBySix.Toggle()
		return m, nil
	}

	if i, ok := m.focusedInput(); ok {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)

		field := m.field(i)
		field.SetValue(m.inputs[i].Value())
		m.ctrl.OnInput(field)
		m.syncInput(i)
		return m, cmd
	}

	return m, nil
}

// submitCmd runs one submission off the UI goroutine
func (m Model) submitCmd() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return submitDoneMsg{outcome: ctrl.Submit(ctx)}
	}
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	next := (int(m.focus) + delta + int(focusCount)) % int(focusCount)
	return m.setFocus(focus(next))
}

// setFocus commits the field being left and focuses f
func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.commitFocused()

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = f

	if i, ok := m.focusedInput(); ok {
		return m, m.inputs[i].Focus()
	}
	return m, nil
}

// commitFocused normalizes the focused field, as a browser does on blur
func (m *Model) commitFocused() {
	if i, ok := m.focusedInput(); ok {
		m.ctrl.OnCommit(m.field(i))
		m.syncInput(i)
	}
}

func (m Model) focusedInput() (int, bool) {
	switch m.focus {
	case focusLength:
		return 0, true
	case focusWidth:
		return 1, true
	default:
		return 0, false
	}
}

func (m Model) field(i int) *Field {
	if i == 0 {
		return m.page.Length
	}
	return m.page.Width
}

// syncInput copies a field's value back into its text input if the
// controller changed it
func (m *Model) syncInput(i int) {
	if v := m.field(i).Value(); v != m.inputs[i].Value() {
		m.inputs[i].SetValue(v)
		m.inputs[i].CursorEnd()
	}
}

func (m *Model) syncInputs() {
	for i := range m.inputs {
		m.syncInput(i)
	}
}

// Run starts the interactive form and blocks until the user quits.
func Run(ctx context.Context, calc form.Calculator, opts Options) error {
	m, err := New(ctx, calc, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("form exited with error: %w", err)
	}
	return nil
}
