package tui

import (
	"sync"

	"github.com/muurk/deckcalc/internal/form"
)

// Field is a text input's value plus its inline validation message
type Field struct {
	mu      sync.Mutex
	value   string
	message string
	invalid bool
}

// Value returns the current text
func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetValue replaces the text
func (f *Field) SetValue(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = v
}

// MarkInvalid flags the field with message
func (f *Field) MarkInvalid(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalid = true
	f.message = message
}

// ClearInvalid removes the inline message
func (f *Field) ClearInvalid() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalid = false
	f.message = ""
}

// InlineError returns the inline message, or "" if the field is valid
func (f *Field) InlineError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.invalid {
		return ""
	}
	return f.message
}

// Checkbox is a boolean option
type Checkbox struct {
	mu      sync.Mutex
	checked bool
}

// Checked reports the checkbox state
func (c *Checkbox) Checked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checked
}

// SetChecked sets the checkbox state
func (c *Checkbox) SetChecked(checked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checked = checked
}

// Toggle flips the checkbox
func (c *Checkbox) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checked = !c.checked
}

// Button is the submit control
type Button struct {
	mu       sync.Mutex
	label    string
	disabled bool
}

// Label returns the button text
func (b *Button) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.label
}

// SetLabel replaces the button text
func (b *Button) SetLabel(label string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.label = label
}

// SetEnabled enables or disables the button
func (b *Button) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabled = !enabled
}

// Enabled reports whether the button accepts presses
func (b *Button) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.disabled
}

// Text is a read-only display value
type Text struct {
	mu   sync.Mutex
	text string
}

// SetText replaces the displayed text
func (t *Text) SetText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = text
}

// String returns the displayed text
func (t *Text) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

// List is an ordered list of entries
type List struct {
	mu      sync.Mutex
	entries []string
}

// Clear removes every entry
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Append adds an entry at the end
func (l *List) Append(entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Len returns the number of entries
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the entries
func (l *List) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

// Panel is a region that can be shown or hidden
type Panel struct {
	mu      sync.Mutex
	visible bool
	focused bool
}

// Show reveals the panel
func (p *Panel) Show() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = true
}

// Hide hides the panel
func (p *Panel) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
	p.focused = false
}

// ScrollIntoView highlights the panel until the next key press
func (p *Panel) ScrollIntoView() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.focused = p.visible
}

// Visible reports whether the panel is shown
func (p *Panel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Highlighted reports whether the panel was just scrolled into view
func (p *Panel) Highlighted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.focused
}

func (p *Panel) clearHighlight() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.focused = false
}

// AlertBar shows a blocking message until dismissed
type AlertBar struct {
	mu      sync.Mutex
	message string
}

// Alert displays message
func (a *AlertBar) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.message = message
}

// Message returns the current alert, or ""
func (a *AlertBar) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

// Dismiss clears the alert
func (a *AlertBar) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.message = ""
}

// Page holds every element of the terminal form
type Page struct {
	Length      *Field
	Width       *Field
	UseTwoBySix *Checkbox
	Submit      *Button

	Results              *Panel
	DeckBoards           *Text
	DeckBoardsLinearFeet *Text
	BaseWood             *Text
	FramingInfo          *Text
	Screws               *Text
	Fasteners            *List
	FastenersSection     *Panel

	Alerts *AlertBar
}

// SubmitLabel is the idle label of the submit button
const SubmitLabel = "Calculate Materials"

// NewPage creates an empty form with hidden results
func NewPage() *Page {
	return &Page{
		Length:               &Field{},
		Width:                &Field{},
		UseTwoBySix:          &Checkbox{},
		Submit:               &Button{label: SubmitLabel},
		Results:              &Panel{},
		DeckBoards:           &Text{},
		DeckBoardsLinearFeet: &Text{},
		BaseWood:             &Text{},
		FramingInfo:          &Text{},
		Screws:               &Text{},
		Fasteners:            &List{},
		FastenersSection:     &Panel{},
		Alerts:               &AlertBar{},
	}
}

// Elements exposes the page to a form.Controller
func (p *Page) Elements() form.Elements {
	return form.Elements{
		Length:               p.Length,
		Width:                p.Width,
		UseTwoBySix:          p.UseTwoBySix,
		Submit:               p.Submit,
		Results:              p.Results,
		DeckBoards:           p.DeckBoards,
		DeckBoardsLinearFeet: p.DeckBoardsLinearFeet,
		BaseWood:             p.BaseWood,
		FramingInfo:          p.FramingInfo,
		Screws:               p.Screws,
		Fasteners:            p.Fasteners,
		FastenersSection:     p.FastenersSection,
		Alerts:               p.Alerts,
	}
}
