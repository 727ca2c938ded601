package form

import (
	"context"
	"sync"

	"github.com/muurk/deckcalc/internal/estimate"
)

type fakeInput struct {
	mu      sync.Mutex
	value   string
	invalid bool
	message string
}

func (f *fakeInput) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *fakeInput) SetValue(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = v
}

func (f *fakeInput) MarkInvalid(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalid = true
	f.message = message
}

func (f *fakeInput) ClearInvalid() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalid = false
	f.message = ""
}

func (f *fakeInput) isInvalid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalid
}

// typeInto simulates keystrokes, sanitizing after each one
func typeInto(n *Normalizer, in *fakeInput, text string) {
	for _, r := range text {
		in.SetValue(in.Value() + string(r))
		n.OnInput(in)
	}
}

type fakeToggle struct{ checked bool }

func (f *fakeToggle) Checked() bool           { return f.checked }
func (f *fakeToggle) SetChecked(checked bool) { f.checked = checked }

type fakeButton struct {
	mu      sync.Mutex
	label   string
	enabled bool
}

func (f *fakeButton) Label() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.label
}

func (f *fakeButton) SetLabel(label string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.label = label
}

func (f *fakeButton) SetEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enabled = enabled
}

func (f *fakeButton) isEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enabled
}

type fakeDisplay struct{ text string }

func (f *fakeDisplay) SetText(text string) { f.text = text }

type fakeList struct{ entries []string }

func (f *fakeList) Clear()              { f.entries = nil }
func (f *fakeList) Append(entry string) { f.entries = append(f.entries, entry) }
func (f *fakeList) Len() int            { return len(f.entries) }

type fakeSection struct {
	visible  bool
	scrolled int
}

func (f *fakeSection) Show()           { f.visible = true }
func (f *fakeSection) Hide()           { f.visible = false }
func (f *fakeSection) ScrollIntoView() { f.scrolled++ }

type fakeAlerter struct{ messages []string }

func (f *fakeAlerter) Alert(message string) { f.messages = append(f.messages, message) }

type page struct {
	length, width *fakeInput
	use2x6        *fakeToggle
	submit        *fakeButton
	results       *fakeSection
	deckBoards    *fakeDisplay
	linearFeet    *fakeDisplay
	baseWood      *fakeDisplay
	framingInfo   *fakeDisplay
	screws        *fakeDisplay
	fasteners     *fakeList
	fastenersSec  *fakeSection
	alerts        *fakeAlerter
}

func newPage() *page {
	return &page{
		length:       &fakeInput{},
		width:        &fakeInput{},
		use2x6:       &fakeToggle{},
		submit:       &fakeButton{label: "Calculate Materials", enabled: true},
		results:      &fakeSection{},
		deckBoards:   &fakeDisplay{},
		linearFeet:   &fakeDisplay{},
		baseWood:     &fakeDisplay{},
		framingInfo:  &fakeDisplay{},
		screws:       &fakeDisplay{},
		fasteners:    &fakeList{},
		fastenersSec: &fakeSection{},
		alerts:       &fakeAlerter{},
	}
}

func (p *page) elements() Elements {
	return Elements{
		Length:               p.length,
		Width:                p.width,
		UseTwoBySix:          p.use2x6,
		Submit:               p.submit,
		Results:              p.results,
		DeckBoards:           p.deckBoards,
		DeckBoardsLinearFeet: p.linearFeet,
		BaseWood:             p.baseWood,
		FramingInfo:          p.framingInfo,
		Screws:               p.screws,
		Fasteners:            p.fasteners,
		FastenersSection:     p.fastenersSec,
		Alerts:               p.alerts,
	}
}

// recordingCalculator counts calls and returns a fixed result
type recordingCalculator struct {
	mu       sync.Mutex
	calls    int
	requests []estimate.Request
	est      *estimate.Estimate
	err      error
}

func (r *recordingCalculator) Calculate(ctx context.Context, req estimate.Request) (*estimate.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.requests = append(r.requests, req)
	return r.est, r.err
}

func (r *recordingCalculator) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
