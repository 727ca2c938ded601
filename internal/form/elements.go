package form

import (
	"context"
	"errors"

	"github.com/muurk/deckcalc/internal/estimate"
)

// Input is a text field holding a numeric value.
type Input interface {
	Value() string
	SetValue(v string)
	// MarkInvalid flags the field and shows message next to it.
	MarkInvalid(message string)
	// ClearInvalid removes the flag and any inline message.
	ClearInvalid()
}

// Toggle is a checkbox.
type Toggle interface {
	Checked() bool
	SetChecked(checked bool)
}

// Button is the control that triggers submission.
type Button interface {
	Label() string
	SetLabel(label string)
	SetEnabled(enabled bool)
}

// Display is an output element showing a single text value.
type Display interface {
	SetText(text string)
}

// List is an ordered list of text entries.
type List interface {
	Clear()
	Append(entry string)
	Len() int
}

// Section is a region that can be shown or hidden.
type Section interface {
	Show()
	Hide()
}

// Results is the results region; it starts hidden.
type Results interface {
	Section
	// ScrollIntoView brings the region on screen with smooth motion.
	ScrollIntoView()
}

// Alerter shows a blocking user-facing message.
type Alerter interface {
	Alert(message string)
}

// Calculator performs the remote calculation.
type Calculator interface {
	Calculate(ctx context.Context, req estimate.Request) (*estimate.Estimate, error)
}

// CalculatorFunc adapts a function to Calculator.
type CalculatorFunc func(ctx context.Context, req estimate.Request) (*estimate.Estimate, error)

// Calculate calls f(ctx, req).
func (f CalculatorFunc) Calculate(ctx context.Context, req estimate.Request) (*estimate.Estimate, error) {
	return f(ctx, req)
}

// Elements are the page elements the controller reads and writes.
// UseTwoBySix and FramingInfo are optional; all others are required.
type Elements struct {
	Length      Input
	Width       Input
	UseTwoBySix Toggle
	Submit      Button

	Results              Results
	DeckBoards           Display
	DeckBoardsLinearFeet Display
	BaseWood             Display
	FramingInfo          Display
	Screws               Display
	Fasteners            List
	FastenersSection     Section

	Alerts Alerter
}

// ErrMissingElement is returned by NewController for an incomplete Elements.
var ErrMissingElement = errors.New("required form element missing")

func (e Elements) validate() error {
	required := []struct {
		name string
		ok   bool
	}{
		{"length", e.Length != nil},
		{"width", e.Width != nil},
		{"submit", e.Submit != nil},
		{"results", e.Results != nil},
		{"deckBoards", e.DeckBoards != nil},
		{"deckBoardsLinearFeet", e.DeckBoardsLinearFeet != nil},
		{"baseWood", e.BaseWood != nil},
		{"screws", e.Screws != nil},
		{"fasteners", e.Fasteners != nil},
		{"fastenersList", e.FastenersSection != nil},
		{"alerts", e.Alerts != nil},
	}

	for _, r := range required {
		if !r.ok {
			return &MissingElementError{Name: r.name}
		}
	}
	return nil
}

// MissingElementError names the element absent from Elements.
type MissingElementError struct {
	Name string
}

func (e *MissingElementError) Error() string {
	return ErrMissingElement.Error() + ": " + e.Name
}

// Is lets errors.Is match ErrMissingElement.
func (e *MissingElementError) Is(target error) bool {
	return target == ErrMissingElement
}
