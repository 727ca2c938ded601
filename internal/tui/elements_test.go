package tui

import (
	"context"
	"testing"

	"github.com/muurk/deckcalc/internal/estimate"
	"github.com/muurk/deckcalc/internal/form"
)

func TestPage_ElementsComplete(t *testing.T) {
	calc := form.CalculatorFunc(func(context.Context, estimate.Request) (*estimate.Estimate, error) {
		return &estimate.Estimate{}, nil
	})
	if _, err := form.NewController(NewPage().Elements(), calc); err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
}

func TestField(t *testing.T) {
	f := &Field{}
	f.SetValue("12")
	f.MarkInvalid("bad")

	if f.InlineError() != "bad" {
		t.Errorf("InlineError() = %q, want bad", f.InlineError())
	}

	f.ClearInvalid()
	if f.InlineError() != "" || f.Value() != "12" {
		t.Errorf("after ClearInvalid: error %q, value %q", f.InlineError(), f.Value())
	}
}

func TestButton(t *testing.T) {
	b := &Button{label: SubmitLabel}
	if !b.Enabled() {
		t.Error("new button should be enabled")
	}

	b.SetEnabled(false)
	b.SetLabel(form.DefaultBusyLabel)
	if b.Enabled() || b.Label() != form.DefaultBusyLabel {
		t.Errorf("button = %q enabled=%v", b.Label(), b.Enabled())
	}
}

func TestPanel(t *testing.T) {
	p := &Panel{}

	p.ScrollIntoView()
	if p.Highlighted() {
		t.Error("a hidden panel should not be highlighted")
	}

	p.Show()
	p.ScrollIntoView()
	if !p.Visible() || !p.Highlighted() {
		t.Error("shown panel should be visible and highlighted")
	}

	p.Hide()
	if p.Visible() || p.Highlighted() {
		t.Error("hidden panel should be neither visible nor highlighted")
	}
}

func TestListAndAlert(t *testing.T) {
	l := &List{}
	l.Append("Joist Hangers — 12")
	l.Append("Joist Hanger Nails — 120")
	if l.Len() != 2 || l.Entries()[1] != "Joist Hanger Nails — 120" {
		t.Errorf("entries = %v", l.Entries())
	}
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d", l.Len())
	}

	a := &AlertBar{}
	a.Alert(form.FailureMessage)
	if a.Message() != form.FailureMessage {
		t.Errorf("Message() = %q", a.Message())
	}
	a.Dismiss()
	if a.Message() != "" {
		t.Error("Dismiss() should clear the alert")
	}
}
