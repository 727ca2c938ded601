package form

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/muurk/deckcalc/internal/estimate"
)

const (
	// DefaultBusyLabel replaces the submit label while a request is pending
	DefaultBusyLabel = "Calculating..."

	// FailureMessage is the alert shown for any failed request
	FailureMessage = "An error occurred while calculating. Please try again."
)

// Controller runs form submissions against a Calculator.
type Controller struct {
	el         Elements
	calc       Calculator
	normalizer *Normalizer
	logger     *zap.Logger
	busyLabel  string

	inFlight atomic.Bool
	state    atomic.Int32
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the controller's logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithNormalizer replaces the default 1-100 / 0.5 normalizer
func WithNormalizer(n *Normalizer) Option {
	return func(c *Controller) {
		if n != nil {
			c.normalizer = n
		}
	}
}

// WithBusyLabel sets the label shown on the submit control while busy
func WithBusyLabel(label string) Option {
	return func(c *Controller) {
		c.busyLabel = label
	}
}

// NewController creates a controller bound to el.
func NewController(el Elements, calc Calculator, opts ...Option) (*Controller, error) {
	if err := el.validate(); err != nil {
		return nil, err
	}
	if calc == nil {
		return nil, fmt.Errorf("calculator is required")
	}

	c := &Controller{
		el:         el,
		calc:       calc,
		normalizer: NewNormalizer(estimate.DefaultLimits()),
		logger:     zap.NewNop(),
		busyLabel:  DefaultBusyLabel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Normalizer returns the normalizer applied to the dimension fields
func (c *Controller) Normalizer() *Normalizer {
	return c.normalizer
}

// State returns the current submission state
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Pending reports whether a submission is in flight
func (c *Controller) Pending() bool {
	return c.inFlight.Load()
}

func (c *Controller) setState(s State) {
	c.state.Store(int32(s))
}

// OnInput handles a keystroke in a dimension field
func (c *Controller) OnInput(in Input) {
	c.normalizer.OnInput(in)
}

// OnCommit handles a dimension field losing focus or changing
func (c *Controller) OnCommit(in Input) {
	c.normalizer.Commit(in)
}

// Submit validates the form, sends one calculation request and renders the
// result. It blocks until the request completes.
func (c *Controller) Submit(ctx context.Context) Outcome {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.logger.Debug("Submission ignored, request already pending")
		return OutcomeIgnored
	}
	defer c.inFlight.Store(false)

	c.setState(StateValidating)
	req, ok := c.validate()
	if !ok {
		c.setState(StateIdle)
		return OutcomeInvalid
	}

	label := c.el.Submit.Label()
	c.el.Submit.SetEnabled(false)
	c.el.Submit.SetLabel(c.busyLabel)
	defer func() {
		c.el.Submit.SetLabel(label)
		c.el.Submit.SetEnabled(true)
		c.setState(StateIdle)
	}()

	c.setState(StateSubmitting)
	c.logger.Info("Submitting calculation",
		zap.Float64("length", req.Length),
		zap.Float64("width", req.Width),
		zap.Bool("use2x6", req.UsesTwoBySix()),
	)

	est, err := c.calc.Calculate(ctx, req)
	if err == nil && est == nil {
		err = fmt.Errorf("empty calculation response")
	}
	if err != nil {
		c.setState(StateFailure)
		c.logger.Warn("Calculation failed", zap.Error(err))
		c.el.Alerts.Alert(FailureMessage)
		return OutcomeFailed
	}

	c.setState(StateRendering)
	c.render(est)
	c.el.Results.Show()
	c.el.Results.ScrollIntoView()

	return OutcomeRendered
}

// validate clears old inline errors, checks both dimensions and builds the
// request.
func (c *Controller) validate() (estimate.Request, bool) {
	c.el.Length.ClearInvalid()
	c.el.Width.ClearInvalid()

	length, lengthOK := c.requireDimension(c.el.Length, "length")
	width, widthOK := c.requireDimension(c.el.Width, "width")
	if !lengthOK || !widthOK {
		return estimate.Request{}, false
	}

	req := estimate.Request{Length: length, Width: width}
	if c.el.UseTwoBySix != nil {
		use2x6 := c.el.UseTwoBySix.Checked()
		req.Use2x6 = &use2x6
	}
	return req, true
}

func (c *Controller) requireDimension(in Input, name string) (float64, bool) {
	v, ok := parseNumber(in.Value())
	if ok && v >= c.normalizer.Min {
		return v, true
	}

	in.MarkInvalid(ValidationMessage(name, c.normalizer.Min))
	return 0, false
}

// ValidationMessage is the inline message for an empty or too-small field.
func ValidationMessage(name string, min float64) string {
	unit := "feet"
	if min == 1 {
		unit = "foot"
	}
	return fmt.Sprintf("Please enter a valid %s (minimum %g %s)", name, min, unit)
}

// Reset clears the form and hides the results region. A pending request is
// not cancelled.
func (c *Controller) Reset() {
	for _, in := range []Input{c.el.Length, c.el.Width} {
		in.SetValue("")
		in.ClearInvalid()
	}
	if c.el.UseTwoBySix != nil {
		c.el.UseTwoBySix.SetChecked(false)
	}
	c.el.Results.Hide()
}
