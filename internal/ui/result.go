package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/muurk/deckcalc/internal/client"
	"github.com/muurk/deckcalc/internal/estimate"
	"github.com/muurk/deckcalc/internal/form"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result represents a result box
type Result struct {
	Type            ResultType // Success or failure
	Title           string     // e.g., "Materials for 12 x 12 ft"
	Details         []Detail   // Key-value details, in order
	Error           error      // Error (for failure results)
	Troubleshooting []string   // Troubleshooting tips (for failure results)
	Width           int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details []Detail) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewEstimateResult creates the bill of materials box for req.
func NewEstimateResult(req estimate.Request, est *estimate.Estimate) *Result {
	title := fmt.Sprintf("Materials for %s x %s ft", form.FormatNumber(req.Length), form.FormatNumber(req.Width))
	return NewSuccessResult(title, EstimateDetails(est))
}

// EstimateDetails lists an estimate the way the form renders it: board
// counts, framing, screws, then any additional fasteners.
func EstimateDetails(est *estimate.Estimate) []Detail {
	framing := fmt.Sprintf("%d pieces", est.BaseWood)
	if info := form.FramingInfo(est); info != "" {
		framing += ", " + info
	}

	details := []Detail{
		{Key: "Deck boards", Value: fmt.Sprintf("%d (%s linear ft)", est.DeckBoards, form.FormatNumber(est.DeckBoardsLinearFeet))},
		{Key: "Framing lumber", Value: framing},
		{Key: "Deck screws", Value: humanize.Comma(int64(est.Screws))},
	}
	for _, f := range est.Fasteners {
		if form.IsPrimaryScrew(f.Name) {
			continue
		}
		details = append(details, Detail{Key: f.Name, Value: humanize.Comma(int64(f.Quantity))})
	}
	return details
}

// NewCalcFailure creates a failure box for a failed calculation request,
// with tips chosen from the error type.
func NewCalcFailure(serverURL string, err error) *Result {
	return NewFailureResult("Calculation failed", errors.New(client.ShortMessage(err)), Troubleshooting(serverURL, err))
}

// Troubleshooting returns tips for a calculation error
func Troubleshooting(serverURL string, err error) []string {
	switch {
	case client.IsHTTPError(err):
		var cErr *client.CalcError
		if errors.As(err, &cErr) && cErr.StatusCode == 400 {
			return []string{"Length and width must be within the server's limits"}
		}
		return []string{"Check the server logs (DECKCALC_LOG_LEVEL=debug)"}
	case client.IsParseError(err):
		return []string{"Make sure " + serverURL + " is a deckcalc server"}
	case client.IsNetworkError(err):
		return networkTips(serverURL, err)
	default:
		return nil
	}
}

func networkTips(serverURL string, err error) []string {
	var cErr *client.CalcError
	errors.As(err, &cErr)

	switch cErr.Type {
	case client.ErrTypeConnectionRefused:
		return []string{
			"Start the server with: deckcalc-server serve",
			"Check the server URL: " + serverURL,
		}
	case client.ErrTypeDNS:
		return []string{
			"Check the hostname in: " + serverURL,
			"Find servers on the local network with: deckcalc scan",
		}
	case client.ErrTypeTimeout:
		return []string{
			"The server did not answer in time",
			"Retry with a longer --timeout",
		}
	default:
		return []string{"Check your network connection"}
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail line
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	if r.Type == ResultFailure {
		return r.renderFailure()
	}
	return r.renderSuccess()
}

func (r *Result) renderSuccess() string {
	width := ClampWidth(r.Width)

	lines := []string{
		"",
		SuccessTitleStyle.Render(fmt.Sprintf(" %s  %s", SuccessMarker, r.Title)),
		"",
	}
	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render(" "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	lines = append(lines, "")

	return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
}

func (r *Result) renderFailure() string {
	width := ClampWidth(r.Width)

	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf(" %s  FAILED  ─  %s", FailureMarker, r.Title)),
		"",
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render(" Error: "+r.Error.Error()), "")
	}

	if len(r.Troubleshooting) > 0 {
		tips := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
		for _, tip := range r.Troubleshooting {
			tips = append(tips, TroubleshootingItemStyle.Render("  "+BulletMarker+" "+tip))
		}
		lines = append(lines, TroubleshootingBoxStyle(width).Render(strings.Join(tips, "\n")), "")
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
