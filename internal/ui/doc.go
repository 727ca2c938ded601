// Package ui provides terminal output components for the deckcalc CLI.
//
// Components are rendered with Lipgloss and sized to the terminal via
// golang.org/x/term. They follow a "print once" pattern: the estimate
// command renders a header and a result box and exits. The interactive
// form lives in internal/tui and reuses the styles defined here.
//
// # Components
//
//   - Header: command banner showing the command and its parameters
//   - Result: success/failure boxes; NewEstimateResult builds the bill of
//     materials box and NewCalcFailure adds troubleshooting tips for
//     client errors
//   - Printer: writes components to an io.Writer
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Deck Estimate", "deckcalc estimate", []ui.Detail{
//	    {Key: "Size", Value: "12 x 12 ft"},
//	})
//	p.PrintResult(ui.NewEstimateResult(est))
//
// # Logging Integration
//
// zap logging is silent unless DECKCALC_LOG_LEVEL is set, so log lines do
// not interleave with the rendered output.
package ui
