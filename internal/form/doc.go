// Package form implements the deck calculator's form behaviour: input
// normalization and the submission controller.
//
// The package never touches a concrete page. Everything it reads or writes
// is reached through the small element interfaces in elements.go (Input,
// Toggle, Button, Display, List, Section, Results, Alerter), injected once
// through Elements when the Controller is constructed. The terminal form in
// internal/tui implements them; tests implement them with plain structs.
//
// # Input Normalizer
//
// Normalizer constrains what a numeric field may hold:
//
//   - OnInput (every keystroke): digits and a single decimal point only,
//     one fractional digit.
//   - Commit (blur/change): round to the nearest step, clamp into
//     [Min, Max], clear unparseable values, drop the field's inline error.
//
// Normalization never rejects input; it only rewrites it.
//
// # Submission Controller
//
// Controller.Submit runs one submission:
//
//	Idle -> Validating -> (invalid) -> Idle
//	                   -> Submitting -> Rendering -> Idle
//	                                 -> Failure   -> Idle
//
// Only one submission may be in flight; a Submit call made while another is
// pending returns OutcomeIgnored without touching the page. The request to
// the Calculator is the only blocking step. On failure a single alert is
// raised and nothing is retried. The submit control's label and enabled
// state are always restored.
package form
