// Package tui implements the interactive deck calculator form for the
// terminal using Bubble Tea.
//
// The form is driven by the same form.Controller a browser page would use:
// Page holds terminal implementations of every element the controller
// reads and writes (inputs, the 2x6 checkbox, the submit button, result
// displays, the fastener list and an alert bar), and Model wires key
// presses to the controller's OnInput, OnCommit, Submit and Reset.
//
// # Keys
//
//	tab / shift+tab  move between fields (leaving a field commits it)
//	space            toggle the 2x6 option
//	enter            calculate
//	ctrl+r           reset the form
//	esc / ctrl+c     quit
//
// # Concurrency
//
// Submit blocks on the network, so it runs inside a tea.Cmd. Page elements
// guard their state with a mutex because the controller writes them from
// that goroutine while View reads them. A spinner animates while the
// controller reports a pending request.
package tui
