// Package estimate implements the deck material calculation behind the
// /calculate endpoint.
//
// A calculation takes the deck footprint (length and width in feet) and a
// framing option, and produces a bill of materials:
//
//   - Deck boards: plank count across the width and total linear feet,
//     including a cutting waste allowance.
//   - Framing ("base wood"): joists at a fixed on-center spacing plus
//     beams, expressed as stock-length pieces including waste.
//   - Fasteners: deck screws by area, joist hangers, hanger nails and post
//     base connectors.
//
// # Framing Options
//
// The default frame uses 2x8 joists at 16" on center. Requesting 2x6
// lumber tightens the spacing to 12" on center.
//
// # Usage Example
//
//	calc := estimate.NewCalculator(estimate.DefaultMaterials(), estimate.DefaultLimits())
//	est, err := calc.Calculate(estimate.Request{Length: 12, Width: 12})
//	if err != nil {
//	    // err is a *estimate.ValidationError for out-of-range input
//	}
//	fmt.Println(est.DeckBoards, est.Screws)
//
// The Request and Estimate types are also the JSON wire format shared by
// the server and the client.
package estimate
