package estimate

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	// ScrewFastenerName is the fastener line that duplicates the screw count.
	ScrewFastenerName = "2.5in Deck Screws"

	// BoardSize2x8 and BoardSize2x6 are the supported joist dimensions.
	BoardSize2x8 = "2x8"
	BoardSize2x6 = "2x6"

	spacing2x8 = 16
	spacing2x6 = 12

	// absorbs float noise such as 24.000000000000004 boards
	countEpsilon = 1e-9
)

// Calculator computes material estimates from deck dimensions.
type Calculator struct {
	Materials Materials
	Limits    Limits
}

// NewCalculator creates a calculator with the given constants and limits
func NewCalculator(materials Materials, limits Limits) *Calculator {
	return &Calculator{Materials: materials, Limits: limits}
}

// Validate checks that both dimensions lie within the calculator's limits.
func (c *Calculator) Validate(req Request) error {
	if err := c.validateDimension("length", req.Length); err != nil {
		return err
	}
	return c.validateDimension("width", req.Width)
}

func (c *Calculator) validateDimension(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewValidationError(field, "must be a number")
	}
	if v < c.Limits.Min || v > c.Limits.Max {
		return NewValidationError(field, fmt.Sprintf("must be between %g and %g feet, got %g", c.Limits.Min, c.Limits.Max, v))
	}
	return nil
}

// Calculate validates req and returns the full bill of materials.
func (c *Calculator) Calculate(req Request) (*Estimate, error) {
	if err := c.Validate(req); err != nil {
		return nil, err
	}

	boards := c.DeckBoards(req.Length, req.Width)
	framing := c.Framing(req.Length, req.Width, req.UsesTwoBySix())
	fasteners := c.Fasteners(req.Length, req.Width, framing)

	est := &Estimate{
		DeckBoards:           boards.Count,
		DeckBoardsLinearFeet: boards.LinearFeet,
		BaseWood:             framing.Pieces,
		BoardSize:            framing.BoardSize,
		JoistSpacing:         framing.JoistSpacing,
		Screws:               fasteners.Screws,
		Fasteners: []Fastener{
			{Name: ScrewFastenerName, Quantity: fasteners.Screws},
			{Name: "Joist Hangers", Quantity: fasteners.JoistHangers},
			{Name: "Joist Hanger Nails", Quantity: fasteners.HangerNails},
		},
	}
	if fasteners.PostBaseConnectors > 0 {
		est.Fasteners = append(est.Fasteners, Fastener{Name: "Post Base Connectors", Quantity: fasteners.PostBaseConnectors})
	}

	return est, nil
}

// DeckBoards returns the plank count across the width and the linear feet
// of decking, with deck waste applied and rounded to a tenth of a foot.
func (c *Calculator) DeckBoards(length, width float64) BoardResult {
	coverage := c.Materials.BoardWidthIn + c.Materials.BoardGapIn
	if coverage <= 0 {
		return BoardResult{}
	}

	count := ceilCount(width * 12 / coverage)
	linear := float64(count) * length * (1 + c.Materials.DeckWaste)

	return BoardResult{
		Count:      count,
		LinearFeet: roundTenth(linear),
	}
}

// Framing returns joists (one per spacing interval along the length plus
// the closing joist) and beams, converted to stock-length pieces.
func (c *Calculator) Framing(length, width float64, use2x6 bool) FramingResult {
	size, spacing := BoardSize2x8, float64(spacing2x8)
	if use2x6 {
		size, spacing = BoardSize2x6, float64(spacing2x6)
	}

	joists := ceilCount(length*12/spacing) + 1
	beams := c.Materials.Beams
	total := (float64(joists)*width + float64(beams)*length) * (1 + c.Materials.FramingWaste)

	pieces := 0
	if c.Materials.StockLengthFt > 0 {
		pieces = ceilCount(total / c.Materials.StockLengthFt)
	}

	return FramingResult{
		BoardSize:       size,
		JoistSpacing:    spacing,
		Joists:          joists,
		Beams:           beams,
		TotalLinearFeet: roundTenth(total),
		Pieces:          pieces,
	}
}

// Fasteners returns hardware counts for a deck and its frame.
func (c *Calculator) Fasteners(length, width float64, framing FramingResult) FastenerResult {
	hangers := framing.Joists * c.Materials.HangersPerJoist

	posts := 0
	if c.Materials.PostSpacingFt > 0 {
		posts = ceilCount(length/c.Materials.PostSpacingFt) * framing.Beams
	}

	screws := ceilCount(length * width * c.Materials.ScrewsPerSqFt * (1 + c.Materials.ScrewWaste))

	return FastenerResult{
		Screws:             screws,
		JoistHangers:       hangers,
		HangerNails:        hangers * c.Materials.NailsPerHanger,
		PostBaseConnectors: posts,
	}
}

func ceilCount(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Ceil(v - countEpsilon))
}

func roundTenth(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}
