package estimate

// Request is the body of a calculation request.
type Request struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`

	// Use2x6 is optional; nil means the default 2x8 frame.
	Use2x6 *bool `json:"use2x6,omitempty"`
}

// UsesTwoBySix reports whether the request asks for 2x6 framing.
func (r Request) UsesTwoBySix() bool {
	return r.Use2x6 != nil && *r.Use2x6
}

// Fastener is one hardware line item.
type Fastener struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Estimate is the bill of materials returned for a Request.
// Consumers must tolerate absent fields (they decode to zero values).
type Estimate struct {
	DeckBoards           int        `json:"deck_boards"`
	DeckBoardsLinearFeet float64    `json:"deck_boards_linear_feet"`
	BaseWood             int        `json:"base_wood"`
	BoardSize            string     `json:"board_size,omitempty"`
	JoistSpacing         float64    `json:"joist_spacing,omitempty"`
	Screws               int        `json:"screws"`
	Fasteners            []Fastener `json:"fasteners"`
}

// Limits bounds the accepted deck dimensions in feet.
type Limits struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// DefaultLimits returns the 1-100 ft range in half-foot steps.
func DefaultLimits() Limits {
	return Limits{Min: 1, Max: 100, Step: 0.5}
}

// Materials holds the constants the calculation is parameterised by.
type Materials struct {
	BoardWidthIn    float64 `yaml:"board_width_in"`
	BoardGapIn      float64 `yaml:"board_gap_in"`
	DeckWaste       float64 `yaml:"deck_waste"`
	FramingWaste    float64 `yaml:"framing_waste"`
	StockLengthFt   float64 `yaml:"stock_length_ft"`
	Beams           int     `yaml:"beams"`
	PostSpacingFt   float64 `yaml:"post_spacing_ft"`
	ScrewsPerSqFt   float64 `yaml:"screws_per_sqft"`
	ScrewWaste      float64 `yaml:"screw_waste"`
	HangersPerJoist int     `yaml:"hangers_per_joist"`
	NailsPerHanger  int     `yaml:"nails_per_hanger"`
}

// DefaultMaterials returns constants for 5.5" decking with 1/4" gaps on a
// floating frame.
func DefaultMaterials() Materials {
	return Materials{
		BoardWidthIn:    5.5,
		BoardGapIn:      0.25,
		DeckWaste:       0.10,
		FramingWaste:    0.15,
		StockLengthFt:   8,
		Beams:           2,
		PostSpacingFt:   6,
		ScrewsPerSqFt:   2,
		ScrewWaste:      0.10,
		HangersPerJoist: 2,
		NailsPerHanger:  10,
	}
}

// BoardResult is the decking portion of an estimate.
type BoardResult struct {
	Count      int
	LinearFeet float64
}

// FramingResult is the joist and beam portion of an estimate.
type FramingResult struct {
	BoardSize       string
	JoistSpacing    float64 // inches on center
	Joists          int
	Beams           int
	TotalLinearFeet float64
	Pieces          int // stock-length pieces
}

// FastenerResult is the hardware portion of an estimate.
type FastenerResult struct {
	Screws             int
	JoistHangers       int
	HangerNails        int
	PostBaseConnectors int
}
