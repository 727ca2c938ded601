package estimate

import (
	"encoding/json"
	"math"
	"testing"
)

func newTestCalculator() *Calculator {
	return NewCalculator(DefaultMaterials(), DefaultLimits())
}

func TestDeckBoards(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name          string
		length, width float64
		wantCount     int
		wantLinear    float64
	}{
		// 12" / 5.75" = 2.09 -> 3 boards, 3 * 1ft * 1.1
		{"minimum deck", 1, 1, 3, 3.3},
		// 144" / 5.75" = 25.04 -> 26 boards, 26 * 12ft * 1.1
		{"standard deck", 12, 12, 26, 343.2},
		// 138" / 5.75" is exactly 24 boards
		{"exact fit", 10, 11.5, 24, 264},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.DeckBoards(tt.length, tt.width)
			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if math.Abs(got.LinearFeet-tt.wantLinear) > 0.05 {
				t.Errorf("LinearFeet = %v, want %v", got.LinearFeet, tt.wantLinear)
			}
		})
	}
}

func TestFraming(t *testing.T) {
	calc := newTestCalculator()

	got := calc.Framing(12, 12, false)
	if got.BoardSize != BoardSize2x8 {
		t.Errorf("BoardSize = %s, want %s", got.BoardSize, BoardSize2x8)
	}
	if got.JoistSpacing != 16 {
		t.Errorf("JoistSpacing = %v, want 16", got.JoistSpacing)
	}
	if got.Joists <= 8 {
		t.Errorf("Joists = %d, want more than 8 for 12ft at 16\" OC", got.Joists)
	}
	if got.Beams != 2 {
		t.Errorf("Beams = %d, want 2", got.Beams)
	}
	if got.Pieces <= 0 {
		t.Errorf("Pieces = %d, want > 0", got.Pieces)
	}

	got = calc.Framing(12, 12, true)
	if got.BoardSize != BoardSize2x6 {
		t.Errorf("BoardSize = %s, want %s", got.BoardSize, BoardSize2x6)
	}
	if got.JoistSpacing != 12 {
		t.Errorf("JoistSpacing = %v, want 12", got.JoistSpacing)
	}
	if got.Joists <= 11 {
		t.Errorf("Joists = %d, want more than 11 for 12\" OC", got.Joists)
	}
}

func TestFasteners(t *testing.T) {
	calc := newTestCalculator()
	framing := FramingResult{Joists: 10, Beams: 2, TotalLinearFeet: 100}

	got := calc.Fasteners(12, 12, framing)

	if got.JoistHangers != 20 {
		t.Errorf("JoistHangers = %d, want 20", got.JoistHangers)
	}
	if got.PostBaseConnectors != 4 {
		t.Errorf("PostBaseConnectors = %d, want 4", got.PostBaseConnectors)
	}
	if got.HangerNails != 200 {
		t.Errorf("HangerNails = %d, want 200", got.HangerNails)
	}
	want := 12 * 12 * 2 * 1.1
	if math.Abs(float64(got.Screws)-want) > 10 {
		t.Errorf("Screws = %d, want about %v", got.Screws, want)
	}
}

func TestCalculate(t *testing.T) {
	calc := newTestCalculator()
	use2x6 := true

	est, err := calc.Calculate(Request{Length: 12, Width: 12, Use2x6: &use2x6})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if est.DeckBoards != 26 {
		t.Errorf("DeckBoards = %d, want 26", est.DeckBoards)
	}
	if est.BoardSize != BoardSize2x6 || est.JoistSpacing != 12 {
		t.Errorf("framing = %s @ %v, want 2x6 @ 12", est.BoardSize, est.JoistSpacing)
	}
	if len(est.Fasteners) == 0 || est.Fasteners[0].Name != ScrewFastenerName {
		t.Fatalf("first fastener should be %q, got %+v", ScrewFastenerName, est.Fasteners)
	}
	if est.Fasteners[0].Quantity != est.Screws {
		t.Errorf("screw fastener quantity = %d, want %d", est.Fasteners[0].Quantity, est.Screws)
	}
}

func TestCalculate_Validation(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name      string
		req       Request
		wantField string
	}{
		{"zero dimensions", Request{Length: 0, Width: 0}, "length"},
		{"width too small", Request{Length: 10, Width: 0.5}, "width"},
		{"length too large", Request{Length: 100.5, Width: 10}, "length"},
		{"NaN width", Request{Length: 10, Width: math.NaN()}, "width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Calculate(tt.req)
			if err == nil {
				t.Fatal("Calculate() should fail")
			}
			if !IsValidationError(err) {
				t.Fatalf("error should be validation error, got %T", err)
			}
			if vErr := err.(*ValidationError); vErr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestRequest_JSONOmitsUnsetOption(t *testing.T) {
	data, err := json.Marshal(Request{Length: 10, Width: 8})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"length":10,"width":8}` {
		t.Errorf("Marshal = %s", data)
	}

	var req Request
	if err := json.Unmarshal([]byte(`{"length":10,"width":8,"use2x6":true}`), &req); err != nil {
		t.Fatal(err)
	}
	if !req.UsesTwoBySix() {
		t.Error("UsesTwoBySix() = false, want true")
	}
}
