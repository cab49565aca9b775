package estimator

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/abiramimariappan7/mepco/pkg/units"
)

func metreOpts(thickness float64) Options {
	return Options{WallThickness: thickness, ThicknessUnit: units.Meter}
}

func doorAndWindow() []Opening {
	return []Opening{
		{Kind: Door, Count: 1, UnitArea: 1.8},
		{Kind: Window, Count: 1, UnitArea: 1.44},
	}
}

func TestEstimateCubeRoom(t *testing.T) {
	room := RoomGeometry{Length: 10, Width: 10, Height: 10, Unit: units.Meter}
	block := BlockSpec{Name: "600x200x300", UnitVolume: 0.036, Unit: units.Meter}

	r, err := Estimate(room, nil, block, metreOpts(0.1))
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if math.Abs(r.WallArea-400) > 1e-9 {
		t.Errorf("wall_area = %v, want 400", r.WallArea)
	}
	if math.Abs(r.NetWallArea-400) > 1e-9 {
		t.Errorf("net_wall_area = %v, want 400", r.NetWallArea)
	}
	if math.Abs(r.WallVolume-40) > 1e-9 {
		t.Errorf("wall_volume = %v, want 40", r.WallVolume)
	}
	if r.BlocksRequired != 1111 {
		t.Errorf("blocks_required = %d, want 1111", r.BlocksRequired)
	}
	if r.Mode != ModeVolume || r.Rounding != RoundFloor {
		t.Errorf("mode/rounding = %s/%s, want volume/floor", r.Mode, r.Rounding)
	}
}

func TestEstimateWithOpenings(t *testing.T) {
	room := RoomGeometry{Length: 5, Width: 4, Height: 3, Unit: units.Meter}
	block := BlockSpec{UnitVolume: 0.03, Unit: units.Meter}

	r, err := Estimate(room, doorAndWindow(), block, metreOpts(0.1))
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if math.Abs(r.WallArea-54) > 1e-9 {
		t.Errorf("wall_area = %v, want 54", r.WallArea)
	}
	if math.Abs(r.OpeningArea-3.24) > 1e-9 {
		t.Errorf("opening_area = %v, want 3.24", r.OpeningArea)
	}
	if math.Abs(r.NetWallArea-50.76) > 1e-9 {
		t.Errorf("net_wall_area = %v, want 50.76", r.NetWallArea)
	}
	if math.Abs(r.WallVolume-5.076) > 1e-9 {
		t.Errorf("wall_volume = %v, want 5.076", r.WallVolume)
	}
	if r.BlocksRequired != 169 {
		t.Errorf("blocks_required = %d, want 169", r.BlocksRequired)
	}
}

func TestEstimateByFootprint(t *testing.T) {
	room := RoomGeometry{Length: 5, Width: 4, Height: 3, Unit: units.Meter}

	r, err := EstimateByFootprint(room, doorAndWindow(), 1.3*0.67, units.Meter, RoundFloor)
	if err != nil {
		t.Fatalf("EstimateByFootprint failed: %v", err)
	}
	if math.Abs(r.NetWallArea-50.76) > 1e-9 {
		t.Errorf("net_wall_area = %v, want 50.76", r.NetWallArea)
	}
	if r.BlocksRequired != 58 {
		t.Errorf("blocks_required = %d, want 58", r.BlocksRequired)
	}
	if r.Mode != ModeFootprint {
		t.Errorf("mode = %s, want footprint", r.Mode)
	}
	if r.WallVolume != 0 || r.WallThickness != 0 {
		t.Error("footprint mode should not report wall volume or thickness")
	}
}

func TestEstimateFeetRoomStandardBlock(t *testing.T) {
	// 10x10x10 ft room, 150 mm block, 0.15 m wall.
	room := RoomGeometry{Length: 10, Width: 10, Height: 10, Unit: units.Foot}
	block := NewBlockSpec("150mm", 600, 200, 150, units.Millimeter)

	r, err := Estimate(room, nil, block, metreOpts(0.15))
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if math.Abs(r.WallArea-37.161216) > 1e-6 {
		t.Errorf("wall_area = %v m², want 37.161216", r.WallArea)
	}
	if r.BlocksRequired != 309 {
		t.Errorf("blocks_required = %d, want 309", r.BlocksRequired)
	}
}

func TestEstimateUsesBlockThickness(t *testing.T) {
	room := RoomGeometry{Length: 5, Width: 5, Height: 3, Unit: units.Meter}
	block := NewBlockSpec("200mm", 600, 200, 200, units.Millimeter)

	r, err := Estimate(room, nil, block, Options{})
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if math.Abs(r.WallThickness-0.2) > 1e-12 {
		t.Errorf("wall_thickness = %v, want 0.2", r.WallThickness)
	}
	// 60 m² * 0.2 m / 0.024 m³ = 500
	if r.BlocksRequired != 500 {
		t.Errorf("blocks_required = %d, want 500", r.BlocksRequired)
	}
}

func TestEstimateAreaThicknessVariant(t *testing.T) {
	room := RoomGeometry{Length: 5, Width: 5, Height: 3, Unit: units.Meter}
	block := BlockSpec{UnitArea: 0.12, Thickness: 0.2, Unit: units.Meter}

	r, err := Estimate(room, nil, block, Options{})
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if r.BlocksRequired != 500 {
		t.Errorf("blocks_required = %d, want 500", r.BlocksRequired)
	}
}

func TestEstimateClampsOversizedOpenings(t *testing.T) {
	room := RoomGeometry{Length: 2, Width: 2, Height: 2, Unit: units.Meter}
	openings := []Opening{{Kind: Window, Count: 10, UnitArea: 5}}
	block := BlockSpec{UnitVolume: 0.03, Unit: units.Meter}

	r, err := Estimate(room, openings, block, metreOpts(0.1))
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if r.NetWallArea != 0 {
		t.Errorf("net_wall_area = %v, want 0", r.NetWallArea)
	}
	if r.BlocksRequired != 0 {
		t.Errorf("blocks_required = %d, want 0", r.BlocksRequired)
	}
	if !r.Clamped {
		t.Error("expected clamped flag")
	}

	fr, err := EstimateByFootprint(room, openings, 0.12, units.Meter, RoundCeil)
	if err != nil {
		t.Fatalf("EstimateByFootprint failed: %v", err)
	}
	if fr.BlocksRequired != 0 {
		t.Errorf("footprint blocks_required = %d, want 0", fr.BlocksRequired)
	}
}

func TestEstimateRounding(t *testing.T) {
	room := RoomGeometry{Length: 5, Width: 4, Height: 3, Unit: units.Meter}
	block := BlockSpec{UnitVolume: 0.03, Unit: units.Meter}

	tests := []struct {
		rounding Rounding
		want     int
	}{
		{"", 169},
		{RoundFloor, 169},
		{RoundCeil, 170},
	}
	for _, tt := range tests {
		t.Run(string(tt.rounding), func(t *testing.T) {
			opts := metreOpts(0.1)
			opts.Rounding = tt.rounding
			r, err := Estimate(room, doorAndWindow(), block, opts)
			if err != nil {
				t.Fatalf("Estimate failed: %v", err)
			}
			if r.BlocksRequired != tt.want {
				t.Errorf("blocks_required = %d, want %d", r.BlocksRequired, tt.want)
			}
		})
	}
}

func TestEstimateExactQuotient(t *testing.T) {
	// 40 m³ / 0.04 m³ must give 1000, not 999.
	room := RoomGeometry{Length: 10, Width: 10, Height: 10, Unit: units.Meter}
	block := BlockSpec{UnitVolume: 0.04, Unit: units.Meter}

	for _, rounding := range []Rounding{RoundFloor, RoundCeil} {
		opts := metreOpts(0.1)
		opts.Rounding = rounding
		r, err := Estimate(room, nil, block, opts)
		if err != nil {
			t.Fatalf("Estimate failed: %v", err)
		}
		if r.BlocksRequired != 1000 {
			t.Errorf("%s: blocks_required = %d, want 1000", rounding, r.BlocksRequired)
		}
	}
}

func TestEstimateInvalidGeometry(t *testing.T) {
	block := BlockSpec{UnitVolume: 0.03, Unit: units.Meter}

	tests := []struct {
		name     string
		room     RoomGeometry
		openings []Opening
	}{
		{"zero length", RoomGeometry{Length: 0, Width: 4, Height: 3}, nil},
		{"negative width", RoomGeometry{Length: 5, Width: -4, Height: 3}, nil},
		{"zero height", RoomGeometry{Length: 5, Width: 4, Height: 0}, nil},
		{"NaN length", RoomGeometry{Length: math.NaN(), Width: 4, Height: 3}, nil},
		{"unknown unit", RoomGeometry{Length: 5, Width: 4, Height: 3, Unit: "yd"}, nil},
		{"negative opening count", RoomGeometry{Length: 5, Width: 4, Height: 3}, []Opening{{Kind: Door, Count: -1, UnitArea: 1.8}}},
		{"zero opening area", RoomGeometry{Length: 5, Width: 4, Height: 3}, []Opening{{Kind: Door, Count: 2, UnitArea: 0}}},
		{"unknown opening kind", RoomGeometry{Length: 5, Width: 4, Height: 3}, []Opening{{Kind: "garage", Count: 1, UnitArea: 6}}},
		{"empty opening kind", RoomGeometry{Length: 5, Width: 4, Height: 3}, []Opening{{Count: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(tt.room, tt.openings, block, metreOpts(0.1))
			if !IsInvalidGeometry(err) {
				t.Fatalf("expected InvalidGeometryError, got %v", err)
			}
			_, err = EstimateByFootprint(tt.room, tt.openings, 0.12, units.Meter, RoundFloor)
			if !IsInvalidGeometry(err) {
				t.Fatalf("footprint: expected InvalidGeometryError, got %v", err)
			}
		})
	}
}

func TestEstimateZeroCountOpeningIgnored(t *testing.T) {
	room := RoomGeometry{Length: 5, Width: 4, Height: 3}
	openings := []Opening{{Kind: Window, Count: 0}}
	r, err := Estimate(room, openings, BlockSpec{UnitVolume: 0.03}, metreOpts(0.1))
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if r.OpeningArea != 0 {
		t.Errorf("opening_area = %v, want 0", r.OpeningArea)
	}
}

func TestEstimateInvalidSpec(t *testing.T) {
	room := RoomGeometry{Length: 5, Width: 4, Height: 3, Unit: units.Meter}

	tests := []struct {
		name  string
		block BlockSpec
		opts  Options
	}{
		{"zero volume", BlockSpec{UnitVolume: 0, Unit: units.Meter}, metreOpts(0.1)},
		{"negative volume", BlockSpec{UnitVolume: -0.03, UnitArea: 0.12, Thickness: 0.2}, metreOpts(0.1)},
		{"unknown block unit", BlockSpec{UnitVolume: 0.03, Unit: "yd"}, metreOpts(0.1)},
		{"negative area and thickness", BlockSpec{UnitArea: -0.12, Thickness: -0.2, Unit: units.Meter}, metreOpts(0.1)},
		{"negative area", BlockSpec{UnitArea: -0.12, Thickness: 0.2, Unit: units.Meter}, metreOpts(0.1)},
		{"area without thickness", BlockSpec{UnitArea: 0.12, Unit: units.Meter}, metreOpts(0.1)},
		{"no thickness anywhere", BlockSpec{UnitVolume: 0.03}, Options{}},
		{"negative thickness", BlockSpec{UnitVolume: 0.03}, metreOpts(-0.1)},
		{"bad rounding", BlockSpec{UnitVolume: 0.03}, Options{WallThickness: 0.1, Rounding: "nearest"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(room, nil, tt.block, tt.opts)
			if !IsInvalidSpec(err) {
				t.Fatalf("expected InvalidSpecError, got %v", err)
			}
		})
	}

	for _, area := range []float64{0, -0.5} {
		if _, err := EstimateByFootprint(room, nil, area, units.Meter, RoundFloor); !IsInvalidSpec(err) {
			t.Errorf("footprint area %v: expected InvalidSpecError, got %v", area, err)
		}
	}
}

func TestEstimateDerivedVolumeFields(t *testing.T) {
	room := RoomGeometry{Length: 5, Width: 4, Height: 3, Unit: units.Meter}

	tests := []struct {
		block BlockSpec
		field string
	}{
		{BlockSpec{UnitArea: -0.12, Thickness: -0.2, Unit: units.Meter}, "unit_area"},
		{BlockSpec{UnitArea: 0.12, Thickness: -0.2, Unit: units.Meter}, "thickness"},
		{BlockSpec{Unit: units.Meter}, "unit_volume"},
	}
	for _, tt := range tests {
		_, err := Estimate(room, nil, tt.block, metreOpts(0.1))
		var se *InvalidSpecError
		if !errors.As(err, &se) {
			t.Fatalf("%+v: expected InvalidSpecError, got %v", tt.block, err)
		}
		if se.Field != tt.field {
			t.Errorf("%+v: field = %q, want %q", tt.block, se.Field, tt.field)
		}
	}

	r, err := Estimate(room, nil, BlockSpec{UnitArea: 0.12, Thickness: 0.2, Unit: units.Meter}, metreOpts(0.1))
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	// 54 m2 * 0.1 m / 0.024 m3
	if r.BlocksRequired != 225 {
		t.Errorf("blocks_required = %d, want 225", r.BlocksRequired)
	}
}

func TestWallAreaProperty(t *testing.T) {
	dims := []float64{0.5, 1, 2.75, 3, 10, 123.4}
	for _, l := range dims {
		for _, w := range dims {
			for _, h := range dims {
				got, err := WallArea(RoomGeometry{Length: l, Width: w, Height: h})
				if err != nil {
					t.Fatalf("WallArea(%v,%v,%v) failed: %v", l, w, h, err)
				}
				want := 2 * (l + w) * h
				if math.Abs(got-want) > 1e-9*want {
					t.Errorf("WallArea(%v,%v,%v) = %v, want %v", l, w, h, got, want)
				}
			}
		}
	}
}

func TestBlocksMonotonicInWallVolume(t *testing.T) {
	block := BlockSpec{UnitVolume: 0.036, Unit: units.Meter}
	prev := -1
	for h := 0.5; h <= 12; h += 0.25 {
		r, err := Estimate(RoomGeometry{Length: 6, Width: 4, Height: h}, nil, block, metreOpts(0.15))
		if err != nil {
			t.Fatalf("Estimate failed at h=%v: %v", h, err)
		}
		if r.BlocksRequired < prev {
			t.Fatalf("blocks decreased from %d to %d at h=%v", prev, r.BlocksRequired, h)
		}
		prev = r.BlocksRequired
	}
}

func TestEstimateIdempotentAndConcurrent(t *testing.T) {
	room := RoomGeometry{Length: 5, Width: 4, Height: 3, Unit: units.Meter}
	block := BlockSpec{UnitVolume: 0.03, Unit: units.Meter}
	openings := doorAndWindow()

	first, err := Estimate(room, openings, block, metreOpts(0.1))
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]EstimateResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Estimate(room, openings, block, metreOpts(0.1))
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != first {
			t.Errorf("call %d = %+v, want %+v", i, r, first)
		}
	}
}

func TestEstimateCatalog(t *testing.T) {
	room := RoomGeometry{Length: 10, Width: 10, Height: 10, Unit: units.Foot}
	results, err := EstimateCatalog(room, nil, StandardBlocks(), metreOpts(0.15))
	if err != nil {
		t.Fatalf("EstimateCatalog failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	want := map[string]int{"100mm": 464, "150mm": 309, "200mm": 232, "230mm": 201}
	for _, r := range results {
		if r.BlocksRequired != want[r.Block] {
			t.Errorf("%s: blocks_required = %d, want %d", r.Block, r.BlocksRequired, want[r.Block])
		}
	}

	_, err = EstimateCatalog(room, nil, []BlockSpec{{Name: "bad"}}, metreOpts(0.15))
	if !IsInvalidSpec(err) {
		t.Errorf("expected InvalidSpecError for bad block, got %v", err)
	}
}

func TestEstimateCatalogByFootprint(t *testing.T) {
	room := RoomGeometry{Length: 5, Width: 4, Height: 3, Unit: units.Meter}
	results, err := EstimateCatalogByFootprint(room, nil, StandardBlocks(), RoundFloor)
	if err != nil {
		t.Fatalf("EstimateCatalogByFootprint failed: %v", err)
	}
	// Every standard block has the same 0.12 m² face: 54 / 0.12 = 450.
	for _, r := range results {
		if r.BlocksRequired != 450 {
			t.Errorf("%s: blocks_required = %d, want 450", r.Block, r.BlocksRequired)
		}
	}
}

func TestMeanBlockSpec(t *testing.T) {
	b, err := MeanBlockSpec("measured", []float64{0.03, 0.036, 0.024}, units.Meter)
	if err != nil {
		t.Fatalf("MeanBlockSpec failed: %v", err)
	}
	if math.Abs(b.UnitVolume-0.03) > 1e-12 {
		t.Errorf("unit_volume = %v, want 0.03", b.UnitVolume)
	}

	if _, err := MeanBlockSpec("empty", nil, units.Meter); !IsInvalidSpec(err) {
		t.Errorf("empty sample: expected InvalidSpecError, got %v", err)
	}
	if _, err := MeanBlockSpec("zero", []float64{0, 0}, units.Meter); !IsInvalidSpec(err) {
		t.Errorf("zero mean: expected InvalidSpecError, got %v", err)
	}
}

func TestStandardBlocks(t *testing.T) {
	blocks := StandardBlocks()
	if len(blocks) != len(StandardThicknessesMM) {
		t.Fatalf("expected %d blocks, got %d", len(StandardThicknessesMM), len(blocks))
	}
	if blocks[0].Name != "100mm" {
		t.Errorf("first block = %q, want 100mm", blocks[0].Name)
	}
	if math.Abs(blocks[1].Volume()-0.018) > 1e-12 {
		t.Errorf("150mm volume = %v m³, want 0.018", blocks[1].Volume())
	}
	if math.Abs(blocks[1].Footprint()-0.12) > 1e-12 {
		t.Errorf("150mm footprint = %v m², want 0.12", blocks[1].Footprint())
	}
}

func TestErrorMessages(t *testing.T) {
	err := (&InvalidGeometryError{Field: "length", Value: 0.0}).Error()
	if err != "invalid geometry: length must be greater than 0 (got 0)" {
		t.Errorf("unexpected message: %s", err)
	}
	err = (&InvalidSpecError{Field: "unit", Value: "yd", Reason: "is not a known length unit"}).Error()
	if err != "invalid block spec: unit is not a known length unit (got yd)" {
		t.Errorf("unexpected message: %s", err)
	}
}
