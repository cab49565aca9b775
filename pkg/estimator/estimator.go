// Package estimator computes how many masonry blocks are needed to build the
// walls of a rectangular room, net of door and window openings.
//
// Two formulas are exposed separately. Estimate divides wall volume by block
// volume and so depends on wall thickness. EstimateByFootprint divides net
// wall area by the block face area and ignores thickness. All functions are
// pure and safe for concurrent use.
package estimator

import (
	"fmt"
	"math"

	"github.com/abiramimariappan7/mepco/pkg/units"
)

// Estimate computes the block count for room using block volume.
func Estimate(room RoomGeometry, openings []Opening, block BlockSpec, opts Options) (EstimateResult, error) {
	wallArea, openingArea, err := measureWalls(room, openings)
	if err != nil {
		return EstimateResult{}, err
	}
	rounding, err := resolveRounding(opts.Rounding)
	if err != nil {
		return EstimateResult{}, err
	}
	volume, err := resolveBlockVolume(block)
	if err != nil {
		return EstimateResult{}, err
	}
	thickness, err := resolveWallThickness(block, opts)
	if err != nil {
		return EstimateResult{}, err
	}

	net, clamped := netArea(wallArea, openingArea)
	wallVolume := net * thickness
	exact := wallVolume / volume

	return EstimateResult{
		Block:          block.Name,
		Mode:           ModeVolume,
		Rounding:       rounding,
		WallArea:       wallArea,
		OpeningArea:    openingArea,
		NetWallArea:    net,
		WallThickness:  thickness,
		WallVolume:     wallVolume,
		BlockVolume:    volume,
		BlocksExact:    exact,
		BlocksRequired: roundBlocks(exact, rounding),
		Clamped:        clamped,
	}, nil
}

// EstimateByFootprint computes the block count by dividing net wall area by
// the face area of one block. footprintArea is given in unit².
func EstimateByFootprint(room RoomGeometry, openings []Opening, footprintArea float64, unit units.Unit, rounding Rounding) (EstimateResult, error) {
	wallArea, openingArea, err := measureWalls(room, openings)
	if err != nil {
		return EstimateResult{}, err
	}
	rounding, err = resolveRounding(rounding)
	if err != nil {
		return EstimateResult{}, err
	}
	if !unit.Valid() {
		return EstimateResult{}, &InvalidSpecError{Field: "unit", Value: unit, Reason: "is not a known length unit"}
	}
	if !(footprintArea > 0) {
		return EstimateResult{}, &InvalidSpecError{Field: "unit_area", Value: footprintArea}
	}
	footprint := unit.AreaToSquareMeters(footprintArea)

	net, clamped := netArea(wallArea, openingArea)
	exact := net / footprint

	return EstimateResult{
		Mode:           ModeFootprint,
		Rounding:       rounding,
		WallArea:       wallArea,
		OpeningArea:    openingArea,
		NetWallArea:    net,
		BlockFootprint: footprint,
		BlocksExact:    exact,
		BlocksRequired: roundBlocks(exact, rounding),
		Clamped:        clamped,
	}, nil
}

// EstimateCatalog runs Estimate for every block. It stops at the first error.
func EstimateCatalog(room RoomGeometry, openings []Opening, blocks []BlockSpec, opts Options) ([]EstimateResult, error) {
	results := make([]EstimateResult, 0, len(blocks))
	for _, b := range blocks {
		r, err := Estimate(room, openings, b, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// EstimateCatalogByFootprint runs EstimateByFootprint with each block's face area.
func EstimateCatalogByFootprint(room RoomGeometry, openings []Opening, blocks []BlockSpec, rounding Rounding) ([]EstimateResult, error) {
	results := make([]EstimateResult, 0, len(blocks))
	for _, b := range blocks {
		r, err := EstimateByFootprint(room, openings, b.UnitArea, b.Unit, rounding)
		if err != nil {
			return nil, err
		}
		r.Block = b.Name
		results = append(results, r)
	}
	return results, nil
}

// MeanBlockSpec builds a spec whose unit volume is the mean of volumes. An
// empty sample or a non-positive mean is rejected.
func MeanBlockSpec(name string, volumes []float64, unit units.Unit) (BlockSpec, error) {
	if len(volumes) == 0 {
		return BlockSpec{}, &InvalidSpecError{Field: "unit_volume", Value: nil, Reason: "is unavailable: no measured blocks"}
	}
	var sum float64
	for _, v := range volumes {
		sum += v
	}
	mean := sum / float64(len(volumes))
	if !(mean > 0) {
		return BlockSpec{}, &InvalidSpecError{Field: "unit_volume", Value: mean}
	}
	return BlockSpec{Name: name, UnitVolume: mean, Unit: unit}, nil
}

// WallArea returns the gross wall area of room in m²: 2 * (l + w) * h.
func WallArea(room RoomGeometry) (float64, error) {
	if err := validateRoom(room); err != nil {
		return 0, err
	}
	u := room.Unit
	return 2 * (u.ToMeters(room.Length) + u.ToMeters(room.Width)) * u.ToMeters(room.Height), nil
}

func measureWalls(room RoomGeometry, openings []Opening) (wallArea, openingArea float64, err error) {
	wallArea, err = WallArea(room)
	if err != nil {
		return 0, 0, err
	}
	for i, o := range openings {
		if !o.Kind.Valid() {
			return 0, 0, &InvalidGeometryError{Field: openingField(i, "kind"), Value: o.Kind, Reason: "must be door or window"}
		}
		if o.Count < 0 {
			return 0, 0, &InvalidGeometryError{Field: openingField(i, "count"), Value: o.Count, Reason: "must not be negative"}
		}
		if o.Count == 0 {
			continue
		}
		if !(o.UnitArea > 0) {
			return 0, 0, &InvalidGeometryError{Field: openingField(i, "unit_area"), Value: o.UnitArea}
		}
		openingArea += float64(o.Count) * room.Unit.AreaToSquareMeters(o.UnitArea)
	}
	return wallArea, openingArea, nil
}

func validateRoom(room RoomGeometry) error {
	if !room.Unit.Valid() {
		return &InvalidGeometryError{Field: "unit", Value: room.Unit, Reason: "is not a known length unit"}
	}
	dims := []struct {
		field string
		value float64
	}{
		{"length", room.Length},
		{"width", room.Width},
		{"height", room.Height},
	}
	for _, d := range dims {
		if !(d.value > 0) || math.IsInf(d.value, 0) {
			return &InvalidGeometryError{Field: d.field, Value: d.value}
		}
	}
	return nil
}

func resolveBlockVolume(b BlockSpec) (float64, error) {
	if !b.Unit.Valid() {
		return 0, &InvalidSpecError{Field: "unit", Value: b.Unit, Reason: "is not a known length unit"}
	}
	if b.UnitVolume < 0 || math.IsNaN(b.UnitVolume) {
		return 0, &InvalidSpecError{Field: "unit_volume", Value: b.UnitVolume}
	}
	// Without a unit volume, area and thickness must each be positive.
	if b.UnitVolume == 0 && (b.UnitArea != 0 || b.Thickness != 0) {
		if !(b.UnitArea > 0) {
			return 0, &InvalidSpecError{Field: "unit_area", Value: b.UnitArea}
		}
		if !(b.Thickness > 0) {
			return 0, &InvalidSpecError{Field: "thickness", Value: b.Thickness}
		}
	}
	v := b.Volume()
	if !(v > 0) {
		return 0, &InvalidSpecError{Field: "unit_volume", Value: b.UnitVolume}
	}
	return v, nil
}

func resolveWallThickness(b BlockSpec, opts Options) (float64, error) {
	if opts.WallThickness != 0 {
		if !(opts.WallThickness > 0) {
			return 0, &InvalidSpecError{Field: "wall_thickness", Value: opts.WallThickness}
		}
		if !opts.ThicknessUnit.Valid() {
			return 0, &InvalidSpecError{Field: "thickness_unit", Value: opts.ThicknessUnit, Reason: "is not a known length unit"}
		}
		return opts.ThicknessUnit.ToMeters(opts.WallThickness), nil
	}
	if b.Thickness > 0 {
		return b.Unit.ToMeters(b.Thickness), nil
	}
	return 0, &InvalidSpecError{Field: "wall_thickness", Value: 0, Reason: "must be given explicitly or by the block"}
}

func resolveRounding(r Rounding) (Rounding, error) {
	resolved, err := ParseRounding(string(r))
	if err != nil {
		return "", &InvalidSpecError{Field: "rounding", Value: r, Reason: "must be floor or ceil"}
	}
	return resolved, nil
}

// netArea clamps gross minus openings at zero.
func netArea(wallArea, openingArea float64) (float64, bool) {
	net := wallArea - openingArea
	if net < 0 {
		return 0, true
	}
	return net, false
}

func roundBlocks(exact float64, r Rounding) int {
	if exact <= 0 {
		return 0
	}
	if r == RoundCeil {
		return int(math.Ceil(exact - quotientEpsilon))
	}
	return int(math.Floor(exact + quotientEpsilon))
}

func openingField(i int, name string) string {
	return fmt.Sprintf("openings[%d].%s", i, name)
}
