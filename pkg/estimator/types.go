package estimator

import (
	"fmt"
	"strings"

	"github.com/abiramimariappan7/mepco/pkg/units"
)

// RoomGeometry is a rectangular room. All three dimensions share Unit.
type RoomGeometry struct {
	Length float64    `yaml:"length" json:"length"`
	Width  float64    `yaml:"width" json:"width"`
	Height float64    `yaml:"height" json:"height"`
	Unit   units.Unit `yaml:"unit" json:"unit"`
}

// OpeningKind distinguishes doors from windows.
type OpeningKind string

const (
	Door   OpeningKind = "door"
	Window OpeningKind = "window"
)

func (k OpeningKind) Valid() bool {
	return k == Door || k == Window
}

// Opening is a group of identical doors or windows. UnitArea is the area of
// one instance in the room's unit squared.
type Opening struct {
	Kind     OpeningKind `yaml:"kind" json:"kind"`
	Count    int         `yaml:"count" json:"count"`
	UnitArea float64     `yaml:"unit_area" json:"unit_area"`
}

// BlockSpec describes one masonry block. UnitVolume takes precedence; when it
// is zero the volume is UnitArea * Thickness.
type BlockSpec struct {
	Name       string     `yaml:"name" json:"name"`
	UnitVolume float64    `yaml:"unit_volume" json:"unit_volume"`
	UnitArea   float64    `yaml:"unit_area" json:"unit_area"`
	Thickness  float64    `yaml:"thickness" json:"thickness"`
	Unit       units.Unit `yaml:"unit" json:"unit"`
}

// NewBlockSpec builds a spec from nominal face length, face height and
// thickness.
func NewBlockSpec(name string, length, height, thickness float64, unit units.Unit) BlockSpec {
	return BlockSpec{
		Name:       name,
		UnitVolume: length * height * thickness,
		UnitArea:   length * height,
		Thickness:  thickness,
		Unit:       unit,
	}
}

// Volume returns the block volume in m³, or 0 if it cannot be determined.
func (b BlockSpec) Volume() float64 {
	v := b.UnitVolume
	if v == 0 {
		v = b.UnitArea * b.Thickness
	}
	return b.Unit.VolumeToCubicMeters(v)
}

// Footprint returns the face area in m².
func (b BlockSpec) Footprint() float64 {
	return b.Unit.AreaToSquareMeters(b.UnitArea)
}

// Mode names the estimation formula that produced a result.
type Mode string

const (
	ModeVolume    Mode = "volume"
	ModeFootprint Mode = "footprint"
)

// ParseMode resolves a mode name; empty means volume.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeVolume:
		return ModeVolume, nil
	case ModeFootprint:
		return ModeFootprint, nil
	}
	return "", fmt.Errorf("unknown estimation mode %q", s)
}

// Rounding selects how the real-valued block quotient becomes a count.
type Rounding string

const (
	RoundFloor Rounding = "floor"
	RoundCeil  Rounding = "ceil"
)

// ParseRounding resolves a rounding name; empty means floor.
func ParseRounding(s string) (Rounding, error) {
	switch Rounding(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoundFloor:
		return RoundFloor, nil
	case RoundCeil:
		return RoundCeil, nil
	}
	return "", fmt.Errorf("unknown rounding %q", s)
}

// Options carries the per-call settings of a volume estimate.
//
// WallThickness is expressed in ThicknessUnit. When it is zero the block's own
// Thickness is used instead.
type Options struct {
	WallThickness float64    `yaml:"wall_thickness" json:"wall_thickness"`
	ThicknessUnit units.Unit `yaml:"thickness_unit" json:"thickness_unit"`
	Rounding      Rounding   `yaml:"rounding" json:"rounding"`
}

// EstimateResult holds every intermediate quantity of an estimate, in metres.
type EstimateResult struct {
	Block          string   `json:"block,omitempty"`
	Mode           Mode     `json:"mode"`
	Rounding       Rounding `json:"rounding"`
	WallArea       float64  `json:"wall_area"`
	OpeningArea    float64  `json:"opening_area"`
	NetWallArea    float64  `json:"net_wall_area"`
	WallThickness  float64  `json:"wall_thickness,omitempty"`
	WallVolume     float64  `json:"wall_volume,omitempty"`
	BlockVolume    float64  `json:"block_volume,omitempty"`
	BlockFootprint float64  `json:"block_footprint,omitempty"`
	BlocksExact    float64  `json:"blocks_exact"`
	BlocksRequired int      `json:"blocks_required"`
	Clamped        bool     `json:"clamped,omitempty"`
}
