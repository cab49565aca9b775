package spec

import "github.com/abiramimariappan7/mepco/pkg/estimator"

// Project is the top-level specification of one block estimate.
type Project struct {
	SpecVersion string       `yaml:"spec_version" json:"spec_version"`
	Project     ProjectInfo  `yaml:"project" json:"project"`
	Room        RoomDef      `yaml:"room" json:"room"`
	Openings    []OpeningDef `yaml:"openings" json:"openings"`
	Blocks      []BlockDef   `yaml:"blocks" json:"blocks"`
	Settings    Settings     `yaml:"settings" json:"settings"`
	Dataset     DatasetDef   `yaml:"dataset" json:"dataset"`

	// MeasuredBlocks are derived from the dataset at run time and estimated
	// after Blocks.
	MeasuredBlocks []estimator.BlockSpec `yaml:"-" json:"measured_blocks,omitempty"`
}

type ProjectInfo struct {
	Name     string `yaml:"name" json:"name"`
	Customer string `yaml:"customer" json:"customer"`
	Site     string `yaml:"site" json:"site"`
}

type RoomDef struct {
	Length float64 `yaml:"length" json:"length"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Unit   string  `yaml:"unit" json:"unit"`
}

// OpeningDef is a group of identical doors or windows. UnitArea is in the
// room's unit squared.
type OpeningDef struct {
	Kind     string  `yaml:"kind" json:"kind"`
	Count    int     `yaml:"count" json:"count"`
	UnitArea float64 `yaml:"unit_area" json:"unit_area"`
}

// BlockDef names a block by its nominal dimensions, or by a measured unit
// volume when the dimensions are unknown.
type BlockDef struct {
	Name       string  `yaml:"name" json:"name"`
	Length     float64 `yaml:"length" json:"length"`
	Height     float64 `yaml:"height" json:"height"`
	Thickness  float64 `yaml:"thickness" json:"thickness"`
	UnitVolume float64 `yaml:"unit_volume" json:"unit_volume"`
	Unit       string  `yaml:"unit" json:"unit"`
}

type Settings struct {
	WallThickness float64 `yaml:"wall_thickness" json:"wall_thickness"`
	ThicknessUnit string  `yaml:"thickness_unit" json:"thickness_unit"`
	Rounding      string  `yaml:"rounding" json:"rounding"`
	Mode          string  `yaml:"mode" json:"mode"`
}

// DatasetDef points at the workbook the dashboard reads. Empty sheet names
// fall back to the dataset package defaults.
type DatasetDef struct {
	Path           string `yaml:"path" json:"path"`
	EmployeeSheet  string `yaml:"employee_sheet" json:"employee_sheet"`
	BlockSheet     string `yaml:"block_sheet" json:"block_sheet"`
	InventorySheet string `yaml:"inventory_sheet" json:"inventory_sheet"`
}
