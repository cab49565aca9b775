package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abiramimariappan7/mepco/pkg/estimator"
	"github.com/abiramimariappan7/mepco/pkg/units"
)

// ProjectFile is the file LoadProject looks for.
const ProjectFile = "project.yaml"

// Load reads a project spec from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a project spec from YAML bytes.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}
	return &p, nil
}

// LoadProject loads a project spec from a project directory.
// It looks for project.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}

// DatasetPath resolves the dataset path relative to projectDir.
// It returns "" when no dataset is configured.
func (p *Project) DatasetPath(projectDir string) string {
	if p.Dataset.Path == "" {
		return ""
	}
	if filepath.IsAbs(p.Dataset.Path) {
		return p.Dataset.Path
	}
	return filepath.Join(projectDir, p.Dataset.Path)
}

// RoomGeometry converts the room definition.
func (p *Project) RoomGeometry() (estimator.RoomGeometry, error) {
	u, err := units.ParseUnit(p.Room.Unit)
	if err != nil {
		return estimator.RoomGeometry{}, fmt.Errorf("room.unit: %w", err)
	}
	return estimator.RoomGeometry{
		Length: p.Room.Length,
		Width:  p.Room.Width,
		Height: p.Room.Height,
		Unit:   u,
	}, nil
}

// OpeningList converts the opening definitions.
func (p *Project) OpeningList() []estimator.Opening {
	openings := make([]estimator.Opening, 0, len(p.Openings))
	for _, o := range p.Openings {
		openings = append(openings, estimator.Opening{
			Kind:     estimator.OpeningKind(o.Kind),
			Count:    o.Count,
			UnitArea: o.UnitArea,
		})
	}
	return openings
}

// BlockSpecs converts the block definitions and appends MeasuredBlocks. With
// neither present it returns the standard AAC catalog.
func (p *Project) BlockSpecs() ([]estimator.BlockSpec, error) {
	if len(p.Blocks) == 0 && len(p.MeasuredBlocks) == 0 {
		return estimator.StandardBlocks(), nil
	}
	blocks := make([]estimator.BlockSpec, 0, len(p.Blocks)+len(p.MeasuredBlocks))
	for i, b := range p.Blocks {
		u, err := units.ParseUnit(b.Unit)
		if err != nil {
			return nil, fmt.Errorf("blocks[%d].unit: %w", i, err)
		}
		spec := estimator.NewBlockSpec(b.Name, b.Length, b.Height, b.Thickness, u)
		if b.UnitVolume > 0 {
			spec.UnitVolume = b.UnitVolume
		}
		blocks = append(blocks, spec)
	}
	return append(blocks, p.MeasuredBlocks...), nil
}

// Options converts the volume-mode settings.
func (p *Project) Options() (estimator.Options, error) {
	u, err := units.ParseUnit(p.Settings.ThicknessUnit)
	if err != nil {
		return estimator.Options{}, fmt.Errorf("settings.thickness_unit: %w", err)
	}
	r, err := estimator.ParseRounding(p.Settings.Rounding)
	if err != nil {
		return estimator.Options{}, fmt.Errorf("settings.rounding: %w", err)
	}
	return estimator.Options{
		WallThickness: p.Settings.WallThickness,
		ThicknessUnit: u,
		Rounding:      r,
	}, nil
}

// Mode returns the configured estimation mode.
func (p *Project) Mode() (estimator.Mode, error) {
	m, err := estimator.ParseMode(p.Settings.Mode)
	if err != nil {
		return "", fmt.Errorf("settings.mode: %w", err)
	}
	return m, nil
}
