package validation

import (
	"fmt"

	"github.com/abiramimariappan7/mepco/pkg/estimator"
	"github.com/abiramimariappan7/mepco/pkg/spec"
	"github.com/abiramimariappan7/mepco/pkg/units"
)

// ValidateSchema performs schema validation on a parsed Project.
// It checks structural correctness before any estimate is computed.
func ValidateSchema(p *spec.Project) *Report {
	r := NewReport()

	validateRoom(p, r)
	validateOpenings(p, r)
	validateBlocks(p, r)
	validateSettings(p, r)

	return r
}

func validateRoom(p *spec.Project, r *Report) {
	if _, err := units.ParseUnit(p.Room.Unit); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "room unit is not recognized",
			SpecPath:    "room.unit",
			ActualValue: p.Room.Unit,
			Expected:    "m, cm, mm, ft or in",
		})
	}

	dims := []struct {
		name  string
		value float64
	}{
		{"length", p.Room.Length},
		{"width", p.Room.Width},
		{"height", p.Room.Height},
	}
	for _, d := range dims {
		if !(d.value > 0) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("room %s must be greater than 0", d.name),
				SpecPath:    "room." + d.name,
				ActualValue: d.value,
				Expected:    "> 0",
			})
		}
	}
}

func validateOpenings(p *spec.Project, r *Report) {
	for i, o := range p.Openings {
		path := fmt.Sprintf("openings[%d]", i)
		if !estimator.OpeningKind(o.Kind).Valid() {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "opening kind must be door or window",
				SpecPath:    path + ".kind",
				ActualValue: o.Kind,
				Expected:    "door | window",
			})
		}
		if o.Count < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "opening count must not be negative",
				SpecPath:    path + ".count",
				ActualValue: o.Count,
				Expected:    ">= 0",
			})
		}
		if o.Count > 0 && !(o.UnitArea > 0) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "opening area must be greater than 0",
				SpecPath:    path + ".unit_area",
				ActualValue: o.UnitArea,
				Expected:    "> 0",
			})
		}
	}
}

func validateBlocks(p *spec.Project, r *Report) {
	if len(p.Blocks) == 0 {
		r.AddInfo(Result{
			Level:    LevelSchema,
			Message:  "no blocks listed; the standard AAC catalog will be used",
			SpecPath: "blocks",
		})
		return
	}

	mode, _ := estimator.ParseMode(p.Settings.Mode)
	for i, b := range p.Blocks {
		path := fmt.Sprintf("blocks[%d]", i)
		if _, err := units.ParseUnit(b.Unit); err != nil {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "block unit is not recognized",
				SpecPath:    path + ".unit",
				ActualValue: b.Unit,
				Expected:    "m, cm, mm, ft or in",
			})
		}
		for _, d := range []struct {
			name  string
			value float64
		}{
			{"length", b.Length},
			{"height", b.Height},
			{"thickness", b.Thickness},
			{"unit_volume", b.UnitVolume},
		} {
			if d.value < 0 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("block %s must not be negative", d.name),
					SpecPath:    path + "." + d.name,
					ActualValue: d.value,
					Expected:    ">= 0",
				})
			}
		}

		hasFace := b.Length > 0 && b.Height > 0
		if mode == estimator.ModeFootprint && !hasFace {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "footprint mode needs block length and height",
				SpecPath:    path,
				ActualValue: b.Name,
				Suggestions: []string{"set length and height", "switch settings.mode to volume"},
			})
			continue
		}
		if mode == estimator.ModeVolume && !(b.UnitVolume > 0) && !(hasFace && b.Thickness > 0) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "block volume is unavailable",
				SpecPath:    path,
				ActualValue: b.Name,
				Suggestions: []string{"set unit_volume", "set length, height and thickness"},
			})
		}
		if mode == estimator.ModeVolume && p.Settings.WallThickness == 0 && b.Thickness <= 0 {
			r.AddError(Result{
				Level:        LevelSchema,
				Message:      "wall thickness is not given",
				SpecPath:     path + ".thickness",
				ActualValue:  b.Thickness,
				ConflictWith: "settings.wall_thickness",
				Suggestions:  []string{"set settings.wall_thickness", "set the block thickness"},
			})
		}
	}
}

func validateSettings(p *spec.Project, r *Report) {
	s := p.Settings
	if s.WallThickness < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "wall thickness must not be negative",
			SpecPath:    "settings.wall_thickness",
			ActualValue: s.WallThickness,
			Expected:    ">= 0",
		})
	}
	if _, err := units.ParseUnit(s.ThicknessUnit); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "thickness unit is not recognized",
			SpecPath:    "settings.thickness_unit",
			ActualValue: s.ThicknessUnit,
			Expected:    "m, cm, mm, ft or in",
		})
	}
	if _, err := estimator.ParseRounding(s.Rounding); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "rounding must be floor or ceil",
			SpecPath:    "settings.rounding",
			ActualValue: s.Rounding,
			Expected:    "floor | ceil",
		})
	}
	if _, err := estimator.ParseMode(s.Mode); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "mode must be volume or footprint",
			SpecPath:    "settings.mode",
			ActualValue: s.Mode,
			Expected:    "volume | footprint",
		})
	}
}
