package validation

import (
	"errors"
	"strings"

	"github.com/abiramimariappan7/mepco/pkg/estimator"
	"github.com/abiramimariappan7/mepco/pkg/spec"
)

// Resolve runs the project's estimate and reports estimate-level findings.
// Estimator rejections become errors; clamped openings become warnings.
func Resolve(p *spec.Project) ([]estimator.EstimateResult, *Report) {
	r := NewReport()

	results, err := p.Estimate()
	if err != nil {
		r.AddError(estimateError(err))
		return nil, r
	}

	for _, res := range results {
		if res.Clamped {
			r.AddWarning(Result{
				Level:       LevelEstimate,
				Message:     "openings exceed gross wall area; net wall area clamped to 0",
				SpecPath:    "openings",
				ActualValue: res.OpeningArea,
				Expected:    "<= wall area",
				Suggestions: []string{"check opening counts and unit areas", "check the room unit"},
			})
			break
		}
	}
	for _, res := range results {
		if res.BlocksRequired == 0 && !res.Clamped {
			r.AddInfo(Result{
				Level:       LevelEstimate,
				Message:     "estimate rounds to zero blocks for " + res.Block,
				ActualValue: res.BlocksExact,
			})
		}
	}
	return results, r
}

func estimateError(err error) Result {
	res := Result{Level: LevelEstimate, Message: err.Error()}

	var ge *estimator.InvalidGeometryError
	var se *estimator.InvalidSpecError
	switch {
	case errors.As(err, &ge):
		res.SpecPath = "room." + ge.Field
		if strings.HasPrefix(ge.Field, "openings") {
			res.SpecPath = ge.Field
		}
		res.ActualValue = ge.Value
	case errors.As(err, &se):
		res.SpecPath = "blocks." + se.Field
		switch se.Field {
		case "wall_thickness", "thickness_unit", "rounding":
			res.SpecPath = "settings." + se.Field
		}
		res.ActualValue = se.Value
	}
	return res
}
