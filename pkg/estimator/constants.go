package estimator

import (
	"fmt"

	"github.com/abiramimariappan7/mepco/pkg/units"
)

// Standard AAC block face, in millimetres.
const (
	StandardFaceLengthMM = 600.0
	StandardFaceHeightMM = 200.0
)

// StandardThicknessesMM lists the stocked AAC block thicknesses.
var StandardThicknessesMM = []float64{100, 150, 200, 230}

// quotientEpsilon absorbs floating-point noise before floor/ceil, so that
// 40/0.04 yields 1000 and not 999.
const quotientEpsilon = 1e-9

// StandardBlocks returns the standard AAC catalog, thinnest first.
func StandardBlocks() []BlockSpec {
	blocks := make([]BlockSpec, 0, len(StandardThicknessesMM))
	for _, t := range StandardThicknessesMM {
		blocks = append(blocks, NewBlockSpec(
			standardName(t), StandardFaceLengthMM, StandardFaceHeightMM, t, units.Millimeter))
	}
	return blocks
}

func standardName(thicknessMM float64) string {
	return fmt.Sprintf("%gmm", thicknessMM)
}
