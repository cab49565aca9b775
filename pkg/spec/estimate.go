package spec

import "github.com/abiramimariappan7/mepco/pkg/estimator"

// Estimate runs the configured estimation mode over every block.
func (p *Project) Estimate() ([]estimator.EstimateResult, error) {
	room, err := p.RoomGeometry()
	if err != nil {
		return nil, err
	}
	blocks, err := p.BlockSpecs()
	if err != nil {
		return nil, err
	}
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	mode, err := p.Mode()
	if err != nil {
		return nil, err
	}

	if mode == estimator.ModeFootprint {
		return estimator.EstimateCatalogByFootprint(room, p.OpeningList(), blocks, opts.Rounding)
	}
	return estimator.EstimateCatalog(room, p.OpeningList(), blocks, opts)
}
