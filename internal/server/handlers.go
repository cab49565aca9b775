package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/abiramimariappan7/mepco/pkg/estimator"
	"github.com/abiramimariappan7/mepco/pkg/spec"
	"github.com/abiramimariappan7/mepco/pkg/units"
	"github.com/abiramimariappan7/mepco/pkg/validation"
)

type estimateRequest struct {
	Room     estimator.RoomGeometry `json:"room"`
	Openings []estimator.Opening    `json:"openings"`
	Block    estimator.BlockSpec    `json:"block"`
	Options  estimator.Options      `json:"options"`
}

type footprintRequest struct {
	Room          estimator.RoomGeometry `json:"room"`
	Openings      []estimator.Opening    `json:"openings"`
	FootprintArea float64                `json:"footprint_area"`
	Unit          units.Unit             `json:"unit"`
	Rounding      estimator.Rounding     `json:"rounding"`
}

type errorReply struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
}

type catalogEntry struct {
	estimator.BlockSpec
	VolumeM3    float64 `json:"volume_m3"`
	FootprintM2 float64 `json:"footprint_m2"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	blocks := estimator.StandardBlocks()
	entries := make([]catalogEntry, 0, len(blocks))
	for _, b := range blocks {
		entries = append(entries, catalogEntry{BlockSpec: b, VolumeM3: b.Volume(), FootprintM2: b.Footprint()})
	}
	render.JSON(w, r, entries)
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, project)
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	report := s.validate(project)
	if report.Valid {
		_, estimateReport := validation.Resolve(project)
		report.Merge(estimateReport)
	}
	render.JSON(w, r, report)
}

func (s *Server) handleProjectEstimate(w http.ResponseWriter, r *http.Request) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	report := s.validate(project)
	if !report.Valid {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, report)
		return
	}
	results, estimateReport := validation.Resolve(project)
	if !estimateReport.Valid {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, estimateReport)
		return
	}
	render.JSON(w, r, map[string]any{
		"project":    project.Project,
		"results":    results,
		"validation": estimateReport,
	})
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	tags := []unitTag{{"room.unit", req.Room.Unit}, {"block.unit", req.Block.Unit}}
	if req.Options.WallThickness != 0 {
		tags = append(tags, unitTag{"options.thickness_unit", req.Options.ThicknessUnit})
	}
	if field := missingUnit(tags); field != "" {
		s.unitRequired(w, r, field)
		return
	}
	result, err := estimator.Estimate(req.Room, req.Openings, req.Block, req.Options)
	if err != nil {
		s.rejected(w, r, err)
		return
	}
	render.JSON(w, r, result)
}

func (s *Server) handleFootprint(w http.ResponseWriter, r *http.Request) {
	var req footprintRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if field := missingUnit([]unitTag{{"room.unit", req.Room.Unit}, {"unit", req.Unit}}); field != "" {
		s.unitRequired(w, r, field)
		return
	}
	result, err := estimator.EstimateByFootprint(req.Room, req.Openings, req.FootprintArea, req.Unit, req.Rounding)
	if err != nil {
		s.rejected(w, r, err)
		return
	}
	render.JSON(w, r, result)
}

func (s *Server) loadProject(w http.ResponseWriter, r *http.Request) (*spec.Project, bool) {
	project, err := spec.LoadProject(s.projectPath)
	if err != nil {
		s.logger.Error("loading project", "path", s.projectPath, "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorReply{Error: err.Error(), Kind: "project_unavailable"})
		return nil, false
	}
	return project, true
}

// validate runs schema validation and reads the project's dataset, which may
// add a measured block.
func (s *Server) validate(project *spec.Project) *validation.Report {
	report := validation.ValidateSchema(project)
	report.Merge(validation.ResolveDataset(project, s.projectPath))
	return report
}

type unitTag struct {
	field string
	unit  units.Unit
}

// missingUnit returns the first field whose unit tag is empty. Project files
// may default to metres; API callers must say which unit they mean.
func missingUnit(tags []unitTag) string {
	for _, t := range tags {
		if t.unit == "" {
			return t.field
		}
	}
	return ""
}

func (s *Server) unitRequired(w http.ResponseWriter, r *http.Request, field string) {
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, errorReply{Error: field + " is required", Kind: "missing_unit", Field: field})
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorReply{Error: err.Error(), Kind: "bad_request"})
}

// rejected maps estimator validation errors to 422 and anything else to 500.
func (s *Server) rejected(w http.ResponseWriter, r *http.Request, err error) {
	var ge *estimator.InvalidGeometryError
	var se *estimator.InvalidSpecError
	switch {
	case errors.As(err, &ge):
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, errorReply{Error: err.Error(), Kind: "invalid_geometry", Field: ge.Field})
	case errors.As(err, &se):
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, errorReply{Error: err.Error(), Kind: "invalid_spec", Field: se.Field})
	default:
		s.logger.Error("estimate failed", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorReply{Error: err.Error(), Kind: "internal"})
	}
}
