package validation

import (
	"errors"
	"fmt"

	"github.com/abiramimariappan7/mepco/pkg/dataset"
	"github.com/abiramimariappan7/mepco/pkg/estimator"
	"github.com/abiramimariappan7/mepco/pkg/spec"
)

// MeasuredBlockName names the block derived from the dataset's measurements.
const MeasuredBlockName = "dataset mean"

// ResolveDataset opens the project's workbook, if one is configured, checks
// that its sheets decode, and appends the mean measured block to
// p.MeasuredBlocks. A missing sheet is a warning; an unreadable workbook or a
// malformed cell is an error.
func ResolveDataset(p *spec.Project, projectDir string) *Report {
	r := NewReport()

	path := p.DatasetPath(projectDir)
	if path == "" {
		return r
	}
	wb, err := dataset.OpenWorkbook(path)
	if err != nil {
		r.AddError(Result{
			Level:       LevelDataset,
			Message:     err.Error(),
			SpecPath:    "dataset.path",
			ActualValue: p.Dataset.Path,
		})
		return r
	}
	r.Merge(ValidateWorkbook(p, wb))
	return r
}

// ValidateWorkbook checks the three dashboard sheets of wb and, when block
// measurements are present, appends their mean to p.MeasuredBlocks.
func ValidateWorkbook(p *spec.Project, wb *dataset.Workbook) *Report {
	r := NewReport()
	d := p.Dataset

	employees, err := wb.Employees(d.EmployeeSheet)
	sheetFinding(r, "dataset.employee_sheet", "employee records", len(employees), err)

	records, err := wb.InventoryRecords(d.InventorySheet)
	sheetFinding(r, "dataset.inventory_sheet", "inventory records", len(records), err)

	blocks, err := wb.BlockMeasurements(d.BlockSheet)
	sheetFinding(r, "dataset.block_sheet", "block measurements", len(blocks), err)
	if err != nil || len(blocks) == 0 {
		return r
	}

	block, err := dataset.MeanBlock(MeasuredBlockName, blocks)
	if err != nil {
		r.AddWarning(Result{
			Level:    LevelDataset,
			Message:  err.Error(),
			SpecPath: "dataset.block_sheet",
		})
		return r
	}
	if reason := unusableBlock(p, block); reason != "" {
		r.AddWarning(Result{
			Level:       LevelDataset,
			Message:     "measured block skipped: " + reason,
			SpecPath:    "dataset.block_sheet",
			Suggestions: []string{"add Length, Height and Thickness columns to the block sheet"},
		})
		return r
	}
	p.MeasuredBlocks = append(p.MeasuredBlocks, block)
	return r
}

// unusableBlock reports why block cannot be estimated under p's settings, or
// "" when it can. An unparseable mode is left to ValidateSchema.
func unusableBlock(p *spec.Project, block estimator.BlockSpec) string {
	mode, err := p.Mode()
	if err != nil {
		return ""
	}
	switch {
	case mode == estimator.ModeFootprint && !(block.UnitArea > 0):
		return "footprint mode needs a face area and the sheet has no length and height"
	case mode == estimator.ModeVolume && p.Settings.WallThickness == 0 && !(block.Thickness > 0):
		return "no settings.wall_thickness and the sheet has no thickness"
	}
	return ""
}

func sheetFinding(r *Report, path, what string, n int, err error) {
	switch {
	case errors.Is(err, dataset.ErrSheetNotFound):
		r.AddWarning(Result{
			Level:    LevelDataset,
			Message:  err.Error(),
			SpecPath: path,
		})
	case err != nil:
		r.AddError(Result{
			Level:    LevelDataset,
			Message:  err.Error(),
			SpecPath: path,
		})
	default:
		r.AddInfo(Result{
			Level:    LevelDataset,
			Message:  fmt.Sprintf("read %d %s", n, what),
			SpecPath: path,
		})
	}
}
