package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abiramimariappan7/mepco/pkg/dataset"
	"github.com/abiramimariappan7/mepco/pkg/estimator"
	"github.com/abiramimariappan7/mepco/pkg/inventory"
	"github.com/abiramimariappan7/mepco/pkg/salary"
	"github.com/abiramimariappan7/mepco/pkg/spec"
	"github.com/abiramimariappan7/mepco/pkg/validation"
)

// loadAndValidate loads the project, applies a mode override, runs schema
// validation and reads the configured dataset, if any.
func loadAndValidate(cmd *cobra.Command, projectPath string, mode estimator.Mode) (*spec.Project, *validation.Report, error) {
	logger := loggerFromContext(cmd.Context())
	start := time.Now()

	project, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	if mode != "" {
		project.Settings.Mode = string(mode)
	}
	schemaReport := validation.ValidateSchema(project)
	schemaReport.Merge(validation.ResolveDataset(project, projectPath))
	timed(logger, start, "loaded project", "path", projectPath, "name", project.Project.Name, "summary", schemaReport.Summary)
	return project, schemaReport, nil
}

func runValidate(cmd *cobra.Command, projectPath string) error {
	project, schemaReport, err := loadAndValidate(cmd, projectPath, "")
	if err != nil {
		return err
	}

	if schemaReport.Valid {
		_, estimateReport := validation.Resolve(project)
		schemaReport.Merge(estimateReport)
	}

	printValidationReport(cmd.OutOrStdout(), schemaReport)

	if !schemaReport.Valid {
		return errInvalidProject
	}
	return nil
}

func runEstimate(cmd *cobra.Command, projectPath string, mode estimator.Mode, asJSON bool) error {
	out := cmd.OutOrStdout()
	logger := loggerFromContext(cmd.Context())

	project, schemaReport, err := loadAndValidate(cmd, projectPath, mode)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(out, schemaReport)
		return fmt.Errorf("%w; fix before estimating", errInvalidProject)
	}

	start := time.Now()
	results, estimateReport := validation.Resolve(project)
	if !estimateReport.Valid {
		printValidationReport(out, estimateReport)
		return fmt.Errorf("estimate rejected: %s", estimateReport.Errors[0].Message)
	}
	timed(logger, start, "estimated", "blocks", len(results), "mode", project.Settings.Mode)
	for _, res := range schemaReport.ByLevel(validation.LevelDataset) {
		logger.Debug(res.Message, "severity", res.Severity, "path", res.SpecPath)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"project":    project.Project,
			"results":    results,
			"validation": estimateReport,
		})
	}

	printEstimate(out, project, results)
	if len(estimateReport.Warnings) > 0 {
		fmt.Fprintln(out)
		printValidationReport(out, estimateReport)
	}
	return nil
}

type salaryQuery struct {
	job        string
	department string
	education  string
	experience float64
	hours      float64
	list       bool
}

func runSalary(cmd *cobra.Command, workbookPath, sheet string, q salaryQuery) error {
	logger := loggerFromContext(cmd.Context())

	wb, err := dataset.OpenWorkbook(workbookPath)
	if err != nil {
		return err
	}
	records, err := wb.Employees(sheet)
	if err != nil {
		return fmt.Errorf("reading employees: %w", err)
	}
	logger.Debug("read employee records", "count", len(records))

	if q.list {
		printCategories(cmd.OutOrStdout(), salary.CategoriesOf(records))
		return nil
	}

	prediction, err := salary.Predict(records, salary.Query{
		JobTitle:       q.job,
		Department:     q.department,
		EducationLevel: q.education,
		Experience:     q.experience,
		Hours:          q.hours,
	})
	if err != nil {
		return err
	}
	printSalary(cmd.OutOrStdout(), prediction)
	return nil
}

func runInventory(cmd *cobra.Command, workbookPath, sheet string, byDate bool) error {
	logger := loggerFromContext(cmd.Context())

	wb, err := dataset.OpenWorkbook(workbookPath)
	if err != nil {
		return err
	}
	records, err := wb.InventoryRecords(sheet)
	if err != nil {
		return fmt.Errorf("reading inventory: %w", err)
	}
	logger.Debug("read inventory records", "count", len(records))

	out := cmd.OutOrStdout()
	printInventory(out, inventory.Summarize(records))
	if byDate {
		fmt.Fprintln(out)
		printDailyTotals(out, inventory.ByDate(records))
	}
	return nil
}
