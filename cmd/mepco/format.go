package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiramimariappan7/mepco/pkg/estimator"
	"github.com/abiramimariappan7/mepco/pkg/inventory"
	"github.com/abiramimariappan7/mepco/pkg/salary"
	"github.com/abiramimariappan7/mepco/pkg/spec"
	"github.com/abiramimariappan7/mepco/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, warn := range r.Warnings {
			printResult(w, warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, res validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
	if res.SpecPath != "" {
		fmt.Fprintf(w, "    -> %s = %v\n", res.SpecPath, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	if res.ConflictWith != "" {
		fmt.Fprintf(w, "    conflicts with: %s\n", res.ConflictWith)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printEstimate(w io.Writer, p *spec.Project, results []estimator.EstimateResult) {
	title := "Block Estimate"
	if p.Project.Name != "" {
		title += ": " + p.Project.Name
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No blocks to estimate.")
		return
	}

	first := results[0]
	fmt.Fprintf(w, "  Gross wall area:  %10.2f m²\n", first.WallArea)
	fmt.Fprintf(w, "  Opening area:     %10.2f m²\n", first.OpeningArea)
	fmt.Fprintf(w, "  Net wall area:    %10.2f m²\n", first.NetWallArea)
	fmt.Fprintf(w, "  Mode:             %10s (%s)\n", first.Mode, first.Rounding)
	fmt.Fprintln(w)

	if first.Mode == estimator.ModeFootprint {
		fmt.Fprintf(w, "%-18s %14s %14s %10s\n", "Block", "Face (m²)", "Exact", "Blocks")
		fmt.Fprintf(w, "%-18s %14s %14s %10s\n", "------------------", "--------------", "--------------", "----------")
		for _, r := range results {
			fmt.Fprintf(w, "%-18s %14.4f %14.2f %10d\n", blockLabel(r), r.BlockFootprint, r.BlocksExact, r.BlocksRequired)
		}
		return
	}

	fmt.Fprintf(w, "%-18s %12s %14s %14s %10s\n", "Block", "Wall (m)", "Wall (m³)", "Block (m³)", "Blocks")
	fmt.Fprintf(w, "%-18s %12s %14s %14s %10s\n", "------------------", "------------", "--------------", "--------------", "----------")
	for _, r := range results {
		fmt.Fprintf(w, "%-18s %12.3f %14.3f %14.5f %10d\n",
			blockLabel(r), r.WallThickness, r.WallVolume, r.BlockVolume, r.BlocksRequired)
	}
}

func blockLabel(r estimator.EstimateResult) string {
	if r.Block == "" {
		return "(unnamed)"
	}
	return r.Block
}

func printCatalog(w io.Writer, blocks []estimator.BlockSpec) {
	fmt.Fprintf(w, "%-10s %18s %14s %12s\n", "Block", "Size (mm)", "Volume (m³)", "Face (m²)")
	for _, b := range blocks {
		size := fmt.Sprintf("%gx%gx%g", estimator.StandardFaceLengthMM, estimator.StandardFaceHeightMM, b.Thickness)
		fmt.Fprintf(w, "%-10s %18s %14.4f %12.4f\n", b.Name, size, b.Volume(), b.Footprint())
	}
}

func printSalary(w io.Writer, p salary.Prediction) {
	fmt.Fprintf(w, "Peer group:        %d employees\n", p.Matched)
	fmt.Fprintf(w, "Average salary:    ₹%s\n", formatThousands(int(p.BaseSalary)))
	fmt.Fprintf(w, "Bonus:             ₹%s\n", formatThousands(int(p.Bonus)))
	fmt.Fprintf(w, "Predicted monthly: ₹%s\n", formatThousands(p.Predicted))
}

func printCategories(w io.Writer, c salary.Categories) {
	fmt.Fprintf(w, "Job titles:       %s\n", strings.Join(c.JobTitles, ", "))
	fmt.Fprintf(w, "Departments:      %s\n", strings.Join(c.Departments, ", "))
	fmt.Fprintf(w, "Education levels: %s\n", strings.Join(c.EducationLevels, ", "))
}

func printInventory(w io.Writer, s inventory.Summary) {
	fmt.Fprintln(w, "Inventory Summary")
	fmt.Fprintln(w, "-----------------")
	fmt.Fprintf(w, "  Blocks made:   %s\n", formatThousands(int(s.Made)))
	fmt.Fprintf(w, "  Blocks sold:   %s\n", formatThousands(int(s.Sold)))
	fmt.Fprintf(w, "  Remaining:     %s\n", formatThousands(int(s.Remaining)))
	fmt.Fprintf(w, "  Waste (kg):    %s\n", formatThousands(int(s.WasteKg)))
	fmt.Fprintf(w, "  Sell-through:  %.1f%% over %d days\n", s.SellThrough()*100, s.Days)
}

func printDailyTotals(w io.Writer, days []inventory.DailyTotals) {
	fmt.Fprintf(w, "%-12s %12s %12s %12s\n", "Date", "Made", "Sold", "Waste (kg)")
	for _, d := range days {
		fmt.Fprintf(w, "%-12s %12.0f %12.0f %12.1f\n", d.Date, d.Made, d.Sold, d.WasteKg)
	}
}

// formatThousands groups digits in threes with commas.
func formatThousands(v int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
