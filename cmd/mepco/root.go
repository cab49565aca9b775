package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abiramimariappan7/mepco/internal/server"
	"github.com/abiramimariappan7/mepco/pkg/estimator"
)

var errInvalidProject = errors.New("project has validation errors")

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "mepco",
		Short:        "AAC block estimator and plant dashboard data tools",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(estimateCmd())
	rootCmd.AddCommand(footprintCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(salaryCmd())
	rootCmd.AddCommand(inventoryCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

func estimateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "estimate [project-path]",
		Short: "Estimate blocks for every block in the project using wall volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, args[0], "", asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func footprintCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "footprint [project-path]",
		Short: "Estimate blocks by dividing net wall area by block face area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, args[0], estimator.ModeFootprint, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the standard AAC block sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printCatalog(cmd.OutOrStdout(), estimator.StandardBlocks())
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a project file without printing an estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
}

func salaryCmd() *cobra.Command {
	var (
		q     salaryQuery
		sheet string
	)

	cmd := &cobra.Command{
		Use:   "salary [workbook]",
		Short: "Predict a monthly salary from the employee sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSalary(cmd, args[0], sheet, q)
		},
	}
	cmd.Flags().StringVar(&q.job, "job", "", "job title")
	cmd.Flags().StringVar(&q.department, "department", "", "department")
	cmd.Flags().StringVar(&q.education, "education", "", "education level")
	cmd.Flags().Float64Var(&q.experience, "experience", 1, "years of experience")
	cmd.Flags().Float64Var(&q.hours, "hours", 40, "working hours per week")
	cmd.Flags().BoolVar(&q.list, "list", false, "list the available categories and exit")
	cmd.Flags().StringVar(&sheet, "sheet", "", "employee sheet name")
	return cmd
}

func inventoryCmd() *cobra.Command {
	var (
		byDate bool
		sheet  string
	)

	cmd := &cobra.Command{
		Use:   "inventory [workbook]",
		Short: "Summarize production, sales and waste",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventory(cmd, args[0], sheet, byDate)
		},
	}
	cmd.Flags().BoolVar(&byDate, "by-date", false, "also print per-date totals")
	cmd.Flags().StringVar(&sheet, "sheet", "", "inventory sheet name")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local JSON API for estimates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(args[0], port, loggerFromContext(cmd.Context()))
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
