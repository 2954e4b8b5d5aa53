package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ukkm-backend/internal/app"
	"ukkm-backend/internal/archive"
	"ukkm-backend/internal/query"
	"ukkm-backend/internal/services"
)

type reportFlags struct {
	category string
	query    string
	format   string
	out      string
	archive  bool
}

// reportCommand exports the seeded inspections offline
func reportCommand(opts *options) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the inspection report (pdf, csv or json)",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := archive.New(cmd.Context(), opts.cfg, opts.log)
			if err != nil {
				return err
			}
			svc := app.Seeded(nil, reports, opts.log)
			if flags.archive {
				filter := query.InspectionFilter{Query: flags.query, Category: flags.category}
				key, err := svc.Reports.ArchiveInspectionReport(cmd.Context(), filter)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "archived as %s\n", key)
				return nil
			}
			return writeReport(cmd, svc.Reports, flags)
		},
	}

	cmd.Flags().StringVar(&flags.category, "category", query.All, "Inspection category filter")
	cmd.Flags().StringVarP(&flags.query, "query", "q", "", "Name search")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "pdf", "Output format: pdf, csv or json")
	cmd.Flags().BoolVar(&flags.archive, "archive", false, "Upload the PDF to the report archive instead of writing a file")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output file (default: report filename in the working directory, - for stdout)")
	return cmd
}

func writeReport(cmd *cobra.Command, reports *services.ReportService, flags *reportFlags) error {
	report := reports.BuildInspectionReport(cmd.Context(), query.InspectionFilter{Query: flags.query, Category: flags.category})

	var (
		body []byte
		err  error
	)
	switch flags.format {
	case "pdf":
		body, err = reports.GenerateInspectionPDF(report)
	case "csv":
		body, err = reports.GenerateInspectionCSV(report)
	case "json":
		body, err = json.MarshalIndent(report, "", "  ")
	default:
		return fmt.Errorf("unknown format %q (pdf, csv or json)", flags.format)
	}
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	out := flags.out
	if out == "" {
		out = services.ReportFilename(report, flags.format)
	}
	if out == "-" {
		_, err = cmd.OutOrStdout().Write(body)
		return err
	}

	if err := os.WriteFile(out, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d rows written to %s\n", len(report.Rows), out)
	return nil
}
