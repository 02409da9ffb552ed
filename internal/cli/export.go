package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallHang/internal/export"
	"github.com/piwi3910/WallHang/internal/project"
)

const (
	formatPDF    = "pdf"    // hanging plan
	formatLabels = "labels" // QR labels
	formatXLSX   = "xlsx"   // hanging schedule
)

type exportOpts struct {
	formats string
	output  string
}

func newExportCmd() *cobra.Command {
	opts := exportOpts{formats: formatPDF}

	cmd := &cobra.Command{
		Use:   "export <layout>",
		Short: "Export a hanging plan, QR labels or a hanging schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseExportFormats(opts.formats)
			if err != nil {
				return err
			}
			return runExport(cmd.Context(), cmd, args[0], formats, opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output format(s): pdf, labels, xlsx (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: layout path without extension)")

	return cmd
}

// parseExportFormats splits and validates the --format flag.
func parseExportFormats(s string) ([]string, error) {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		switch f {
		case formatPDF, formatLabels, formatXLSX:
			formats = append(formats, f)
		case "":
		default:
			return nil, fmt.Errorf("unknown export format %q (valid: pdf, labels, xlsx)", f)
		}
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("no export format given")
	}
	return formats, nil
}

// exportPath derives the file name for one format from the base path.
func exportPath(base, format string) string {
	switch format {
	case formatLabels:
		return base + "-labels.pdf"
	case formatXLSX:
		return base + ".xlsx"
	default:
		return base + ".pdf"
	}
}

func runExport(ctx context.Context, cmd *cobra.Command, path string, formats []string, output string) error {
	logger := loggerFromContext(ctx)

	layout, err := project.LoadLayout(path)
	if err != nil {
		return err
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}

	for _, format := range formats {
		out := exportPath(base, format)
		switch format {
		case formatPDF:
			err = export.ExportPDF(out, layout)
		case formatLabels:
			err = export.ExportLabels(out, layout)
		case formatXLSX:
			err = export.ExportSchedule(out, layout)
		}
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", format, err)
		}
		logger.Debug("exported", "format", format, "path", out)
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
