package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/esgbuddy/esgbuddy/internal/history"
	"github.com/esgbuddy/esgbuddy/pkg/config"
	"github.com/esgbuddy/esgbuddy/pkg/esg"
	"github.com/esgbuddy/esgbuddy/pkg/scoring"
	"github.com/esgbuddy/esgbuddy/pkg/surface"
)

// writeDefault is the --write value used when the flag is given without a
// path: the report goes to the per-user reports directory.
const writeDefault = "auto"

func newComputeCmd() *cobra.Command {
	var (
		outputFmt string
		baseRoute string
		notes     bool
		writePath string
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "compute <file|->",
		Short: "Score a company disclosure document",
		Long: `Reads a CompanyData JSON document from a file (or stdin with "-"), computes
the ESG report and prints it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cwd())
			if !cmd.Flags().Changed("output") {
				outputFmt = cfg.Output.Format
			}
			return runCompute(cmd.Context(), computeOpts{
				input:     args[0],
				outputFmt: outputFmt,
				baseRoute: firstNonEmpty(baseRoute, cfg.Scoring.ContentIndexBaseRoute),
				notes:     notes || cfg.Scoring.Notes,
				writePath: writePath,
				save:      save || cfg.History.Enabled,
				history:   firstNonEmpty(cfg.History.Path, config.HistoryPath()),
			}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json or markdown")
	cmd.Flags().StringVar(&baseRoute, "base-route", "", "Prefix for content index locations (default /disclosures)")
	cmd.Flags().BoolVar(&notes, "notes", false, "Annotate topic scores with defaulted metrics")
	cmd.Flags().StringVar(&writePath, "write", "", "Also write the JSON report to this path (no value: reports cache dir)")
	cmd.Flags().Lookup("write").NoOptDefVal = writeDefault
	cmd.Flags().BoolVar(&save, "save", false, "Record the report in the local history")

	return cmd
}

type computeOpts struct {
	input     string
	outputFmt string
	baseRoute string
	notes     bool
	writePath string
	save      bool
	history   string
}

func runCompute(ctx context.Context, opts computeOpts, stdin io.Reader, stdout io.Writer) error {
	renderer, err := surface.ForFormat(opts.outputFmt)
	if err != nil {
		return err
	}

	doc, err := readDocument(opts.input, stdin)
	if err != nil {
		return err
	}

	engineOpts := []scoring.Option{scoring.WithNotes(opts.notes)}
	if opts.baseRoute != "" {
		engineOpts = append(engineOpts, scoring.WithBaseRoute(opts.baseRoute))
	}
	report, err := scoring.NewEngine(engineOpts...).Compute(doc)
	if err != nil {
		return fmt.Errorf("computing scores: %w", err)
	}

	if opts.writePath != "" {
		path := opts.writePath
		if path == writeDefault {
			path = config.ReportPath(report.ReportRef.CompanyID, report.ReportRef.ReportID)
		}
		if err := esg.SaveJSON(path, report); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", path)
	}

	if opts.save {
		store, err := history.Open(opts.history)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.Record(ctx, opts.input, doc.DisplayName(), report)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved to history as #%d\n", id)
	}

	return renderer.Render(stdout, report)
}

func readDocument(input string, stdin io.Reader) (*esg.CompanyData, error) {
	if input == "-" {
		return esg.DecodeDocument(stdin)
	}
	return esg.LoadDocument(input)
}

func loadConfig(dir string) *config.Config {
	cfgFile := config.FindConfigFile(dir)
	if cfgFile == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

func cwd() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
