package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/esgbuddy/esgbuddy/internal/history"
	"github.com/esgbuddy/esgbuddy/pkg/config"
	"github.com/esgbuddy/esgbuddy/pkg/surface"
)

func historyPath() string {
	cfg := loadConfig(cwd())
	return firstNonEmpty(cfg.History.Path, config.HistoryPath())
}

func newHistoryCmd() *cobra.Command {
	var (
		companyID string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List reports recorded with compute --save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd.Context(), historyPath(), history.ListOptions{
				CompanyID: companyID,
				Limit:     limit,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&companyID, "company", "", "Only show reports for this company_id")
	cmd.Flags().IntVar(&limit, "limit", history.DefaultLimit, "Maximum number of entries")

	cmd.AddCommand(newHistoryShowCmd())
	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a recorded report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid history id %q", args[0])
			}
			return runHistoryShow(cmd.Context(), historyPath(), id, outputFmt, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json or markdown")
	return cmd
}

func runHistoryList(ctx context.Context, path string, opts history.ListOptions, w io.Writer) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(ctx, opts)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No reports recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPANY\tFY\tNAME\tOVERALL\tCOMPLETENESS\tRECORDED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%.1f\t%.1f%%\t%s\n",
			e.ID, e.CompanyID, e.FiscalYear, e.DisplayName, e.OverallScore, e.CompletenessPct, e.CreatedAt)
	}
	return tw.Flush()
}

func runHistoryShow(ctx context.Context, path string, id int64, outputFmt string, w io.Writer) error {
	renderer, err := surface.ForFormat(outputFmt)
	if err != nil {
		return err
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	e, err := store.Get(ctx, id)
	if err != nil {
		return err
	}
	return renderer.Render(w, e.Report)
}
