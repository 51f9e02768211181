package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/esgbuddy/esgbuddy/internal/company"
	"github.com/esgbuddy/esgbuddy/internal/ingestion"
	"github.com/esgbuddy/esgbuddy/internal/items"
	"github.com/esgbuddy/esgbuddy/internal/seed"
	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace stored companies with the demo companies",
		Long: `Deletes every stored company, then scores and stores the demo company and its
GreenTech and TechCorp variants. Uses DATABASE_URL and the STORAGE_* settings
of the service.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDatabase(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			storage, err := ingestion.NewStorage(ctx, ingestion.StorageConfigFromEnv())
			if err != nil {
				return err
			}
			svc := ingestion.NewService(company.NewService(db), storage, scoring.NewEngine())
			return runSeed(ctx, svc, cmd.OutOrStdout())
		},
	}
}

func runSeed(ctx context.Context, svc *ingestion.Service, w io.Writer) error {
	docs, err := seed.Companies()
	if err != nil {
		return err
	}

	n, err := svc.Clear(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Deleted %d existing companies\n", n)

	for _, doc := range docs {
		cd, err := svc.Ingest(ctx, doc)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", doc.ReportMetadata.CompanyID, err)
		}
		qa := cd.Report.QA
		fmt.Fprintf(w, "%s\n", doc.DisplayName())
		fmt.Fprintf(w, "  Company ID:         %s\n", doc.ReportMetadata.CompanyID)
		fmt.Fprintf(w, "  Overall score:      %.1f/100\n", cd.Report.OverallScore)
		fmt.Fprintf(w, "  Completeness:       %.1f%%\n", qa.CompletenessPct)
		fmt.Fprintf(w, "  External assurance: %s\n", yesNo(qa.HasExternalAssurance))
		fmt.Fprintf(w, "  ID:                 %s\n\n", cd.ID)
	}

	fmt.Fprintf(os.Stderr, "Seeded %d companies\n", len(docs))
	return nil
}

func newPopulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "populate",
		Short: "Replace stored items with the demo initiatives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDatabase(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			return runPopulate(ctx, items.NewService(db), cmd.OutOrStdout())
		},
	}
}

// itemWriter is the subset of items.Service used by populate.
type itemWriter interface {
	DeleteAll(ctx context.Context) (int64, error)
	Create(ctx context.Context, fields map[string]any) (*items.Item, error)
}

func runPopulate(ctx context.Context, svc itemWriter, w io.Writer) error {
	n, err := svc.DeleteAll(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Cleared %d existing items\n", n)

	for i, fields := range seed.SampleItems() {
		it, err := svc.Create(ctx, fields)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d. %v (%v) - Impact: %v\n", i+1, it.Data["name"], it.Data["category"], it.Data["impact"])
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
