package app

import (
	"context"
	"fmt"
	"time"

	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/library"
	"github.com/inkwell-labs/inkctl/internal/tui"
	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show library stats, recent books and running jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}
			return runDashboard(ctx)
		},
	}
}

func runDashboard(ctx context.Context) error {
	books, err := loadLibrary(ctx)
	if err != nil {
		return err
	}
	progress := loadProgress(ctx, books)

	// Generation status only exists for books a job has touched. Probe the
	// newest drafts, anything older is settled.
	var jobs []api.GenerationProgress
	for _, b := range library.Recent(books, 5) {
		if b.Status != api.StatusDraft {
			continue
		}
		if p, err := client.GenerationProgressFor(ctx, b.ID); err == nil && p != nil && !p.Status.Terminal() {
			jobs = append(jobs, *p)
		}
	}

	fmt.Println(tui.RenderDashboard(store.User(), books, progress, jobs, time.Now()))
	return nil
}
