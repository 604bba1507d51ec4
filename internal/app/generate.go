package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/tui"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate books with AI",
	}
	cmd.AddCommand(
		newGenerateStartCmd(),
		newGenerateProgressCmd(),
		newGenerateCancelCmd(),
		newGenerateRetryCmd(),
	)
	return cmd
}

func generationFlags(cmd *cobra.Command, req *api.GenerationRequest) {
	cmd.Flags().StringVar(&req.Description, "description", "", "What the book should be about")
	cmd.Flags().StringVar(&req.Genre, "genre", "", "Genre")
	cmd.Flags().StringSliceVar(&req.Tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().IntVar(&req.ChapterCount, "chapters", 0, "Number of chapters (server default if omitted)")
	cmd.Flags().IntVar(&req.TargetWordCount, "words", 0, "Target word count (server default if omitted)")
}

func newGenerateStartCmd() *cobra.Command {
	var (
		req   api.GenerationRequest
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "start <title>",
		Short: "Start a generation job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}

			req.Title = args[0]
			start, err := client.StartGeneration(ctx, req)
			if err != nil {
				return err
			}
			ok("generation started for %q", req.Title)
			printField("book", start.BookID.String())
			printField("status", string(start.Status))

			if watch && tui.ShouldUseTUI(cmd) {
				return watchAndReport(start.BookID)
			}
			fmt.Printf("\nFollow along with: inkctl generate progress %s --watch\n", start.BookID)
			return nil
		},
	}

	generationFlags(cmd, &req)
	cmd.Flags().BoolVar(&watch, "watch", false, "Watch progress until the job finishes")
	return cmd
}

func newGenerateProgressCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "progress <book>",
		Short: "Show a book's generation status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}
			book, err := resolveBook(ctx, args[0])
			if err != nil {
				return err
			}

			if watch && tui.ShouldUseTUI(cmd) {
				return watchAndReport(book.ID)
			}

			prog, err := client.GenerationProgressFor(ctx, book.ID)
			if err != nil {
				return err
			}
			printGenerationStatus(prog)
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Watch progress until the job finishes")
	return cmd
}

func newGenerateCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <book>",
		Short: "Cancel a running generation job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}
			book, err := resolveBook(ctx, args[0])
			if err != nil {
				return err
			}
			res, err := client.CancelGeneration(ctx, book.ID)
			if err != nil {
				return err
			}
			ok("%s", res.Message)
			return nil
		},
	}
}

func newGenerateRetryCmd() *cobra.Command {
	var (
		req   api.GenerationRequest
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "retry <book>",
		Short: "Retry a failed generation job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}
			book, err := resolveBook(ctx, args[0])
			if err != nil {
				return err
			}

			req.Title = book.Title
			start, err := client.RetryGeneration(ctx, book.ID, req)
			if err != nil {
				return err
			}
			ok("generation restarted for %q", book.Title)
			printField("status", string(start.Status))

			if watch && tui.ShouldUseTUI(cmd) {
				return watchAndReport(book.ID)
			}
			return nil
		},
	}

	generationFlags(cmd, &req)
	cmd.Flags().BoolVar(&watch, "watch", false, "Watch progress until the job finishes")
	return cmd
}

func watchAndReport(bookID uuid.UUID) error {
	final, err := tui.WatchGeneration(client, bookID)
	if err != nil {
		return err
	}
	if final == nil {
		fmt.Println("Stopped watching. The job keeps running server-side.")
		return nil
	}
	printGenerationStatus(final)
	return nil
}

func printGenerationStatus(p *api.GenerationProgress) {
	header("Generation")
	printField("status", string(p.Status))
	printField("progress", fmt.Sprintf("%d%%", p.ProgressPercent))
	if p.CurrentChapter != nil && p.TotalChapters != nil {
		printField("chapter", fmt.Sprintf("%d of %d", *p.CurrentChapter, *p.TotalChapters))
	}
	if p.ErrorMessage != "" {
		printField("error", p.ErrorMessage)
	}
	switch p.Status {
	case api.GenerationCompleted:
		ok("book is ready — open it with: inkctl read %s", p.BookID)
	case api.GenerationFailed:
		warn("generation failed — retry with: inkctl generate retry %s", p.BookID)
	}
}
