package app

import (
	"context"
	"fmt"

	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/cache"
	"github.com/inkwell-labs/inkctl/internal/reader"
	"github.com/inkwell-labs/inkctl/internal/tui"
	"github.com/spf13/cobra"
)

func newReadCmd() *cobra.Command {
	var fromStart bool

	cmd := &cobra.Command{
		Use:   "read <book>",
		Short: "Open a book in the reading view",
		Long: `Open a book in the full-screen reading view.

<book> is a book id or a title fragment matched against your library.
Reading resumes from the last synced position unless --from-start is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}
			if !tui.ShouldUseTUI(cmd) {
				return fmt.Errorf("the reading view needs an interactive terminal")
			}

			book, err := resolveBook(ctx, args[0])
			if err != nil {
				return err
			}
			return openReaderAt(ctx, book, fromStart)
		},
	}

	cmd.Flags().BoolVar(&fromStart, "from-start", false, "Ignore saved progress and start at chapter one")
	return cmd
}

func openReader(ctx context.Context, book *api.Ebook) error {
	return openReaderAt(ctx, book, false)
}

func openReaderAt(ctx context.Context, book *api.Ebook, fromStart bool) error {
	chapters, err := loadSortedChapters(ctx, book.ID)
	if err != nil {
		return err
	}
	if len(chapters) == 0 {
		return fmt.Errorf("%q has no chapters yet", book.Title)
	}

	// Bookmarks and saved progress are both best-effort: a fresh account
	// or an offline progress service still opens the book.
	bookmarks, err := client.ListBookmarks(ctx, book.ID)
	if err != nil {
		log.Debug("bookmarks unavailable", "book", book.ID, "err", err)
		bookmarks = nil
	}

	sess := reader.NewSession(*book, chapters)
	sess.SetTheme(reader.ParseTheme(cfg.Reader.Theme))
	sess.SetFontSize(cfg.Reader.FontSize)
	sess.SetMode(reader.ParseViewMode(cfg.Reader.ViewMode))

	if !fromStart {
		if rp, err := client.GetReadingProgress(ctx, book.ID); err == nil && rp != nil {
			sess.JumpTo(rp.LastPosition)
		}
	}

	return tui.RunReader(client, cache.New(cfg.Cache.Dir), *book, chapters, bookmarks, sess)
}
