package app

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/library"
	"github.com/inkwell-labs/inkctl/internal/tui"
	"github.com/inkwell-labs/inkctl/internal/util"
	"github.com/spf13/cobra"
)

func newLibraryCmd() *cobra.Command {
	var (
		flagSearch   string
		flagCategory string
		flagShelf    string
		flagSort     string
		flagReverse  bool
	)

	cmd := &cobra.Command{
		Use:     "library",
		Aliases: []string{"ls", "browse"},
		Short:   "Browse your library",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}

			books, err := loadLibrary(ctx)
			if err != nil {
				return err
			}
			if len(books) == 0 {
				fmt.Println("Your library is empty. Try 'inkctl create' or 'inkctl generate start'.")
				return nil
			}
			progress := loadProgress(ctx, books)

			filter := library.Filter{
				Search:   flagSearch,
				Category: flagCategory,
				Shelf:    library.ParseShelf(flagShelf),
				Sort:     library.ParseSortKey(flagSort),
				Reverse:  flagReverse,
			}
			if filter.Category == "" {
				filter.Category = library.CategoryAll
			}

			if !tui.ShouldUseTUI(cmd) {
				printLibraryTable(filter.Apply(books, progress), progress)
				return nil
			}

			res, err := tui.RunLibraryBrowser(books, progress, filter)
			if err != nil {
				return err
			}
			if res == nil || res.Selected == nil {
				return nil
			}
			return openReader(ctx, res.Selected)
		},
	}

	cmd.Flags().StringVar(&flagSearch, "search", "", "Filter by title or author substring")
	cmd.Flags().StringVar(&flagCategory, "category", "", "Filter by genre")
	cmd.Flags().StringVar(&flagShelf, "shelf", "", "Filter by shelf (reading|finished|want-to-read)")
	cmd.Flags().StringVar(&flagSort, "sort", "", "Sort key (title|author|rating|created)")
	cmd.Flags().BoolVar(&flagReverse, "reverse", false, "Reverse the sort order")
	return cmd
}

func printLibraryTable(books []api.Ebook, progress map[uuid.UUID]float64) {
	header("%s %s %s %s", util.PadRight("TITLE", 38), util.PadRight("AUTHOR", 20),
		util.PadRight("SHELF", 12), "RATING")
	now := time.Now()
	for _, b := range books {
		shelf := library.BookShelf(b, progress)
		rating := ""
		if b.RatingCount > 0 {
			rating = fmt.Sprintf("%.1f (%d)", b.RatingAverage, b.RatingCount)
		}
		fmt.Printf("%s %s %s %s %s\n",
			util.PadRight(util.Truncate(b.Title, 36), 38),
			util.PadRight(util.Truncate(b.AuthorName(), 18), 20),
			util.PadRight(shelf.Label(), 12),
			util.PadRight(rating, 10),
			color.HiBlackString(util.RelativeTime(b.CreatedAt, now)))
	}
	fmt.Printf("\n%s\n", util.Plural(len(books), "book"))
}
