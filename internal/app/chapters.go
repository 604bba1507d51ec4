package app

import (
	"fmt"
	"strconv"

	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/util"
	"github.com/spf13/cobra"
)

func newChaptersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "Work with a book's chapters",
	}
	cmd.AddCommand(
		newChaptersListCmd(),
		newChaptersShowCmd(),
		newChaptersAddCmd(),
		newChaptersEditCmd(),
		newChaptersDeleteCmd(),
	)
	return cmd
}

func newChaptersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <book>",
		Short: "List a book's chapters",
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
			chapters, err := loadSortedChapters(ctx, book.ID)
			if err != nil {
				return err
			}

			header("Chapters of %q", book.Title)
			for _, ch := range chapters {
				fmt.Printf("  %3d  %s\n", ch.ChapterNumber, util.Truncate(ch.Title, 60))
			}
			fmt.Printf("\n%s\n", util.Plural(len(chapters), "chapter"))
			return nil
		},
	}
}

// chapterByNumber finds the summary with the given chapter_number.
func chapterByNumber(chapters []api.ChapterSummary, n int) (*api.ChapterSummary, error) {
	for i := range chapters {
		if chapters[i].ChapterNumber == n {
			return &chapters[i], nil
		}
	}
	return nil, fmt.Errorf("no chapter %d", n)
}

func parseChapterNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("chapter number must be a positive integer, got %q", arg)
	}
	return n, nil
}

func newChaptersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <book> <number>",
		Short: "Print a chapter's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}
			book, err := resolveBook(ctx, args[0])
			if err != nil {
				return err
			}
			n, err := parseChapterNumber(args[1])
			if err != nil {
				return err
			}
			chapters, err := loadSortedChapters(ctx, book.ID)
			if err != nil {
				return err
			}
			summary, err := chapterByNumber(chapters, n)
			if err != nil {
				return err
			}
			ch, err := client.GetChapter(ctx, book.ID, summary.ID)
			if err != nil {
				return err
			}

			header("%d. %s", ch.ChapterNumber, ch.Title)
			fmt.Println()
			fmt.Println(ch.Content)
			return nil
		},
	}
}

func newChaptersAddCmd() *cobra.Command {
	var (
		number      int
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "add <book> <title>",
		Short: "Append a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}
			book, err := resolveBook(ctx, args[0])
			if err != nil {
				return err
			}

			if number == 0 {
				chapters, err := loadSortedChapters(ctx, book.ID)
				if err != nil {
					return err
				}
				number = len(chapters) + 1
			}

			req := api.ChapterCreate{ChapterNumber: number, Title: args[1]}
			if contentFile != "" {
				content, err := readContentFile(contentFile)
				if err != nil {
					return err
				}
				req.Content = content
			}

			ch, err := client.CreateChapter(ctx, book.ID, req)
			if err != nil {
				return err
			}
			ok("added chapter %d %q to %q", ch.ChapterNumber, ch.Title, book.Title)
			return nil
		},
	}

	cmd.Flags().IntVar(&number, "number", 0, "Chapter number (default: append at the end)")
	cmd.Flags().StringVar(&contentFile, "content", "", "File whose text becomes the chapter body")
	return cmd
}

func newChaptersEditCmd() *cobra.Command {
	var (
		title       string
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "edit <book> <number>",
		Short: "Update a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}
			book, err := resolveBook(ctx, args[0])
			if err != nil {
				return err
			}
			n, err := parseChapterNumber(args[1])
			if err != nil {
				return err
			}
			chapters, err := loadSortedChapters(ctx, book.ID)
			if err != nil {
				return err
			}
			summary, err := chapterByNumber(chapters, n)
			if err != nil {
				return err
			}

			var req api.ChapterUpdate
			changed := false
			if cmd.Flags().Changed("title") {
				req.Title = &title
				changed = true
			}
			if contentFile != "" {
				content, err := readContentFile(contentFile)
				if err != nil {
					return err
				}
				req.Content = &content
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to change — pass --title or --content")
			}

			ch, err := client.UpdateChapter(ctx, book.ID, summary.ID, req)
			if err != nil {
				return err
			}
			ok("updated chapter %d %q", ch.ChapterNumber, ch.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New chapter title")
	cmd.Flags().StringVar(&contentFile, "content", "", "File whose text replaces the chapter body")
	return cmd
}

func newChaptersDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <book> <number>",
		Short: "Delete a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}
			book, err := resolveBook(ctx, args[0])
			if err != nil {
				return err
			}
			n, err := parseChapterNumber(args[1])
			if err != nil {
				return err
			}
			chapters, err := loadSortedChapters(ctx, book.ID)
			if err != nil {
				return err
			}
			summary, err := chapterByNumber(chapters, n)
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Delete chapter %d %q from %q? (y/N): ", n, summary.Title, book.Title)
				var response string
				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" && response != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := client.DeleteChapter(ctx, book.ID, summary.ID); err != nil {
				return err
			}
			ok("deleted chapter %d from %q", n, book.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
