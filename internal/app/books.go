package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/util"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <book>",
		Short: "Show a book's metadata",
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
			showBookInfo(book)
			return nil
		},
	}
}

// readContentFile loads initial book content from disk.
func readContentFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading content file: %w", err)
	}
	return string(data), nil
}

func newCreateCmd() *cobra.Command {
	var (
		description string
		genre       string
		tags        []string
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a draft book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}

			req := api.EbookCreate{
				Title:       args[0],
				Description: description,
				Genre:       genre,
				Tags:        tags,
			}
			if contentFile != "" {
				content, err := readContentFile(contentFile)
				if err != nil {
					return err
				}
				req.Content = content
			}

			b, err := client.CreateEbook(ctx, req)
			if err != nil {
				return err
			}
			ok("created draft %q", b.Title)
			printField("id", b.ID.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Book description")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().StringVar(&contentFile, "content", "", "File whose text becomes the initial content")
	return cmd
}

func newEditCmd() *cobra.Command {
	var (
		title       string
		description string
		genre       string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "edit <book>",
		Short: "Update a book's metadata",
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

			var req api.EbookUpdate
			changed := false
			if cmd.Flags().Changed("title") {
				req.Title = &title
				changed = true
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
				changed = true
			}
			if cmd.Flags().Changed("genre") {
				req.Genre = &genre
				changed = true
			}
			if cmd.Flags().Changed("tags") {
				req.Tags = &tags
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to change — pass at least one of --title, --description, --genre, --tags")
			}

			updated, err := client.UpdateEbook(ctx, book.ID, req)
			if err != nil {
				return err
			}
			ok("updated %q", updated.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&genre, "genre", "", "New genre")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Replacement tag list")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <book>",
		Short: "Delete a book permanently",
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

			if !force {
				fmt.Printf("Delete %q and all its chapters? This cannot be undone. (y/N): ",
					book.Title)
				var response string
				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" && response != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := client.DeleteEbook(ctx, book.ID); err != nil {
				return err
			}
			ok("deleted %q", book.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <book>",
		Short: "Publish a draft",
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
			if book.Status == api.StatusPublished {
				warn("%q is already published", book.Title)
				return nil
			}
			published, err := client.PublishEbook(ctx, book.ID)
			if err != nil {
				return err
			}
			ok("published %q", published.Title)
			return nil
		},
	}
}

func newArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <book>",
		Short: "Archive a book",
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
			if book.Status == api.StatusArchived {
				warn("%q is already archived", book.Title)
				return nil
			}
			archived, err := client.ArchiveEbook(ctx, book.ID)
			if err != nil {
				return err
			}
			ok("archived %q", archived.Title)
			return nil
		},
	}
}

// showBookInfo prints one book's metadata in the field layout.
func showBookInfo(b *api.Ebook) {
	header("Book: %s", b.Title)
	printField("id", b.ID.String())
	if b.AuthorName() != "" {
		printField("author", b.AuthorName())
	}
	printField("status", string(b.Status))
	if b.Genre != "" {
		printField("genre", b.Genre)
	}
	if len(b.Tags) > 0 {
		printField("tags", strings.Join(b.Tags, ", "))
	}
	if b.Description != "" {
		printField("about", util.Truncate(b.Description, 120))
	}
	if b.RatingCount > 0 {
		printField("rating", fmt.Sprintf("%s %.1f (%s)",
			util.Stars(b.RatingAverage), b.RatingAverage, util.Plural(b.RatingCount, "vote")))
	}
	printField("views", fmt.Sprintf("%d", b.ViewCount))
	if b.PublishedAt != nil {
		printField("published", b.PublishedAt.Format("2006-01-02"))
	}
	printField("created", color.HiBlackString(b.CreatedAt.Format("2006-01-02 15:04")))
}
