package app

import (
	"os"

	"github.com/inkwell-labs/inkctl/internal/cache"
	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the offline chapter cache",
	}
	cmd.AddCommand(newCacheClearCmd())
	return cmd
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [book]",
		Short: "Drop cached chapters, for one book or everything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := cache.New(cfg.Cache.Dir)

			if len(args) == 0 {
				if err := os.RemoveAll(cfg.Cache.Dir); err != nil {
					return err
				}
				ok("cache cleared")
				return nil
			}

			ctx := cmd.Context()
			if err := requireAuth(ctx); err != nil {
				return err
			}
			book, err := resolveBook(ctx, args[0])
			if err != nil {
				return err
			}
			if err := mgr.Clear(book.ID); err != nil {
				return err
			}
			ok("cleared cached chapters of %q", book.Title)
			return nil
		},
	}
}
