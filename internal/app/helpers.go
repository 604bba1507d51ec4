package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/session"
)

const pageSize = 100

// requireAuth resumes the persisted session and errors when the user is
// not signed in.
func requireAuth(ctx context.Context) error {
	if err := store.Resume(ctx); err != nil {
		return err
	}
	if store.State() != session.StateAuthenticated {
		return fmt.Errorf("not signed in — run 'inkctl login' first")
	}
	return nil
}

// loadLibrary pages through the caller's books until the server runs out.
func loadLibrary(ctx context.Context) ([]api.Ebook, error) {
	var books []api.Ebook
	for skip := 0; ; skip += pageSize {
		page, err := client.ListMyEbooks(ctx, skip, pageSize, "")
		if err != nil {
			return nil, err
		}
		books = append(books, page.Items...)
		if len(books) >= page.Total || len(page.Items) == 0 {
			return books, nil
		}
	}
}

// loadProgress fetches per-book reading progress with bounded concurrency.
// Missing progress records are normal (book never opened) and yield no entry.
func loadProgress(ctx context.Context, books []api.Ebook) map[uuid.UUID]float64 {
	out := make(map[uuid.UUID]float64, len(books))
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, 8)
	)
	for _, b := range books {
		wg.Add(1)
		sem <- struct{}{}
		go func(id uuid.UUID) {
			defer wg.Done()
			defer func() { <-sem }()
			rp, err := client.GetReadingProgress(ctx, id)
			if err != nil || rp == nil {
				return
			}
			mu.Lock()
			out[id] = rp.ProgressPercent
			mu.Unlock()
		}(b.ID)
	}
	wg.Wait()
	return out
}

// resolveBook accepts a book id or a title fragment and returns the match.
// Title lookup searches the caller's own library; an ambiguous fragment is
// an error listing the candidates.
func resolveBook(ctx context.Context, ref string) (*api.Ebook, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return client.GetEbook(ctx, id)
	}

	books, err := loadLibrary(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(ref)
	var matches []api.Ebook
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no book matching %q in your library", ref)
	case 1:
		return &matches[0], nil
	default:
		var titles []string
		for _, m := range matches {
			titles = append(titles, fmt.Sprintf("  %s  %s", m.ID, m.Title))
		}
		return nil, fmt.Errorf("%q matches %d books, use an id:\n%s",
			ref, len(matches), strings.Join(titles, "\n"))
	}
}

// loadSortedChapters fetches a book's table of contents in reading order.
func loadSortedChapters(ctx context.Context, bookID uuid.UUID) ([]api.ChapterSummary, error) {
	list, err := client.ListChapters(ctx, bookID)
	if err != nil {
		return nil, err
	}
	chapters := list.Items
	sort.Slice(chapters, func(i, j int) bool {
		return chapters[i].ChapterNumber < chapters[j].ChapterNumber
	})
	return chapters, nil
}
