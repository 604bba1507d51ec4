package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/library"
	"github.com/inkwell-labs/inkctl/internal/util"
)

// RenderDashboard assembles the home-screen summary: library stats, the
// most recently added books, and any in-flight generation jobs. Pure
// render, the caller fetches everything.
func RenderDashboard(user *api.User, books []api.Ebook, progress map[uuid.UUID]float64, jobs []api.GenerationProgress, now time.Time) string {
	stats := library.Collect(books, progress)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf(" Welcome back, %s ", user.DisplayName())))
	b.WriteString("\n\n")

	b.WriteString(StyleNormal.Render(fmt.Sprintf("  %s in your library", util.Plural(stats.Total, "book"))))
	b.WriteString("\n")
	b.WriteString(StyleHelp.Render(fmt.Sprintf("  reading %d · finished %d · want to read %d",
		stats.Reading, stats.Finished, stats.WantToRead)))
	b.WriteString("\n")
	b.WriteString(StyleHelp.Render(fmt.Sprintf("  drafts %d · published %d · archived %d",
		stats.Drafts, stats.Published, stats.Archived)))
	b.WriteString("\n")
	if stats.RatedCount > 0 {
		b.WriteString(StyleHelp.Render(fmt.Sprintf("  %s %.1f across %s",
			util.Stars(stats.AverageRating), stats.AverageRating, util.Plural(stats.RatedCount, "rated book"))))
		b.WriteString("\n")
	}

	if recent := library.Recent(books, 5); len(recent) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render(" Recently added "))
		b.WriteString("\n")
		for _, bk := range recent {
			shelf := library.BookShelf(bk, progress)
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				shelfBadge(shelf),
				StyleNormal.Render(util.Truncate(bk.Title, 44)),
				StyleHelp.Render(util.RelativeTime(bk.CreatedAt, now))))
		}
	}

	if len(jobs) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render(" Generation jobs "))
		b.WriteString("\n")
		for _, j := range jobs {
			b.WriteString(fmt.Sprintf("  %s %d%%\n", jobBadge(j.Status), j.ProgressPercent))
		}
	}

	return b.String()
}

func shelfBadge(s library.Shelf) string {
	switch s {
	case library.ShelfReading:
		return StyleTag.Render("▶")
	case library.ShelfFinished:
		return StyleSuccess.Render("✓")
	default:
		return StyleHelp.Render("·")
	}
}

func jobBadge(s api.GenerationStatus) string {
	switch s {
	case api.GenerationCompleted:
		return StyleSuccess.Render(string(s))
	case api.GenerationFailed, api.GenerationCancelled:
		return StyleError.Render(string(s))
	default:
		return StyleTag.Render(string(s))
	}
}
