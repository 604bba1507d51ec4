// Package library is the pure filter/sort pipeline behind the library
// browser and the dashboard. It never mutates its inputs and performs no
// network calls.
package library

import (
	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
)

// Shelf is a client-only grouping of books. It is derived state, not a
// backend concept.
type Shelf string

const (
	ShelfAll        Shelf = "all"
	ShelfReading    Shelf = "reading"
	ShelfFinished   Shelf = "finished"
	ShelfWantToRead Shelf = "want-to-read"
)

// Shelves lists the selectable shelves in display order.
func Shelves() []Shelf {
	return []Shelf{ShelfAll, ShelfReading, ShelfFinished, ShelfWantToRead}
}

// Label returns the shelf's display name.
func (s Shelf) Label() string {
	switch s {
	case ShelfReading:
		return "Currently Reading"
	case ShelfFinished:
		return "Finished"
	case ShelfWantToRead:
		return "Want to Read"
	default:
		return "All Books"
	}
}

// ParseShelf maps a flag value onto a shelf, defaulting to ShelfAll.
func ParseShelf(s string) Shelf {
	switch Shelf(s) {
	case ShelfReading, ShelfFinished, ShelfWantToRead:
		return Shelf(s)
	default:
		return ShelfAll
	}
}

// BookShelf derives the shelf for one book. The status enum alone cannot
// separate "currently reading" from "want to read", so recorded reading
// progress is the tie-breaker:
//
//	archived, or progress >= 100  -> finished
//	progress in (0, 100)          -> currently reading
//	otherwise                     -> want to read
//
// progress may be nil; the mapping then degrades to status-only.
func BookShelf(b api.Ebook, progress map[uuid.UUID]float64) Shelf {
	if b.Status == api.StatusArchived {
		return ShelfFinished
	}
	if p, ok := progress[b.ID]; ok {
		if p >= 100 {
			return ShelfFinished
		}
		if p > 0 {
			return ShelfReading
		}
	}
	return ShelfWantToRead
}
