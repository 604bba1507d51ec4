package api

import (
	"context"

	"github.com/google/uuid"
)

// GetReadingProgress returns the caller's position in a book, or a not-found
// error when the book has never been opened.
func (c *Client) GetReadingProgress(ctx context.Context, ebookID uuid.UUID) (*ReadingProgress, error) {
	var out ReadingProgress
	if err := c.doJSON(ctx, "GET", c.url("progress", "ebooks", ebookID.String(), "progress"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveReadingProgress upserts the caller's position in a book.
func (c *Client) SaveReadingProgress(ctx context.Context, ebookID uuid.UUID, req ReadingProgressUpdate) (*ReadingProgress, error) {
	var out ReadingProgress
	if err := c.doJSON(ctx, "POST", c.url("progress", "ebooks", ebookID.String(), "progress"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBookmarks returns the caller's server-side bookmarks for a book.
func (c *Client) ListBookmarks(ctx context.Context, ebookID uuid.UUID) ([]Bookmark, error) {
	var out BookmarkList
	if err := c.doJSON(ctx, "GET", c.url("progress", "ebooks", ebookID.String(), "bookmarks"), nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CreateBookmark saves a position server-side.
func (c *Client) CreateBookmark(ctx context.Context, ebookID uuid.UUID, req BookmarkCreate) (*Bookmark, error) {
	var out Bookmark
	if err := c.doJSON(ctx, "POST", c.url("progress", "ebooks", ebookID.String(), "bookmarks"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBookmark removes a server-side bookmark.
func (c *Client) DeleteBookmark(ctx context.Context, bookmarkID uuid.UUID) error {
	return c.doJSON(ctx, "DELETE", c.url("progress", "bookmarks", bookmarkID.String()), nil, nil)
}
