package api

import (
	"context"

	"github.com/google/uuid"
)

// ListChapters returns chapter summaries (no bodies) in chapter_number order.
func (c *Client) ListChapters(ctx context.Context, ebookID uuid.UUID) (*ChapterList, error) {
	var out ChapterList
	if err := c.doJSON(ctx, "GET", c.url("ebooks", ebookID.String(), "chapters"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetChapter fetches one chapter with its full text.
func (c *Client) GetChapter(ctx context.Context, ebookID, chapterID uuid.UUID) (*Chapter, error) {
	var out Chapter
	if err := c.doJSON(ctx, "GET", c.url("ebooks", ebookID.String(), "chapters", chapterID.String()), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateChapter appends a chapter to a book the caller owns.
func (c *Client) CreateChapter(ctx context.Context, ebookID uuid.UUID, req ChapterCreate) (*Chapter, error) {
	var out Chapter
	if err := c.doJSON(ctx, "POST", c.url("ebooks", ebookID.String(), "chapters"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateChapter applies a partial update to a chapter.
func (c *Client) UpdateChapter(ctx context.Context, ebookID, chapterID uuid.UUID, req ChapterUpdate) (*Chapter, error) {
	var out Chapter
	if err := c.doJSON(ctx, "PUT", c.url("ebooks", ebookID.String(), "chapters", chapterID.String()), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteChapter removes a chapter. The backend answers 204.
func (c *Client) DeleteChapter(ctx context.Context, ebookID, chapterID uuid.UUID) error {
	return c.doJSON(ctx, "DELETE", c.url("ebooks", ebookID.String(), "chapters", chapterID.String()), nil, nil)
}
