package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// ListMyEbooks returns the caller's books. status filters by lifecycle state
// when non-empty. limit <= 0 uses the backend default.
func (c *Client) ListMyEbooks(ctx context.Context, skip, limit int, status EbookStatus) (*EbookList, error) {
	q := url.Values{}
	q.Set("skip", fmt.Sprintf("%d", skip))
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	if status != "" {
		q.Set("status", string(status))
	}
	var out EbookList
	if err := c.doJSON(ctx, "GET", c.url("ebooks", "my")+"?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEbooks returns the public catalog page.
func (c *Client) ListEbooks(ctx context.Context, skip, limit int) (*EbookList, error) {
	q := url.Values{}
	q.Set("skip", fmt.Sprintf("%d", skip))
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	var out EbookList
	if err := c.doJSON(ctx, "GET", c.url("ebooks")+"?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEbook fetches one book.
func (c *Client) GetEbook(ctx context.Context, id uuid.UUID) (*Ebook, error) {
	var out Ebook
	if err := c.doJSON(ctx, "GET", c.url("ebooks", id.String()), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEbook creates a draft book.
func (c *Client) CreateEbook(ctx context.Context, req EbookCreate) (*Ebook, error) {
	var out Ebook
	if err := c.doJSON(ctx, "POST", c.url("ebooks"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEbook applies a partial update.
func (c *Client) UpdateEbook(ctx context.Context, id uuid.UUID, req EbookUpdate) (*Ebook, error) {
	var out Ebook
	if err := c.doJSON(ctx, "PUT", c.url("ebooks", id.String()), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEbook removes a book. The backend answers 204.
func (c *Client) DeleteEbook(ctx context.Context, id uuid.UUID) error {
	return c.doJSON(ctx, "DELETE", c.url("ebooks", id.String()), nil, nil)
}

// PublishEbook moves a draft to published.
func (c *Client) PublishEbook(ctx context.Context, id uuid.UUID) (*Ebook, error) {
	var out Ebook
	if err := c.doJSON(ctx, "POST", c.url("ebooks", id.String(), "publish"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ArchiveEbook moves a book to archived.
func (c *Client) ArchiveEbook(ctx context.Context, id uuid.UUID) (*Ebook, error) {
	var out Ebook
	if err := c.doJSON(ctx, "POST", c.url("ebooks", id.String(), "archive"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
