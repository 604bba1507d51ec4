package api

import (
	"context"

	"github.com/google/uuid"
)

// StartGeneration creates a draft book and starts filling it chapter by
// chapter in the background.
func (c *Client) StartGeneration(ctx context.Context, req GenerationRequest) (*GenerationStart, error) {
	var out GenerationStart
	if err := c.doJSON(ctx, "POST", c.url("generation", "start"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerationProgressFor reports the job state for a book.
func (c *Client) GenerationProgressFor(ctx context.Context, bookID uuid.UUID) (*GenerationProgress, error) {
	var out GenerationProgress
	if err := c.doJSON(ctx, "GET", c.url("generation", "progress", bookID.String()), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelGeneration stops an in-flight job.
func (c *Client) CancelGeneration(ctx context.Context, bookID uuid.UUID) (*GenerationCancel, error) {
	var out GenerationCancel
	if err := c.doJSON(ctx, "POST", c.url("generation", "cancel", bookID.String()), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RetryGeneration restarts a failed job. The backend clears the book's
// content before regenerating.
func (c *Client) RetryGeneration(ctx context.Context, bookID uuid.UUID, req GenerationRequest) (*GenerationStart, error) {
	var out GenerationStart
	if err := c.doJSON(ctx, "POST", c.url("generation", "retry", bookID.String()), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
