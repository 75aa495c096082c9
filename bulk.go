package huefy

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// SendBulkEmails fans out the full send pipeline over every request
// concurrently, bounded by WithBulkConcurrency. The result slice is length-
// and order-preserving: results[i] corresponds to requests[i].
//
// Bulk send is best-effort, never all-or-nothing: one item failing (even
// after exhausting its retries) is captured in that item's Error field and
// does not abort or affect any other item. The returned error is always nil
// today; it exists so a future batch-level failure mode doesn't break the
// signature.
func (c *Client) SendBulkEmails(ctx context.Context, requests []SendEmailRequest) ([]BulkEmailResult, error) {
	results := make([]BulkEmailResult, len(requests))
	if len(requests) == 0 {
		return results, nil
	}

	g := new(errgroup.Group)
	g.SetLimit(c.bulkConcurrency)

	for i := range requests {
		i := i
		g.Go(func() error {
			req := &requests[i]
			resp, err := c.SendEmail(ctx, req)
			if err != nil {
				results[i] = BulkEmailResult{Recipient: req.Recipient, Error: err}
				return nil
			}
			results[i] = BulkEmailResult{Recipient: req.Recipient, Success: true, Result: resp}
			return nil
		})
	}

	// Item errors are captured per result, so Wait only synchronizes.
	_ = g.Wait()

	failed := 0
	for i := range results {
		if !results[i].Success {
			failed++
		}
	}
	c.logger.DebugContext(ctx, "bulk send finished",
		slog.Int("total", len(requests)),
		slog.Int("failed", failed),
	)

	return results, nil
}
