package gfycat

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MediaItems fetches several gfycats concurrently, at most the configured
// concurrency at a time. Results keep the order of ids. The first failure
// cancels the remaining lookups and is returned.
func (c *Client) MediaItems(ctx context.Context, ids []string) ([]*MediaItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	// Each goroutine writes only its own index.
	items := make([]*MediaItem, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			item, err := c.MediaItem(ctx, id)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("gfy_id", id).
					Msg("Failed to get media item")
				return err
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().Msgf("Retrieved %d media items from gfycat", len(items))
	return items, nil
}
