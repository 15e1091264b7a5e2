/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tomweb

import (
	"context"
	"net/http"
	"time"

	"github.com/mikeb26/pokemon-tdftool/internal/httpcache"
)

// Client retrieves tournament documents published on the web. Fetched
// documents go through the shared S3-backed cache: league sites are
// slow and organizers re-check the same export repeatedly during an
// event.
type Client struct {
	httpClient *http.Client
}

func NewClient(ctx context.Context) *Client {
	return &Client{
		httpClient: httpcache.NewCachedHttpClient(ctx, 1*time.Hour),
	}
}

// NewUncachedClient returns a Client that bypasses the web cache, for
// callers that need a live copy (e.g. mid-round re-syncs).
func NewUncachedClient() *Client {
	return &Client{httpClient: http.DefaultClient}
}
