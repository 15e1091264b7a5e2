/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package httpcache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mikeb26/pokemon-tdftool/internal"
)

func TestHttpClient(t *testing.T) {
	ctx := context.Background()
	client := NewCachedHttpClient(ctx, 5*time.Minute)

	if client == http.DefaultClient {
		t.Skip("Skipping test because http client is uncached")
	}

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			hits++
			fmt.Fprint(w, "<tournament version=\"1.80\"></tournament>")
		}))
	defer server.Close()

	for i := 0; i < 3; i++ {
		req, err := http.NewRequest("GET", server.URL, nil)
		if err != nil {
			t.Fatalf("unable to build request: %v", err)
		}
		req.Header.Set("User-Agent", internal.UserAgent)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("unable to fetch: %v", err)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Errorf("Failed to read response body")
		}
		if len(data) == 0 {
			t.Errorf("Empty data")
		}
		if i > 0 {
			if resp.Header.Get("X-From-Cache") != "1" {
				t.Errorf("object not cached")
			}
		}
		resp.Body.Close()
	}
}
