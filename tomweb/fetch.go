/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tomweb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/pokemon-tdftool/internal"
)

// FetchDocument retrieves the TDF document at the given URL and returns
// its text. The body is returned as-is; parsing and compatibility
// checking are the tdf package's concern.
func (client *Client) FetchDocument(ctx context.Context,
	docURL string) (string, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", docURL, nil)
	if err != nil {
		return "", fmt.Errorf("unable to fetch tdf document (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("unable to fetch tdf document (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unable to fetch %v: http status: %v", docURL,
			resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("unable to read tdf document: %w", err)
	}

	return string(body), nil
}

// ListDocumentLinks scrapes an HTML index page (e.g. a league's event
// results listing) and returns the absolute URLs of every .tdf link on
// it, in page order and deduplicated.
func (client *Client) ListDocumentLinks(ctx context.Context,
	pageURL string) ([]string, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch index page (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch index page (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %v: http status: %v", pageURL,
			resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to parse index page: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse index page url: %w", err)
	}

	var links []string
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if !strings.HasSuffix(strings.ToLower(href), ".tdf") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref).String()
		if !seen[abs] {
			seen[abs] = true
			links = append(links, abs)
		}
	})

	return links, nil
}
