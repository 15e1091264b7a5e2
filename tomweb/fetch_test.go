/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tomweb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mikeb26/pokemon-tdftool/internal"
)

func TestFetchDocument(t *testing.T) {
	const docBody = `<?xml version="1.0"?><tournament></tournament>`

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("User-Agent"); got != internal.UserAgent {
				t.Errorf("expected our user agent, got %q", got)
			}
			if r.URL.Path != "/events/24-02-000123.tdf" {
				http.NotFound(w, r)
				return
			}
			fmt.Fprint(w, docBody)
		}))
	defer srv.Close()

	client := NewUncachedClient()
	body, err := client.FetchDocument(context.Background(),
		srv.URL+"/events/24-02-000123.tdf")
	if err != nil {
		t.Fatalf("FetchDocument error: %v", err)
	}
	if body != docBody {
		t.Errorf("unexpected body %q", body)
	}

	// a non-200 response is an error, not an empty document
	_, err = client.FetchDocument(context.Background(),
		srv.URL+"/events/missing.tdf")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected http status error, got %v", err)
	}
}

func TestListDocumentLinks(t *testing.T) {
	const indexPage = `<html><body>
<h1>Event Results</h1>
<ul>
<li><a href="/events/24-01-000777.tdf">Somerville Winter Open</a></li>
<li><a href="24-02-000123.TDF">Cambridge League Challenge</a></li>
<li><a href="/events/24-01-000777.tdf">Somerville Winter Open (again)</a></li>
<li><a href="/events/flyer.pdf">Flyer</a></li>
<li><a href="https://example.org/other/24-03-000001.tdf">Regional</a></li>
</ul>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, indexPage)
		}))
	defer srv.Close()

	client := NewUncachedClient()
	links, err := client.ListDocumentLinks(context.Background(),
		srv.URL+"/events/")
	if err != nil {
		t.Fatalf("ListDocumentLinks error: %v", err)
	}

	want := []string{
		srv.URL + "/events/24-01-000777.tdf",
		srv.URL + "/events/24-02-000123.TDF",
		"https://example.org/other/24-03-000001.tdf",
	}
	if len(links) != len(want) {
		t.Fatalf("expected %d links, got %v", len(want), links)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("link %d: expected %v, got %v", i, want[i], links[i])
		}
	}
}
