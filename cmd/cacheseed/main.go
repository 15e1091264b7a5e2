/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mikeb26/pokemon-tdftool/tdf"
	"github.com/mikeb26/pokemon-tdftool/tomweb"
)

// this program exists just to seed the http cache for published TDF
// documents ahead of bot traffic

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %v <urllist file>\n", os.Args[0])
		os.Exit(1)
	}

	ctx := context.Background()
	client := tomweb.NewClient(ctx)

	file, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("cacheseed.main: failed to open %v: %v", os.Args[1], err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		url := strings.TrimSpace(scanner.Text())
		if url == "" || strings.HasPrefix(url, "#") {
			continue
		}

		urls := []string{url}
		if !strings.HasSuffix(strings.ToLower(url), ".tdf") {
			// index page; seed every document it links to
			urls, err = client.ListDocumentLinks(ctx, url)
			if err != nil {
				// best effort
				continue
			}
		}

		for _, docURL := range urls {
			text, err := client.FetchDocument(ctx, docURL)
			time.Sleep(2 * time.Second) // avoid pegging the origin server
			if err != nil {
				// best effort
				continue
			}

			result := tdf.IsCompatible(text)
			fmt.Printf("seeded %v (compatible:%v)\n", docURL,
				result.Compatible)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("cacheseed.main: failed reading %v: %v", os.Args[1], err)
	}
}
