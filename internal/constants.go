/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "pokemon-tdftool/0.3.0 (+https://github.com/mikeb26/pokemon-tdftool)"
	WebCacheBucket = "bopmatic-pokemon-tdftool-prod-webcache"
)
