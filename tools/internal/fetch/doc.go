// Package fetch downloads puzzle inputs from the puzzle site.
//
// Client wraps a resty client built once with the base URL, timeout, retry
// policy (transport errors, 429 and 5xx only), User-Agent and the "session"
// cookie that authorises the download. Inputs differ per account, so every
// request carries the cookie.
//
// Fetcher places inputs at <inputs_dir>/<user>/dayNN.txt. An existing file is
// left alone unless force is set; new files are written atomically so an
// interrupted download never leaves a truncated input behind.
//
// ResolveSession finds the cookie: explicit value, then the configured
// environment variable (after loading .env), then the cookie file.
package fetch
