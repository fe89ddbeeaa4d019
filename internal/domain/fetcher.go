package domain

import "context"

// Fetcher returns the raw bytes behind a URL. Implementations own all network
// mechanics; the pipeline only sees bytes or a *FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
