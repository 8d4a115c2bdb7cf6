package fetch

import (
	"context"
	"errors"
)

// The DummyFetcher serves pages from an in-memory map, mainly for tests.
type DummyFetcher struct {
	*FetcherConfig
	pagesMap map[string]string
}

func NewDummyFetcher(fc *FetcherConfig) *DummyFetcher {
	df := &DummyFetcher{
		FetcherConfig: fc,
		pagesMap:      map[string]string{},
	}
	for _, p := range fc.DummyPages {
		df.pagesMap[p.Url] = p.Content
	}
	return df
}

func (d *DummyFetcher) Fetch(ctx context.Context, urlStr string) (string, error) {
	if p, ok := d.pagesMap[urlStr]; ok {
		return p, nil
	}
	return "", errors.New("page not found")
}

// To comply with the Fetcher interface
func (d *DummyFetcher) Cancel() {}
