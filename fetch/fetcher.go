// Package fetch provides the fetchers used to load pages that selectors
// are checked against.
package fetch

import (
	"context"
	"fmt"
)

// A Fetcher allows to fetch the content of a web page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Cancel()
}

const (
	STATIC_FETCHER_TYPE  = "static"
	DYNAMIC_FETCHER_TYPE = "dynamic"
	DUMMY_FETCHER_TYPE   = "dummy"
)

// DummyPage is a static page served by the DummyFetcher, mainly for tests.
type DummyPage struct {
	Url     string `yaml:"url"`
	Content string `yaml:"content"`
}

// FetcherConfig defines the necessary parameters to make a new fetcher.
type FetcherConfig struct {
	Type           string      `yaml:"type" env:"FETCHER_TYPE"`
	UserAgent      string      `yaml:"user_agent" env:"FETCHER_USER_AGENT" env-default:"cselect/dev"`
	PageLoadWaitMS int         `yaml:"page_load_wait_ms" env:"FETCHER_PAGE_LOAD_WAIT_MS"`
	DummyPages     []DummyPage `yaml:"dummy_pages,omitempty"`
}

// NewFetcher returns the fetcher that corresponds to the configured type.
func NewFetcher(fc *FetcherConfig) (Fetcher, error) {
	switch fc.Type {
	case STATIC_FETCHER_TYPE, "":
		return NewStaticFetcher(fc), nil
	case DYNAMIC_FETCHER_TYPE:
		return NewDynamicFetcher(fc), nil
	case DUMMY_FETCHER_TYPE:
		return NewDummyFetcher(fc), nil
	}
	return nil, fmt.Errorf("fetcher type '%s' does not exist", fc.Type)
}
