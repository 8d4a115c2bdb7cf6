package match

import (
	"context"
	"log/slog"
	"time"

	"github.com/jakopako/cselect/fetch"
	"github.com/jakopako/cselect/log"
	"github.com/jakopako/cselect/types"
)

// A Checker fetches pages and checks a set of named selectors against
// them.
type Checker struct {
	fetcher   fetch.Fetcher
	selectors []NamedSelector
}

func NewChecker(f fetch.Fetcher, sels []NamedSelector) *Checker {
	return &Checker{
		fetcher:   f,
		selectors: sels,
	}
}

// CheckURL fetches the page behind url and checks all selectors against
// it.
func (c *Checker) CheckURL(ctx context.Context, url string) ([]types.MatchResult, *types.CheckStatus, error) {
	logger := log.LoggerFromContext(ctx).With(slog.String("url", url))
	status := &types.CheckStatus{
		URL:            url,
		NrSelectors:    len(c.selectors),
		LastCheckStart: time.Now().UTC(),
	}
	defer func() {
		status.LastCheckEnd = time.Now().UTC()
	}()

	logger.Info("fetching page")
	pageContent, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		status.NrErrors++
		return nil, status, err
	}

	results, err := CheckPage(pageContent, c.selectors)
	if err != nil {
		status.NrErrors++
		return nil, status, err
	}
	logger.Info("checked selectors", slog.Int("selectors", len(results)))
	return results, status, nil
}
