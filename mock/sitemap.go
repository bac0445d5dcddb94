package mock

import (
	"context"

	"github.com/mferenc/distill"
)

var _ distill.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of distill.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *distill.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *distill.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
