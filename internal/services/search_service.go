package services

import (
	"context"

	"lumina/internal/metrics"
	"lumina/internal/models"

	"github.com/sirupsen/logrus"
)

// SemanticSearcher maps a free-text query to matching product IDs.
type SemanticSearcher interface {
	SemanticSearch(ctx context.Context, query string, products []models.Product) ([]string, error)
}

// SearchService runs semantic search against the current catalog.
type SearchService struct {
	products *ProductService
	searcher SemanticSearcher
	metrics  *metrics.Metrics
	logger   *logrus.Logger
}

// NewSearchService creates a new SearchService. searcher may be nil, in
// which case every search comes back empty.
func NewSearchService(products *ProductService, searcher SemanticSearcher, m *metrics.Metrics, logger *logrus.Logger) *SearchService {
	return &SearchService{
		products: products,
		searcher: searcher,
		metrics:  m,
		logger:   logger,
	}
}

// Search returns the IDs matching query, or nil when the search failed or
// matched nothing. A nil result means text matching applies instead.
func (s *SearchService) Search(ctx context.Context, query string) []string {
	if s.searcher == nil {
		s.metrics.ObserveSearch("disabled")
		return nil
	}
	catalog, err := s.products.GetAllProducts()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load catalog for semantic search")
		s.metrics.ObserveSearch("error")
		return nil
	}

	ids, err := s.searcher.SemanticSearch(ctx, query, catalog)
	if err != nil {
		s.logger.WithError(err).WithField("query", query).Warn("Semantic search failed")
		s.metrics.ObserveSearch("error")
		return nil
	}
	if len(ids) == 0 {
		s.metrics.ObserveSearch("empty")
		return nil
	}
	s.metrics.ObserveSearch("hit")
	return ids
}
