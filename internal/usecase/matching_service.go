package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/shelfmatch/backend/internal/domain"
)

// Weighted score components for fuzzy candidate ranking
const (
	weightName  = 0.6 // token similarity between product and candidate names
	weightBrand = 0.3 // candidate carries the product's brand
	weightUnit  = 0.1 // units match case-insensitively
)

// defaultTopN caps how many ranked matches are returned to the caller.
const defaultTopN = 5

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	TopN   int
	Logger *zap.Logger
}

// MatchingService ranks existing inventory records against a candidate
// product coming from a barcode lookup or recipe/menu extraction.
type MatchingService struct {
	topN   int
	logger *zap.Logger
}

// NewMatchingService creates a new matching service with the given configuration
func NewMatchingService(config MatchConfig) *MatchingService {
	topN := config.TopN
	if topN <= 0 {
		topN = defaultTopN
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MatchingService{
		topN:   topN,
		logger: logger,
	}
}

// Match gathers candidates for a product through the injected inventory
// searcher and returns them ranked by weighted similarity, best first,
// truncated to the configured top-N. An exact barcode hit always ranks
// first with score 1.0 regardless of name dissimilarity.
func (s *MatchingService) Match(
	ctx context.Context,
	product domain.Product,
	searcher domain.InventorySearcher,
) ([]domain.MatchResult, error) {
	if product.Name == "" && product.Barcode == "" {
		return nil, domain.ErrInvalidRequest
	}

	var gathered []domain.InventoryCandidate

	if product.Barcode != "" {
		byBarcode, err := searcher.SearchByBarcode(ctx, product.Barcode)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInventoryUnavailable, err)
		}
		gathered = append(gathered, byBarcode...)
	}

	for _, term := range searchTerms(product) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		found, err := searcher.SearchByName(ctx, term)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInventoryUnavailable, err)
		}
		gathered = append(gathered, found...)
	}

	results := s.Rank(product, gathered)

	s.logger.Debug("ranked inventory candidates",
		zap.String("product", product.Name),
		zap.Int("gathered", len(gathered)),
		zap.Int("returned", len(results)),
	)

	return results, nil
}

// Rank scores a candidate list against a product and returns matches sorted
// by score descending. Candidates are de-duplicated by ID keeping the first
// occurrence; ties preserve encounter order (stable sort). The result is
// truncated to the configured top-N.
func (s *MatchingService) Rank(product domain.Product, candidates []domain.InventoryCandidate) []domain.MatchResult {
	seen := make(map[string]bool, len(candidates))
	results := make([]domain.MatchResult, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.ID != "" && seen[candidate.ID] {
			continue
		}
		seen[candidate.ID] = true
		results = append(results, scoreCandidate(product, candidate))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > s.topN {
		results = results[:s.topN]
	}

	return results
}

// scoreCandidate computes the weighted similarity between a product and one
// inventory candidate. A shared barcode short-circuits to a perfect score.
func scoreCandidate(product domain.Product, candidate domain.InventoryCandidate) domain.MatchResult {
	if product.Barcode != "" && product.Barcode == candidate.Barcode {
		return domain.MatchResult{
			Candidate: candidate,
			Score:     1.0,
			MatchType: domain.MatchExactBarcode,
		}
	}

	score := weightName * TokenSimilarity(product.Name, candidate.Name)

	if product.Brand != "" && candidateCarriesBrand(candidate, product.Brand) {
		score += weightBrand
	}

	if product.Unit != "" && strings.EqualFold(product.Unit, candidate.Unit) {
		score += weightUnit
	}

	return domain.MatchResult{
		Candidate: candidate,
		Score:     clamp01(score),
		MatchType: domain.MatchFuzzy,
	}
}

// candidateCarriesBrand checks whether the candidate's name contains the
// product brand, or the candidate is filed under the same brand outright.
func candidateCarriesBrand(candidate domain.InventoryCandidate, brand string) bool {
	if strings.Contains(strings.ToLower(candidate.Name), strings.ToLower(brand)) {
		return true
	}
	return strings.EqualFold(candidate.Brand, brand)
}

// searchTerms builds the deduplicated substring queries for a product:
// its name, its brand, and "brand name" combined.
func searchTerms(product domain.Product) []string {
	raw := []string{
		strings.TrimSpace(product.Name),
		strings.TrimSpace(product.Brand),
		strings.TrimSpace(product.Brand + " " + product.Name),
	}

	seen := make(map[string]bool, len(raw))
	terms := make([]string, 0, len(raw))
	for _, term := range raw {
		key := strings.ToLower(term)
		if term == "" || seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, term)
	}

	return terms
}
