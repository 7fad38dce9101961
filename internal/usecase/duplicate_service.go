package usecase

import (
	"sort"
	"strings"

	"github.com/shelfmatch/backend/internal/domain"
)

// defaultDuplicateThreshold filters out weak duplicate candidates; only
// similarity strictly above it survives.
const defaultDuplicateThreshold = 0.7

// maxDuplicates caps how many duplicate candidates are surfaced for review.
const maxDuplicates = 5

// DuplicateService searches existing inventory records for likely
// duplicates of a new product before it is saved.
type DuplicateService struct {
	threshold float64
}

// NewDuplicateService creates a duplicate detector. A non-positive threshold
// falls back to the default.
func NewDuplicateService(threshold float64) *DuplicateService {
	if threshold <= 0 {
		threshold = defaultDuplicateThreshold
	}
	return &DuplicateService{threshold: threshold}
}

// FindDuplicates runs both detection strategies over the existing records:
// exact case-insensitive name equality, and same brand plus fuzzy name
// similarity (the candidate name must contain the first word of the product
// name). Results are de-duplicated by ID, filtered to similarity above the
// threshold, sorted descending, and capped at five.
func (s *DuplicateService) FindDuplicates(
	product domain.Product,
	existing []domain.InventoryCandidate,
) []domain.DuplicateCandidate {
	if product.Name == "" {
		return []domain.DuplicateCandidate{}
	}

	seen := make(map[string]bool, len(existing))
	var found []domain.DuplicateCandidate

	// Strategy 1: exact name match against records with a different identity
	for _, candidate := range existing {
		if sameIdentity(product, candidate) {
			continue
		}
		if strings.EqualFold(candidate.Name, product.Name) {
			seen[candidate.ID] = true
			found = append(found, domain.DuplicateCandidate{
				Candidate:  candidate,
				Similarity: EditSimilarity(product.Name, candidate.Name),
				MatchType:  domain.MatchExactName,
			})
		}
	}

	// Strategy 2: same brand, candidate name contains the product's first word
	firstWord := strings.ToLower(firstWordOf(product.Name))
	for _, candidate := range existing {
		if sameIdentity(product, candidate) || seen[candidate.ID] {
			continue
		}
		if product.Brand == "" || !strings.EqualFold(candidate.Brand, product.Brand) {
			continue
		}
		if firstWord == "" || !strings.Contains(strings.ToLower(candidate.Name), firstWord) {
			continue
		}
		seen[candidate.ID] = true
		found = append(found, domain.DuplicateCandidate{
			Candidate:  candidate,
			Similarity: EditSimilarity(product.Name, candidate.Name),
			MatchType:  domain.MatchBrandSimilarity,
		})
	}

	filtered := found[:0]
	for _, dup := range found {
		if dup.Similarity > s.threshold {
			filtered = append(filtered, dup)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Similarity > filtered[j].Similarity
	})

	if len(filtered) > maxDuplicates {
		filtered = filtered[:maxDuplicates]
	}
	if filtered == nil {
		filtered = []domain.DuplicateCandidate{}
	}

	return filtered
}

// sameIdentity reports whether the candidate is the very record the product
// came from (editing an existing record must not flag itself).
func sameIdentity(product domain.Product, candidate domain.InventoryCandidate) bool {
	return product.ID != "" && product.ID == candidate.ID
}

// firstWordOf returns the first whitespace-delimited word of a name.
func firstWordOf(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
