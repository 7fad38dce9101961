package usecase

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/shelfmatch/backend/internal/domain"
)

// Fallbacks for extractions that arrive without usable headline fields.
const (
	fallbackRecipeName = "Untitled Recipe"
	fallbackMenuName   = "Untitled Menu"
)

// defaultFieldConfidence is assumed when an extraction omits or garbles a
// per-field confidence value.
const defaultFieldConfidence = 0.5

// defaultLowConfidence marks results that should be flagged for human review.
const defaultLowConfidence = 0.7

// Warning strings surfaced to the review UI. Warnings replace errors for
// malformed customer input.
const (
	warnNoIngredients = "No ingredients detected"
	warnNoMenuItems   = "No menu items detected"
	warnLowConfidence = "Low confidence score"
	warnMissingName   = "Entry missing a name"
)

// NormalizerConfig holds configuration for the normalizer service
type NormalizerConfig struct {
	LowConfidenceThreshold float64
	Logger                 *zap.Logger
}

// NormalizerService turns raw extracted recipe/menu records into validated
// ones: field coercion, unit normalization, category inference, and
// confidence scoring. It never fails on malformed input; it degrades to
// low-confidence defaults and warnings.
type NormalizerService struct {
	lowConfidence float64
	logger        *zap.Logger
}

// NewNormalizerService creates a normalizer service with the given configuration
func NewNormalizerService(config NormalizerConfig) *NormalizerService {
	threshold := config.LowConfidenceThreshold
	if threshold <= 0 {
		threshold = defaultLowConfidence
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &NormalizerService{
		lowConfidence: threshold,
		logger:        logger,
	}
}

// NormalizeRecipe validates a raw extracted recipe. Overall confidence is
// always the field-presence heuristic; per-ingredient confidences from the
// extraction are clamped and carried through but never averaged into it.
func (s *NormalizerService) NormalizeRecipe(raw domain.RawRecipe) domain.NormalizedRecipe {
	recipe := domain.NormalizedRecipe{
		Name:         strings.TrimSpace(raw.RecipeName),
		Servings:     int(coerceNumber(raw.Servings, 0)),
		Instructions: raw.Instructions,
		Ingredients:  []domain.ParsedIngredient{},
		Warnings:     []string{},
	}

	if recipe.Name == "" {
		recipe.Name = fallbackRecipeName
	}
	if recipe.Instructions == nil {
		recipe.Instructions = []string{}
	}
	if recipe.Servings < 0 {
		recipe.Servings = 0
	}

	missingNames := 0
	for _, ri := range raw.Ingredients {
		ingredient := normalizeIngredient(ri)
		if ingredient.Name == "" {
			missingNames++
		}
		recipe.Ingredients = append(recipe.Ingredients, ingredient)
	}

	if len(recipe.Ingredients) == 0 {
		recipe.Warnings = append(recipe.Warnings, warnNoIngredients)
	}
	if missingNames > 0 {
		recipe.Warnings = append(recipe.Warnings, warnMissingName)
	}

	recipe.Confidence = recipeConfidence(recipe)
	if recipe.Confidence < s.lowConfidence {
		recipe.Warnings = append(recipe.Warnings, warnLowConfidence)
	}

	s.logger.Debug("normalized recipe",
		zap.String("name", recipe.Name),
		zap.Int("ingredients", len(recipe.Ingredients)),
		zap.Float64("confidence", recipe.Confidence),
		zap.Strings("warnings", recipe.Warnings),
	)

	return recipe
}

// NormalizeMenu validates a raw extracted menu dump.
func (s *NormalizerService) NormalizeMenu(raw domain.RawMenu) domain.NormalizedMenu {
	menu := domain.NormalizedMenu{
		Name:     strings.TrimSpace(raw.MenuName),
		Items:    []domain.ParsedMenuItem{},
		Warnings: []string{},
	}

	if menu.Name == "" {
		menu.Name = fallbackMenuName
	}

	missingNames := 0
	for _, ri := range raw.Items {
		item := normalizeMenuItem(ri)
		if item.Name == "" {
			missingNames++
		}
		menu.Items = append(menu.Items, item)
	}

	if len(menu.Items) == 0 {
		menu.Warnings = append(menu.Warnings, warnNoMenuItems)
	}
	if missingNames > 0 {
		menu.Warnings = append(menu.Warnings, warnMissingName)
	}

	menu.Confidence = menuConfidence(menu)
	if menu.Confidence < s.lowConfidence {
		menu.Warnings = append(menu.Warnings, warnLowConfidence)
	}

	s.logger.Debug("normalized menu",
		zap.String("name", menu.Name),
		zap.Int("items", len(menu.Items)),
		zap.Float64("confidence", menu.Confidence),
		zap.Strings("warnings", menu.Warnings),
	)

	return menu
}

// normalizeIngredient coerces one raw ingredient entry. Missing quantity
// becomes "", fractions become decimals, a missing unit is inferred from
// the quantity text, and a missing category is inferred from the name.
func normalizeIngredient(raw domain.RawIngredient) domain.ParsedIngredient {
	ingredient := domain.ParsedIngredient{
		Quantity:    coerceQuantity(raw.Quantity),
		Unit:        strings.TrimSpace(strings.ToLower(raw.Unit)),
		Name:        strings.TrimSpace(raw.Name),
		Preparation: strings.TrimSpace(raw.Preparation),
		Category:    strings.TrimSpace(raw.Category),
		Confidence:  coerceConfidence(raw.Confidence),
	}

	if ingredient.Unit == "" {
		if unit, ok := ExtractUnitFromSize(ingredient.Quantity); ok {
			ingredient.Unit = unit
		} else {
			ingredient.Unit = DefaultUnit
		}
	}
	if ingredient.Category == "" {
		ingredient.Category = Categorize(ingredient.Name, "", ingredient.Preparation)
	}

	return ingredient
}

// normalizeMenuItem coerces one raw menu entry. An unparseable price
// becomes 0, never an error.
func normalizeMenuItem(raw domain.RawMenuItem) domain.ParsedMenuItem {
	item := domain.ParsedMenuItem{
		Name:        strings.TrimSpace(raw.Name),
		Description: strings.TrimSpace(raw.Description),
		Price:       coerceNumber(raw.Price, 0),
		Category:    strings.TrimSpace(raw.Category),
		Confidence:  coerceConfidence(raw.Confidence),
	}

	if item.Price < 0 {
		item.Price = 0
	}

	if unit, ok := ExtractUnitFromSize(raw.Size); ok {
		item.Unit = unit
	} else if strings.TrimSpace(raw.Size) != "" {
		item.Unit = ParseUnitFromSize(raw.Size)
	}

	if item.Category == "" {
		item.Category = Categorize(item.Name, "", item.Description)
	}

	return item
}

// recipeConfidence applies the field-presence heuristic at recipe level:
// same base and clamping as product scoring, with recipe-shaped fields.
func recipeConfidence(recipe domain.NormalizedRecipe) float64 {
	score := confidenceBase

	if recipe.Name != fallbackRecipeName && len(recipe.Name) > 5 {
		score += confidenceName
	}
	if len(recipe.Ingredients) > 0 {
		score += confidenceBrand + confidenceCategory // identifying content present
	}
	if recipe.Servings > 0 {
		score += confidenceSize
	}
	if len(recipe.Instructions) > 0 {
		score += confidenceDescription
	}

	return clamp01(score)
}

// menuConfidence applies the field-presence heuristic at menu level.
func menuConfidence(menu domain.NormalizedMenu) float64 {
	score := confidenceBase

	if menu.Name != fallbackMenuName && len(menu.Name) > 5 {
		score += confidenceName
	}
	if len(menu.Items) > 0 {
		score += confidenceBrand + confidenceCategory
	}
	if len(menu.Items) > 0 && allPriced(menu.Items) {
		score += confidenceSize
	}
	if len(menu.Items) > 0 && allDescribed(menu.Items) {
		score += confidenceDescription
	}

	return clamp01(score)
}

func allPriced(items []domain.ParsedMenuItem) bool {
	for _, item := range items {
		if item.Price <= 0 {
			return false
		}
	}
	return true
}

func allDescribed(items []domain.ParsedMenuItem) bool {
	for _, item := range items {
		if item.Description == "" {
			return false
		}
	}
	return true
}

// coerceQuantity turns an untyped extracted quantity into a decimal string.
// Numbers are formatted, fraction strings go through the contract table,
// and anything unusable becomes "".
func coerceQuantity(v any) string {
	switch q := v.(type) {
	case nil:
		return ""
	case float64:
		return formatQuantity(q)
	case int:
		return strconv.Itoa(q)
	case string:
		trimmed := strings.TrimSpace(q)
		if trimmed == "" {
			return ""
		}
		if decimal, ok := FractionToDecimal(trimmed); ok {
			return decimal
		}
		if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return formatQuantity(parsed)
		}
		return trimmed
	default:
		return ""
	}
}

// formatQuantity renders a numeric quantity without a trailing ".0" for
// whole numbers.
func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return strconv.FormatInt(int64(q), 10)
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// coerceNumber turns an untyped extracted value into a float64, falling
// back to the given default for anything unusable.
func coerceNumber(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		trimmed := strings.TrimPrefix(strings.TrimSpace(n), "$")
		if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return parsed
		}
		return fallback
	default:
		return fallback
	}
}

// coerceConfidence turns an untyped extracted confidence into a clamped
// [0,1] value, defaulting to 0.5.
func coerceConfidence(v any) float64 {
	switch c := v.(type) {
	case float64:
		return clamp01(c)
	case int:
		return clamp01(float64(c))
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(c), 64); err == nil {
			return clamp01(parsed)
		}
		return defaultFieldConfidence
	case nil:
		return defaultFieldConfidence
	default:
		return defaultFieldConfidence
	}
}
