package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shelfmatch/backend/internal/domain"
	"github.com/shelfmatch/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	matcher    *usecase.MatchingService
	duplicates *usecase.DuplicateService
	normalizer *usecase.NormalizerService
	searcher   domain.InventorySearcher
	records    domain.InventoryLister
	cache      domain.CacheRepository
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// HandlerConfig collects everything the HTTP layer depends on
type HandlerConfig struct {
	Matcher    *usecase.MatchingService
	Duplicates *usecase.DuplicateService
	Normalizer *usecase.NormalizerService
	Searcher   domain.InventorySearcher
	Records    domain.InventoryLister
	Cache      domain.CacheRepository
	CacheTTL   time.Duration
	Logger     *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(config HandlerConfig) *Handler {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = 24 * time.Hour
	}

	return &Handler{
		matcher:    config.Matcher,
		duplicates: config.Duplicates,
		normalizer: config.Normalizer,
		searcher:   config.Searcher,
		records:    config.Records,
		cache:      config.Cache,
		cacheTTL:   config.CacheTTL,
		logger:     config.Logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shelfmatch-backend",
		"version": "1.0.0",
	})
}

type validateBarcodeRequest struct {
	Barcode string `json:"barcode"`
}

// ValidateBarcode checks a scanned barcode for format and check digit validity
func (h *Handler) ValidateBarcode(c *gin.Context) {
	var req validateBarcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode is required"})
		return
	}

	c.JSON(http.StatusOK, usecase.ValidateBarcode(req.Barcode))
}

// MatchProduct ranks inventory candidates against a scanned product
func (h *Handler) MatchProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cacheKey := matchCacheKey(product)
	if cached, err := h.cache.Get(c.Request.Context(), cacheKey); err == nil {
		h.logger.Debug("match cache hit", zap.String("key", cacheKey))
		c.JSON(http.StatusOK, cached)
		return
	}

	matches, err := h.matcher.Match(c.Request.Context(), product, h.searcher)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "product name or barcode is required"})
		case errors.Is(err, domain.ErrInventoryUnavailable):
			h.logger.Error("inventory search failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "inventory temporarily unavailable"})
		default:
			h.logger.Error("product match failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	response := gin.H{
		"matches": matches,
		"count":   len(matches),
	}

	if err := h.cache.Set(c.Request.Context(), cacheKey, response, h.cacheTTL); err != nil {
		// Cache failures never block the response
		h.logger.Warn("failed to cache match results", zap.Error(err))
	}

	c.JSON(http.StatusOK, response)
}

// FindDuplicates scans the full inventory for records that likely describe
// the same product as the submitted one
func (h *Handler) FindDuplicates(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if product.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product name is required"})
		return
	}

	existing, err := h.records.All(c.Request.Context())
	if err != nil {
		h.logger.Error("inventory listing failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "inventory temporarily unavailable"})
		return
	}

	duplicates := h.duplicates.FindDuplicates(product, existing)

	c.JSON(http.StatusOK, gin.H{
		"duplicates": duplicates,
		"count":      len(duplicates),
	})
}

// NormalizeRecipe cleans up raw extracted recipe data
func (h *Handler) NormalizeRecipe(c *gin.Context) {
	var raw domain.RawRecipe
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.normalizer.NormalizeRecipe(raw))
}

// NormalizeMenu cleans up raw extracted menu data
func (h *Handler) NormalizeMenu(c *gin.Context) {
	var raw domain.RawMenu
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.normalizer.NormalizeMenu(raw))
}

// matchCacheKey builds a cache key from the fields the matcher scores on
func matchCacheKey(product domain.Product) string {
	return fmt.Sprintf("match:%s:%s:%s", product.Barcode, product.Name, product.Brand)
}
