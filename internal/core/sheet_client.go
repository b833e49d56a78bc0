package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gptsolver-backend-go/internal/models"
	"gptsolver-backend-go/pkg/cache"
)

const sheetCacheKeyPrefix = "sheet:items:"

// SheetClientConfig configures the sheet API client.
type SheetClientConfig struct {
	BaseURL   string
	RateLimit float64 // requests per second
	Timeout   time.Duration
	CacheTTL  time.Duration
}

// httpSheetClient fetches sheet items over HTTP. Responses are cached when a
// cache is configured.
type httpSheetClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      cache.Cache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewSheetClient creates a SheetClient. c may be nil to disable caching.
func NewSheetClient(cfg SheetClientConfig, c cache.Cache, logger *zap.Logger) SheetClient {
	burst := int(cfg.RateLimit)
	if burst < 1 {
		burst = 1
	}
	return &httpSheetClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), burst),
		cache:      c,
		cacheTTL:   cfg.CacheTTL,
		logger:     logger,
	}
}

// FetchItems returns the items of sheetID. Any transport failure, non-200
// status or empty body is an ErrUpstream.
func (c *httpSheetClient) FetchItems(ctx context.Context, sheetID string) ([]models.SheetItem, error) {
	if items, ok := c.cached(ctx, sheetID); ok {
		return items, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, Upstream("sheet API rate limit wait aborted", err)
	}

	endpoint := fmt.Sprintf("%s/sheet/%s/items", c.baseURL, url.PathEscape(sheetID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, Upstream("failed to build sheet API request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, Upstream("error when getting sheet data", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Upstream("failed to read sheet API response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, Upstream(fmt.Sprintf("error when getting sheet data: status %d", resp.StatusCode), nil)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, Upstream("sheet data empty", nil)
	}

	var items []models.SheetItem
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, Upstream("failed to decode sheet data", err)
	}

	c.store(ctx, sheetID, trimmed)
	return items, nil
}

func (c *httpSheetClient) cached(ctx context.Context, sheetID string) ([]models.SheetItem, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, err := c.cache.Get(ctx, sheetCacheKeyPrefix+sheetID)
	if err != nil || raw == "" {
		return nil, false
	}
	var items []models.SheetItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn("Discarding undecodable cached sheet items", zap.String("sheetID", sheetID), zap.Error(err))
		if err := c.cache.Delete(ctx, sheetCacheKeyPrefix+sheetID); err != nil {
			c.logger.Warn("Failed to evict cached sheet items", zap.String("sheetID", sheetID), zap.Error(err))
		}
		return nil, false
	}
	return items, true
}

func (c *httpSheetClient) store(ctx context.Context, sheetID string, body []byte) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.cache.Set(ctx, sheetCacheKeyPrefix+sheetID, string(body), c.cacheTTL); err != nil {
		c.logger.Warn("Failed to cache sheet items", zap.String("sheetID", sheetID), zap.Error(err))
	}
}
