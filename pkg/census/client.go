// Package census is a client for the US Census Bureau Geocoding Services
// API. It builds well-formed requests from friendly benchmark, vintage, and
// layer names, invokes the service, and parses the responses into typed
// Location, MatchedAddress, and geographic-area Collection values.
package census

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/census-geocoder/internal/batchfile"
	"github.com/sells-group/census-geocoder/internal/cache"
	"github.com/sells-group/census-geocoder/internal/resilience"
)

const defaultBaseURL = "https://geocoding.geo.census.gov"

// BatchRecord is one input row for batch geocoding.
type BatchRecord = batchfile.Record

// Client geocodes addresses and coordinates against the Census Geocoder.
type Client interface {
	// GeocodeAddress geocodes a single address, one-line or parametrized.
	GeocodeAddress(ctx context.Context, req AddressRequest) (*Location, error)

	// GeocodeCoordinates looks up the geographic areas containing a point.
	GeocodeCoordinates(ctx context.Context, req CoordinateRequest) (*Location, error)

	// GeocodeBatch geocodes a batch address file (CSV, TXT/DAT, or XLSX).
	GeocodeBatch(ctx context.Context, path string, opts RequestOptions) ([]BatchResult, error)

	// GeocodeBatchRecords geocodes in-memory records, splitting inputs over
	// the 10,000-record service ceiling into concurrent chunks.
	GeocodeBatchRecords(ctx context.Context, records []BatchRecord, opts RequestOptions) ([]BatchResult, error)
}

// Option configures the client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the service endpoint.
func WithBaseURL(base string) Option {
	return func(c *client) {
		c.baseURL = base
	}
}

// WithRateLimit sets the requests-per-second rate limit for service calls.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

// WithRetry overrides the default retry policy.
func WithRetry(cfg resilience.RetryConfig) Option {
	return func(c *client) {
		c.retry = cfg
	}
}

// WithCircuitBreaker overrides the default circuit breaker policy guarding
// calls to the service.
func WithCircuitBreaker(cfg resilience.CircuitBreakerConfig) Option {
	return func(c *client) {
		c.breaker = resilience.NewCircuitBreaker(cfg)
	}
}

// WithCache attaches a response cache. Single-address and coordinate
// responses are served from and written through the cache; batch uploads
// bypass it.
func WithCache(store cache.Store) Option {
	return func(c *client) {
		c.cache = store
	}
}

// WithDefaults sets the benchmark, vintage, layers, and return type applied
// when a request leaves them unset.
func WithDefaults(opts RequestOptions) Option {
	return func(c *client) {
		c.defaults = opts
	}
}

type client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	retry      resilience.RetryConfig
	breaker    *resilience.CircuitBreaker
	cache      cache.Store
	defaults   RequestOptions
}

// NewClient creates a Client with the given options.
func NewClient(opts ...Option) Client {
	c := &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		limiter:    rate.NewLimiter(50, 50), // service handles ~50 req/s comfortably
		retry:      resilience.DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.breaker == nil {
		cfg := resilience.DefaultCircuitBreakerConfig()
		cfg.OnStateChange = func(from, to resilience.CircuitState) {
			zap.L().Warn("geocoder circuit state changed",
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
		}
		c.breaker = resilience.NewCircuitBreaker(cfg)
	}
	return c
}

// GeocodeAddress geocodes a single address.
func (c *client) GeocodeAddress(ctx context.Context, req AddressRequest) (*Location, error) {
	req.RequestOptions = req.RequestOptions.withFallback(c.defaults)
	path, params, err := buildAddressQuery(req)
	if err != nil {
		return nil, err
	}
	return c.fetchLocation(ctx, path, params)
}

// GeocodeCoordinates looks up the geographic areas containing a point.
func (c *client) GeocodeCoordinates(ctx context.Context, req CoordinateRequest) (*Location, error) {
	req.RequestOptions = req.RequestOptions.withFallback(c.defaults)
	path, params, err := buildCoordinateQuery(req)
	if err != nil {
		return nil, err
	}
	return c.fetchLocation(ctx, path, params)
}

// fetchLocation performs a GET request and decodes the location envelope,
// consulting the cache when one is attached.
func (c *client) fetchLocation(ctx context.Context, path string, params url.Values) (*Location, error) {
	key := cache.Key(path, params)
	if c.cache != nil {
		if body, ok, err := c.cache.Get(ctx, key); err != nil {
			zap.L().Warn("geocode cache read failed", zap.Error(err))
		} else if ok {
			return decodeLocation(body)
		}
	}

	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	loc, err := decodeLocation(body)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		if err := c.cache.Set(ctx, key, body); err != nil {
			zap.L().Warn("geocode cache write failed", zap.Error(err))
		}
	}
	return loc, nil
}

func decodeLocation(body []byte) (*Location, error) {
	var loc Location
	if err := loc.UnmarshalJSON(body); err != nil {
		return nil, err
	}
	return &loc, nil
}

// get performs a rate-limited GET with retry on transient failures. The
// circuit breaker sits outside the retry loop, so one exhausted call counts
// as a single failure.
func (c *client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path + "?" + params.Encode()

	var body []byte
	cfg := c.retry
	if cfg.OnRetry == nil {
		cfg.OnRetry = resilience.RetryLogger(path)
	}
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return resilience.Do(ctx, cfg, func(ctx context.Context) error {
			if err := c.limiter.Wait(ctx); err != nil {
				return eris.Wrap(err, "census: rate limit")
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
			if err != nil {
				return eris.Wrap(err, "census: build request")
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return eris.Wrap(err, "census: request")
			}
			defer resp.Body.Close() //nolint:errcheck

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return eris.Wrap(err, "census: read body")
			}

			if resp.StatusCode >= 400 {
				apiErr := &APIError{StatusCode: resp.StatusCode, Body: truncateBody(data)}
				if resilience.IsTransientHTTPStatus(resp.StatusCode) {
					return resilience.NewTransientError(apiErr, resp.StatusCode)
				}
				return apiErr
			}

			body = data
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// truncateBody keeps error payloads readable in logs and messages.
func truncateBody(data []byte) string {
	const max = 512
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
