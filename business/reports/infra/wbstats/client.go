// Package wbstats provides access to the marketplace seller statistics API.
package wbstats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/profitlens/seller-analytics/business/reports/domain"
	"github.com/profitlens/seller-analytics/internal/apperror"
	"github.com/profitlens/seller-analytics/internal/circuitbreaker"
	"github.com/profitlens/seller-analytics/internal/httpclient"
	"github.com/profitlens/seller-analytics/internal/logger"
	"github.com/profitlens/seller-analytics/internal/ratelimit"
)

const (
	tracerName = "wbstats"

	// Default statistics API host
	BaseAPIURL = "https://statistics-api.wildberries.ru"

	httpTimeout = 30 * time.Second
)

// ClientConfig holds configuration for the statistics API client.
type ClientConfig struct {
	APIKey             string
	BaseURL            string // empty = default
	AnalyticsBaseURL   string // host for analytics endpoints, empty = BaseURL
	Timeout            time.Duration
	RateLimitPerMinute int
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig(apiKey string) ClientConfig {
	return ClientConfig{
		APIKey:             apiKey,
		BaseURL:            BaseAPIURL,
		Timeout:            httpTimeout,
		RateLimitPerMinute: 60,
	}
}

// Client fetches seller reports from the statistics API. Calls are rate
// limited and guarded by a circuit breaker.
type Client struct {
	apiKey    string
	stats     httpclient.Client
	analytics httpclient.Client
	limiter   *ratelimit.Limiter
	breaker   *circuitbreaker.Breaker[*httpclient.Response]
	logger    logger.LoggerInterface
	tracer    trace.Tracer
}

// NewClient creates a statistics API client. A missing API key is not an
// error here; file-only operations never touch the API, so the key is
// checked when a request is actually made.
func NewClient(cfg ClientConfig, log logger.LoggerInterface) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = BaseAPIURL
	}
	analyticsURL := cfg.AnalyticsBaseURL
	if analyticsURL == "" {
		analyticsURL = baseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = httpTimeout
	}

	rpm := cfg.RateLimitPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	tracer := otel.Tracer(tracerName)

	newClient := func(host, provider string) (httpclient.Client, error) {
		return httpclient.NewInstrumentedClient(
			httpclient.WithProviderName(provider),
			httpclient.WithBaseURL(host),
			httpclient.WithRequestTimeout(timeout),
			httpclient.WithTracer(tracer),
			httpclient.WithDefaultHeader("Authorization", cfg.APIKey),
			httpclient.WithDefaultHeader("Accept", "application/json"),
		)
	}

	stats, err := newClient(baseURL, "wb-statistics")
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	analytics, err := newClient(analyticsURL, "wb-analytics")
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &Client{
		apiKey:    cfg.APIKey,
		stats:     stats,
		analytics: analytics,
		limiter:   ratelimit.New(rpm),
		breaker:   circuitbreaker.New[*httpclient.Response](circuitbreaker.DefaultConfig("wbstats")),
		logger:    log,
		tracer:    tracer,
	}, nil
}

// FetchReport downloads one report by catalog key. Failures are folded
// into the result envelope rather than returned, so a caller fetching
// many reports keeps the partial results.
func (c *Client) FetchReport(ctx context.Context, key string, from, to time.Time) *ReportResult {
	if c.apiKey == "" {
		return &ReportResult{
			Key:    key,
			Name:   key,
			Status: "error",
			Error: apperror.New(apperror.CodeConfigurationError,
				apperror.WithContext("statistics API key is required, set WB_API_KEY")).Error(),
		}
	}

	endpoint, ok := Endpoints[key]
	if !ok {
		return &ReportResult{
			Key:    key,
			Name:   key,
			Status: "error",
			Error:  apperror.New(apperror.CodeUnknownReport, apperror.WithContext(key)).Error(),
		}
	}

	ctx, span := c.tracer.Start(ctx, "wbstats.fetch_report",
		trace.WithAttributes(
			attribute.String("report", key),
			attribute.String("from", from.Format(dateOnly)),
			attribute.String("to", to.Format(dateOnly)),
		),
	)
	defer span.End()

	result := &ReportResult{Key: key, Name: endpoint.Name}

	if err := c.limiter.Wait(ctx); err != nil {
		span.RecordError(err)
		result.Status = "error"
		result.Error = err.Error()
		return result
	}

	client := c.stats
	if endpoint.Host == AnalyticsHost {
		client = c.analytics
	}

	resp, err := c.breaker.Execute(func() (*httpclient.Response, error) {
		req := client.NewRequestWithOptions(
			httpclient.WithLabel("report", key),
			httpclient.WithResponseErrorHandler(statsErrorHandler),
		)
		for param, values := range endpoint.Params(from, to) {
			for _, v := range values {
				req.SetQueryParam(param, v)
			}
		}
		return req.Get(ctx, endpoint.Path)
	})

	if err != nil {
		span.RecordError(err)
		result.Status = "error"
		result.Error = err.Error()
		if resp != nil {
			result.HTTPCode = resp.StatusCode
		}
		c.logger.Warn(ctx, "report fetch failed", "report", key, "error", err)
		return result
	}

	result.Status = "success"
	result.HTTPCode = resp.StatusCode
	result.Data = json.RawMessage(resp.Body)
	result.Count = payloadCount(result.Data)

	c.logger.Debug(ctx, "report fetched", "report", key, "rows", result.Count)

	return result
}

// payloadCount returns the element count for array payloads, 1 otherwise.
func payloadCount(data json.RawMessage) int {
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err == nil {
		return len(arr)
	}
	if len(data) == 0 {
		return 0
	}
	return 1
}

// Records downloads the realization report and converts its rows into
// domain records.
func (c *Client) Records(ctx context.Context, from, to time.Time) ([]domain.Record, error) {
	result := c.FetchReport(ctx, ReportDetail, from, to)
	if !result.OK() {
		return nil, apperror.New(apperror.CodeReportFetchFailed,
			apperror.WithContext(result.Error))
	}

	rows, err := result.Rows()
	if err != nil {
		return nil, apperror.New(apperror.CodeParseError, apperror.WithCause(err))
	}

	records := make([]domain.Record, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToRecord())
	}
	return records, nil
}

// statsErrorHandler maps API error responses to domain errors.
func statsErrorHandler(resp *httpclient.Response) error {
	var code apperror.Code
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		code = apperror.CodeStatsAPIUnauthorized
	case http.StatusForbidden:
		code = apperror.CodeStatsAPIForbidden
	case http.StatusTooManyRequests:
		code = apperror.CodeStatsAPIRateLimited
	default:
		code = apperror.CodeStatsAPIError
	}

	var apiErr APIError
	if err := json.Unmarshal(resp.Body, &apiErr); err == nil && (apiErr.Detail != "" || apiErr.Title != "") {
		return apperror.New(code, apperror.WithCause(&apiErr),
			apperror.WithContext(fmt.Sprintf("HTTP %d", resp.StatusCode)))
	}

	return apperror.New(code,
		apperror.WithContext(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.String())))
}
