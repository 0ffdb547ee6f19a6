package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Request is a fluent builder for a single HTTP call.
type Request interface {
	// SetHeader sets a request header.
	SetHeader(key, value string) Request
	// SetQueryParam adds a query string parameter.
	SetQueryParam(key, value string) Request
	// SetBody sets the request body, JSON-encoding non-[]byte values.
	SetBody(body any) Request
	// SetResult sets the destination for JSON-decoding the response body.
	SetResult(result any) Request
	// Get executes a GET request against path.
	Get(ctx context.Context, path string) (*Response, error)
	// Post executes a POST request against path.
	Post(ctx context.Context, path string) (*Response, error)
}

// Response wraps the outcome of an executed request.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// IsError reports whether the response status is outside 2xx.
func (r *Response) IsError() bool {
	return r.StatusCode < http.StatusOK || r.StatusCode >= http.StatusMultipleChoices
}

// String returns the response body as a string.
func (r *Response) String() string {
	return string(r.Body)
}

type requestBuilder struct {
	client         *http.Client
	requestCounter metric.Int64Counter
	providerName   string
	tracer         trace.Tracer
	baseURL        string
	headers        map[string]string
	queryParams    url.Values
	body           []byte
	result         any
	errorHandler   ResponseErrorHandler
	labels         map[string]string
	buildErr       error
}

func (r *requestBuilder) SetHeader(key, value string) Request {
	r.headers[key] = value
	return r
}

func (r *requestBuilder) SetQueryParam(key, value string) Request {
	if r.queryParams == nil {
		r.queryParams = make(url.Values)
	}
	r.queryParams.Set(key, value)
	return r
}

func (r *requestBuilder) SetBody(body any) Request {
	switch b := body.(type) {
	case []byte:
		r.body = b
	case string:
		r.body = []byte(b)
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			r.buildErr = fmt.Errorf("encoding request body: %w", err)
			return r
		}
		r.body = encoded
		r.headers["Content-Type"] = "application/json"
	}
	return r
}

func (r *requestBuilder) SetResult(result any) Request {
	r.result = result
	return r
}

func (r *requestBuilder) Get(ctx context.Context, path string) (*Response, error) {
	return r.execute(ctx, http.MethodGet, path)
}

func (r *requestBuilder) Post(ctx context.Context, path string) (*Response, error) {
	return r.execute(ctx, http.MethodPost, path)
}

func (r *requestBuilder) execute(ctx context.Context, method, path string) (*Response, error) {
	if r.buildErr != nil {
		return nil, r.buildErr
	}

	fullURL := r.buildURL(path)

	ctx, span := r.tracer.Start(ctx, fmt.Sprintf("http.%s %s", strings.ToLower(method), path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.url", fullURL),
			attribute.String("provider", r.providerName),
		),
	)
	defer span.End()

	var bodyReader io.Reader
	if len(r.body) > 0 {
		bodyReader = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("building request: %w", err)
	}

	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	httpResp, err := r.client.Do(req)
	r.recordRequest(ctx, method, path, httpResp, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("executing %s %s: %w", method, path, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
		Header:     httpResp.Header,
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.IsError() {
		span.SetStatus(codes.Error, httpResp.Status)
		if r.errorHandler != nil {
			return resp, r.errorHandler(resp)
		}
		return resp, fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if r.result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, r.result); err != nil {
			span.RecordError(err)
			return resp, fmt.Errorf("decoding response body: %w", err)
		}
	}

	return resp, nil
}

func (r *requestBuilder) buildURL(path string) string {
	fullURL := path
	if r.baseURL != "" {
		fullURL = strings.TrimRight(r.baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	}
	if len(r.queryParams) > 0 {
		fullURL += "?" + r.queryParams.Encode()
	}
	return fullURL
}

func (r *requestBuilder) recordRequest(ctx context.Context, method, path string, resp *http.Response, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.String("provider", r.providerName),
	}
	if err != nil {
		attrs = append(attrs, attribute.String("outcome", "error"))
	} else {
		attrs = append(attrs,
			attribute.String("outcome", "ok"),
			attribute.Int("status", resp.StatusCode),
		)
	}
	for k, v := range r.labels {
		attrs = append(attrs, attribute.String(k, v))
	}
	r.requestCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
}
