package httpclient

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ClientOptions holds configuration for the instrumented client.
type ClientOptions struct {
	client         *http.Client
	requestTimeout *time.Duration
	providerName   string
	baseURL        string
	headers        map[string]string
	meterProvider  metric.MeterProvider
	tracer         trace.Tracer
}

// ClientOption configures a ClientOptions.
type ClientOption func(*ClientOptions)

// NewClientOptions builds ClientOptions from functional options.
func NewClientOptions(opts ...ClientOption) ClientOptions {
	options := ClientOptions{
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithHTTPClient sets a custom underlying http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(o *ClientOptions) {
		o.client = client
	}
}

// WithRequestTimeout sets the per-request timeout.
func WithRequestTimeout(timeout time.Duration) ClientOption {
	return func(o *ClientOptions) {
		o.requestTimeout = &timeout
	}
}

// WithProviderName tags the client's metrics with a provider label.
func WithProviderName(name string) ClientOption {
	return func(o *ClientOptions) {
		o.providerName = name
	}
}

// WithBaseURL sets the base URL prepended to request paths.
func WithBaseURL(baseURL string) ClientOption {
	return func(o *ClientOptions) {
		o.baseURL = baseURL
	}
}

// WithDefaultHeader adds a header sent with every request.
func WithDefaultHeader(key, value string) ClientOption {
	return func(o *ClientOptions) {
		o.headers[key] = value
	}
}

// WithMeterProvider sets the OTEL meter provider.
func WithMeterProvider(mp metric.MeterProvider) ClientOption {
	return func(o *ClientOptions) {
		o.meterProvider = mp
	}
}

// WithTracer sets the OTEL tracer.
func WithTracer(tracer trace.Tracer) ClientOption {
	return func(o *ClientOptions) {
		o.tracer = tracer
	}
}

// ResponseErrorHandler inspects a completed response and maps it to an error.
type ResponseErrorHandler func(resp *Response) error

// RequestOptions holds per-request configuration.
type RequestOptions struct {
	responseErrorHandler ResponseErrorHandler
	labels               map[string]string
}

// RequestOption configures a RequestOptions.
type RequestOption func(*RequestOptions)

// NewRequestOptions builds RequestOptions from functional options.
func NewRequestOptions(opts ...RequestOption) RequestOptions {
	options := RequestOptions{
		labels: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithResponseErrorHandler sets a handler that maps non-2xx responses
// to domain errors.
func WithResponseErrorHandler(handler ResponseErrorHandler) RequestOption {
	return func(o *RequestOptions) {
		o.responseErrorHandler = handler
	}
}

// WithLabel adds a metric label to requests built with these options.
func WithLabel(key, value string) RequestOption {
	return func(o *RequestOptions) {
		o.labels[key] = value
	}
}
