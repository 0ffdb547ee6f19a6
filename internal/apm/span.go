package apm

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span narrows trace.Span to the operations this codebase uses and adds
// NoticeError, which records the error and marks the span failed in one call.
type Span interface {
	SetAttributes(values ...attribute.KeyValue)
	SetAttribute(value attribute.KeyValue)
	End(options ...trace.SpanEndOption)
	NoticeError(err error)
	AddEvent(name string, options ...trace.EventOption)
	IsRecording() bool
	RecordError(err error, options ...trace.EventOption)
	SpanContext() trace.SpanContext
	SetStatus(code codes.Code, description string)
	SetName(name string)
	TracerProvider() trace.TracerProvider
}

type traceSpan struct {
	span trace.Span
}

func NewSpan(span trace.Span) Span {
	return &traceSpan{span: span}
}

func (s *traceSpan) SetAttributes(values ...attribute.KeyValue) {
	s.span.SetAttributes(values...)
}

func (s *traceSpan) SetAttribute(value attribute.KeyValue) {
	s.span.SetAttributes(value)
}

func (s *traceSpan) End(options ...trace.SpanEndOption) {
	s.span.End(options...)
}

// NoticeError records err on the span and sets the span status to Error.
func (s *traceSpan) NoticeError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *traceSpan) AddEvent(name string, options ...trace.EventOption) {
	s.span.AddEvent(name, options...)
}

func (s *traceSpan) IsRecording() bool {
	return s.span.IsRecording()
}

func (s *traceSpan) RecordError(err error, options ...trace.EventOption) {
	s.span.RecordError(err, options...)
}

func (s *traceSpan) SpanContext() trace.SpanContext {
	return s.span.SpanContext()
}

func (s *traceSpan) SetStatus(code codes.Code, description string) {
	s.span.SetStatus(code, description)
}

func (s *traceSpan) SetName(name string) {
	s.span.SetName(name)
}

func (s *traceSpan) TracerProvider() trace.TracerProvider {
	return s.span.TracerProvider()
}
