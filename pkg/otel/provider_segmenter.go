package otel

import (
	"context"
	"log/slog"
	"time"

	"github.com/gbarnett-hz/langchain/pkg/segmenter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Segmenter interface {
	Observable
	segmenter.Provider
}

type observableSegmenter struct {
	name     string
	provider string

	segmenter segmenter.Provider

	durationMetric metric.Float64Histogram
	segmentsMetric metric.Int64Counter
}

func NewSegmenter(provider, name string, p segmenter.Provider) Segmenter {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("segmenter.operation.duration",
		metric.WithDescription("Duration of segment operations"),
		metric.WithUnit("s"),
	)

	segmentsMetric, _ := meter.Int64Counter("segmenter.segments",
		metric.WithDescription("Number of produced segments"),
		metric.WithUnit("{segment}"),
	)

	return &observableSegmenter{
		segmenter: p,

		name:     name,
		provider: provider,

		durationMetric: durationMetric,
		segmentsMetric: segmentsMetric,
	}
}

func (p *observableSegmenter) otelSetup() {
}

func (p *observableSegmenter) Segment(ctx context.Context, input string, options *segmenter.SegmentOptions) ([]segmenter.Segment, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "segment "+p.name, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	timestamp := time.Now()

	result, err := p.segmenter.Segment(ctx, input, options)

	attrs := KeyValues([]KeyValue{
		String("segmenter.name", p.name),
		String("segmenter.provider", p.provider),
	}, EndUserAttrs(ctx))

	span.SetAttributes(attrs...)
	span.SetAttributes(attribute.Int("segmenter.input.length", len(input)))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))
	p.segmentsMetric.Add(ctx, int64(len(result)), metric.WithAttributes(attrs...))

	span.SetAttributes(attribute.Int("segmenter.segments", len(result)))

	if EnableDebug {
		slog.DebugContext(ctx, "segmented input",
			"segmenter", p.name,
			"input", len(input),
			"segments", len(result),
			"duration", time.Since(timestamp),
		)
	}

	return result, nil
}
