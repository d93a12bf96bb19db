package otel

import (
	"context"
	"log/slog"

	"github.com/gbarnett-hz/langchain/pkg/extractor"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Extractor interface {
	Observable
	extractor.Provider
}

type observableExtractor struct {
	name     string
	provider string

	extractor extractor.Provider
}

func NewExtractor(provider, name string, p extractor.Provider) Extractor {
	return &observableExtractor{
		extractor: p,

		name:     name,
		provider: provider,
	}
}

func (p *observableExtractor) otelSetup() {
}

func (p *observableExtractor) Extract(ctx context.Context, input extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "extract "+p.name, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	span.SetAttributes(KeyValues([]KeyValue{
		String("extractor.name", p.name),
		String("extractor.provider", p.provider),
	}, EndUserAttrs(ctx))...)

	result, err := p.extractor.Extract(ctx, input, options)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	if EnableDebug {
		span.SetAttributes(attribute.String("file.name", input.Name))

		slog.DebugContext(ctx, "extracted document",
			"extractor", p.name,
			"file", input.Name,
			"length", len(result.Text),
		)
	}

	return result, nil
}
