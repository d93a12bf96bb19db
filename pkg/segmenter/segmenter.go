package segmenter

import (
	"context"
)

type Provider interface {
	Segment(ctx context.Context, input string, options *SegmentOptions) ([]Segment, error)
}

type SegmentOptions struct {
	FileName string

	SegmentLength  *int
	SegmentOverlap *int
}

type Segment struct {
	Text string

	// byte offset of Text in the input
	Offset int
}
