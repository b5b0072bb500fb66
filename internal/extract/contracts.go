package extract

import (
	"context"
	"time"
)

// RawDocument is the immutable upload: bytes plus the declared media type.
// It is consumed once by the text extractor and then discarded.
type RawDocument struct {
	Data      []byte
	FileName  string
	MediaType string
}

// TextExtractor turns a raw document into plain/markdown text.
type TextExtractor interface {
	Extract(ctx context.Context, doc RawDocument) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "plain-text" | "ocr-inline" | "ocr-upload"
	Duration time.Duration
}
