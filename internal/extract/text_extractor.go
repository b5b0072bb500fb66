package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/common"
)

// Extractor routes a raw document to the right extraction strategy based on
// its declared media type.
type Extractor struct {
	ocr *OCRClient
	log *slog.Logger
}

func NewExtractor(ocr *OCRClient, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{ocr: ocr, log: logger}
}

var _ TextExtractor = (*Extractor)(nil)

// Extract turns document bytes plus a declared media type into text.
// Plain text is decoded locally; PDFs and ambiguous binaries go to the OCR
// endpoint inline; word-processor formats go through upload -> signed URL ->
// OCR with an unconditional cleanup of the uploaded document.
func (e *Extractor) Extract(ctx context.Context, doc RawDocument) (TextExtractionResult, error) {
	start := time.Now()
	kind := constants.ClassifyMediaType(doc.MediaType)
	e.log.Info("extract.start", "media_type", doc.MediaType, "kind", string(kind), "bytes", len(doc.Data))

	switch kind {
	case constants.KindText:
		res, err := e.extractPlainText(doc)
		res.Duration = time.Since(start)
		return res, err
	case constants.KindPDF, constants.KindBinary:
		res, err := e.extractInline(ctx, doc)
		res.Duration = time.Since(start)
		return res, err
	case constants.KindWord:
		res, err := e.extractViaUpload(ctx, doc)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.log.Error("extract.unsupported_media", "media_type", doc.MediaType)
		return TextExtractionResult{}, common.WrapError(common.ErrUnsupportedMedia, doc.MediaType)
	}
}

func (e *Extractor) extractPlainText(doc RawDocument) (TextExtractionResult, error) {
	text := string(doc.Data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "")
	}
	if strings.TrimSpace(text) == "" {
		return TextExtractionResult{}, common.WrapError(common.ErrEmptyDocument, "no readable text in plain-text upload")
	}
	return TextExtractionResult{Text: text, Pages: 1, Method: "plain-text"}, nil
}

func (e *Extractor) extractInline(ctx context.Context, doc RawDocument) (TextExtractionResult, error) {
	mediaType := constants.NormalizeMediaType(doc.MediaType)
	if mediaType == "" {
		mediaType = constants.MediaOctetStream
	}
	dataURL := "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(doc.Data)

	resp, err := e.ocr.Process(ctx, dataURL)
	if err != nil {
		return TextExtractionResult{}, err
	}
	return e.flatten(resp, "ocr-inline")
}

// extractViaUpload runs the three-step protocol for word-processor formats:
// upload, sign, process. The uploaded document is deleted afterwards no
// matter how processing went; a cleanup failure is logged and never masks
// the primary result.
func (e *Extractor) extractViaUpload(ctx context.Context, doc RawDocument) (TextExtractionResult, error) {
	fileName := doc.FileName
	if fileName == "" {
		fileName = "resume"
	}
	fileID, err := e.ocr.Upload(ctx, fileName, doc.Data)
	if err != nil {
		return TextExtractionResult{}, err
	}
	defer func() {
		if derr := e.ocr.Delete(ctx, fileID); derr != nil {
			e.log.Warn("extract.cleanup_failed", "file_id", fileID, "error", derr)
		}
	}()

	signedURL, err := e.ocr.SignedURL(ctx, fileID)
	if err != nil {
		return TextExtractionResult{}, err
	}
	resp, err := e.ocr.Process(ctx, signedURL)
	if err != nil {
		return TextExtractionResult{}, err
	}
	return e.flatten(resp, "ocr-upload")
}

// flatten concatenates per-page markdown (or plain text) in page order,
// separated by a blank line, falling back to the whole-document text field.
func (e *Extractor) flatten(resp *ocrResponse, method string) (TextExtractionResult, error) {
	parts := make([]string, 0, len(resp.Pages))
	for _, page := range resp.Pages {
		text := page.Markdown
		if strings.TrimSpace(text) == "" {
			text = page.Text
		}
		if strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) > 0 {
		return TextExtractionResult{
			Text:   strings.Join(parts, "\n\n"),
			Pages:  len(resp.Pages),
			Method: method,
		}, nil
	}
	if strings.TrimSpace(resp.Text) != "" {
		return TextExtractionResult{Text: resp.Text, Pages: len(resp.Pages), Method: method}, nil
	}
	return TextExtractionResult{}, common.WrapError(common.ErrUpstream,
		fmt.Sprintf("ocr response contained no usable text (%d pages)", len(resp.Pages)))
}
