package constants

import "strings"

// DocumentKind groups declared media types by how the text extractor handles them.
type DocumentKind string

const (
	KindText        DocumentKind = "TEXT"   // decoded locally, no OCR call
	KindPDF         DocumentKind = "PDF"    // sent to OCR inline
	KindWord        DocumentKind = "WORD"   // upload -> signed URL -> OCR -> delete
	KindBinary      DocumentKind = "BINARY" // ambiguous; sent to OCR inline
	KindUnsupported DocumentKind = ""
)

// Declared media types accepted at the upload boundary.
const (
	MediaPlainText   = "text/plain"
	MediaMarkdown    = "text/markdown"
	MediaPDF         = "application/pdf"
	MediaWord        = "application/msword"
	MediaWordX       = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaOctetStream = "application/octet-stream"
)

// MaxUploadBytes caps uploaded resume documents (enforced at the server boundary).
const MaxUploadBytes = 10 << 20

// NormalizeMediaType lowercases a declared media type and strips parameters
// ("text/plain; charset=utf-8" -> "text/plain").
func NormalizeMediaType(mt string) string {
	mt = strings.TrimSpace(strings.ToLower(mt))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}

// ClassifyMediaType maps a declared media type onto an extraction strategy.
func ClassifyMediaType(mt string) DocumentKind {
	switch NormalizeMediaType(mt) {
	case MediaPlainText, MediaMarkdown:
		return KindText
	case MediaPDF:
		return KindPDF
	case MediaWord, MediaWordX:
		return KindWord
	case MediaOctetStream, "":
		return KindBinary
	default:
		return KindUnsupported
	}
}
