package extract

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/common"
)

// fakeOCRServer records which provider endpoints were hit and serves
// configurable OCR responses.
type fakeOCRServer struct {
	srv *httptest.Server

	ocrResponse any
	ocrStatus   int
	deleteFails bool

	uploads int
	signs   int
	deletes int
	ocrs    int
}

func newFakeOCRServer(t *testing.T) *fakeOCRServer {
	t.Helper()
	f := &fakeOCRServer{ocrStatus: http.StatusOK}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/ocr", func(w http.ResponseWriter, r *http.Request) {
		f.ocrs++
		w.WriteHeader(f.ocrStatus)
		_ = json.NewEncoder(w).Encode(f.ocrResponse)
	})
	mux.HandleFunc("POST /v1/files", func(w http.ResponseWriter, r *http.Request) {
		f.uploads++
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "ocr", r.FormValue("purpose"))
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "file-123"})
	})
	mux.HandleFunc("GET /v1/files/file-123/url", func(w http.ResponseWriter, r *http.Request) {
		f.signs++
		assert.NotEmpty(t, r.URL.Query().Get("expiry"))
		_ = json.NewEncoder(w).Encode(map[string]string{"url": f.srv.URL + "/signed/file-123"})
	})
	mux.HandleFunc("DELETE /v1/files/file-123", func(w http.ResponseWriter, r *http.Request) {
		f.deletes++
		if f.deleteFails {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeOCRServer) extractor() *Extractor {
	client := NewOCRClient(OCRConfig{BaseURL: f.srv.URL, APIKey: "test-key"}, nil)
	return NewExtractor(client, nil)
}

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor(nil, nil)
	res, err := e.Extract(context.Background(), RawDocument{
		Data:      []byte("John Smith\njohn@example.com\n"),
		MediaType: constants.MediaPlainText,
	})
	require.NoError(t, err)
	assert.Equal(t, "plain-text", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "John Smith")
}

func TestExtractEmptyPlainTextIsInputError(t *testing.T) {
	e := NewExtractor(nil, nil)
	_, err := e.Extract(context.Background(), RawDocument{
		Data:      []byte("   \n\t"),
		MediaType: constants.MediaPlainText,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrEmptyDocument))
	assert.False(t, errors.Is(err, common.ErrUpstream))
}

func TestExtractUnsupportedMediaType(t *testing.T) {
	e := NewExtractor(nil, nil)
	_, err := e.Extract(context.Background(), RawDocument{
		Data:      []byte("x"),
		MediaType: "image/png",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnsupportedMedia))
}

func TestExtractPDFJoinsPagesInOrder(t *testing.T) {
	f := newFakeOCRServer(t)
	f.ocrResponse = map[string]any{
		"pages": []map[string]any{
			{"index": 0, "markdown": "# Page one"},
			{"index": 1, "markdown": "", "text": "page two plain"},
			{"index": 2, "markdown": "   "},
		},
	}
	res, err := f.extractor().Extract(context.Background(), RawDocument{
		Data:      []byte("%PDF-1.7 ..."),
		MediaType: constants.MediaPDF,
	})
	require.NoError(t, err)
	assert.Equal(t, "ocr-inline", res.Method)
	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, "# Page one\n\npage two plain", res.Text)
	assert.Equal(t, 1, f.ocrs)
	assert.Equal(t, 0, f.uploads)
}

func TestExtractFallsBackToDocumentText(t *testing.T) {
	f := newFakeOCRServer(t)
	f.ocrResponse = map[string]any{"text": "whole document text"}
	res, err := f.extractor().Extract(context.Background(), RawDocument{
		Data:      []byte("%PDF"),
		MediaType: constants.MediaPDF,
	})
	require.NoError(t, err)
	assert.Equal(t, "whole document text", res.Text)
}

func TestExtractNoUsableTextIsUpstreamError(t *testing.T) {
	f := newFakeOCRServer(t)
	f.ocrResponse = map[string]any{"pages": []map[string]any{{"index": 0}}}
	_, err := f.extractor().Extract(context.Background(), RawDocument{
		Data:      []byte("%PDF"),
		MediaType: constants.MediaPDF,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpstream))
}

func TestExtractWordGoesThroughUploadSignProcessDelete(t *testing.T) {
	f := newFakeOCRServer(t)
	f.ocrResponse = map[string]any{
		"pages": []map[string]any{{"index": 0, "markdown": "resume body"}},
	}
	res, err := f.extractor().Extract(context.Background(), RawDocument{
		Data:      []byte("docx bytes"),
		FileName:  "resume.docx",
		MediaType: constants.MediaWordX,
	})
	require.NoError(t, err)
	assert.Equal(t, "ocr-upload", res.Method)
	assert.Equal(t, "resume body", res.Text)
	assert.Equal(t, 1, f.uploads)
	assert.Equal(t, 1, f.signs)
	assert.Equal(t, 1, f.ocrs)
	assert.Equal(t, 1, f.deletes)
}

func TestExtractWordDeletesUploadEvenWhenOCRFails(t *testing.T) {
	f := newFakeOCRServer(t)
	f.ocrStatus = http.StatusBadGateway
	f.ocrResponse = map[string]any{}
	_, err := f.extractor().Extract(context.Background(), RawDocument{
		Data:      []byte("docx bytes"),
		FileName:  "resume.docx",
		MediaType: constants.MediaWord,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpstream))
	assert.Equal(t, 1, f.deletes)
}

func TestExtractWordCleanupFailureDoesNotMaskSuccess(t *testing.T) {
	f := newFakeOCRServer(t)
	f.deleteFails = true
	f.ocrResponse = map[string]any{
		"pages": []map[string]any{{"index": 0, "markdown": "resume body"}},
	}
	res, err := f.extractor().Extract(context.Background(), RawDocument{
		Data:      []byte("docx bytes"),
		FileName:  "resume.docx",
		MediaType: constants.MediaWordX,
	})
	require.NoError(t, err)
	assert.Equal(t, "resume body", res.Text)
	assert.Equal(t, 1, f.deletes)
}
