package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/careerdock/resume-import/internal/common"
)

// OCRConfig configures the OCR provider client.
type OCRConfig struct {
	BaseURL         string
	APIKey          string
	Model           string
	Timeout         time.Duration
	SignedURLExpiry time.Duration
}

// OCRClient talks to the OCR provider: document OCR plus the upload /
// signed-URL / delete trio used for formats the OCR endpoint cannot take
// inline.
type OCRClient struct {
	cfg        OCRConfig
	httpClient *http.Client
	log        *slog.Logger
}

func NewOCRClient(cfg OCRConfig, logger *slog.Logger) *OCRClient {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Model == "" {
		cfg.Model = "mistral-ocr-latest"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if cfg.SignedURLExpiry <= 0 {
		cfg.SignedURLExpiry = 24 * time.Hour
	}
	return &OCRClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// ocrPage is one page of the provider's paginated response.
type ocrPage struct {
	Index    int    `json:"index"`
	Markdown string `json:"markdown"`
	Text     string `json:"text"`
}

// ocrResponse is the provider's opaque paginated structure. Text is a
// whole-document fallback some responses carry instead of pages.
type ocrResponse struct {
	Pages []ocrPage `json:"pages"`
	Text  string    `json:"text"`
}

// Process runs OCR against a document URL (data URL or signed URL).
func (c *OCRClient) Process(ctx context.Context, documentURL string) (*ocrResponse, error) {
	body := map[string]any{
		"model": c.cfg.Model,
		"document": map[string]any{
			"type":         "document_url",
			"document_url": documentURL,
		},
	}
	raw, err := c.postJSON(ctx, c.endpoint("/v1/ocr"), body)
	if err != nil {
		return nil, err
	}
	var out ocrResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, common.WrapError(common.ErrUpstream, fmt.Sprintf("decode ocr response: %v", err))
	}
	return &out, nil
}

// Upload stores a document at the provider for later OCR and returns its id.
func (c *OCRClient) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("purpose", "ocr"); err != nil {
		return "", fmt.Errorf("write purpose field: %w", err)
	}
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return "", fmt.Errorf("write file part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/v1/files"), &buf)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	raw, err := c.do(req)
	if err != nil {
		return "", err
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || out.ID == "" {
		return "", common.WrapError(common.ErrUpstream, "upload response missing file id")
	}
	return out.ID, nil
}

// SignedURL obtains a time-limited access URL for an uploaded document.
func (c *OCRClient) SignedURL(ctx context.Context, fileID string) (string, error) {
	hours := int(c.cfg.SignedURLExpiry / time.Hour)
	if hours < 1 {
		hours = 1
	}
	url := fmt.Sprintf("%s?expiry=%d", c.endpoint("/v1/files/"+fileID+"/url"), hours)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build signed-url request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	raw, err := c.do(req)
	if err != nil {
		return "", err
	}
	var out struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || out.URL == "" {
		return "", common.WrapError(common.ErrUpstream, "signed-url response missing url")
	}
	return out.URL, nil
}

// Delete removes an uploaded document from the provider.
func (c *OCRClient) Delete(ctx context.Context, fileID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint("/v1/files/"+fileID), nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	_, err = c.do(req)
	return err
}

func (c *OCRClient) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

func (c *OCRClient) postJSON(ctx context.Context, url string, body any) ([]byte, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	return c.do(req)
}

func (c *OCRClient) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.WrapError(common.ErrUpstream, fmt.Sprintf("ocr http error: %v", err))
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("ocr.response_body_close_error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	c.log.Debug("ocr.http.response",
		"method", req.Method,
		"url", req.URL.Path,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return raw, common.WrapError(common.ErrUpstream,
			fmt.Sprintf("ocr status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))))
	}
	return raw, nil
}
