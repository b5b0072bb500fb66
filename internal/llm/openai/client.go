package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/internal/llm"
)

// maxPromptChars caps how much resume text we ship to the model. Resumes are
// rarely longer; anything past this is almost always appendix noise.
const maxPromptChars = 16000

// ExtractResume implements llm.ResumeExtractor using text-only chat/completions
// with a JSON response format, validated locally against the resume schema.
func (c *Client) ExtractResume(ctx context.Context, text string) (llm.ResumeExtraction, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
	)

	schema := llm.BuildResumeJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt()},
			{"role": "user", "content": buildUserPrompt(text) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ResumeExtraction{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ResumeExtraction{}, raw, fmt.Errorf("decode model response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ResumeExtraction{}, raw, fmt.Errorf("no choices in model response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ResumeExtraction{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.ResumeExtraction
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ResumeExtraction{}, rawContent, fmt.Errorf("unmarshal extraction: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"work_experiences", len(out.WorkExperiences),
		"educations", len(out.Educations),
		"skills", len(out.Skills),
		"projects", len(out.Projects),
		"certifications", len(out.Certifications),
		"achievements", len(out.Achievements),
		"references", len(out.References),
		"model_warnings", len(out.Warnings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("model response body close error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("model status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}

func buildSystemPrompt() string {
	parts := []string{
		"You are a resume parser. Return ONLY JSON that matches the JSON Schema provided.",
		"Extract the candidate's identity, contact details, professional links, and professional summary.",
		"Extract every work experience, education, skill, project, certification, achievement, and reference you can find.",
		"Use ISO-like dates (YYYY-MM where possible); copy 'Present' or 'Current' verbatim for ongoing entries.",
		"Do not invent facts. If a field is not present in the text, omit it.",
		"Never output null. Empty arrays may be omitted entirely.",
		"If parts of the resume are ambiguous or unreadable, add a short note to the 'warnings' array.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Resume text:\n")
	if len(text) > maxPromptChars {
		b.WriteString(text[:maxPromptChars])
	} else {
		b.WriteString(text)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
