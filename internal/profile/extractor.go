package profile

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/normalize"
)

// Warning strings produced locally. Kept as constants so the uniqueness set
// actually deduplicates them against repeated tiers.
const (
	WarnNoText            = "No readable text was found in the document."
	WarnHeuristicFallback = "AI extraction was unavailable or failed; pattern-based extraction was used instead."
	WarnNoName            = "Could not detect a name; please fill it in manually."
	WarnNoEmail           = "No email address was found."
	WarnNoPhone           = "No phone number was found."
)

// Extractor orchestrates the two extraction tiers over already-extracted
// resume text. The AI tier runs first when configured; the heuristic tier is
// the fallback and never fails.
type Extractor struct {
	ai  llm.ResumeExtractor // nil when no extraction-model credential is configured
	log *slog.Logger
}

func NewExtractor(ai llm.ResumeExtractor, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{ai: ai, log: logger}
}

// Result is the outcome of profile extraction over one document. Extraction
// carries the structured payload the section importers consume; it comes from
// the AI tier only (the heuristic tier yields profile fields, not records).
type Result struct {
	Profile    entity.ProfileDraft
	Extraction llm.ResumeExtraction
	Warnings   []string
}

// Extract produces exactly one profile draft, even when the text yields
// nothing. Validation gaps surface as warnings, never as errors.
func (e *Extractor) Extract(ctx context.Context, text string) Result {
	start := time.Now()

	if strings.TrimSpace(text) == "" {
		return Result{Warnings: []string{WarnNoText}}
	}

	var (
		ext      llm.ResumeExtraction
		warnings []string
	)

	used := "heuristic"
	if e.ai != nil {
		aiExt, _, err := e.ai.ExtractResume(ctx, text)
		if err != nil {
			e.log.Warn("profile.extract.ai_tier_failed", "error", err)
			warnings = append(warnings, WarnHeuristicFallback)
			ext = heuristicExtract(text)
		} else {
			used = "ai"
			ext = aiExt
			warnings = append(warnings, aiExt.Warnings...)
		}
	} else {
		ext = heuristicExtract(text)
	}

	draft := buildDraft(ext)
	warnings = append(warnings, deriveWarnings(draft)...)
	warnings = dedupeWarnings(warnings)

	e.log.Info("profile.extract.ok",
		"tier", used,
		"warnings", len(warnings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Profile: draft, Extraction: ext, Warnings: warnings}
}

// buildDraft pushes every extracted field through the relevant normalizer.
func buildDraft(ext llm.ResumeExtraction) entity.ProfileDraft {
	var summary *string
	if s := strings.TrimSpace(ext.Summary); s != "" {
		v := normalize.Summary(s)
		summary = &v
	}
	return entity.ProfileDraft{
		FirstName:    normalize.StringPtr(ext.FirstName),
		LastName:     normalize.StringPtr(ext.LastName),
		Email:        normalize.StringPtr(ext.Email),
		Phone:        normalizePhone(ext.Phone),
		City:         normalize.StringPtr(ext.City),
		Country:      normalize.StringPtr(ext.Country),
		LinkedInURL:  normalize.URL(ext.LinkedInURL),
		GitHubURL:    normalize.URL(ext.GitHubURL),
		PortfolioURL: normalize.URL(ext.PortfolioURL),
		Summary:      summary,
	}
}

func normalizePhone(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return normalize.Phone(s)
}

// deriveWarnings adds the always-applied local warnings for missing contact
// essentials.
func deriveWarnings(draft entity.ProfileDraft) []string {
	var out []string
	if draft.FirstName == nil && draft.LastName == nil {
		out = append(out, WarnNoName)
	}
	if draft.Email == nil {
		out = append(out, WarnNoEmail)
	}
	if draft.Phone == nil {
		out = append(out, WarnNoPhone)
	}
	return out
}

// dedupeWarnings drops blank and repeated warning strings, preserving the
// first occurrence order.
func dedupeWarnings(warnings []string) []string {
	seen := make(map[string]struct{}, len(warnings))
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
