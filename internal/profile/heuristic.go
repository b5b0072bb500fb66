package profile

import (
	"regexp"
	"strings"

	"github.com/careerdock/resume-import/internal/llm"
)

// Heuristic tier: deterministic pattern matching over the raw text. Used when
// no extraction-model credential is configured or the AI tier fails. It never
// fails itself; anything it cannot find is simply left empty.

const (
	nameScanLines = 6
	nameMaxLen    = 60
	nameMaxTokens = 6
)

var (
	reNameLine  = regexp.MustCompile(`^[\p{L}][\p{L} .,'’-]*$`)
	reEmail     = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	rePhoneCand = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{6,}\d`)
	reLinkedIn  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/[^\s<>()"']+`)
	reGitHub    = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[^\s<>()"']+`)
	reURL       = regexp.MustCompile(`(?i)https?://[^\s<>()"']+`)
	reDigits    = regexp.MustCompile(`\d`)
	rePunct     = regexp.MustCompile(`[^\p{L}\p{N} ]`)
)

// summaryLabels are the recognized summary-section headings (lowercase,
// punctuation stripped).
var summaryLabels = map[string]struct{}{
	"summary":              {},
	"professional summary": {},
	"profile":              {},
	"about me":             {},
	"objective":            {},
}

// Extract derives profile fields from raw resume text using pattern matching
// only. Section arrays stay empty; the heuristic tier has no record-level
// understanding of the document.
func heuristicExtract(text string) llm.ResumeExtraction {
	var out llm.ResumeExtraction

	lines := strings.Split(text, "\n")

	out.FirstName, out.LastName = detectName(lines)
	out.Email = reEmail.FindString(text)
	out.Phone = detectPhone(text)
	out.LinkedInURL = reLinkedIn.FindString(text)
	out.GitHubURL = reGitHub.FindString(text)
	out.PortfolioURL = detectPortfolio(text)
	out.Summary = detectSummary(lines)

	return out
}

// detectName scans the first few non-empty lines for a short, letters-only
// line and splits it into first/last name.
func detectName(lines []string) (first, last string) {
	seen := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > nameScanLines {
			break
		}
		if len(line) > nameMaxLen || !reNameLine.MatchString(line) {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 || len(tokens) > nameMaxTokens {
			continue
		}
		first = tokens[0]
		if len(tokens) > 1 {
			last = strings.Join(tokens[1:], " ")
		}
		return first, last
	}
	return "", ""
}

// detectPhone returns the first digit-heavy match with at least 8 digits.
func detectPhone(text string) string {
	for _, cand := range rePhoneCand.FindAllString(text, -1) {
		if len(reDigits.FindAllString(cand, -1)) >= 8 {
			return strings.TrimSpace(cand)
		}
	}
	return ""
}

// detectPortfolio returns the first URL that is not on the LinkedIn or GitHub
// domains.
func detectPortfolio(text string) string {
	for _, cand := range reURL.FindAllString(text, -1) {
		lower := strings.ToLower(cand)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return cand
	}
	return ""
}

// detectSummary finds a summary-section heading and accumulates the lines
// under it until the next heading-like line or a blank line (after content
// has started) terminates the section.
func detectSummary(lines []string) string {
	start := -1
	for i, line := range lines {
		if isSummaryLabel(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	var parts []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") || isSummaryLabel(trimmed) {
			break
		}
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, " ")
}

func isSummaryLabel(line string) bool {
	stripped := strings.TrimSpace(rePunct.ReplaceAllString(strings.ToLower(line), ""))
	stripped = strings.Join(strings.Fields(stripped), " ")
	_, ok := summaryLabels[stripped]
	return ok
}
