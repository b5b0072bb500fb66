package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Smith
john@example.com
555-123-4567
https://www.linkedin.com/in/johnsmith
https://github.com/jsmith
https://johnsmith.dev

Professional Summary
Seasoned backend engineer with a focus on
distributed systems and developer tooling.

Experience
Acme Corp, Senior Engineer
`

func TestHeuristicName(t *testing.T) {
	ext := heuristicExtract(sampleResume)
	assert.Equal(t, "John", ext.FirstName)
	assert.Equal(t, "Smith", ext.LastName)
}

func TestHeuristicNameSkipsLongAndNoisyLines(t *testing.T) {
	text := "Curriculum Vitae — 2024 edition (updated)\n" +
		strings.Repeat("x", 80) + "\n" +
		"Jane O'Neill\n"
	ext := heuristicExtract(text)
	assert.Equal(t, "Jane", ext.FirstName)
	assert.Equal(t, "O'Neill", ext.LastName)
}

func TestHeuristicNameOnlyScansFirstSixLines(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteString("line-with-digits 123\n")
	}
	b.WriteString("John Smith\n")
	ext := heuristicExtract(b.String())
	assert.Empty(t, ext.FirstName)
	assert.Empty(t, ext.LastName)
}

func TestHeuristicContactFields(t *testing.T) {
	ext := heuristicExtract(sampleResume)
	assert.Equal(t, "john@example.com", ext.Email)
	assert.Equal(t, "555-123-4567", ext.Phone)
	assert.Equal(t, "https://www.linkedin.com/in/johnsmith", ext.LinkedInURL)
	assert.Equal(t, "https://github.com/jsmith", ext.GitHubURL)
	assert.Equal(t, "https://johnsmith.dev", ext.PortfolioURL)
}

func TestHeuristicPhoneNeedsEightDigits(t *testing.T) {
	ext := heuristicExtract("Jane Doe\nroom 12-34\n")
	assert.Empty(t, ext.Phone)
}

func TestHeuristicSummary(t *testing.T) {
	ext := heuristicExtract(sampleResume)
	assert.Equal(t,
		"Seasoned backend engineer with a focus on distributed systems and developer tooling.",
		ext.Summary)
}

func TestHeuristicSummaryStopsAtHeading(t *testing.T) {
	text := "Jane Doe\n\nAbout Me\nBuilds things.\n## Skills\nGo\n"
	ext := heuristicExtract(text)
	assert.Equal(t, "Builds things.", ext.Summary)
}

func TestHeuristicSummaryMissing(t *testing.T) {
	ext := heuristicExtract("Jane Doe\njane@example.com\n")
	assert.Empty(t, ext.Summary)
}
