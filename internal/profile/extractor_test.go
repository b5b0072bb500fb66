package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerdock/resume-import/internal/llm"
)

type fakeResumeExtractor struct {
	ext llm.ResumeExtraction
	err error
}

func (f *fakeResumeExtractor) ExtractResume(context.Context, string) (llm.ResumeExtraction, []byte, error) {
	return f.ext, nil, f.err
}

func TestExtractEmptyTextShortCircuits(t *testing.T) {
	ai := &fakeResumeExtractor{err: errors.New("should not be called")}
	e := NewExtractor(ai, nil)

	res := e.Extract(context.Background(), "   \n\t ")
	assert.Nil(t, res.Profile.FirstName)
	assert.Nil(t, res.Profile.Email)
	assert.Equal(t, []string{WarnNoText}, res.Warnings)
}

func TestExtractAITierSuccess(t *testing.T) {
	ai := &fakeResumeExtractor{ext: llm.ResumeExtraction{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Phone:       "+1 (555) 000-1111",
		LinkedInURL: "linkedin.com/in/janedoe",
		Warnings:    []string{"Employment dates were partially unreadable."},
	}}
	e := NewExtractor(ai, nil)

	res := e.Extract(context.Background(), "whatever text")
	require.NotNil(t, res.Profile.FirstName)
	assert.Equal(t, "Jane", *res.Profile.FirstName)
	require.NotNil(t, res.Profile.LinkedInURL)
	assert.Equal(t, "https://linkedin.com/in/janedoe", *res.Profile.LinkedInURL)

	assert.Contains(t, res.Warnings, "Employment dates were partially unreadable.")
	assert.NotContains(t, res.Warnings, WarnNoName)
	assert.NotContains(t, res.Warnings, WarnNoEmail)
	assert.NotContains(t, res.Warnings, WarnNoPhone)
	assert.NotContains(t, res.Warnings, WarnHeuristicFallback)
}

func TestExtractAITierFailureFallsBackToHeuristic(t *testing.T) {
	ai := &fakeResumeExtractor{err: errors.New("model timeout")}
	e := NewExtractor(ai, nil)

	res := e.Extract(context.Background(), "John Smith\njohn@example.com\n555-123-4567\n")
	require.NotNil(t, res.Profile.FirstName)
	assert.Equal(t, "John", *res.Profile.FirstName)
	require.NotNil(t, res.Profile.LastName)
	assert.Equal(t, "Smith", *res.Profile.LastName)
	require.NotNil(t, res.Profile.Email)
	assert.Equal(t, "john@example.com", *res.Profile.Email)

	assert.Contains(t, res.Warnings, WarnHeuristicFallback)
	assert.NotContains(t, res.Warnings, WarnNoName)
}

func TestExtractNoCredentialUsesHeuristic(t *testing.T) {
	e := NewExtractor(nil, nil)

	res := e.Extract(context.Background(), "John Smith\njohn@example.com\n555-123-4567\n")
	require.NotNil(t, res.Profile.Phone)
	assert.Equal(t, "555-123-4567", *res.Profile.Phone)
	assert.NotContains(t, res.Warnings, WarnHeuristicFallback)
	assert.NotContains(t, res.Warnings, WarnNoEmail)
	assert.NotContains(t, res.Warnings, WarnNoPhone)
}

func TestExtractMissingContactWarnings(t *testing.T) {
	e := NewExtractor(nil, nil)

	res := e.Extract(context.Background(), "Some unstructured notes about work history 123\nmore text\n")
	assert.Contains(t, res.Warnings, WarnNoName)
	assert.Contains(t, res.Warnings, WarnNoEmail)
	assert.Contains(t, res.Warnings, WarnNoPhone)
}

func TestWarningsAreDeduplicated(t *testing.T) {
	ai := &fakeResumeExtractor{ext: llm.ResumeExtraction{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Phone:     "+15550001111",
		Warnings:  []string{"dup", "dup", "  ", "other"},
	}}
	e := NewExtractor(ai, nil)

	res := e.Extract(context.Background(), "text")
	assert.Equal(t, []string{"dup", "other"}, res.Warnings)
}
