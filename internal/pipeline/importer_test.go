package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/common"
	"github.com/careerdock/resume-import/internal/extract"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/profile"
)

type fakeAI struct {
	ext llm.ResumeExtraction
	err error
}

func (f *fakeAI) ExtractResume(context.Context, string) (llm.ResumeExtraction, []byte, error) {
	return f.ext, nil, f.err
}

func newImporter(ai llm.ResumeExtractor) *Importer {
	return NewImporter(
		extract.NewExtractor(nil, nil),
		profile.NewExtractor(ai, nil),
		nil,
	)
}

func TestImportPlainTextEndToEnd(t *testing.T) {
	im := newImporter(nil)

	res, err := im.Import(context.Background(), ImportRequest{
		Data:      []byte("John Smith\njohn@example.com\n555-123-4567\n"),
		MediaType: constants.MediaPlainText,
		ProfileID: uuid.New(),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Profile.FirstName)
	assert.Equal(t, "John", *res.Profile.FirstName)
	require.NotNil(t, res.Profile.LastName)
	assert.Equal(t, "Smith", *res.Profile.LastName)
	require.NotNil(t, res.Profile.Email)
	assert.Equal(t, "john@example.com", *res.Profile.Email)
	require.NotNil(t, res.Profile.Phone)
	assert.Equal(t, "555-123-4567", *res.Profile.Phone)

	assert.NotContains(t, res.Warnings, profile.WarnNoName)
	assert.NotContains(t, res.Warnings, profile.WarnNoEmail)
	assert.NotContains(t, res.Warnings, profile.WarnNoPhone)
	assert.Contains(t, res.Markdown, "John Smith")
	assert.Equal(t, 0, res.DraftCount())
}

func TestImportEmptyUploadIsInputError(t *testing.T) {
	im := newImporter(&fakeAI{err: errors.New("should not be reached")})

	_, err := im.Import(context.Background(), ImportRequest{
		Data:      nil,
		MediaType: constants.MediaPlainText,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrEmptyDocument))
	assert.False(t, errors.Is(err, common.ErrUpstream))
}

func TestImportOversizeUploadRejected(t *testing.T) {
	im := newImporter(nil)

	_, err := im.Import(context.Background(), ImportRequest{
		Data:      []byte(strings.Repeat("a", constants.MaxUploadBytes+1)),
		MediaType: constants.MediaPlainText,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDocumentTooLarge))
}

func TestImportBuildsSectionDraftsWithSeededOrder(t *testing.T) {
	profileID := uuid.New()
	ai := &fakeAI{ext: llm.ResumeExtraction{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Phone:     "+1 555 000 1111",
		Educations: []llm.RawEducation{
			{Degree: "BSc", Institution: "State University"},
			{Degree: "MSc", Institution: "State University"},
		},
		Skills: []llm.RawSkill{{Name: "Go"}, {Name: "go"}},
	}}
	im := newImporter(ai)

	res, err := im.Import(context.Background(), ImportRequest{
		Data:      []byte("resume text"),
		MediaType: constants.MediaPlainText,
		ProfileID: profileID,
		Counts:    map[constants.Section]int{constants.SectionEducation: 3},
	})
	require.NoError(t, err)

	require.Len(t, res.Educations.Items, 2)
	assert.Equal(t, 3, res.Educations.Items[0].Request.DisplayOrder)
	assert.Equal(t, 4, res.Educations.Items[1].Request.DisplayOrder)
	assert.Equal(t, profileID, res.Educations.Items[0].Request.ProfileID)

	require.Len(t, res.Skills.Items, 1)
	assert.Equal(t, "Go", res.Skills.Items[0].Request.Name)
	assert.Equal(t, 3, res.DraftCount())
}
