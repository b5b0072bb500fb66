package sections

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/llm"
)

var testProfileID = uuid.New()

func TestWorkExperienceMissingCompanyDropsWithIndexedWarning(t *testing.T) {
	raw := []llm.RawWorkExperience{
		{JobTitle: "Engineer", StartDate: "2020-01"},
	}
	res := BuildWorkExperienceItems(raw, testProfileID, 0)
	assert.Empty(t, res.Items)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Work experience #1: missing company", res.Warnings[0])
}

func TestWorkExperienceUnparseableStartDateDrops(t *testing.T) {
	raw := []llm.RawWorkExperience{
		{JobTitle: "Engineer", Company: "Acme", StartDate: "sometime"},
	}
	res := BuildWorkExperienceItems(raw, testProfileID, 0)
	assert.Empty(t, res.Items)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Work experience #1: missing or unparseable start date", res.Warnings[0])
}

func TestWorkExperiencePresentEndDateInfersCurrent(t *testing.T) {
	raw := []llm.RawWorkExperience{
		{JobTitle: "Engineer", Company: "Acme", StartDate: "2020-01", EndDate: "Present"},
	}
	res := BuildWorkExperienceItems(raw, testProfileID, 0)
	require.Len(t, res.Items, 1)
	req := res.Items[0].Request
	assert.True(t, req.IsCurrent)
	assert.Nil(t, req.EndDate)
	assert.Equal(t, "2020-01", req.StartDate)
}

func TestWorkExperienceUnparseableEndDateWarnsOnItem(t *testing.T) {
	raw := []llm.RawWorkExperience{
		{JobTitle: "Engineer", Company: "Acme", StartDate: "2020-01", EndDate: "until the merger"},
	}
	res := BuildWorkExperienceItems(raw, testProfileID, 0)
	require.Len(t, res.Items, 1)
	assert.False(t, res.Items[0].Request.IsCurrent)
	assert.Contains(t, res.Items[0].Warnings, "end date could not be parsed")
	assert.Empty(t, res.Warnings)
}

func TestDroppedRecordDoesNotConsumeDisplayOrder(t *testing.T) {
	raw := []llm.RawWorkExperience{
		{JobTitle: "Engineer", StartDate: "2020-01"}, // no company, dropped
		{JobTitle: "Engineer", Company: "Acme", StartDate: "2021-03"},
	}
	res := BuildWorkExperienceItems(raw, testProfileID, 5)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 5, res.Items[0].Request.DisplayOrder)
}

func TestEducationDisplayOrderContinuesFromExistingCount(t *testing.T) {
	raw := []llm.RawEducation{
		{Degree: "BSc", Institution: "State University"},
		{Degree: "MSc", Institution: "State University"},
	}
	res := BuildEducationItems(raw, testProfileID, 3)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 3, res.Items[0].Request.DisplayOrder)
	assert.Equal(t, 4, res.Items[1].Request.DisplayOrder)
	assert.Empty(t, res.Warnings)
}

func TestEducationMissingBothMandatoryFieldsOneWarning(t *testing.T) {
	raw := []llm.RawEducation{{FieldOfStudy: "History"}}
	res := BuildEducationItems(raw, testProfileID, 0)
	assert.Empty(t, res.Items)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Education #1: missing degree, missing institution", res.Warnings[0])
}

func TestSkillDedupeIsCaseInsensitiveAndSilent(t *testing.T) {
	raw := []llm.RawSkill{
		{Name: "React"},
		{Name: "react"},
		{Name: " REACT "},
		{Name: "Go"},
	}
	res := BuildSkillItems(raw, testProfileID, 0)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "React", res.Items[0].Request.Name)
	assert.Equal(t, "Go", res.Items[1].Request.Name)
	assert.Equal(t, 0, res.Items[0].Request.DisplayOrder)
	assert.Equal(t, 1, res.Items[1].Request.DisplayOrder)
	assert.Empty(t, res.Warnings)
}

func TestSkillUnknownCategoryDefaultsToTechnical(t *testing.T) {
	raw := []llm.RawSkill{
		{Name: "Negotiation", Category: "interpersonal", Proficiency: "wizard", YearsExperience: "5.6"},
	}
	res := BuildSkillItems(raw, testProfileID, 0)
	require.Len(t, res.Items, 1)
	req := res.Items[0].Request
	assert.Equal(t, constants.SkillTechnical, req.Category)
	assert.Nil(t, req.Proficiency)
	require.NotNil(t, req.YearsExperience)
	assert.Equal(t, 6, *req.YearsExperience)
}

func TestProjectTechnologiesJoined(t *testing.T) {
	raw := []llm.RawProject{
		{Title: "Importer", Technologies: []any{"Go", " gRPC ", "", 2.0}, EndDate: "ongoing"},
	}
	res := BuildProjectItems(raw, testProfileID, 0)
	require.Len(t, res.Items, 1)
	req := res.Items[0].Request
	require.NotNil(t, req.Technologies)
	assert.Equal(t, "Go, gRPC, 2", *req.Technologies)
	assert.True(t, req.IsOngoing)
	assert.Nil(t, req.EndDate)
}

func TestCertificationRequiresNameAndIssuer(t *testing.T) {
	raw := []llm.RawCertification{
		{Name: "CKA"},
		{Name: "AWS SAA", IssuingOrg: "Amazon Web Services", IssueDate: "March 2023"},
	}
	res := BuildCertificationItems(raw, testProfileID, 0)
	require.Len(t, res.Items, 1)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Certification #1: missing issuing organization", res.Warnings[0])
	require.NotNil(t, res.Items[0].Request.IssueDate)
	assert.Equal(t, "2023-03", *res.Items[0].Request.IssueDate)
	assert.Equal(t, 0, res.Items[0].Request.DisplayOrder)
}

func TestAchievementRequiresTitle(t *testing.T) {
	raw := []llm.RawAchievement{{Description: "won a prize"}}
	res := BuildAchievementItems(raw, testProfileID, 0)
	assert.Empty(t, res.Items)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Achievement #1: missing title", res.Warnings[0])
}

func TestReferenceRelationshipNormalized(t *testing.T) {
	raw := []llm.RawReference{
		{Name: "Dana Lee", Relationship: "Manager", Phone: "call +1 555 000 1111"},
		{Name: "Sam Roe", Relationship: "acquaintance"},
	}
	res := BuildReferenceItems(raw, testProfileID, 0)
	require.Len(t, res.Items, 2)
	require.NotNil(t, res.Items[0].Request.Relationship)
	assert.Equal(t, constants.RelationshipManager, *res.Items[0].Request.Relationship)
	require.NotNil(t, res.Items[0].Request.Phone)
	assert.Equal(t, "+1 555 000 1111", *res.Items[0].Request.Phone)
	assert.Nil(t, res.Items[1].Request.Relationship)
}

func TestDraftItemIDsAreUnique(t *testing.T) {
	raw := []llm.RawSkill{{Name: "Go"}, {Name: "Rust"}}
	res := BuildSkillItems(raw, testProfileID, 0)
	require.Len(t, res.Items, 2)
	assert.NotEqual(t, res.Items[0].ID, res.Items[1].ID)
}
