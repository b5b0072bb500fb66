package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerdock/resume-import/constants"
)

func TestDateYearMonthIsIdempotent(t *testing.T) {
	for _, in := range []string{"2021-01", "1999-12", "2024-06"} {
		first := Date(in)
		require.NotNil(t, first, in)
		assert.Equal(t, in, *first)

		second := Date(*first)
		require.NotNil(t, second)
		assert.Equal(t, *first, *second)
	}
}

func TestDateBareYearExpandsToJanuary(t *testing.T) {
	got := Date("2019")
	require.NotNil(t, got)
	assert.Equal(t, "2019-01", *got)
}

func TestDatePresentTokensYieldNil(t *testing.T) {
	for _, in := range []string{"present", "Present", "PRESENT", "current", "Current role", "now", "ongoing"} {
		assert.Nil(t, Date(in), in)
	}
}

func TestDateParseableFormats(t *testing.T) {
	cases := map[string]string{
		"2021-03-15":   "2021-03",
		"March 2020":   "2020-03",
		"Jan 2018":     "2018-01",
		"06/2022":      "2022-06",
		"June 5, 2023": "2023-06",
	}
	for in, want := range cases {
		got := Date(in)
		require.NotNil(t, got, in)
		assert.Equal(t, want, *got, in)
	}
}

func TestDateUnusableInput(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date", "13/13/13131"} {
		assert.Nil(t, Date(in), in)
	}
}

func TestURLBareDomain(t *testing.T) {
	got := URL("example.com")
	require.NotNil(t, got)
	assert.Equal(t, "https://example.com/", *got)
}

func TestURLKeepsValidAbsolute(t *testing.T) {
	got := URL("https://github.com/janedoe")
	require.NotNil(t, got)
	assert.Equal(t, "https://github.com/janedoe", *got)
}

func TestURLRejectsHostless(t *testing.T) {
	for _, in := range []string{"", "   ", "not a url at all", "https://", "foo"} {
		assert.Nil(t, URL(in), in)
	}
}

func TestYears(t *testing.T) {
	five := Years(5.4)
	require.NotNil(t, five)
	assert.Equal(t, 5, *five)

	six := Years("5.6")
	require.NotNil(t, six)
	assert.Equal(t, 6, *six)

	zero := Years(-2)
	require.NotNil(t, zero)
	assert.Equal(t, 0, *zero)

	assert.Nil(t, Years("ten"))
	assert.Nil(t, Years(nil))
	assert.Nil(t, Years(struct{}{}))
}

func TestRelationshipAllowList(t *testing.T) {
	got := Relationship("Manager")
	require.NotNil(t, got)
	assert.Equal(t, constants.RelationshipManager, *got)

	assert.Nil(t, Relationship("boss"))
	assert.Nil(t, Relationship(""))
}

func TestSkillCategoryDefaultsToTechnical(t *testing.T) {
	assert.Equal(t, constants.SkillSoft, SkillCategory("Soft"))
	assert.Equal(t, constants.SkillTechnical, SkillCategory("wizardry"))
	assert.Equal(t, constants.SkillTechnical, SkillCategory(""))
}

func TestProficiencyAllowList(t *testing.T) {
	got := Proficiency("EXPERT")
	require.NotNil(t, got)
	assert.Equal(t, constants.ProficiencyExpert, *got)

	assert.Nil(t, Proficiency("guru"))
}

func TestPhoneStripsNoise(t *testing.T) {
	got := Phone("call: +1 (555) 123-4567 ext.89")
	require.NotNil(t, got)
	assert.Equal(t, "+1 (555) 123-4567 89", *got)

	assert.Nil(t, Phone("n/a"))
}

func TestSummaryTruncation(t *testing.T) {
	long := strings.Repeat("a", 700)
	got := Summary(long)
	runes := []rune(got)
	assert.Len(t, runes, SummaryMaxLen)
	assert.Equal(t, '…', runes[len(runes)-1])

	short := "kept as is"
	assert.Equal(t, short, Summary(short))
}

func TestJoinList(t *testing.T) {
	got := JoinList([]any{"Go", " PostgreSQL ", "", 42, nil, true})
	require.NotNil(t, got)
	assert.Equal(t, "Go, PostgreSQL, 42", *got)

	assert.Nil(t, JoinList([]any{"", "  ", nil}))
	assert.Nil(t, JoinList(nil))
}
