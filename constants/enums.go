package constants

import "strings"

// SkillCategory is the canonical skill taxonomy. Category is mandatory on a
// skill, so unknown input falls back to Technical rather than being dropped.
type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillLanguage  SkillCategory = "language"
	SkillTool      SkillCategory = "tool"
	SkillOther     SkillCategory = "other"
)

var allSkillCategories = []SkillCategory{
	SkillTechnical,
	SkillSoft,
	SkillLanguage,
	SkillTool,
	SkillOther,
}

// SkillCategories returns the allowed categories as strings (schema enum input).
func SkillCategories() []string {
	out := make([]string, len(allSkillCategories))
	for i, c := range allSkillCategories {
		out[i] = string(c)
	}
	return out
}

// CanonicalSkillCategory resolves freeform input against the allow-list.
// Anything outside the list comes back as (Technical, false).
func CanonicalSkillCategory(input string) (SkillCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, c := range allSkillCategories {
		if normalized == string(c) {
			return c, true
		}
	}
	return SkillTechnical, false
}

// Proficiency is the canonical skill proficiency scale. Optional: unknown -> none.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

var allProficiencies = []Proficiency{
	ProficiencyBeginner,
	ProficiencyIntermediate,
	ProficiencyAdvanced,
	ProficiencyExpert,
}

// Proficiencies returns the allowed proficiency levels as strings.
func Proficiencies() []string {
	out := make([]string, len(allProficiencies))
	for i, p := range allProficiencies {
		out[i] = string(p)
	}
	return out
}

// CanonicalProficiency resolves freeform input against the allow-list.
func CanonicalProficiency(input string) (Proficiency, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, p := range allProficiencies {
		if normalized == string(p) {
			return p, true
		}
	}
	return "", false
}

// Relationship is the canonical reference relationship taxonomy. Optional.
type Relationship string

const (
	RelationshipManager   Relationship = "manager"
	RelationshipColleague Relationship = "colleague"
	RelationshipClient    Relationship = "client"
	RelationshipProfessor Relationship = "professor"
	RelationshipMentor    Relationship = "mentor"
	RelationshipOther     Relationship = "other"
)

var allRelationships = []Relationship{
	RelationshipManager,
	RelationshipColleague,
	RelationshipClient,
	RelationshipProfessor,
	RelationshipMentor,
	RelationshipOther,
}

// Relationships returns the allowed relationship values as strings.
func Relationships() []string {
	out := make([]string, len(allRelationships))
	for i, r := range allRelationships {
		out[i] = string(r)
	}
	return out
}

// CanonicalRelationship resolves freeform input against the allow-list.
func CanonicalRelationship(input string) (Relationship, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, r := range allRelationships {
		if normalized == string(r) {
			return r, true
		}
	}
	return "", false
}
