package llm

import "context"

// ResumeExtraction is the structured shape we want from the extraction model.
// Profile fields are empty-string when absent (the model is told to omit, not
// null). Section arrays are loosely typed on purpose: every record still goes
// through validation and normalization before it can become a draft.
type ResumeExtraction struct {
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	GitHubURL    string `json:"github_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
	Summary      string `json:"summary,omitempty"`

	WorkExperiences []RawWorkExperience `json:"work_experiences,omitempty"`
	Educations      []RawEducation      `json:"educations,omitempty"`
	Skills          []RawSkill          `json:"skills,omitempty"`
	Projects        []RawProject        `json:"projects,omitempty"`
	Certifications  []RawCertification  `json:"certifications,omitempty"`
	Achievements    []RawAchievement    `json:"achievements,omitempty"`
	References      []RawReference      `json:"references,omitempty"`

	// Warnings is free text the model may add about uncertain or partial data.
	Warnings []string `json:"warnings,omitempty"`
}

type RawWorkExperience struct {
	JobTitle    string `json:"job_title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type RawEducation struct {
	Degree       string `json:"degree,omitempty"`
	Institution  string `json:"institution,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Description  string `json:"description,omitempty"`
}

type RawSkill struct {
	Name            string `json:"name,omitempty"`
	Category        string `json:"category,omitempty"`
	Proficiency     string `json:"proficiency,omitempty"`
	YearsExperience any    `json:"years_experience,omitempty"`
}

type RawProject struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Technologies []any  `json:"technologies,omitempty"`
	URL          string `json:"url,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

type RawCertification struct {
	Name          string `json:"name,omitempty"`
	IssuingOrg    string `json:"issuing_organization,omitempty"`
	IssueDate     string `json:"issue_date,omitempty"`
	ExpiryDate    string `json:"expiry_date,omitempty"`
	CredentialID  string `json:"credential_id,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
}

type RawAchievement struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

type RawReference struct {
	Name         string `json:"name,omitempty"`
	JobTitle     string `json:"job_title,omitempty"`
	Company      string `json:"company,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// ResumeExtractor is the AI-tier interface the profile extractor depends on.
type ResumeExtractor interface {
	ExtractResume(ctx context.Context, text string) (ResumeExtraction, []byte /*rawJSON*/, error)
}
