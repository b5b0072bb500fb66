package entity

import (
	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
)

// Entity-creation payloads. Section importers only ever emit fully-validated
// instances of these; the repositories consume them unchanged at commit time.

type CreateWorkExperienceRequest struct {
	ProfileID    uuid.UUID `json:"profile_id"`
	JobTitle     string    `json:"job_title"`
	Company      string    `json:"company"`
	Location     *string   `json:"location"`
	StartDate    string    `json:"start_date"` // YYYY-MM
	EndDate      *string   `json:"end_date"`   // YYYY-MM, nil while current
	IsCurrent    bool      `json:"is_current"`
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"display_order"`
}

type CreateEducationRequest struct {
	ProfileID    uuid.UUID `json:"profile_id"`
	Degree       string    `json:"degree"`
	Institution  string    `json:"institution"`
	FieldOfStudy *string   `json:"field_of_study"`
	StartDate    *string   `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	IsCurrent    bool      `json:"is_current"`
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"display_order"`
}

type CreateSkillRequest struct {
	ProfileID       uuid.UUID               `json:"profile_id"`
	Name            string                  `json:"name"`
	Category        constants.SkillCategory `json:"category"`
	Proficiency     *constants.Proficiency  `json:"proficiency"`
	YearsExperience *int                    `json:"years_experience"`
	DisplayOrder    int                     `json:"display_order"`
}

type CreateProjectRequest struct {
	ProfileID    uuid.UUID `json:"profile_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Technologies *string   `json:"technologies"` // comma-joined
	URL          *string   `json:"url"`
	StartDate    *string   `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	IsOngoing    bool      `json:"is_ongoing"`
	DisplayOrder int       `json:"display_order"`
}

type CreateCertificationRequest struct {
	ProfileID     uuid.UUID `json:"profile_id"`
	Name          string    `json:"name"`
	IssuingOrg    string    `json:"issuing_org"`
	IssueDate     *string   `json:"issue_date"`
	ExpiryDate    *string   `json:"expiry_date"`
	CredentialID  *string   `json:"credential_id"`
	CredentialURL *string   `json:"credential_url"`
	DisplayOrder  int       `json:"display_order"`
}

type CreateAchievementRequest struct {
	ProfileID    uuid.UUID `json:"profile_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Date         *string   `json:"date"`
	DisplayOrder int       `json:"display_order"`
}

type CreateReferenceRequest struct {
	ProfileID    uuid.UUID               `json:"profile_id"`
	Name         string                  `json:"name"`
	JobTitle     *string                 `json:"job_title"`
	Company      *string                 `json:"company"`
	Email        *string                 `json:"email"`
	Phone        *string                 `json:"phone"`
	Relationship *constants.Relationship `json:"relationship"`
	DisplayOrder int                     `json:"display_order"`
}
