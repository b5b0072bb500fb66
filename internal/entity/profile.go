package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDraft is the nullable-field profile record produced by one import.
// Exactly one is produced per import, even when extraction yields nothing.
type ProfileDraft struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	LinkedInURL  *string `json:"linkedin_url"`
	GitHubURL    *string `json:"github_url"`
	PortfolioURL *string `json:"portfolio_url"`
	Summary      *string `json:"summary"`
}

// Profile is the persisted profile record.
type Profile struct {
	ID           uuid.UUID
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	City         *string
	Country      *string
	LinkedInURL  *string
	GitHubURL    *string
	PortfolioURL *string
	Summary      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
