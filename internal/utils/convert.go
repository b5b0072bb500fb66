// Package utils holds small conversion helpers between generated persistence
// types, domain entities, and the wire layer.
package utils

import (
	"github.com/careerdock/resume-import/gen/ent"
	"github.com/careerdock/resume-import/internal/entity"
)

// ToProfile converts a persisted profile row to the domain entity.
func ToProfile(p *ent.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Phone:        p.Phone,
		City:         p.City,
		Country:      p.Country,
		LinkedInURL:  p.LinkedinURL,
		GitHubURL:    p.GithubURL,
		PortfolioURL: p.PortfolioURL,
		Summary:      p.Summary,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// StrValue dereferences a nillable string for display, empty when absent.
func StrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
