package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/gen/ent"
	"github.com/careerdock/resume-import/internal/common"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/utils"
)

type ProfileRepository interface {
	// UpsertFromDraft creates the profile when id is uuid.Nil, otherwise
	// patches the existing row with the draft's non-nil fields.
	UpsertFromDraft(ctx context.Context, id uuid.UUID, draft entity.ProfileDraft) (*entity.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{client: client, logger: logger}
}

func (r *profileRepository) UpsertFromDraft(ctx context.Context, id uuid.UUID, draft entity.ProfileDraft) (*entity.Profile, error) {
	if id == uuid.Nil {
		p, err := r.client.Profile.Create().
			SetNillableFirstName(draft.FirstName).
			SetNillableLastName(draft.LastName).
			SetNillableEmail(draft.Email).
			SetNillablePhone(draft.Phone).
			SetNillableCity(draft.City).
			SetNillableCountry(draft.Country).
			SetNillableLinkedinURL(draft.LinkedInURL).
			SetNillableGithubURL(draft.GitHubURL).
			SetNillablePortfolioURL(draft.PortfolioURL).
			SetNillableSummary(draft.Summary).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to create profile", "error", err)
			return nil, err
		}
		return utils.ToProfile(p), nil
	}

	p, err := r.client.Profile.UpdateOneID(id).
		SetNillableFirstName(draft.FirstName).
		SetNillableLastName(draft.LastName).
		SetNillableEmail(draft.Email).
		SetNillablePhone(draft.Phone).
		SetNillableCity(draft.City).
		SetNillableCountry(draft.Country).
		SetNillableLinkedinURL(draft.LinkedInURL).
		SetNillableGithubURL(draft.GitHubURL).
		SetNillablePortfolioURL(draft.PortfolioURL).
		SetNillableSummary(draft.Summary).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.WrapError(common.ErrNotFound, "profile "+id.String())
		}
		r.logger.Error("failed to update profile", "profile_id", id, "error", err)
		return nil, err
	}
	return utils.ToProfile(p), nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	p, err := r.client.Profile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.WrapError(common.ErrNotFound, "profile "+id.String())
		}
		r.logger.Error("failed to get profile", "profile_id", id, "error", err)
		return nil, err
	}
	return utils.ToProfile(p), nil
}
