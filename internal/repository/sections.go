package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/gen/ent"
	"github.com/careerdock/resume-import/gen/ent/achievement"
	"github.com/careerdock/resume-import/gen/ent/certification"
	"github.com/careerdock/resume-import/gen/ent/education"
	"github.com/careerdock/resume-import/gen/ent/project"
	"github.com/careerdock/resume-import/gen/ent/reference"
	"github.com/careerdock/resume-import/gen/ent/skill"
	"github.com/careerdock/resume-import/gen/ent/workexperience"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/staging"
)

// SectionRepository persists validated section records and reports how many
// already exist per section. It is the staging store's Persister.
type SectionRepository interface {
	staging.Persister
	Counts(ctx context.Context, profileID uuid.UUID) (map[constants.Section]int, error)
}

type sectionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSectionRepository(client *ent.Client, logger *slog.Logger) SectionRepository {
	return &sectionRepository{client: client, logger: logger}
}

func (r *sectionRepository) CreateWorkExperience(ctx context.Context, req entity.CreateWorkExperienceRequest) error {
	_, err := r.client.WorkExperience.Create().
		SetProfileID(req.ProfileID).
		SetJobTitle(req.JobTitle).
		SetCompany(req.Company).
		SetNillableLocation(req.Location).
		SetStartDate(req.StartDate).
		SetNillableEndDate(req.EndDate).
		SetIsCurrent(req.IsCurrent).
		SetNillableDescription(req.Description).
		SetDisplayOrder(req.DisplayOrder).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create work experience", "profile_id", req.ProfileID, "error", err)
	}
	return err
}

func (r *sectionRepository) CreateEducation(ctx context.Context, req entity.CreateEducationRequest) error {
	_, err := r.client.Education.Create().
		SetProfileID(req.ProfileID).
		SetDegree(req.Degree).
		SetInstitution(req.Institution).
		SetNillableFieldOfStudy(req.FieldOfStudy).
		SetNillableStartDate(req.StartDate).
		SetNillableEndDate(req.EndDate).
		SetIsCurrent(req.IsCurrent).
		SetNillableDescription(req.Description).
		SetDisplayOrder(req.DisplayOrder).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create education", "profile_id", req.ProfileID, "error", err)
	}
	return err
}

func (r *sectionRepository) CreateSkill(ctx context.Context, req entity.CreateSkillRequest) error {
	builder := r.client.Skill.Create().
		SetProfileID(req.ProfileID).
		SetName(req.Name).
		SetCategory(string(req.Category)).
		SetDisplayOrder(req.DisplayOrder)
	if req.Proficiency != nil {
		builder = builder.SetProficiency(string(*req.Proficiency))
	}
	if req.YearsExperience != nil {
		builder = builder.SetYearsExperience(*req.YearsExperience)
	}
	_, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create skill", "profile_id", req.ProfileID, "error", err)
	}
	return err
}

func (r *sectionRepository) CreateProject(ctx context.Context, req entity.CreateProjectRequest) error {
	_, err := r.client.Project.Create().
		SetProfileID(req.ProfileID).
		SetTitle(req.Title).
		SetNillableDescription(req.Description).
		SetNillableTechnologies(req.Technologies).
		SetNillableURL(req.URL).
		SetNillableStartDate(req.StartDate).
		SetNillableEndDate(req.EndDate).
		SetIsOngoing(req.IsOngoing).
		SetDisplayOrder(req.DisplayOrder).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create project", "profile_id", req.ProfileID, "error", err)
	}
	return err
}

func (r *sectionRepository) CreateCertification(ctx context.Context, req entity.CreateCertificationRequest) error {
	_, err := r.client.Certification.Create().
		SetProfileID(req.ProfileID).
		SetName(req.Name).
		SetIssuingOrg(req.IssuingOrg).
		SetNillableIssueDate(req.IssueDate).
		SetNillableExpiryDate(req.ExpiryDate).
		SetNillableCredentialID(req.CredentialID).
		SetNillableCredentialURL(req.CredentialURL).
		SetDisplayOrder(req.DisplayOrder).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create certification", "profile_id", req.ProfileID, "error", err)
	}
	return err
}

func (r *sectionRepository) CreateAchievement(ctx context.Context, req entity.CreateAchievementRequest) error {
	_, err := r.client.Achievement.Create().
		SetProfileID(req.ProfileID).
		SetTitle(req.Title).
		SetNillableDescription(req.Description).
		SetNillableDate(req.Date).
		SetDisplayOrder(req.DisplayOrder).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create achievement", "profile_id", req.ProfileID, "error", err)
	}
	return err
}

func (r *sectionRepository) CreateReference(ctx context.Context, req entity.CreateReferenceRequest) error {
	builder := r.client.Reference.Create().
		SetProfileID(req.ProfileID).
		SetName(req.Name).
		SetNillableJobTitle(req.JobTitle).
		SetNillableCompany(req.Company).
		SetNillableEmail(req.Email).
		SetNillablePhone(req.Phone).
		SetDisplayOrder(req.DisplayOrder)
	if req.Relationship != nil {
		builder = builder.SetRelationship(string(*req.Relationship))
	}
	_, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create reference", "profile_id", req.ProfileID, "error", err)
	}
	return err
}

// Counts returns the persisted record count per section for one profile,
// used to seed display-order sequencing for a fresh import.
func (r *sectionRepository) Counts(ctx context.Context, profileID uuid.UUID) (map[constants.Section]int, error) {
	out := make(map[constants.Section]int, 7)

	count := func(section constants.Section, q interface {
		Count(context.Context) (int, error)
	}) error {
		n, err := q.Count(ctx)
		if err != nil {
			r.logger.Error("failed to count section", "section", section, "profile_id", profileID, "error", err)
			return err
		}
		out[section] = n
		return nil
	}

	if err := count(constants.SectionWorkExperience,
		r.client.WorkExperience.Query().Where(workexperience.ProfileID(profileID))); err != nil {
		return nil, err
	}
	if err := count(constants.SectionEducation,
		r.client.Education.Query().Where(education.ProfileID(profileID))); err != nil {
		return nil, err
	}
	if err := count(constants.SectionSkill,
		r.client.Skill.Query().Where(skill.ProfileID(profileID))); err != nil {
		return nil, err
	}
	if err := count(constants.SectionProject,
		r.client.Project.Query().Where(project.ProfileID(profileID))); err != nil {
		return nil, err
	}
	if err := count(constants.SectionCertification,
		r.client.Certification.Query().Where(certification.ProfileID(profileID))); err != nil {
		return nil, err
	}
	if err := count(constants.SectionAchievement,
		r.client.Achievement.Query().Where(achievement.ProfileID(profileID))); err != nil {
		return nil, err
	}
	if err := count(constants.SectionReference,
		r.client.Reference.Query().Where(reference.ProfileID(profileID))); err != nil {
		return nil, err
	}
	return out, nil
}
