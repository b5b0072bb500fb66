package utils

import (
	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	importpb "github.com/careerdock/resume-import/gen/proto/resumeimport/v1"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/normalize"
	"github.com/careerdock/resume-import/internal/staging"
)

var sectionToPB = map[constants.Section]importpb.Section{
	constants.SectionWorkExperience: importpb.Section_SECTION_WORK_EXPERIENCE,
	constants.SectionEducation:      importpb.Section_SECTION_EDUCATION,
	constants.SectionSkill:          importpb.Section_SECTION_SKILL,
	constants.SectionProject:        importpb.Section_SECTION_PROJECT,
	constants.SectionCertification:  importpb.Section_SECTION_CERTIFICATION,
	constants.SectionAchievement:    importpb.Section_SECTION_ACHIEVEMENT,
	constants.SectionReference:      importpb.Section_SECTION_REFERENCE,
}

// ToPBSection maps a section to its wire enum.
func ToPBSection(s constants.Section) importpb.Section {
	return sectionToPB[s]
}

// ToPBProfileDraft flattens nillable profile fields to wire strings.
func ToPBProfileDraft(d entity.ProfileDraft) *importpb.ProfileDraft {
	return &importpb.ProfileDraft{
		FirstName:    StrValue(d.FirstName),
		LastName:     StrValue(d.LastName),
		Email:        StrValue(d.Email),
		Phone:        StrValue(d.Phone),
		City:         StrValue(d.City),
		Country:      StrValue(d.Country),
		LinkedinUrl:  StrValue(d.LinkedInURL),
		GithubUrl:    StrValue(d.GitHubURL),
		PortfolioUrl: StrValue(d.PortfolioURL),
		Summary:      StrValue(d.Summary),
	}
}

// ToPBItem converts a staged item, boxing the typed payload into the oneof.
func ToPBItem(item *staging.Item) *importpb.DraftItem {
	out := &importpb.DraftItem{
		Id:       item.ID.String(),
		Section:  ToPBSection(item.Section),
		Warnings: item.Warnings,
	}
	switch req := item.Request.(type) {
	case entity.CreateWorkExperienceRequest:
		out.Request = &importpb.DraftItem_WorkExperience{WorkExperience: &importpb.WorkExperienceDraft{
			JobTitle:     req.JobTitle,
			Company:      req.Company,
			Location:     StrValue(req.Location),
			StartDate:    req.StartDate,
			EndDate:      StrValue(req.EndDate),
			IsCurrent:    req.IsCurrent,
			Description:  StrValue(req.Description),
			DisplayOrder: int32(req.DisplayOrder),
		}}
	case entity.CreateEducationRequest:
		out.Request = &importpb.DraftItem_Education{Education: &importpb.EducationDraft{
			Degree:       req.Degree,
			Institution:  req.Institution,
			FieldOfStudy: StrValue(req.FieldOfStudy),
			StartDate:    StrValue(req.StartDate),
			EndDate:      StrValue(req.EndDate),
			IsCurrent:    req.IsCurrent,
			Description:  StrValue(req.Description),
			DisplayOrder: int32(req.DisplayOrder),
		}}
	case entity.CreateSkillRequest:
		draft := &importpb.SkillDraft{
			Name:         req.Name,
			Category:     string(req.Category),
			DisplayOrder: int32(req.DisplayOrder),
		}
		if req.Proficiency != nil {
			draft.Proficiency = string(*req.Proficiency)
		}
		if req.YearsExperience != nil {
			years := int32(*req.YearsExperience)
			draft.YearsExperience = &years
		}
		out.Request = &importpb.DraftItem_Skill{Skill: draft}
	case entity.CreateProjectRequest:
		out.Request = &importpb.DraftItem_Project{Project: &importpb.ProjectDraft{
			Title:        req.Title,
			Description:  StrValue(req.Description),
			Technologies: StrValue(req.Technologies),
			Url:          StrValue(req.URL),
			StartDate:    StrValue(req.StartDate),
			EndDate:      StrValue(req.EndDate),
			IsOngoing:    req.IsOngoing,
			DisplayOrder: int32(req.DisplayOrder),
		}}
	case entity.CreateCertificationRequest:
		out.Request = &importpb.DraftItem_Certification{Certification: &importpb.CertificationDraft{
			Name:          req.Name,
			IssuingOrg:    req.IssuingOrg,
			IssueDate:     StrValue(req.IssueDate),
			ExpiryDate:    StrValue(req.ExpiryDate),
			CredentialId:  StrValue(req.CredentialID),
			CredentialUrl: StrValue(req.CredentialURL),
			DisplayOrder:  int32(req.DisplayOrder),
		}}
	case entity.CreateAchievementRequest:
		out.Request = &importpb.DraftItem_Achievement{Achievement: &importpb.AchievementDraft{
			Title:        req.Title,
			Description:  StrValue(req.Description),
			Date:         StrValue(req.Date),
			DisplayOrder: int32(req.DisplayOrder),
		}}
	case entity.CreateReferenceRequest:
		draft := &importpb.ReferenceDraft{
			Name:         req.Name,
			JobTitle:     StrValue(req.JobTitle),
			Company:      StrValue(req.Company),
			Email:        StrValue(req.Email),
			Phone:        StrValue(req.Phone),
			DisplayOrder: int32(req.DisplayOrder),
		}
		if req.Relationship != nil {
			draft.Relationship = string(*req.Relationship)
		}
		out.Request = &importpb.DraftItem_Reference{Reference: draft}
	}
	return out
}

// ToPBSession flattens a staging session, items in section display order.
func ToPBSession(sess *staging.Session) *importpb.Session {
	out := &importpb.Session{
		SessionId: sess.ID.String(),
		ProfileId: sess.ProfileID.String(),
		Profile:   ToPBProfileDraft(sess.Profile),
		Warnings:  sess.Warnings,
		Markdown:  sess.Markdown,
	}
	for _, section := range constants.AllSections() {
		for _, item := range sess.Items[section] {
			out.Items = append(out.Items, ToPBItem(item))
		}
	}
	return out
}

// FromPBUpdate turns an UpdateDraftRequest oneof into the matching typed
// payload, re-running the relevant normalizers over edited fields.
// Returns nil when the oneof is unset.
func FromPBUpdate(profileID uuid.UUID, req *importpb.UpdateDraftRequest) any {
	switch r := req.GetRequest().(type) {
	case *importpb.UpdateDraftRequest_WorkExperience:
		d := r.WorkExperience
		return entity.CreateWorkExperienceRequest{
			ProfileID:    profileID,
			JobTitle:     d.GetJobTitle(),
			Company:      d.GetCompany(),
			Location:     normalize.StringPtr(d.GetLocation()),
			StartDate:    d.GetStartDate(),
			EndDate:      normalize.Date(d.GetEndDate()),
			IsCurrent:    d.GetIsCurrent(),
			Description:  normalize.StringPtr(d.GetDescription()),
			DisplayOrder: int(d.GetDisplayOrder()),
		}
	case *importpb.UpdateDraftRequest_Education:
		d := r.Education
		return entity.CreateEducationRequest{
			ProfileID:    profileID,
			Degree:       d.GetDegree(),
			Institution:  d.GetInstitution(),
			FieldOfStudy: normalize.StringPtr(d.GetFieldOfStudy()),
			StartDate:    normalize.Date(d.GetStartDate()),
			EndDate:      normalize.Date(d.GetEndDate()),
			IsCurrent:    d.GetIsCurrent(),
			Description:  normalize.StringPtr(d.GetDescription()),
			DisplayOrder: int(d.GetDisplayOrder()),
		}
	case *importpb.UpdateDraftRequest_Skill:
		d := r.Skill
		out := entity.CreateSkillRequest{
			ProfileID:    profileID,
			Name:         d.GetName(),
			Category:     normalize.SkillCategory(d.GetCategory()),
			Proficiency:  normalize.Proficiency(d.GetProficiency()),
			DisplayOrder: int(d.GetDisplayOrder()),
		}
		if d.YearsExperience != nil {
			out.YearsExperience = normalize.Years(int(d.GetYearsExperience()))
		}
		return out
	case *importpb.UpdateDraftRequest_Project:
		d := r.Project
		return entity.CreateProjectRequest{
			ProfileID:    profileID,
			Title:        d.GetTitle(),
			Description:  normalize.StringPtr(d.GetDescription()),
			Technologies: normalize.StringPtr(d.GetTechnologies()),
			URL:          normalize.URL(d.GetUrl()),
			StartDate:    normalize.Date(d.GetStartDate()),
			EndDate:      normalize.Date(d.GetEndDate()),
			IsOngoing:    d.GetIsOngoing(),
			DisplayOrder: int(d.GetDisplayOrder()),
		}
	case *importpb.UpdateDraftRequest_Certification:
		d := r.Certification
		return entity.CreateCertificationRequest{
			ProfileID:     profileID,
			Name:          d.GetName(),
			IssuingOrg:    d.GetIssuingOrg(),
			IssueDate:     normalize.Date(d.GetIssueDate()),
			ExpiryDate:    normalize.Date(d.GetExpiryDate()),
			CredentialID:  normalize.StringPtr(d.GetCredentialId()),
			CredentialURL: normalize.URL(d.GetCredentialUrl()),
			DisplayOrder:  int(d.GetDisplayOrder()),
		}
	case *importpb.UpdateDraftRequest_Achievement:
		d := r.Achievement
		return entity.CreateAchievementRequest{
			ProfileID:    profileID,
			Title:        d.GetTitle(),
			Description:  normalize.StringPtr(d.GetDescription()),
			Date:         normalize.Date(d.GetDate()),
			DisplayOrder: int(d.GetDisplayOrder()),
		}
	case *importpb.UpdateDraftRequest_Reference:
		d := r.Reference
		return entity.CreateReferenceRequest{
			ProfileID:    profileID,
			Name:         d.GetName(),
			JobTitle:     normalize.StringPtr(d.GetJobTitle()),
			Company:      normalize.StringPtr(d.GetCompany()),
			Email:        normalize.StringPtr(d.GetEmail()),
			Phone:        normalize.Phone(d.GetPhone()),
			Relationship: normalize.Relationship(d.GetRelationship()),
			DisplayOrder: int(d.GetDisplayOrder()),
		}
	default:
		return nil
	}
}
