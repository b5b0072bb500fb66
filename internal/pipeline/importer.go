// Package pipeline wires the import flow end to end: text extraction, profile
// extraction, and section draft building. One request maps to one outbound
// OCR call and at most one extraction-model call; there is no internal
// parallelism.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/common"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/extract"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/profile"
	"github.com/careerdock/resume-import/internal/sections"
)

// ImportRequest is one resume upload.
type ImportRequest struct {
	Data      []byte
	FileName  string
	MediaType string
	ProfileID uuid.UUID
	// Counts carries how many records already exist per section, so new
	// drafts continue display ordering without collisions. Missing sections
	// count as zero.
	Counts map[constants.Section]int
}

// ImportResult is everything one import produced. Section-level warnings stay
// inside each section result; Warnings holds the document- and profile-level
// ones.
type ImportResult struct {
	Profile  entity.ProfileDraft
	Markdown string
	Warnings []string

	WorkExperiences sections.Result[entity.CreateWorkExperienceRequest]
	Educations      sections.Result[entity.CreateEducationRequest]
	Skills          sections.Result[entity.CreateSkillRequest]
	Projects        sections.Result[entity.CreateProjectRequest]
	Certifications  sections.Result[entity.CreateCertificationRequest]
	Achievements    sections.Result[entity.CreateAchievementRequest]
	References      sections.Result[entity.CreateReferenceRequest]
}

// DraftCount sums the draft items across all seven sections.
func (r *ImportResult) DraftCount() int {
	return len(r.WorkExperiences.Items) +
		len(r.Educations.Items) +
		len(r.Skills.Items) +
		len(r.Projects.Items) +
		len(r.Certifications.Items) +
		len(r.Achievements.Items) +
		len(r.References.Items)
}

// Importer runs the import flow. Input errors reject the document before any
// extraction; upstream errors abort the import; validation gaps only ever
// become warnings.
type Importer struct {
	extractor extract.TextExtractor
	profiles  *profile.Extractor
	log       *slog.Logger
}

func NewImporter(extractor extract.TextExtractor, profiles *profile.Extractor, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{extractor: extractor, profiles: profiles, log: logger}
}

func (im *Importer) Import(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	start := time.Now()

	if len(req.Data) == 0 {
		return nil, common.WrapError(common.ErrEmptyDocument, "upload is empty")
	}
	if len(req.Data) > constants.MaxUploadBytes {
		return nil, common.WrapError(common.ErrDocumentTooLarge,
			fmt.Sprintf("%d bytes exceeds limit of %d", len(req.Data), constants.MaxUploadBytes))
	}

	text, err := im.extractor.Extract(ctx, extract.RawDocument{
		Data:      req.Data,
		FileName:  req.FileName,
		MediaType: req.MediaType,
	})
	if err != nil {
		return nil, err
	}

	extracted := im.profiles.Extract(ctx, text.Text)
	res := im.buildSections(extracted.Extraction, req)
	res.Profile = extracted.Profile
	res.Markdown = text.Text
	res.Warnings = extracted.Warnings

	im.log.Info("import.ok",
		"profile_id", req.ProfileID,
		"method", text.Method,
		"pages", text.Pages,
		"drafts", res.DraftCount(),
		"warnings", len(res.Warnings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (im *Importer) buildSections(ext llm.ResumeExtraction, req ImportRequest) *ImportResult {
	count := func(section constants.Section) int { return req.Counts[section] }
	return &ImportResult{
		WorkExperiences: sections.BuildWorkExperienceItems(ext.WorkExperiences, req.ProfileID, count(constants.SectionWorkExperience)),
		Educations:      sections.BuildEducationItems(ext.Educations, req.ProfileID, count(constants.SectionEducation)),
		Skills:          sections.BuildSkillItems(ext.Skills, req.ProfileID, count(constants.SectionSkill)),
		Projects:        sections.BuildProjectItems(ext.Projects, req.ProfileID, count(constants.SectionProject)),
		Certifications:  sections.BuildCertificationItems(ext.Certifications, req.ProfileID, count(constants.SectionCertification)),
		Achievements:    sections.BuildAchievementItems(ext.Achievements, req.ProfileID, count(constants.SectionAchievement)),
		References:      sections.BuildReferenceItems(ext.References, req.ProfileID, count(constants.SectionReference)),
	}
}
