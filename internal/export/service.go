// Package export produces XLSX workbooks from persisted profile data.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/careerdock/resume-import/gen/ent"
	"github.com/careerdock/resume-import/gen/ent/achievement"
	"github.com/careerdock/resume-import/gen/ent/certification"
	"github.com/careerdock/resume-import/gen/ent/education"
	"github.com/careerdock/resume-import/gen/ent/project"
	"github.com/careerdock/resume-import/gen/ent/reference"
	"github.com/careerdock/resume-import/gen/ent/skill"
	"github.com/careerdock/resume-import/gen/ent/workexperience"
	"github.com/careerdock/resume-import/internal/repository"
	"github.com/careerdock/resume-import/internal/utils"
)

// Service produces XLSX bytes for a profile export: one sheet for the profile
// fields, one per populated section, rows in display order.
type Service struct {
	ent      *ent.Client
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewService(entc *ent.Client, profiles repository.ProfileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, profiles: profiles, logger: logger}
}

func (s *Service) ExportProfileXLSX(ctx context.Context, profileID uuid.UUID) ([]byte, error) {
	start := time.Now()

	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const profileSheet = "Profile"
	if err := f.SetSheetName("Sheet1", profileSheet); err != nil {
		return nil, err
	}

	sv := utils.StrValue
	profileRows := [][]any{
		{"First name", sv(p.FirstName)},
		{"Last name", sv(p.LastName)},
		{"Email", sv(p.Email)},
		{"Phone", sv(p.Phone)},
		{"City", sv(p.City)},
		{"Country", sv(p.Country)},
		{"LinkedIn", sv(p.LinkedInURL)},
		{"GitHub", sv(p.GitHubURL)},
		{"Portfolio", sv(p.PortfolioURL)},
		{"Summary", sv(p.Summary)},
	}
	for i, row := range profileRows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			_ = f.SetCellValue(profileSheet, cell, v)
		}
	}
	_ = f.SetColWidth(profileSheet, "A", "A", 16)
	_ = f.SetColWidth(profileSheet, "B", "B", 64)

	rows := 0
	add := func(n int, err error) error {
		rows += n
		return err
	}

	if err := add(s.writeWorkExperiences(ctx, f, profileID)); err != nil {
		return nil, err
	}
	if err := add(s.writeEducations(ctx, f, profileID)); err != nil {
		return nil, err
	}
	if err := add(s.writeSkills(ctx, f, profileID)); err != nil {
		return nil, err
	}
	if err := add(s.writeProjects(ctx, f, profileID)); err != nil {
		return nil, err
	}
	if err := add(s.writeCertifications(ctx, f, profileID)); err != nil {
		return nil, err
	}
	if err := add(s.writeAchievements(ctx, f, profileID)); err != nil {
		return nil, err
	}
	if err := add(s.writeReferences(ctx, f, profileID)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// newSheet creates a sheet and writes its header row.
func newSheet(f *excelize.File, name string, headers []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func (s *Service) writeWorkExperiences(ctx context.Context, f *excelize.File, profileID uuid.UUID) (int, error) {
	recs, err := s.ent.WorkExperience.Query().
		Where(workexperience.ProfileID(profileID)).
		Order(workexperience.ByDisplayOrder()).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query work experiences: %w", err)
	}
	const sheet = "Work Experience"
	if err := newSheet(f, sheet, []string{"Job Title", "Company", "Location", "Start", "End", "Current", "Description"}); err != nil {
		return 0, err
	}
	sv := utils.StrValue
	for i, r := range recs {
		end := sv(r.EndDate)
		if r.IsCurrent {
			end = "Present"
		}
		writeRow(f, sheet, i+2, []any{r.JobTitle, r.Company, sv(r.Location), r.StartDate, end, r.IsCurrent, sv(r.Description)})
	}
	return len(recs), nil
}

func (s *Service) writeEducations(ctx context.Context, f *excelize.File, profileID uuid.UUID) (int, error) {
	recs, err := s.ent.Education.Query().
		Where(education.ProfileID(profileID)).
		Order(education.ByDisplayOrder()).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query educations: %w", err)
	}
	const sheet = "Education"
	if err := newSheet(f, sheet, []string{"Degree", "Institution", "Field of Study", "Start", "End", "Current", "Description"}); err != nil {
		return 0, err
	}
	sv := utils.StrValue
	for i, r := range recs {
		writeRow(f, sheet, i+2, []any{r.Degree, r.Institution, sv(r.FieldOfStudy), sv(r.StartDate), sv(r.EndDate), r.IsCurrent, sv(r.Description)})
	}
	return len(recs), nil
}

func (s *Service) writeSkills(ctx context.Context, f *excelize.File, profileID uuid.UUID) (int, error) {
	recs, err := s.ent.Skill.Query().
		Where(skill.ProfileID(profileID)).
		Order(skill.ByDisplayOrder()).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query skills: %w", err)
	}
	const sheet = "Skills"
	if err := newSheet(f, sheet, []string{"Name", "Category", "Proficiency", "Years"}); err != nil {
		return 0, err
	}
	for i, r := range recs {
		years := any("")
		if r.YearsExperience != nil {
			years = *r.YearsExperience
		}
		writeRow(f, sheet, i+2, []any{r.Name, r.Category, utils.StrValue(r.Proficiency), years})
	}
	return len(recs), nil
}

func (s *Service) writeProjects(ctx context.Context, f *excelize.File, profileID uuid.UUID) (int, error) {
	recs, err := s.ent.Project.Query().
		Where(project.ProfileID(profileID)).
		Order(project.ByDisplayOrder()).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query projects: %w", err)
	}
	const sheet = "Projects"
	if err := newSheet(f, sheet, []string{"Title", "Description", "Technologies", "URL", "Start", "End", "Ongoing"}); err != nil {
		return 0, err
	}
	sv := utils.StrValue
	for i, r := range recs {
		writeRow(f, sheet, i+2, []any{r.Title, sv(r.Description), sv(r.Technologies), sv(r.URL), sv(r.StartDate), sv(r.EndDate), r.IsOngoing})
	}
	return len(recs), nil
}

func (s *Service) writeCertifications(ctx context.Context, f *excelize.File, profileID uuid.UUID) (int, error) {
	recs, err := s.ent.Certification.Query().
		Where(certification.ProfileID(profileID)).
		Order(certification.ByDisplayOrder()).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query certifications: %w", err)
	}
	const sheet = "Certifications"
	if err := newSheet(f, sheet, []string{"Name", "Issuing Organization", "Issued", "Expires", "Credential ID", "Credential URL"}); err != nil {
		return 0, err
	}
	sv := utils.StrValue
	for i, r := range recs {
		writeRow(f, sheet, i+2, []any{r.Name, r.IssuingOrg, sv(r.IssueDate), sv(r.ExpiryDate), sv(r.CredentialID), sv(r.CredentialURL)})
	}
	return len(recs), nil
}

func (s *Service) writeAchievements(ctx context.Context, f *excelize.File, profileID uuid.UUID) (int, error) {
	recs, err := s.ent.Achievement.Query().
		Where(achievement.ProfileID(profileID)).
		Order(achievement.ByDisplayOrder()).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query achievements: %w", err)
	}
	const sheet = "Achievements"
	if err := newSheet(f, sheet, []string{"Title", "Description", "Date"}); err != nil {
		return 0, err
	}
	sv := utils.StrValue
	for i, r := range recs {
		writeRow(f, sheet, i+2, []any{r.Title, sv(r.Description), sv(r.Date)})
	}
	return len(recs), nil
}

func (s *Service) writeReferences(ctx context.Context, f *excelize.File, profileID uuid.UUID) (int, error) {
	recs, err := s.ent.Reference.Query().
		Where(reference.ProfileID(profileID)).
		Order(reference.ByDisplayOrder()).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query references: %w", err)
	}
	const sheet = "References"
	if err := newSheet(f, sheet, []string{"Name", "Job Title", "Company", "Email", "Phone", "Relationship"}); err != nil {
		return 0, err
	}
	sv := utils.StrValue
	for i, r := range recs {
		writeRow(f, sheet, i+2, []any{r.Name, sv(r.JobTitle), sv(r.Company), sv(r.Email), sv(r.Phone), sv(r.Relationship)})
	}
	return len(recs), nil
}
