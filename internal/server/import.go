package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	importpb "github.com/careerdock/resume-import/gen/proto/resumeimport/v1"
	"github.com/careerdock/resume-import/internal/common"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/pipeline"
	"github.com/careerdock/resume-import/internal/repository"
	"github.com/careerdock/resume-import/internal/staging"
	"github.com/careerdock/resume-import/internal/utils"
)

type ImportServer struct {
	importpb.UnimplementedImportServiceServer
	importer *pipeline.Importer
	store    *staging.Store
	profiles repository.ProfileRepository
	sections repository.SectionRepository
	logger   *slog.Logger
}

func NewImportServer(
	importer *pipeline.Importer,
	store *staging.Store,
	profiles repository.ProfileRepository,
	sections repository.SectionRepository,
	logger *slog.Logger,
) *ImportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportServer{
		importer: importer,
		store:    store,
		profiles: profiles,
		sections: sections,
		logger:   logger,
	}
}

// ImportResume runs the full pipeline over an uploaded document and stages
// the result. The profile row is created (or patched) immediately; section
// records stay staged until the client commits them.
func (s *ImportServer) ImportResume(ctx context.Context, req *importpb.ImportResumeRequest) (*importpb.ImportResumeResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	if len(req.GetContent()) > constants.MaxUploadBytes {
		return nil, common.InvalidArgumentErrorf("content exceeds %d bytes", constants.MaxUploadBytes)
	}

	profileID := uuid.Nil
	if pid := strings.TrimSpace(req.GetProfileId()); pid != "" {
		var err error
		if profileID, err = uuid.Parse(pid); err != nil {
			return nil, common.InvalidArgumentError("profile_id must be a UUID")
		}
	}

	counts := map[constants.Section]int{}
	if profileID != uuid.Nil {
		var err error
		if counts, err = s.sections.Counts(ctx, profileID); err != nil {
			return nil, common.StatusFromError(err)
		}
	} else {
		// New profile: reserve the row up front so staged drafts reference a
		// real id.
		created, err := s.profiles.UpsertFromDraft(ctx, uuid.Nil, entity.ProfileDraft{})
		if err != nil {
			return nil, common.StatusFromError(err)
		}
		profileID = created.ID
	}

	res, err := s.importer.Import(ctx, pipeline.ImportRequest{
		Data:      req.GetContent(),
		FileName:  req.GetFileName(),
		MediaType: req.GetMediaType(),
		ProfileID: profileID,
		Counts:    counts,
	})
	if err != nil {
		s.logger.Error("import.failed", "profile_id", profileID, "error", err)
		return nil, common.StatusFromError(err)
	}

	if _, err := s.profiles.UpsertFromDraft(ctx, profileID, res.Profile); err != nil {
		return nil, common.StatusFromError(err)
	}

	sess := s.store.Initialize(stageInput(profileID, res, counts))
	return &importpb.ImportResumeResponse{Session: utils.ToPBSession(sess)}, nil
}

// stageInput flattens the typed section results into staging items plus one
// merged warning list.
func stageInput(profileID uuid.UUID, res *pipeline.ImportResult, counts map[constants.Section]int) staging.InitializeInput {
	items := make(map[constants.Section][]*staging.Item, 7)
	warnings := append([]string(nil), res.Warnings...)

	stage := func(section constants.Section, staged []*staging.Item, sectionWarnings []string) {
		items[section] = staged
		warnings = append(warnings, sectionWarnings...)
	}

	we, ww := staging.FromResult(constants.SectionWorkExperience, res.WorkExperiences)
	stage(constants.SectionWorkExperience, we, ww)
	ed, ew := staging.FromResult(constants.SectionEducation, res.Educations)
	stage(constants.SectionEducation, ed, ew)
	sk, sw := staging.FromResult(constants.SectionSkill, res.Skills)
	stage(constants.SectionSkill, sk, sw)
	pr, pw := staging.FromResult(constants.SectionProject, res.Projects)
	stage(constants.SectionProject, pr, pw)
	ce, cw := staging.FromResult(constants.SectionCertification, res.Certifications)
	stage(constants.SectionCertification, ce, cw)
	ac, aw := staging.FromResult(constants.SectionAchievement, res.Achievements)
	stage(constants.SectionAchievement, ac, aw)
	re, rw := staging.FromResult(constants.SectionReference, res.References)
	stage(constants.SectionReference, re, rw)

	return staging.InitializeInput{
		ProfileID: profileID,
		Profile:   res.Profile,
		Markdown:  res.Markdown,
		Items:     items,
		Warnings:  warnings,
		Counts:    counts,
	}
}

func (s *ImportServer) GetSession(ctx context.Context, req *importpb.GetSessionRequest) (*importpb.GetSessionResponse, error) {
	sessionID, err := parseUUID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, common.StatusFromError(err)
	}
	return &importpb.GetSessionResponse{Session: utils.ToPBSession(sess)}, nil
}

func (s *ImportServer) UpdateDraft(ctx context.Context, req *importpb.UpdateDraftRequest) (*importpb.UpdateDraftResponse, error) {
	sessionID, err := parseUUID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	itemID, err := parseUUID(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, common.StatusFromError(err)
	}
	payload := utils.FromPBUpdate(sess.ProfileID, req)
	if payload == nil {
		return nil, common.InvalidArgumentError("request payload is required")
	}
	if err := s.store.UpdateItem(sessionID, itemID, payload); err != nil {
		return nil, common.StatusFromError(err)
	}
	return &importpb.UpdateDraftResponse{}, nil
}

func (s *ImportServer) DiscardDraft(ctx context.Context, req *importpb.DiscardDraftRequest) (*importpb.DiscardDraftResponse, error) {
	sessionID, err := parseUUID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	itemID, err := parseUUID(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}
	if err := s.store.RemoveItem(sessionID, itemID); err != nil {
		return nil, common.StatusFromError(err)
	}
	return &importpb.DiscardDraftResponse{}, nil
}

func (s *ImportServer) CommitDraft(ctx context.Context, req *importpb.CommitDraftRequest) (*importpb.CommitDraftResponse, error) {
	sessionID, err := parseUUID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	itemID, err := parseUUID(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}
	if err := s.store.CommitOne(ctx, sessionID, itemID); err != nil {
		return nil, common.StatusFromError(err)
	}
	return &importpb.CommitDraftResponse{}, nil
}

func (s *ImportServer) CommitAll(ctx context.Context, req *importpb.CommitAllRequest) (*importpb.CommitAllResponse, error) {
	sessionID, err := parseUUID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	summary, err := s.store.CommitAll(ctx, sessionID)
	if err != nil {
		return nil, common.StatusFromError(err)
	}
	out := &importpb.CommitAllResponse{Warnings: summary.Warnings}
	for _, section := range constants.AllSections() {
		if n, ok := summary.Committed[section]; ok && n > 0 {
			out.Committed = append(out.Committed, &importpb.SectionCount{
				Section: utils.ToPBSection(section),
				Count:   int32(n),
			})
		}
	}
	return out, nil
}

func (s *ImportServer) ClearSession(ctx context.Context, req *importpb.ClearSessionRequest) (*importpb.ClearSessionResponse, error) {
	sessionID, err := parseUUID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	if err := s.store.Clear(sessionID); err != nil {
		return nil, common.StatusFromError(err)
	}
	return &importpb.ClearSessionResponse{}, nil
}

func (s *ImportServer) ListSectionCounts(ctx context.Context, req *importpb.ListSectionCountsRequest) (*importpb.ListSectionCountsResponse, error) {
	sessionID, err := parseUUID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	counts, err := s.store.SectionCounts(sessionID)
	if err != nil {
		return nil, common.StatusFromError(err)
	}
	out := &importpb.ListSectionCountsResponse{}
	for _, section := range constants.AllSections() {
		out.Staged = append(out.Staged, &importpb.SectionCount{
			Section: utils.ToPBSection(section),
			Count:   int32(counts[section]),
		})
	}
	return out, nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, common.InvalidArgumentError(field + " is required")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError(field + " must be a UUID")
	}
	return id, nil
}
