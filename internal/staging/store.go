// Package staging holds extracted draft items in memory between extraction
// and commit. Commit is the exclusive transfer into persistent storage: an
// item is never represented in both the session and the database at once.
package staging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/common"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/sections"
)

// ItemState tracks a draft item through its edit and commit cycles.
type ItemState string

const (
	StatePending ItemState = "pending"
	StateSaving  ItemState = "saving"
)

// Item is a staged draft of one section record. Request holds exactly one of
// the entity.Create*Request payloads, matching Section.
type Item struct {
	ID       uuid.UUID
	Section  constants.Section
	Request  any
	Warnings []string
	State    ItemState
}

// Session aggregates everything one import produced: the profile draft, the
// staged items for all seven sections, the advisory warnings, and the
// per-section persisted-record counts captured at import time.
type Session struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Profile   entity.ProfileDraft
	Markdown  string
	Items     map[constants.Section][]*Item
	Warnings  []string
	Counts    map[constants.Section]int
	CreatedAt time.Time
}

// Persister is the persistence surface commit delegates to. Implementations
// create exactly one record per call; staging never batches at this level.
type Persister interface {
	CreateWorkExperience(ctx context.Context, req entity.CreateWorkExperienceRequest) error
	CreateEducation(ctx context.Context, req entity.CreateEducationRequest) error
	CreateSkill(ctx context.Context, req entity.CreateSkillRequest) error
	CreateProject(ctx context.Context, req entity.CreateProjectRequest) error
	CreateCertification(ctx context.Context, req entity.CreateCertificationRequest) error
	CreateAchievement(ctx context.Context, req entity.CreateAchievementRequest) error
	CreateReference(ctx context.Context, req entity.CreateReferenceRequest) error
}

// Store is the in-memory session registry. All state transitions happen under
// one mutex; the mutex is released around persistence calls, with the saving
// state guarding the in-flight item against concurrent edit or discard.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	persist  Persister
	log      *slog.Logger
}

func NewStore(persist Persister, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		persist:  persist,
		log:      logger,
	}
}

// FromResult boxes a typed section build result into staged items plus the
// section-level warnings.
func FromResult[T any](section constants.Section, res sections.Result[T]) ([]*Item, []string) {
	items := make([]*Item, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, &Item{
			ID:       it.ID,
			Section:  section,
			Request:  it.Request,
			Warnings: it.Warnings,
			State:    StatePending,
		})
	}
	return items, res.Warnings
}

// InitializeInput is the snapshot a fresh extraction hands to the store.
type InitializeInput struct {
	ProfileID uuid.UUID
	Profile   entity.ProfileDraft
	Markdown  string
	Items     map[constants.Section][]*Item
	Warnings  []string
	Counts    map[constants.Section]int
}

// Initialize creates a session from a fresh extraction result. Any existing
// session for the same profile is replaced; stale drafts from an earlier
// import must not survive a re-import.
func (s *Store) Initialize(in InitializeInput) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.ProfileID == in.ProfileID {
			delete(s.sessions, id)
		}
	}

	items := make(map[constants.Section][]*Item, len(constants.AllSections()))
	for _, section := range constants.AllSections() {
		items[section] = append([]*Item(nil), in.Items[section]...)
	}
	counts := make(map[constants.Section]int, len(in.Counts))
	for k, v := range in.Counts {
		counts[k] = v
	}

	sess := &Session{
		ID:        uuid.New(),
		ProfileID: in.ProfileID,
		Profile:   in.Profile,
		Markdown:  in.Markdown,
		Items:     items,
		Warnings:  append([]string(nil), in.Warnings...),
		Counts:    counts,
		CreatedAt: time.Now().UTC(),
	}
	s.sessions[sess.ID] = sess

	s.log.Info("staging.session.initialized",
		"session_id", sess.ID,
		"profile_id", sess.ProfileID,
		"items", sess.itemCount(),
		"warnings", len(sess.Warnings),
	)
	return sess
}

// Get returns the live session. Callers must treat it as read-only and go
// through store operations for mutations.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, fmt.Sprintf("session %s", id))
	}
	return sess, nil
}

// UpdateItem replaces a staged item's request payload, e.g. after a per-item
// edit. The payload type must match the item's section; an item that is mid
// commit cannot be edited.
func (s *Store) UpdateItem(sessionID, itemID uuid.UUID, req any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, _, err := s.findItem(sessionID, itemID)
	if err != nil {
		return err
	}
	if item.State == StateSaving {
		return common.WrapError(common.ErrInvalidInput, "item is being committed")
	}
	if !requestMatchesSection(item.Section, req) {
		return common.WrapError(common.ErrInvalidInput,
			fmt.Sprintf("payload type does not match section %s", item.Section))
	}
	item.Request = req
	return nil
}

// RemoveItem discards a staged item without persisting it.
func (s *Store) RemoveItem(sessionID, itemID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, sess, err := s.findItem(sessionID, itemID)
	if err != nil {
		return err
	}
	if item.State == StateSaving {
		return common.WrapError(common.ErrInvalidInput, "item is being committed")
	}
	sess.removeItem(itemID)
	return nil
}

// CommitOne persists a single staged item. The item is removed from the
// session only when the create succeeds; on failure it returns to pending and
// stays staged for retry.
func (s *Store) CommitOne(ctx context.Context, sessionID, itemID uuid.UUID) error {
	s.mu.Lock()
	item, _, err := s.findItem(sessionID, itemID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if item.State == StateSaving {
		s.mu.Unlock()
		return common.WrapError(common.ErrInvalidInput, "item is already being committed")
	}
	item.State = StateSaving
	section, req := item.Section, item.Request
	s.mu.Unlock()

	persistErr := s.create(ctx, section, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		// Session cleared while the commit was in flight. The record is
		// persisted; there is nothing left to remove.
		return persistErr
	}
	if persistErr != nil {
		if it, _, ferr := s.findItem(sessionID, itemID); ferr == nil {
			it.State = StatePending
		}
		s.log.Error("staging.commit.failed",
			"session_id", sessionID, "item_id", itemID,
			"section", section, "error", persistErr,
		)
		return persistErr
	}
	sess.removeItem(itemID)
	return nil
}

// CommitSummary reports what a batch commit persisted per section.
type CommitSummary struct {
	Committed map[constants.Section]int
	Warnings  []string
}

// CommitAll commits every still-pending item across all seven sections, in
// section display order, sequentially. The first failure aborts the batch;
// everything not yet committed stays staged, so the caller sees an auditable
// partially-committed state rather than an interleaving.
func (s *Store) CommitAll(ctx context.Context, sessionID uuid.UUID) (CommitSummary, error) {
	summary := CommitSummary{Committed: make(map[constants.Section]int)}

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return summary, common.WrapError(common.ErrNotFound, fmt.Sprintf("session %s", sessionID))
	}
	var ids []uuid.UUID
	for _, section := range constants.AllSections() {
		for _, item := range sess.Items[section] {
			if item.State == StatePending {
				ids = append(ids, item.ID)
			}
		}
	}
	summary.Warnings = append([]string(nil), sess.Warnings...)
	s.mu.Unlock()

	for _, id := range ids {
		s.mu.Lock()
		item, _, err := s.findItem(sessionID, id)
		s.mu.Unlock()
		if err != nil {
			// Removed concurrently; skip.
			continue
		}
		section := item.Section
		if err := s.CommitOne(ctx, sessionID, id); err != nil {
			return summary, err
		}
		summary.Committed[section]++
	}

	s.log.Info("staging.commit_all.ok",
		"session_id", sessionID,
		"committed", len(ids),
	)
	return summary, nil
}

// Clear discards a session and everything staged in it.
func (s *Store) Clear(sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return common.WrapError(common.ErrNotFound, fmt.Sprintf("session %s", sessionID))
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *Store) create(ctx context.Context, section constants.Section, req any) error {
	switch r := req.(type) {
	case entity.CreateWorkExperienceRequest:
		return s.persist.CreateWorkExperience(ctx, r)
	case entity.CreateEducationRequest:
		return s.persist.CreateEducation(ctx, r)
	case entity.CreateSkillRequest:
		return s.persist.CreateSkill(ctx, r)
	case entity.CreateProjectRequest:
		return s.persist.CreateProject(ctx, r)
	case entity.CreateCertificationRequest:
		return s.persist.CreateCertification(ctx, r)
	case entity.CreateAchievementRequest:
		return s.persist.CreateAchievement(ctx, r)
	case entity.CreateReferenceRequest:
		return s.persist.CreateReference(ctx, r)
	default:
		return common.WrapError(common.ErrInternal,
			fmt.Sprintf("unknown payload type for section %s", section))
	}
}

// findItem locates an item in a session. Callers hold the store mutex.
func (s *Store) findItem(sessionID, itemID uuid.UUID) (*Item, *Session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil, common.WrapError(common.ErrNotFound, fmt.Sprintf("session %s", sessionID))
	}
	for _, list := range sess.Items {
		for _, item := range list {
			if item.ID == itemID {
				return item, sess, nil
			}
		}
	}
	return nil, nil, common.WrapError(common.ErrNotFound, fmt.Sprintf("item %s", itemID))
}

func (sess *Session) removeItem(itemID uuid.UUID) {
	for section, list := range sess.Items {
		for i, item := range list {
			if item.ID == itemID {
				sess.Items[section] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

func (sess *Session) itemCount() int {
	n := 0
	for _, list := range sess.Items {
		n += len(list)
	}
	return n
}

// SectionCounts returns how many items remain staged per section.
func (s *Store) SectionCounts(sessionID uuid.UUID) (map[constants.Section]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, fmt.Sprintf("session %s", sessionID))
	}
	out := make(map[constants.Section]int, len(sess.Items))
	for section, list := range sess.Items {
		out[section] = len(list)
	}
	return out, nil
}

func requestMatchesSection(section constants.Section, req any) bool {
	switch section {
	case constants.SectionWorkExperience:
		_, ok := req.(entity.CreateWorkExperienceRequest)
		return ok
	case constants.SectionEducation:
		_, ok := req.(entity.CreateEducationRequest)
		return ok
	case constants.SectionSkill:
		_, ok := req.(entity.CreateSkillRequest)
		return ok
	case constants.SectionProject:
		_, ok := req.(entity.CreateProjectRequest)
		return ok
	case constants.SectionCertification:
		_, ok := req.(entity.CreateCertificationRequest)
		return ok
	case constants.SectionAchievement:
		_, ok := req.(entity.CreateAchievementRequest)
		return ok
	case constants.SectionReference:
		_, ok := req.(entity.CreateReferenceRequest)
		return ok
	default:
		return false
	}
}
