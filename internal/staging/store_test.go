package staging

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/sections"
)

// fakePersister counts create calls and fails once a configured call number
// is reached.
type fakePersister struct {
	calls      int
	failOnCall int // 0 means never fail
}

func (f *fakePersister) step() error {
	f.calls++
	if f.failOnCall > 0 && f.calls == f.failOnCall {
		return errors.New("database unavailable")
	}
	return nil
}

func (f *fakePersister) CreateWorkExperience(context.Context, entity.CreateWorkExperienceRequest) error {
	return f.step()
}
func (f *fakePersister) CreateEducation(context.Context, entity.CreateEducationRequest) error {
	return f.step()
}
func (f *fakePersister) CreateSkill(context.Context, entity.CreateSkillRequest) error {
	return f.step()
}
func (f *fakePersister) CreateProject(context.Context, entity.CreateProjectRequest) error {
	return f.step()
}
func (f *fakePersister) CreateCertification(context.Context, entity.CreateCertificationRequest) error {
	return f.step()
}
func (f *fakePersister) CreateAchievement(context.Context, entity.CreateAchievementRequest) error {
	return f.step()
}
func (f *fakePersister) CreateReference(context.Context, entity.CreateReferenceRequest) error {
	return f.step()
}

func seedSession(t *testing.T, store *Store, skillNames ...string) *Session {
	t.Helper()

	raw := make([]llm.RawSkill, 0, len(skillNames))
	for _, n := range skillNames {
		raw = append(raw, llm.RawSkill{Name: n})
	}
	profileID := uuid.New()
	items, warnings := FromResult(constants.SectionSkill, sections.BuildSkillItems(raw, profileID, 0))

	return store.Initialize(InitializeInput{
		ProfileID: profileID,
		Items:     map[constants.Section][]*Item{constants.SectionSkill: items},
		Warnings:  warnings,
		Counts:    map[constants.Section]int{constants.SectionSkill: 0},
	})
}

func TestCommitAllRemovesEverything(t *testing.T) {
	fake := &fakePersister{}
	store := NewStore(fake, nil)
	sess := seedSession(t, store, "Go", "Rust", "SQL")

	summary, err := store.CommitAll(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Committed[constants.SectionSkill])
	assert.Equal(t, 3, fake.calls)

	counts, err := store.SectionCounts(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, counts[constants.SectionSkill])
}

func TestCommitAllAbortsOnFailureLeavingRestStaged(t *testing.T) {
	fake := &fakePersister{failOnCall: 3}
	store := NewStore(fake, nil)
	sess := seedSession(t, store, "Go", "Rust", "SQL", "Docker", "Kubernetes")

	summary, err := store.CommitAll(context.Background(), sess.ID)
	require.Error(t, err)
	assert.Equal(t, 2, summary.Committed[constants.SectionSkill])
	assert.Equal(t, 3, fake.calls)

	counts, err := store.SectionCounts(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, counts[constants.SectionSkill])
}

func TestCommitOneFailureLeavesItemStagedForRetry(t *testing.T) {
	fake := &fakePersister{failOnCall: 1}
	store := NewStore(fake, nil)
	sess := seedSession(t, store, "Go")
	itemID := sess.Items[constants.SectionSkill][0].ID

	err := store.CommitOne(context.Background(), sess.ID, itemID)
	require.Error(t, err)

	counts, err := store.SectionCounts(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[constants.SectionSkill])
	assert.Equal(t, StatePending, sess.Items[constants.SectionSkill][0].State)

	// Second attempt succeeds and removes the item.
	require.NoError(t, store.CommitOne(context.Background(), sess.ID, itemID))
	counts, err = store.SectionCounts(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, counts[constants.SectionSkill])
}

func TestUpdateItemRejectsMismatchedPayload(t *testing.T) {
	store := NewStore(&fakePersister{}, nil)
	sess := seedSession(t, store, "Go")
	itemID := sess.Items[constants.SectionSkill][0].ID

	err := store.UpdateItem(sess.ID, itemID, entity.CreateProjectRequest{Title: "nope"})
	require.Error(t, err)

	updated := entity.CreateSkillRequest{ProfileID: sess.ProfileID, Name: "Golang", Category: constants.SkillTechnical}
	require.NoError(t, store.UpdateItem(sess.ID, itemID, updated))
	assert.Equal(t, updated, sess.Items[constants.SectionSkill][0].Request)
}

func TestRemoveItemDiscardsWithoutPersisting(t *testing.T) {
	fake := &fakePersister{}
	store := NewStore(fake, nil)
	sess := seedSession(t, store, "Go", "Rust")
	itemID := sess.Items[constants.SectionSkill][0].ID

	require.NoError(t, store.RemoveItem(sess.ID, itemID))
	assert.Equal(t, 0, fake.calls)

	counts, err := store.SectionCounts(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[constants.SectionSkill])
}

func TestInitializeReplacesSessionForSameProfile(t *testing.T) {
	store := NewStore(&fakePersister{}, nil)

	profileID := uuid.New()
	items, _ := FromResult(constants.SectionSkill,
		sections.BuildSkillItems([]llm.RawSkill{{Name: "Go"}}, profileID, 0))
	first := store.Initialize(InitializeInput{
		ProfileID: profileID,
		Items:     map[constants.Section][]*Item{constants.SectionSkill: items},
	})

	second := store.Initialize(InitializeInput{ProfileID: profileID})

	_, err := store.Get(first.ID)
	require.Error(t, err)
	_, err = store.Get(second.ID)
	require.NoError(t, err)
}

func TestClearDiscardsSession(t *testing.T) {
	store := NewStore(&fakePersister{}, nil)
	sess := seedSession(t, store, "Go")

	require.NoError(t, store.Clear(sess.ID))
	_, err := store.Get(sess.ID)
	require.Error(t, err)
	require.Error(t, store.Clear(sess.ID))
}

func TestUnknownSessionIsNotFound(t *testing.T) {
	store := NewStore(&fakePersister{}, nil)
	_, err := store.Get(uuid.New())
	require.Error(t, err)
	require.Error(t, store.RemoveItem(uuid.New(), uuid.New()))
}
