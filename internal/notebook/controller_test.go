// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notebook

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestController(t *testing.T, ctrl *gomock.Controller) (*Controller, *mock.MockRemoteNoteStore, *mock.MockRemoteBlobStore) {
	t.Helper()
	mockStore := mock.NewMockRemoteNoteStore(ctrl)
	mockBlobs := mock.NewMockRemoteBlobStore(ctrl)
	return NewController(mockStore, mockBlobs, logger.Nop()), mockStore, mockBlobs
}

func strPtr(s string) *string { return &s }

// noteRecord builds a wire record with the given id and optional image path.
func noteRecord(id string, image *string) models.Note {
	return models.Note{
		ID:          id,
		Name:        "note " + id,
		Description: "body " + id,
		Image:       image,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// ── SynchronizeAll ───────────────────────────────────────────────────────────

func TestSynchronizeAll_ResolvesImageURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	records := []models.Note{
		noteRecord("n3", strPtr("7/a.png")),
		noteRecord("n2", nil),
		noteRecord("n1", strPtr("7/b.png")),
	}

	mockStore.EXPECT().List(ctx).Return(records, nil)
	mockBlobs.EXPECT().ResolveURL(ctx, "7/a.png").Return("https://s/a", nil)
	mockBlobs.EXPECT().ResolveURL(ctx, "7/b.png").Return("https://s/b", nil)

	notes, err := c.SynchronizeAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)

	// Order of the fetched collection is preserved.
	assert.Equal(t, "n3", notes[0].ID)
	assert.Equal(t, "n2", notes[1].ID)
	assert.Equal(t, "n1", notes[2].ID)

	assert.Equal(t, "https://s/a", notes[0].ImageURL)
	assert.Empty(t, notes[1].ImageURL)
	assert.Equal(t, "https://s/b", notes[2].ImageURL)
}

// TestSynchronizeAll_ResolutionFailureIsIsolated verifies that one failed URL
// resolution degrades only its own note and never aborts the synchronize.
func TestSynchronizeAll_ResolutionFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	records := []models.Note{
		noteRecord("n2", strPtr("7/broken.png")),
		noteRecord("n1", strPtr("7/ok.png")),
	}

	mockStore.EXPECT().List(ctx).Return(records, nil)
	mockBlobs.EXPECT().ResolveURL(ctx, "7/broken.png").Return("", assert.AnError)
	mockBlobs.EXPECT().ResolveURL(ctx, "7/ok.png").Return("https://s/ok", nil)

	notes, err := c.SynchronizeAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	assert.Empty(t, notes[0].ImageURL, "failed resolution must leave the note without a url")
	assert.Equal(t, "https://s/ok", notes[1].ImageURL)
}

func TestSynchronizeAll_ListFailureLeavesCollectionUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, _ := newTestController(t, ctrl)
	ctx := context.Background()

	// Seed the collection with a successful synchronize first.
	mockStore.EXPECT().List(ctx).Return([]models.Note{noteRecord("n1", nil)}, nil)
	_, err := c.SynchronizeAll(ctx)
	require.NoError(t, err)

	mockStore.EXPECT().List(ctx).Return(nil, assert.AnError)

	_, err = c.SynchronizeAll(ctx)
	require.ErrorIs(t, err, assert.AnError)

	notes := c.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "n1", notes[0].ID)
}

func TestSynchronizeAll_ReplacesCollectionWholesale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, _ := newTestController(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().List(ctx).Return([]models.Note{noteRecord("old", nil)}, nil)
	_, err := c.SynchronizeAll(ctx)
	require.NoError(t, err)

	mockStore.EXPECT().List(ctx).Return([]models.Note{noteRecord("new", nil)}, nil)
	_, err = c.SynchronizeAll(ctx)
	require.NoError(t, err)

	notes := c.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "new", notes[0].ID)
}

func TestSynchronizeAll_EmptyCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, _ := newTestController(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().List(ctx).Return(nil, nil)

	notes, err := c.SynchronizeAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.False(t, c.Loading())
}

// ── Create ───────────────────────────────────────────────────────────────────

// TestCreate_EmptyNoteRejectedWithoutRemoteCalls verifies that an all-blank
// create is a no-op: no store or blob call is made (the mocks would fail on
// any unexpected call).
func TestCreate_EmptyNoteRejectedWithoutRemoteCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestController(t, ctrl)

	tests := []struct {
		name        string
		title       string
		description string
	}{
		{name: "both empty", title: "", description: ""},
		{name: "whitespace only", title: "   ", description: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Create(context.Background(), tt.title, tt.description, nil)
			assert.ErrorIs(t, err, ErrEmptyNote)
			assert.Empty(t, c.Notes())
		})
	}
}

func TestCreate_WithoutAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, _ := newTestController(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().Create(ctx, models.NoteInput{Name: "Title", Description: ""}).
		Return(noteRecord("n1", nil), nil)

	note, err := c.Create(ctx, "Title", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "n1", note.ID)
	assert.False(t, note.HasImage())

	notes := c.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "n1", notes[0].ID)
}

func TestCreate_WithAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	attachment := &models.Attachment{Filename: "Cat Photo.PNG", Data: []byte("png bytes")}

	mockBlobs.EXPECT().Upload(ctx, gomock.Any(), attachment.Data).DoAndReturn(
		func(_ context.Context, name string, _ []byte) (string, error) {
			// The blob name is a fresh UUID with the original extension.
			require.True(t, strings.HasSuffix(name, ".png"), "extension must be preserved lowercase, got %q", name)
			_, parseErr := uuid.Parse(strings.TrimSuffix(name, ".png"))
			assert.NoError(t, parseErr, "blob name stem must be a UUID")
			return "7/" + name, nil
		},
	)

	mockStore.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input models.NoteInput) (models.Note, error) {
			require.NotNil(t, input.Image)
			assert.True(t, strings.HasPrefix(*input.Image, "7/"))
			return noteRecord("n1", input.Image), nil
		},
	)

	mockBlobs.EXPECT().ResolveURL(ctx, gomock.Any()).Return("https://s/cat", nil)

	note, err := c.Create(ctx, "", "Body", attachment)
	require.NoError(t, err)
	assert.True(t, note.HasImage())
	assert.Equal(t, "https://s/cat", note.ImageURL)
}

func TestCreate_PrependsMostRecentFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, _ := newTestController(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().Create(ctx, gomock.Any()).Return(noteRecord("first", nil), nil)
	mockStore.EXPECT().Create(ctx, gomock.Any()).Return(noteRecord("second", nil), nil)

	_, err := c.Create(ctx, "one", "", nil)
	require.NoError(t, err)
	_, err = c.Create(ctx, "two", "", nil)
	require.NoError(t, err)

	notes := c.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].ID)
	assert.Equal(t, "first", notes[1].ID)
}

func TestCreate_UploadFailureAbortsBeforeRecordCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	mockBlobs.EXPECT().Upload(ctx, gomock.Any(), gomock.Any()).Return("", assert.AnError)

	_, err := c.Create(ctx, "Title", "", &models.Attachment{Filename: "x.png", Data: []byte("x")})
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, c.Notes())
}

// TestCreate_RecordFailureLeavesOrphanBlob verifies that a failed record
// creation aborts the operation without rolling back the uploaded blob: no
// Remove call is expected.
func TestCreate_RecordFailureLeavesOrphanBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	mockBlobs.EXPECT().Upload(ctx, gomock.Any(), gomock.Any()).Return("7/orphan.png", nil)
	mockStore.EXPECT().Create(ctx, gomock.Any()).Return(models.Note{}, assert.AnError)

	_, err := c.Create(ctx, "Title", "", &models.Attachment{Filename: "x.png", Data: []byte("x")})
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, c.Notes())
}

func TestCreate_ResolveFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	mockBlobs.EXPECT().Upload(ctx, gomock.Any(), gomock.Any()).Return("7/x.png", nil)
	mockStore.EXPECT().Create(ctx, gomock.Any()).Return(noteRecord("n1", strPtr("7/x.png")), nil)
	mockBlobs.EXPECT().ResolveURL(ctx, "7/x.png").Return("", assert.AnError)

	_, err := c.Create(ctx, "Title", "", &models.Attachment{Filename: "x.png", Data: []byte("x")})
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, c.Notes(), "no partial note may be added")
}

// ── Update ───────────────────────────────────────────────────────────────────

// seedCollection loads the controller with the given records via a
// synchronize against a stubbed List call.
func seedCollection(t *testing.T, c *Controller, mockStore *mock.MockRemoteNoteStore, mockBlobs *mock.MockRemoteBlobStore, records []models.Note) {
	t.Helper()
	ctx := context.Background()

	mockStore.EXPECT().List(ctx).Return(records, nil)
	for _, r := range records {
		if r.Image != nil && *r.Image != "" {
			mockBlobs.EXPECT().ResolveURL(ctx, *r.Image).Return("https://s/"+r.ID, nil)
		}
	}

	_, err := c.SynchronizeAll(ctx)
	require.NoError(t, err)
}

func TestUpdate_MergesInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	seedCollection(t, c, mockStore, mockBlobs, []models.Note{
		noteRecord("n2", nil),
		noteRecord("n1", strPtr("7/n1.png")),
	})

	newName := "Renamed"
	patch := models.NotePatch{Name: &newName}

	updated := noteRecord("n1", strPtr("7/n1.png"))
	updated.Name = newName
	mockStore.EXPECT().Update(ctx, "n1", patch).Return(updated, nil)

	note, err := c.Update(ctx, "n1", patch)
	require.NoError(t, err)
	assert.Equal(t, newName, note.Name)

	notes := c.Notes()
	require.Len(t, notes, 2)

	// Position unchanged, name merged, resolved url preserved.
	assert.Equal(t, "n2", notes[0].ID)
	assert.Equal(t, "n1", notes[1].ID)
	assert.Equal(t, newName, notes[1].Name)
	assert.Equal(t, "https://s/n1", notes[1].ImageURL)
}

func TestUpdate_RemoteFailureLeavesEntryUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	seedCollection(t, c, mockStore, mockBlobs, []models.Note{noteRecord("n1", nil)})

	newName := "Renamed"
	mockStore.EXPECT().Update(ctx, "n1", gomock.Any()).Return(models.Note{}, assert.AnError)

	_, err := c.Update(ctx, "n1", models.NotePatch{Name: &newName})
	require.ErrorIs(t, err, assert.AnError)

	notes := c.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "note n1", notes[0].Name)
}

func TestUpdate_UnknownIDIsNoOpMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, _ := newTestController(t, ctrl)
	ctx := context.Background()

	newName := "Ghost"
	mockStore.EXPECT().Update(ctx, "missing", gomock.Any()).Return(noteRecord("missing", nil), nil)

	note, err := c.Update(ctx, "missing", models.NotePatch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "missing", note.ID)
	assert.Empty(t, c.Notes())
}

// ── Delete ───────────────────────────────────────────────────────────────────

// TestDelete_WithoutImageSkipsBlobStore verifies that deleting an
// attachment-less note never touches the blob store.
func TestDelete_WithoutImageSkipsBlobStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	seedCollection(t, c, mockStore, mockBlobs, []models.Note{noteRecord("n1", nil)})

	mockStore.EXPECT().Delete(ctx, "n1").Return(nil)

	require.NoError(t, c.Delete(ctx, "n1", ""))
	assert.Empty(t, c.Notes())
}

func TestDelete_RemovesBlobAfterRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	seedCollection(t, c, mockStore, mockBlobs, []models.Note{noteRecord("n1", strPtr("7/n1.png"))})

	recordDeleted := mockStore.EXPECT().Delete(ctx, "n1").Return(nil)
	mockBlobs.EXPECT().Remove(ctx, "7/n1.png").Return(nil).After(recordDeleted)

	require.NoError(t, c.Delete(ctx, "n1", "7/n1.png"))
	assert.Empty(t, c.Notes())
}

// TestDelete_BlobFailureIsDegradedSuccess verifies the degraded-success path:
// the record is gone and the note removed locally even though the blob
// removal failed; the failure is signalled with ErrBlobCleanup.
func TestDelete_BlobFailureIsDegradedSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	seedCollection(t, c, mockStore, mockBlobs, []models.Note{noteRecord("n1", strPtr("7/n1.png"))})

	mockStore.EXPECT().Delete(ctx, "n1").Return(nil)
	mockBlobs.EXPECT().Remove(ctx, "7/n1.png").Return(assert.AnError)

	err := c.Delete(ctx, "n1", "7/n1.png")
	require.ErrorIs(t, err, ErrBlobCleanup)
	assert.Empty(t, c.Notes(), "note must be gone despite the failed blob cleanup")
}

func TestDelete_RecordFailureKeepsNoteAndBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, mockBlobs := newTestController(t, ctrl)
	ctx := context.Background()

	seedCollection(t, c, mockStore, mockBlobs, []models.Note{noteRecord("n1", strPtr("7/n1.png"))})

	// No Remove call expected: the blob is never touched on record failure.
	mockStore.EXPECT().Delete(ctx, "n1").Return(assert.AnError)

	err := c.Delete(ctx, "n1", "7/n1.png")
	require.ErrorIs(t, err, assert.AnError)
	assert.Len(t, c.Notes(), 1)
}

// ── In-flight guards ─────────────────────────────────────────────────────────

// TestPerNoteInFlightGuard verifies that a second operation on a note whose
// first operation is still running is rejected with ErrOperationInFlight.
func TestPerNoteInFlightGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, _ := newTestController(t, ctrl)
	ctx := context.Background()

	started := make(chan struct{})
	proceed := make(chan struct{})

	newName := "slow"
	mockStore.EXPECT().Update(ctx, "n1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ models.NotePatch) (models.Note, error) {
			close(started)
			<-proceed
			return noteRecord("n1", nil), nil
		},
	)

	done := make(chan error, 1)
	go func() {
		_, err := c.Update(ctx, "n1", models.NotePatch{Name: &newName})
		done <- err
	}()

	<-started
	assert.True(t, c.Busy("n1"))

	err := c.Delete(ctx, "n1", "")
	assert.ErrorIs(t, err, ErrOperationInFlight)

	close(proceed)
	require.NoError(t, <-done)
	assert.False(t, c.Busy("n1"))
}

// TestCreateInFlightGuard verifies that overlapping creates are rejected.
func TestCreateInFlightGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, mockStore, _ := newTestController(t, ctrl)
	ctx := context.Background()

	started := make(chan struct{})
	proceed := make(chan struct{})

	mockStore.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.NoteInput) (models.Note, error) {
			close(started)
			<-proceed
			return noteRecord("n1", nil), nil
		},
	)

	done := make(chan error, 1)
	go func() {
		_, err := c.Create(ctx, "Title", "", nil)
		done <- err
	}()

	<-started
	assert.True(t, c.Creating())

	_, err := c.Create(ctx, "Other", "", nil)
	assert.ErrorIs(t, err, ErrOperationInFlight)

	close(proceed)
	require.NoError(t, <-done)
	assert.False(t, c.Creating())
}
