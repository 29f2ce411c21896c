// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notebook

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// maxConcurrentResolves bounds the fan-out of image URL resolution during
// SynchronizeAll.
const maxConcurrentResolves = 4

// Controller keeps the local note collection mirrored against the remote
// note store and blob store.
//
// Every mutation is atomic from the caller's perspective: the collection is
// only touched after the remote calls that the operation depends on have
// succeeded. Per-note in-flight markers reject overlapping operations on the
// same note instead of trusting the UI to disable its controls.
type Controller struct {
	store RemoteNoteStore
	blobs RemoteBlobStore

	ids    *utils.UUIDGenerator
	logger *logger.Logger

	mu         sync.Mutex
	collection []Note
	inFlight   map[string]struct{}
	loading    bool
	creating   bool
}

func NewController(store RemoteNoteStore, blobs RemoteBlobStore, log *logger.Logger) *Controller {
	log.Debug().Msg("note lifecycle controller created")
	return &Controller{
		store:    store,
		blobs:    blobs,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
		inFlight: make(map[string]struct{}),
	}
}

// SynchronizeAll fetches the full note collection from the note store,
// resolves a presentation URL for every attached image, and replaces the
// local collection wholesale.
//
// URL resolutions run concurrently with per-note failure isolation: a note
// whose image cannot be resolved is kept without ImageURL and the failure is
// only logged. A failure of the list call itself is fatal and leaves the
// local collection unchanged.
func (c *Controller) SynchronizeAll(ctx context.Context) ([]Note, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil, ErrOperationInFlight
	}
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	records, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	resolved := c.resolveImageURLs(ctx, records)

	c.mu.Lock()
	c.collection = resolved
	out := append([]Note(nil), resolved...)
	c.mu.Unlock()

	return out, nil
}

// resolveImageURLs maps records to controller views, resolving attachment
// URLs with bounded fan-out. Each slot of the result is written by exactly
// one goroutine.
func (c *Controller) resolveImageURLs(ctx context.Context, records []models.Note) []Note {
	resolved := make([]Note, len(records))
	sem := make(chan struct{}, maxConcurrentResolves)
	var wg sync.WaitGroup

	for i, record := range records {
		resolved[i] = Note{Note: record}
		if record.Image == nil || *record.Image == "" {
			continue
		}

		wg.Add(1)
		go func(i int, noteID, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			url, err := c.blobs.ResolveURL(ctx, path)
			if err != nil {
				// The note survives without a preview; siblings are unaffected.
				c.logger.Warn().Err(err).Str("note_id", noteID).Msg("image url resolution failed")
				return
			}
			resolved[i].ImageURL = url
		}(i, record.ID, *record.Image)
	}

	wg.Wait()
	return resolved
}

// Create uploads the optional attachment, creates the note record, resolves
// the attachment's presentation URL, and prepends the resulting note to the
// local collection. A blank name is stored as-is; the server substitutes
// "Untitled".
//
// A note with a blank name, blank description, and no attachment is rejected
// with ErrEmptyNote before any remote call. Any remote failure aborts the
// whole operation without touching the collection; an attachment that was
// already uploaded before a later step failed is left behind as an orphan.
func (c *Controller) Create(ctx context.Context, name, description string, attachment *models.Attachment) (Note, error) {
	if strings.TrimSpace(name) == "" && strings.TrimSpace(description) == "" && attachment == nil {
		return Note{}, ErrEmptyNote
	}

	c.mu.Lock()
	if c.creating {
		c.mu.Unlock()
		return Note{}, ErrOperationInFlight
	}
	c.creating = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.creating = false
		c.mu.Unlock()
	}()

	var imagePath *string
	if attachment != nil {
		path, err := c.blobs.Upload(ctx, deriveBlobName(c.ids, attachment.Filename), attachment.Data)
		if err != nil {
			return Note{}, fmt.Errorf("upload attachment: %w", err)
		}
		imagePath = &path
	}

	record, err := c.store.Create(ctx, models.NoteInput{
		Name:        name,
		Description: description,
		Image:       imagePath,
	})
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	note := Note{Note: record}
	if note.HasImage() {
		url, err := c.blobs.ResolveURL(ctx, *record.Image)
		if err != nil {
			return Note{}, fmt.Errorf("resolve image url: %w", err)
		}
		note.ImageURL = url
	}

	c.mu.Lock()
	c.collection = append([]Note{note}, c.collection...)
	c.mu.Unlock()

	c.logger.Debug().Str("note_id", note.ID).Msg("note created and prepended")

	return note, nil
}

// Update sends the patch to the note store and, on success, merges the
// returned record into the matching local entry in place: the entry keeps
// its position and its resolved ImageURL. A remote failure leaves the entry
// at its pre-edit values.
func (c *Controller) Update(ctx context.Context, noteID string, patch models.NotePatch) (Note, error) {
	if err := c.acquire(noteID); err != nil {
		return Note{}, err
	}
	defer c.release(noteID)

	record, err := c.store.Update(ctx, noteID, patch)
	if err != nil {
		return Note{}, fmt.Errorf("update note: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.collection {
		if c.collection[i].ID != noteID {
			continue
		}
		url := c.collection[i].ImageURL
		c.collection[i] = Note{Note: record, ImageURL: url}
		return c.collection[i], nil
	}

	// Unknown id: the remote update succeeded but there is no local entry to
	// merge into, so the merge is a no-op.
	c.logger.Warn().Str("note_id", noteID).Msg("updated note not present in local collection")
	return Note{Note: record}, nil
}

// Delete removes the note record first and only then attempts to delete the
// attached blob. Once the record deletion succeeds the note is removed from
// the local collection unconditionally; a subsequent blob-removal failure is
// reported as ErrBlobCleanup, a degraded success — the note stays gone.
//
// If the record deletion itself fails, nothing changes locally and the blob
// is never touched.
func (c *Controller) Delete(ctx context.Context, noteID, imagePath string) error {
	if err := c.acquire(noteID); err != nil {
		return err
	}
	defer c.release(noteID)

	if err := c.store.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	c.mu.Lock()
	for i := range c.collection {
		if c.collection[i].ID == noteID {
			c.collection = append(c.collection[:i], c.collection[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if imagePath == "" {
		return nil
	}

	if err := c.blobs.Remove(ctx, imagePath); err != nil {
		c.logger.Warn().Err(err).Str("note_id", noteID).Str("image", imagePath).
			Msg("attachment removal failed after note deletion")
		return fmt.Errorf("%w: remove %s: %v", ErrBlobCleanup, imagePath, err)
	}

	return nil
}

// Notes returns a snapshot of the local collection, most recent first.
func (c *Controller) Notes() []Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Note(nil), c.collection...)
}

// Loading reports whether a SynchronizeAll is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Creating reports whether a Create is in flight.
func (c *Controller) Creating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creating
}

// Busy reports whether the given note has an operation in flight.
func (c *Controller) Busy(noteID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, busy := c.inFlight[noteID]
	return busy
}

func (c *Controller) acquire(noteID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[noteID]; busy {
		return ErrOperationInFlight
	}
	c.inFlight[noteID] = struct{}{}
	return nil
}

func (c *Controller) release(noteID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, noteID)
}
