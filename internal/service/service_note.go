package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// DefaultNoteName is substituted for a blank note name at creation time.
const DefaultNoteName = "Untitled"

// noteService is the concrete implementation of [NoteService]. It assigns
// note identifiers, applies name defaulting, and delegates persistence to a
// [store.NoteRepository].
type noteService struct {
	noteRepository store.NoteRepository
	idGenerator    *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewNoteService constructs a [NoteService] backed by the provided repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateNote persists a new note built from input.
//
// The note identifier is a server-assigned UUID; a blank (or whitespace-only)
// name is replaced with [DefaultNoteName] before storage.
func (s *noteService) CreateNote(ctx context.Context, userID int64, input models.NoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = DefaultNoteName
	}

	note := models.Note{
		ID:          s.idGenerator.Generate(),
		Name:        name,
		Description: input.Description,
		Image:       input.Image,
	}

	saved, err := s.noteRepository.CreateNote(ctx, userID, note)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("note_id", note.ID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return saved, nil
}

// GetAllNotes returns every note owned by userID, most recent first.
func (s *noteService) GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := s.noteRepository.GetAllNotes(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("notes listing ended with error")
		return nil, fmt.Errorf("notes listing ended with error: %w", err)
	}

	return notes, nil
}

// GetNote returns a single note by id.
func (s *noteService) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("note_id", noteID).Msg("note lookup ended with error")
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	return note, nil
}

// UpdateNote applies the non-nil fields of patch and returns the updated
// note. A patched name that is blank (or whitespace-only) is replaced with
// [DefaultNoteName], same as on creation.
func (s *noteService) UpdateNote(ctx context.Context, userID int64, noteID string, patch models.NotePatch) (models.Note, error) {
	log := logger.FromContext(ctx)

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			name = DefaultNoteName
		}
		patch.Name = &name
	}

	updated, err := s.noteRepository.UpdateNote(ctx, userID, noteID, patch)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("note_id", noteID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteNote removes a note and returns the deleted record. The record carries
// the Image storage path so the caller can clean up the attached blob
// afterwards; the record deletion itself is already durable at that point.
func (s *noteService) DeleteNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.noteRepository.DeleteNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("note_id", noteID).Msg("note deletion ended with error")
		return models.Note{}, fmt.Errorf("note deletion ended with error: %w", err)
	}

	return deleted, nil
}
