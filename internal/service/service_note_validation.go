package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService decorates a [NoteService] with payload validation.
// Create and update payloads are checked against the field limits declared on
// the model structs before the inner service is invoked; read and delete
// operations pass straight through.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

// NewNoteValidationService constructs a [NoteServiceWrapper] that validates
// note inputs and patches.
func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, userID int64, input models.NoteInput) (models.Note, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Note{}, fmt.Errorf("error during note input validation before saving: %w", err)
	}

	return v.inner.CreateNote(ctx, userID, input)
}

func (v *NoteValidationService) GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return v.inner.GetAllNotes(ctx, userID)
}

func (v *NoteValidationService) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	return v.inner.GetNote(ctx, userID, noteID)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, userID int64, noteID string, patch models.NotePatch) (models.Note, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Note{}, fmt.Errorf("error during note patch validation before updating: %w", err)
	}

	return v.inner.UpdateNote(ctx, userID, noteID, patch)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	return v.inner.DeleteNote(ctx, userID, noteID)
}

// Wrap implements [NoteServiceWrapper].
func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}
