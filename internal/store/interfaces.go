package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser persists a new user account and returns the stored record
	// with server-assigned fields populated (UserID, CreatedAt).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin retrieves the account whose login matches user.Login.
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// NoteRepository persists and retrieves note records scoped to a single user.
//
// Every method takes the owning userID; a note belonging to another user is
// indistinguishable from a missing one and reported as [ErrNoteNotFound].
type NoteRepository interface {
	// CreateNote inserts a new note record and returns the stored row with
	// server-maintained timestamps populated. The note ID must be assigned
	// by the caller before insertion.
	CreateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error)

	// GetAllNotes returns every note owned by userID ordered most recent
	// first (by creation time).
	GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// GetNote returns a single note by its identifier.
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)

	// UpdateNote applies the non-nil fields of patch to an existing note and
	// returns the full updated row. The record's UpdatedAt is refreshed.
	UpdateNote(ctx context.Context, userID int64, noteID string, patch models.NotePatch) (models.Note, error)

	// DeleteNote removes a note and returns the deleted row, so the caller
	// can clean up the attached blob referenced by its Image path.
	DeleteNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
}

// BlobStorage persists raw binary attachment payloads addressed by their
// storage path.
type BlobStorage interface {
	// Save writes data under the given storage path, overwriting any
	// existing payload at that path.
	Save(ctx context.Context, path string, data []byte) error

	// Load reads the payload stored under the given path.
	Load(ctx context.Context, path string) ([]byte, error)

	// Exists reports whether a payload is stored under the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes the payload stored under the given path.
	Delete(ctx context.Context, path string) error
}

// ErrorClassificator classifies database errors as retryable or not.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
