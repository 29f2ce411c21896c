package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteService implements the server-side note operations: per-user CRUD over
// the persisted note collection.
type NoteService interface {
	// CreateNote persists a new note built from input for the given user.
	// A blank name is defaulted to "Untitled" before storage.
	CreateNote(ctx context.Context, userID int64, input models.NoteInput) (models.Note, error)

	// GetAllNotes returns every note owned by userID, most recent first.
	GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// GetNote returns a single note by id.
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)

	// UpdateNote applies the non-nil fields of patch and returns the updated note.
	UpdateNote(ctx context.Context, userID int64, noteID string, patch models.NotePatch) (models.Note, error)

	// DeleteNote removes a note and returns the deleted record, including the
	// Image storage path so callers can clean up the attached blob.
	DeleteNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
}

// BlobService implements the server-side blob operations: upload, deletion,
// and the signed time-limited fetch URLs that clients resolve image paths into.
type BlobService interface {
	// Upload stores data under a user-scoped storage path derived from name
	// and returns that path.
	Upload(ctx context.Context, userID int64, name string, data []byte) (string, error)

	// Delete removes the blob at the given storage path. The path must belong
	// to the given user.
	Delete(ctx context.Context, userID int64, storagePath string) error

	// Resolve maps a storage path owned by the user to a signed, time-limited
	// fetch URL.
	Resolve(ctx context.Context, userID int64, storagePath string) (string, error)

	// Fetch verifies the signature and expiry of a signed fetch request and
	// returns the blob payload. Used by the unauthenticated download endpoint.
	Fetch(ctx context.Context, storagePath, expires, signature string) ([]byte, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
