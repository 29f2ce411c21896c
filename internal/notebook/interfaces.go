package notebook

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// RemoteNoteStore is the persistence collaborator for note records. The
// controller defines the contract; the HTTP adapter implements it.
type RemoteNoteStore interface {
	// List fetches the user's full note collection, most recent first.
	List(ctx context.Context) ([]models.Note, error)

	// Create persists a new note and returns the stored record with its
	// server-assigned id and timestamps.
	Create(ctx context.Context, input models.NoteInput) (models.Note, error)

	// Update applies the non-nil fields of patch to the note and returns the
	// updated record.
	Update(ctx context.Context, noteID string, patch models.NotePatch) (models.Note, error)

	// Delete removes the note record. The attached blob, if any, is not
	// touched; blob cleanup is the controller's responsibility.
	Delete(ctx context.Context, noteID string) error
}

// RemoteBlobStore is the object-storage collaborator for image attachments.
type RemoteBlobStore interface {
	// Upload stores payload under the suggested blob name and returns the
	// canonical storage path the server filed it under. The returned path is
	// what note records reference and what ResolveURL and Remove accept.
	Upload(ctx context.Context, name string, payload []byte) (string, error)

	// ResolveURL maps a storage path to a time-limited fetch URL for display.
	// The URL is valid only for the current session window.
	ResolveURL(ctx context.Context, path string) (string, error)

	// Remove deletes the blob at the given storage path.
	Remove(ctx context.Context, path string) error
}
