package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages aggregates every persistence backend used by the server:
// relational repositories for users and notes, and the file-system
// blob storage for uploaded attachments.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
	BlobStorage    BlobStorage
}

// NewStorages connects to the database, applies pending migrations, and
// assembles every persistence backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return Storages{}, fmt.Errorf("connect postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return Storages{}, fmt.Errorf("apply migrations: %w", err)
	}

	blobStorage, err := NewDiskBlobStorage(cfg.Blobs, log)
	if err != nil {
		return Storages{}, fmt.Errorf("create blob storage: %w", err)
	}

	return Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		BlobStorage:    blobStorage,
	}, nil
}
