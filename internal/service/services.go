package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// Services aggregates every server-side service. The NoteService is wrapped
// with payload validation before being exposed to handlers.
type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	BlobService    BlobService
	AppInfoService AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	noteService := NewNoteValidationService().
		Wrap(NewNoteService(storages.NoteRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		NoteService:    noteService,
		BlobService:    NewBlobService(storages.BlobStorage, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
