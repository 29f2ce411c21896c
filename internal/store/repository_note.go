package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, note_id).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts the given note for userID and returns the stored row
// with server-maintained timestamps populated.
//
// The note's ID must already be assigned; name defaulting is the service
// layer's responsibility.
func (n *noteRepository) CreateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := n.DB.QueryRowContext(ctx, createNote, note.ID, userID, note.Name, note.Description, note.Image)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", userID).
			Str("note_id", note.ID).
			Msg("failed to execute note insert")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var saved models.Note
	if err := row.Scan(&saved.ID, &saved.Name, &saved.Description, &saved.Image, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", userID).
			Str("note_id", note.ID).
			Msg("failed to scan inserted note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// GetAllNotes retrieves every note owned by the given user, ordered most
// recent first.
//
// Returns an empty slice when no records are found.
func (n *noteRepository) GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := n.DB.QueryContext(ctx, getAllUserNotes, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "noteRepository.GetAllNotes").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all user notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.ID,
			&note.Name,
			&note.Description,
			&note.Image,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.GetAllNotes").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.GetAllNotes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// GetNote retrieves a single note by its identifier.
//
// Returns [ErrNoteNotFound] when no note with the given id exists for the
// user.
func (n *noteRepository) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := n.DB.QueryRowContext(ctx, getNoteByID, userID, noteID)
	if err := row.Scan(&note.ID, &note.Name, &note.Description, &note.Image, &note.CreatedAt, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Int64("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// UpdateNote applies the non-nil fields of patch to an existing note and
// returns the full updated row.
//
// Returns [ErrNoteNotFound] when no note with the given id exists for the
// user.
func (n *noteRepository) UpdateNote(ctx context.Context, userID int64, noteID string, patch models.NotePatch) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(userID, noteID, patch)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to build note update query")
		return models.Note{}, err
	}

	var updated models.Note
	row := n.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&updated.ID, &updated.Name, &updated.Description, &updated.Image, &updated.CreatedAt, &updated.UpdatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(scanErr).
			Str("func", "noteRepository.UpdateNote").
			Int64("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to scan updated note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return updated, nil
}

// DeleteNote removes a note and returns the deleted row, including the Image
// storage path needed for blob cleanup.
//
// Returns [ErrNoteNotFound] when no note with the given id exists for the
// user.
func (n *noteRepository) DeleteNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var deleted models.Note
	row := n.DB.QueryRowContext(ctx, deleteNote, userID, noteID)
	if err := row.Scan(&deleted.ID, &deleted.Name, &deleted.Description, &deleted.Image, &deleted.CreatedAt, &deleted.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to scan deleted note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return deleted, nil
}
