package store

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	createNote = `INSERT INTO notes (id, user_id, name, description, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, image, created_at, updated_at;`

	getAllUserNotes = `SELECT id, name, description, image, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC;`

	getNoteByID = `SELECT id, name, description, image, created_at, updated_at
		FROM notes
		WHERE user_id = $1 AND id = $2;`

	deleteNote = `DELETE FROM notes
		WHERE user_id = $1 AND id = $2
		RETURNING id, name, description, image, created_at, updated_at;`
)

// buildUpdateNoteQuery dynamically builds an UPDATE statement containing only
// the fields present in the patch. UpdatedAt is always refreshed.
func buildUpdateNoteQuery(userID int64, noteID string, patch models.NotePatch) (string, []any, error) {
	builder := sq.Update("notes").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Suffix("RETURNING id, name, description, image, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
