package models

import "time"

// Note is the persisted note record as the server stores and returns it.
//
// The ID is assigned by the server on creation and never changes afterwards.
// CreatedAt and UpdatedAt are maintained by the server; clients must treat
// them as read-only. Image, when non-nil, is the storage path of the attached
// blob in the blob store — it is a path, not a fetch URL.
type Note struct {
	// ID is the opaque, server-assigned note identifier (UUID).
	ID string `json:"id"`

	// Name is the display title. The server defaults it to "Untitled"
	// when a note is created with a blank name.
	Name string `json:"name"`

	// Description is the free-form text body. May be empty.
	Description string `json:"description"`

	// Image is the storage path of the attached blob, or nil when the
	// note has no attachment.
	Image *string `json:"image,omitempty"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the server-side last-modification timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteInput is the payload for creating a new note.
type NoteInput struct {
	// Name is the display title. May be blank; the server substitutes
	// "Untitled".
	Name string `json:"name" validate:"max=255"`

	// Description is the text body. May be empty.
	Description string `json:"description" validate:"max=65535"`

	// Image is the storage path of an already-uploaded blob, or nil.
	Image *string `json:"image,omitempty" validate:"omitempty,max=512"`
}

// NotePatch is a partial update of an existing note. Only non-nil fields are
// applied. The image attachment is deliberately not patchable: attachments
// are set at creation time and removed together with the note.
type NotePatch struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=65535"`
}

// Attachment is a binary payload selected by the user for upload, together
// with its original filename. The filename is only used to preserve the file
// extension in the derived storage path.
type Attachment struct {
	Filename string
	Data     []byte
}
