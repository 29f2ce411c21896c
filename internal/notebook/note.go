package notebook

import "github.com/MKhiriev/go-note-keeper/models"

// Note is the controller's view of a note: the wire record plus the resolved
// presentation URL of its attachment.
//
// ImageURL is derived from the record's Image path on every synchronize and
// is never sent back to the note store — it lives only on this view struct,
// outside the persisted record, and is excluded from serialization.
type Note struct {
	models.Note

	// ImageURL is a session-scoped fetch URL for the attached image, or
	// empty when the note has no attachment or resolution failed.
	ImageURL string `json:"-"`
}

// HasImage reports whether the underlying record references an attachment.
func (n Note) HasImage() bool {
	return n.Image != nil && *n.Image != ""
}
