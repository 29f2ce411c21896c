package models

// BlobURLResponse is returned by the blob URL resolution endpoint. URL is a
// time-limited, signature-protected fetch URL for a stored blob. It is valid
// only for the current session window and must never be persisted.
type BlobURLResponse struct {
	URL string `json:"url"`
}

// BlobUploadRequest is the payload for uploading an attachment blob.
// Data is base64-encoded on the wire by encoding/json.
type BlobUploadRequest struct {
	// Name is the blob name relative to the user's storage directory,
	// typically "<uuid>.<ext>".
	Name string `json:"name"`

	// Data is the raw binary payload.
	Data []byte `json:"data"`
}

// BlobUploadResponse is returned by the blob upload endpoint. Path is the
// server-side storage path of the uploaded blob; it is what note records
// reference in their image field.
type BlobUploadResponse struct {
	Path string `json:"path"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
