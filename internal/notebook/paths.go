package notebook

import (
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// deriveBlobName builds a collision-resistant blob name for an uploaded
// attachment: a fresh UUID with the original file extension preserved so the
// stored object stays recognizable. The original filename itself is never
// used as a path component.
func deriveBlobName(ids *utils.UUIDGenerator, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return ids.Generate() + ext
}
