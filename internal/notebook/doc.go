// Package notebook implements the client-side note lifecycle controller.
//
// The controller owns the in-memory note collection shown to the user and
// mediates every create, update, and delete against two remote collaborators:
// the note store (persisted records) and the blob store (image attachments).
// The collection is ordered most-recent-first, replaced wholesale by
// SynchronizeAll, and mutated incrementally by the other operations — an
// operation that fails never leaves a partially applied collection behind.
package notebook
