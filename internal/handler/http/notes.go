package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

// listNotes returns every note owned by the authenticated user, most recently
// created first.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.GetAllNotes(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error occurred during notes listing")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input models.NoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, userID, input)
	if err != nil {
		log.Err(err).Msg("error occurred during note creation")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("note_id", note.ID).Msg("note created")

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")

	note, err := h.services.NoteService.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Msg("error occurred during note retrieval")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// updateNote applies a partial update to a note. Absent fields of the patch
// leave the stored values untouched.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")

	var patch models.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(ctx, userID, noteID, patch)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Msg("error occurred during note update")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// deleteNote removes the note record and responds with the deleted note so
// the caller can clean up the attachment the record referenced.
func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")

	note, err := h.services.NoteService.DeleteNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Msg("error occurred during note deletion")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("note_id", noteID).Msg("note deleted")

	utils.WriteJSON(w, note, http.StatusOK)
}
