// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// uploadBlob stores an attachment payload for the authenticated user and
// returns the storage path the blob is reachable under.
func (h *Handler) uploadBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.BlobUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	storagePath, err := h.services.BlobService.Upload(ctx, userID, req.Name, req.Data)
	if err != nil {
		log.Err(err).Str("blob_name", req.Name).Msg("error occurred during blob upload")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("storage_path", storagePath).Msg("blob uploaded")

	utils.WriteJSON(w, models.BlobUploadResponse{Path: storagePath}, http.StatusCreated)
}

// deleteBlob removes a previously uploaded blob. The storage path is passed
// as the `path` query parameter because it contains slashes.
func (h *Handler) deleteBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	storagePath := r.URL.Query().Get("path")
	if storagePath == "" {
		log.Error().Msg(app.MsgMissingPathParameter)
		http.Error(w, app.MsgMissingPathParameter, http.StatusBadRequest)
		return
	}

	if err := h.services.BlobService.Delete(ctx, userID, storagePath); err != nil {
		log.Err(err).Str("storage_path", storagePath).Msg("error occurred during blob deletion")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resolveBlob exchanges a storage path for a time-limited signed fetch URL.
func (h *Handler) resolveBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	storagePath := r.URL.Query().Get("path")
	if storagePath == "" {
		log.Error().Msg(app.MsgMissingPathParameter)
		http.Error(w, app.MsgMissingPathParameter, http.StatusBadRequest)
		return
	}

	fetchURL, err := h.services.BlobService.Resolve(ctx, userID, storagePath)
	if err != nil {
		log.Err(err).Str("storage_path", storagePath).Msg("error occurred during blob url resolution")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.BlobURLResponse{URL: fetchURL}, http.StatusOK)
}

// fetchBlob serves the raw blob bytes. The route is public: access control is
// enforced by the signature and expiry carried in the query string, which the
// resolve endpoint issued earlier.
func (h *Handler) fetchBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	storagePath := chi.URLParam(r, "*")
	expires := r.URL.Query().Get("expires")
	signature := r.URL.Query().Get("sig")

	data, err := h.services.BlobService.Fetch(ctx, storagePath, expires, signature)
	if err != nil {
		log.Err(err).Str("storage_path", storagePath).Msg("error occurred during blob fetch")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}
