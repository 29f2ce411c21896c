// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/hmac"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// blobFetchPrefix is the URL path under which signed blob downloads are served.
const blobFetchPrefix = "/api/blobs/get/"

// blobService is the concrete implementation of [BlobService]. Blobs are
// stored under user-scoped paths ("<userID>/<name>") in a [store.BlobStorage],
// and served through signed, time-limited fetch URLs.
//
// The signature is an HMAC-SHA256 over "<storagePath>:<expiry>" computed with
// the configured blob sign key, so a fetch URL cannot be forged or reused for
// a different path.
type blobService struct {
	blobStorage store.BlobStorage
	signKey     string
	urlTTL      time.Duration
	logger      *logger.Logger
}

// NewBlobService constructs a [BlobService] backed by the provided storage and
// populated with signing parameters from cfg.
func NewBlobService(blobStorage store.BlobStorage, cfg config.App, logger *logger.Logger) BlobService {
	return &blobService{
		blobStorage: blobStorage,
		signKey:     cfg.BlobSignKey,
		urlTTL:      cfg.BlobURLTTL,
		logger:      logger,
	}
}

// Upload stores data under "<userID>/<name>" and returns that storage path.
//
// Returns ErrEmptyBlobName when name is blank and ErrEmptyBlobPayload when
// data is empty.
func (s *blobService) Upload(ctx context.Context, userID int64, name string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyBlobName
	}
	if len(data) == 0 {
		return "", ErrEmptyBlobPayload
	}

	storagePath := path.Join(strconv.FormatInt(userID, 10), name)

	if err := s.blobStorage.Save(ctx, storagePath, data); err != nil {
		log.Err(err).Int64("user_id", userID).Str("path", storagePath).Msg("blob upload ended with error")
		return "", fmt.Errorf("blob upload ended with error: %w", err)
	}

	return storagePath, nil
}

// Delete removes the blob at the given storage path after verifying that the
// path belongs to the user.
func (s *blobService) Delete(ctx context.Context, userID int64, storagePath string) error {
	log := logger.FromContext(ctx)

	if err := s.checkOwnership(userID, storagePath); err != nil {
		return err
	}

	if err := s.blobStorage.Delete(ctx, storagePath); err != nil {
		log.Err(err).Int64("user_id", userID).Str("path", storagePath).Msg("blob deletion ended with error")
		return fmt.Errorf("blob deletion ended with error: %w", err)
	}

	return nil
}

// Resolve maps a storage path owned by the user to a signed fetch URL that
// stays valid for the configured TTL. The URL is minted relative to the
// server root; clients anchor it to the address they reached the server on.
//
// Returns store.ErrBlobNotFound when no payload exists at the path.
func (s *blobService) Resolve(ctx context.Context, userID int64, storagePath string) (string, error) {
	log := logger.FromContext(ctx)

	if err := s.checkOwnership(userID, storagePath); err != nil {
		return "", err
	}

	exists, err := s.blobStorage.Exists(ctx, storagePath)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("path", storagePath).Msg("blob existence check ended with error")
		return "", fmt.Errorf("blob existence check ended with error: %w", err)
	}
	if !exists {
		return "", store.ErrBlobNotFound
	}

	expires := strconv.FormatInt(time.Now().Add(s.urlTTL).Unix(), 10)
	signature := s.sign(storagePath, expires)

	query := url.Values{}
	query.Set("expires", expires)
	query.Set("sig", signature)

	return blobFetchPrefix + storagePath + "?" + query.Encode(), nil
}

// Fetch verifies the signature and expiry of a signed fetch request and
// returns the blob payload.
//
// Returns ErrBlobURLInvalidSign when the signature does not match and
// ErrBlobURLExpired when the expiry timestamp has passed.
func (s *blobService) Fetch(ctx context.Context, storagePath, expires, signature string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if !hmac.Equal([]byte(s.sign(storagePath, expires)), []byte(signature)) {
		log.Error().Str("path", storagePath).Msg("blob fetch with invalid signature")
		return nil, ErrBlobURLInvalidSign
	}

	expiresAt, err := strconv.ParseInt(expires, 10, 64)
	if err != nil {
		return nil, ErrBlobURLInvalidSign
	}
	if time.Now().Unix() > expiresAt {
		return nil, ErrBlobURLExpired
	}

	data, err := s.blobStorage.Load(ctx, storagePath)
	if err != nil {
		log.Err(err).Str("path", storagePath).Msg("blob fetch ended with error")
		return nil, fmt.Errorf("blob fetch ended with error: %w", err)
	}

	return data, nil
}

// checkOwnership verifies that storagePath lives under the user's directory.
func (s *blobService) checkOwnership(userID int64, storagePath string) error {
	prefix := strconv.FormatInt(userID, 10) + "/"
	if !strings.HasPrefix(storagePath, prefix) {
		return ErrBlobPathNotOwned
	}

	return nil
}

// sign computes the fetch URL signature for a storage path and expiry pair.
func (s *blobService) sign(storagePath, expires string) string {
	return utils.HashString(storagePath+":"+expires, s.signKey)
}
