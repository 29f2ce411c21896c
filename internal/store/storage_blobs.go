// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// diskBlobStorage is the file-system implementation of [BlobStorage].
// Payloads are stored as regular files under a single root directory; the
// storage path of a blob is its path relative to that root.
//
// Paths are validated before every operation so that a crafted path cannot
// read or write outside the root directory.
type diskBlobStorage struct {
	root   string
	logger *logger.Logger
}

// NewDiskBlobStorage constructs a [BlobStorage] rooted at cfg.Dir.
// The root directory is created if it does not exist.
func NewDiskBlobStorage(cfg config.Blobs, log *logger.Logger) (BlobStorage, error) {
	if cfg.Dir == "" {
		return nil, errors.New("blob storage directory is not configured")
	}

	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		log.Err(err).Str("func", "NewDiskBlobStorage").Str("dir", cfg.Dir).Msg("failed to create blob storage directory")
		return nil, fmt.Errorf("failed to create blob storage directory: %w", err)
	}

	log.Debug().Str("dir", cfg.Dir).Msg("creating disk blob storage")
	return &diskBlobStorage{
		root:   cfg.Dir,
		logger: log,
	}, nil
}

// Save writes data under the given storage path, creating intermediate
// directories as needed. An existing payload at the same path is overwritten.
func (s *diskBlobStorage) Save(ctx context.Context, path string, data []byte) error {
	log := logger.FromContext(ctx)

	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		log.Err(err).Str("func", "diskBlobStorage.Save").Str("path", path).Msg("failed to create blob directory")
		return fmt.Errorf("failed to create blob directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0o640); err != nil {
		log.Err(err).Str("func", "diskBlobStorage.Save").Str("path", path).Msg("failed to write blob file")
		return fmt.Errorf("failed to write blob file: %w", err)
	}

	return nil
}

// Load reads the payload stored under the given path.
//
// Returns [ErrBlobNotFound] when no file exists at the path.
func (s *diskBlobStorage) Load(ctx context.Context, path string) ([]byte, error) {
	log := logger.FromContext(ctx)

	fullPath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		log.Err(err).Str("func", "diskBlobStorage.Load").Str("path", path).Msg("failed to read blob file")
		return nil, fmt.Errorf("failed to read blob file: %w", err)
	}

	return data, nil
}

// Exists reports whether a payload is stored under the given path.
func (s *diskBlobStorage) Exists(ctx context.Context, path string) (bool, error) {
	log := logger.FromContext(ctx)

	fullPath, err := s.resolve(path)
	if err != nil {
		return false, err
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := os.Stat(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		log.Err(err).Str("func", "diskBlobStorage.Exists").Str("path", path).Msg("failed to stat blob file")
		return false, fmt.Errorf("failed to stat blob file: %w", err)
	}

	return true, nil
}

// Delete removes the payload stored under the given path.
//
// Returns [ErrBlobNotFound] when no file exists at the path.
func (s *diskBlobStorage) Delete(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrBlobNotFound
		}
		log.Err(err).Str("func", "diskBlobStorage.Delete").Str("path", path).Msg("failed to remove blob file")
		return fmt.Errorf("failed to remove blob file: %w", err)
	}

	return nil
}

// resolve validates a storage path and joins it to the root directory.
// Empty, absolute, and root-escaping paths are rejected with
// [ErrInvalidBlobPath].
func (s *diskBlobStorage) resolve(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return "", ErrInvalidBlobPath
	}

	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrInvalidBlobPath
	}

	return filepath.Join(s.root, clean), nil
}
