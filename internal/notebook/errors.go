// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notebook

import "errors"

var (
	// ErrEmptyNote is returned by Create when the name and description are
	// blank and no attachment is supplied. No remote call is made.
	ErrEmptyNote = errors.New("note has no content")

	// ErrOperationInFlight is returned when an operation is requested for a
	// note that already has one running, or when a collection-wide operation
	// (synchronize, create) overlaps itself.
	ErrOperationInFlight = errors.New("operation already in flight")

	// ErrBlobCleanup marks a degraded-success delete: the note record is gone
	// (and removed locally) but the attached blob could not be removed.
	ErrBlobCleanup = errors.New("attachment cleanup failed")
)
