// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-playground/validator/v10"
)

// noteValidator validates note payloads against the struct tags declared on
// [models.NoteInput] and [models.NotePatch] (field length limits).
//
// Validation rules live on the model structs themselves; this type only
// translates go-playground/validator failures into the package's sentinel
// errors so callers can match them with [errors.Is].
type noteValidator struct {
	validate *validator.Validate
}

// NewNoteValidator constructs a [Validator] for note inputs and patches.
func NewNoteValidator() Validator {
	return &noteValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements [Validator]. The value must be a [models.NoteInput] or
// [models.NotePatch] (or a pointer to one); any other type is rejected with
// [ErrUnsupportedType]. Field names are ignored: note payloads are small
// enough to always validate whole.
func (v *noteValidator) Validate(ctx context.Context, value any, _ ...string) error {
	switch value.(type) {
	case models.NoteInput, *models.NoteInput, models.NotePatch, *models.NotePatch:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	err := v.validate.StructCtx(ctx, value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fieldErr := range fieldErrs {
		switch fieldErr.Field() {
		case "Name":
			return fmt.Errorf("%w: %s", ErrNameTooLong, fieldErr.Tag())
		case "Description":
			return fmt.Errorf("%w: %s", ErrDescriptionTooLong, fieldErr.Tag())
		case "Image":
			return fmt.Errorf("%w: %s", ErrImagePathTooLong, fieldErr.Tag())
		}
	}

	return err
}
