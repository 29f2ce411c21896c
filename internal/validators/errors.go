package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrNameTooLong        = errors.New("note name is too long")
	ErrDescriptionTooLong = errors.New("note description is too long")
	ErrImagePathTooLong   = errors.New("image path is too long")
)
