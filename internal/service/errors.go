package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrEmptyBlobName      = errors.New("blob name cannot be empty")
	ErrEmptyBlobPayload   = errors.New("blob payload cannot be empty")
	ErrBlobPathNotOwned   = errors.New("blob path does not belong to the user")
	ErrBlobURLExpired     = errors.New("blob url is expired")
	ErrBlobURLInvalidSign = errors.New("blob url signature is invalid")
)
