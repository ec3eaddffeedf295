package service

import "errors"

var (
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongCredentials   = errors.New("wrong email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
