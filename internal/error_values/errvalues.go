package errorvalues

import "errors"

var (
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrPersistence       = errors.New("persisting records failed")
	ErrMalformedData     = errors.New("stored data is malformed")
	ErrRecordExists      = errors.New("record for this date already exists")
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	ErrSyncInProgress    = errors.New("sync already in progress")
	ErrSyncNotConfigured = errors.New("sync store is not configured")
)

var (
	ErrValidation       = errors.New("validation error")
	ErrAccountExists    = errors.New("such account already exists")
	ErrAccountNotFound  = errors.New("account doesn't exist")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
)
