package apperror

import "errors"

var (
	ErrPreferenceNotFound  = errors.New("preference not found")
	ErrUnknownBackend      = errors.New("unknown preference backend")
	ErrStorageAddrNotFound = errors.New("storage address string is empty")
)
