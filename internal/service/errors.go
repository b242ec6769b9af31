package service

import "errors"

var (
	// ErrSlugAlreadyExists is returned by Create when a record file for the
	// requested slug is already present, regardless of its condition.
	ErrSlugAlreadyExists = errors.New("slug already exists")

	// ErrInvalidSortField is returned when a listing is requested with a
	// sort field outside the closed enumeration of sortable fields.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrWrongPassword is returned when the supplied admin password does
	// not verify against the configured credential.
	ErrWrongPassword = errors.New("wrong password")

	// ErrNoCredentialConfigured is returned when no admin credential hash
	// is configured at all. Fatal for the login path.
	ErrNoCredentialConfigured = errors.New("no admin credential configured")
)
