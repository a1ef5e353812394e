package application

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary. Anything
// not in this list is treated as an internal fault and becomes a 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")

	ErrProfileNotFound = errors.New("profile not found")

	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrAlreadyLiked    = errors.New("post has already been liked")
	ErrNotYetLiked     = errors.New("post has not yet been liked")
	ErrNotAuthorized   = errors.New("user not authorized")
)
