package users

import "errors"

var (
	ErrEmailTaken     = errors.New("email already in use")
	ErrNotFound       = errors.New("user not found")
	ErrDomainNotFound = errors.New("domain not found")
	ErrTooManyImages  = errors.New("too many images")
	ErrTooManyVideos  = errors.New("too many videos")
)
