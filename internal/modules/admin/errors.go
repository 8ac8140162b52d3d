package admin

import "errors"

var (
	ErrEmailTaken     = errors.New("email already in use")
	ErrNotFound       = errors.New("admin not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrDomainNotFound = errors.New("domain not found")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTooManyImages  = errors.New("too many images")
	ErrTooManyVideos  = errors.New("too many videos")
)
