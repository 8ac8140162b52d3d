package storage

import "io"

// Upload carries one incoming file from the HTTP layer to a service without
// dragging multipart machinery along.
type Upload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}
