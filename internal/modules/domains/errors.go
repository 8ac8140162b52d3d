package domains

import "errors"

var ErrNotFound = errors.New("domain not found")
