package common

import "errors"

// ErrInvalidRequest marks a call rejected before anything was sent.
var ErrInvalidRequest = errors.New("invalid request")
