package session

import "errors"

// ErrEmptyMessage is returned by Send when the text is blank after trimming.
var ErrEmptyMessage = errors.New("message is empty")
