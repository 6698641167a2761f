package session

import "errors"

// ErrNoSession reports that no usable stored session exists: the file is
// absent, unreadable, or not valid JSON. Malformed content is deliberately
// treated the same as absence so a corrupt file never crashes a command.
var ErrNoSession = errors.New("no stored session")
