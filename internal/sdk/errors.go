package sdk

import "errors"

var (
	// ErrStreamClosed reports that a realtime stream terminated because the
	// underlying transport closed.
	ErrStreamClosed = errors.New("realtime stream closed by transport")

	// ErrNotLoggedIn reports an API call attempted before Login succeeded.
	ErrNotLoggedIn = errors.New("sdk client has no active session")
)

// Error carries a brokerage rejection. The message is the server's own
// text, propagated verbatim so the caller can surface it unchanged.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
