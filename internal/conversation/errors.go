package conversation

import "errors"

// ErrEmptyMessage is returned when the incoming message is blank after
// trimming. The session is left untouched in that case.
var ErrEmptyMessage = errors.New("conversation: empty message")
