package feedback

import "errors"

// ErrUnknownCue indicates a sound kind without a message.
var ErrUnknownCue = errors.New("unknown feedback cue")
