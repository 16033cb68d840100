package editor

import "errors"

// ErrInvalidCursorPosition reports a cursor offset outside the current
// edit buffer. Offsets are rune counts in [0, len(buffer)]; out-of-range
// requests fail instead of clamping.
var ErrInvalidCursorPosition = errors.New("editor: invalid cursor position")
