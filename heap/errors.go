package heap

import "errors"

// ErrEmpty is returned by Pop and Top when the heap holds no entries.
var ErrEmpty = errors.New("heap: empty")
