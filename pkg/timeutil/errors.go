package timeutil

import "errors"

// ErrMalformedTime indicates a timestamp that does not parse into a valid
// hour/minute pair. Callers recover by skipping time-based handling for the
// affected value; it is never fatal.
var ErrMalformedTime = errors.New("malformed time")
