package leads

import "errors"

// ErrUnavailable indicates no repository backend is configured.
var ErrUnavailable = errors.New("leads: repository unavailable")
