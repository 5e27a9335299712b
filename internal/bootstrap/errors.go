package bootstrap

import "errors"

// ErrAlreadyLoading rejects re-entrant starts while a run is in flight.
var ErrAlreadyLoading = errors.New("bootstrap already loading")
