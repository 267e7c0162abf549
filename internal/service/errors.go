package service

import "errors"

// ErrConfig classifies caller mistakes: unknown location ids, non-positive
// horizons or intervals, bad training sizes. Handlers map anything wrapping
// it to a 400 response; everything else stays a 500.
var ErrConfig = errors.New("invalid configuration")
