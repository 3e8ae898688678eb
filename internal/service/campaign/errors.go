package campaign

import "errors"

// Sentinel errors for the campaign service layer.
var (
	ErrMissingID        = errors.New("created campaign has no id")
	ErrTransitionFailed = errors.New("status transition failed")
)
