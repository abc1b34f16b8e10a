package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNotDispatchable = errors.New("moment is not in a dispatchable status")
)
