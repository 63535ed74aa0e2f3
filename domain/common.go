package domain

import "errors"

var (
	MessageFailedBodyRequest    = "failed to parse body request"
	MessageFailedProcessRequest = "failed to process request"

	ErrInvalidID = errors.New("invalid id")
)
