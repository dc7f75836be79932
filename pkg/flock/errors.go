package flock

import "errors"

var (
	// ErrInvalidConfiguration is wrapped by every configuration or construction failure.
	ErrInvalidConfiguration = errors.New("invalid flock configuration")

	// ErrUnknownAgent is returned when an AgentID does not belong to the flock.
	ErrUnknownAgent = errors.New("unknown agent")
)
