package udp_listener

import "errors"

var (
	ErrAlreadyStarted       = errors.New("listener already started")
	ErrNoSocket             = errors.New("listener has no socket")
	ErrInvalidAddress       = errors.New("invalid listen address")
	ErrSocketCreationFailed = errors.New("failed to create socket")
	ErrAddressInUse         = errors.New("address already in use")
	ErrBindingError         = errors.New("failed to bind socket")
	ErrInvalidCapacity      = errors.New("max connections must be at least 1")
	ErrCapacityExceeded     = errors.New("pending connection capacity exceeded")
)
