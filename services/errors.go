package services

import (
	"errors"
)

// Error taxonomy surfaced to the controllers. Anything else coming out of a
// service is a store failure and maps to a generic 500.
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrRoomNumberTaken  = errors.New("room number already exists")
	ErrRoomNotFound     = errors.New("room not found")
)
