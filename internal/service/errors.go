package service

import "errors"

// Business rule failures surfaced to the console. All of them are
// recoverable and user facing; callers match with errors.Is and print the
// wrapped message.
var (
	ErrInvalidLesson     = errors.New("invalid lesson")
	ErrInvalidBooking    = errors.New("invalid booking")
	ErrInvalidLearner    = errors.New("invalid learner")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidRating     = errors.New("invalid rating")
	ErrNoSlotsAvailable  = errors.New("no slots available")
	ErrAlreadyRegistered = errors.New("already registered")
)
