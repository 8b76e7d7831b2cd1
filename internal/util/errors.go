package util

import "errors"

var (
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCourseNotFound      = errors.New("course not found")
	ErrModuleNotFound      = errors.New("module not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrRewardNotFound      = errors.New("reward not found")
	ErrSelfBooking         = errors.New("cannot book session with yourself")
	ErrNotSessionLearner   = errors.New("only learner can rate session")
	ErrSessionAlreadyRated = errors.New("session already rated")
	ErrInsufficientCoins   = errors.New("insufficient coins")
)
