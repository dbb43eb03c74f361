package service

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrIllegalTransition    = errors.New("illegal status transition")
)
