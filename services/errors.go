package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidLogType     = errors.New("invalid time log type")
	ErrIllegalTransition  = errors.New("illegal transition")
)
