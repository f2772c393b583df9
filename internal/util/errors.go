package util

import "errors"

var (
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDisabled     = errors.New("account is disabled")
	ErrLessonNotAccessible = errors.New("lesson not accessible")
	ErrNotAssigned         = errors.New("no assignment for this course")
	ErrAssignmentExists    = errors.New("assignment already exists")
	ErrInvalidStatus       = errors.New("invalid assignment status")
	ErrAccountExists       = errors.New("personnel already has an account")
	ErrPersonnelNotFound   = errors.New("personnel record not found")
	ErrUnknownRole         = errors.New("unknown role")
)
