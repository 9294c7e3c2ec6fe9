package entity

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrValidation   = errors.New("validation failed")
)
