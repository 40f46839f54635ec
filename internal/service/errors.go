package service

import "errors"

var (
	ErrAuth       = errors.New("authentication") // 401
	ErrValidation = errors.New("validation")     // 400
	ErrNotFound   = errors.New("not found")      // 404
)
