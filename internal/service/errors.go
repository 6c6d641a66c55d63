package service

import "errors"

var (
	ErrMissingField      = errors.New("missing required field")
	ErrDuplicateName     = errors.New("restaurant name already in use")
	ErrDuplicatePublicID = errors.New("public id already in use")
	ErrNotFound          = errors.New("not found")
	ErrEmptyCart         = errors.New("no dishes selected")
	ErrDishNotFound      = errors.New("dish not found for restaurant")
)
