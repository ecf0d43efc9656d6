package model

import "errors"

const (
	ErrCodeDogNotFound  = "DOG001"
	ErrCodeDogNameTaken = "DOG002"
)

var (
	ErrDogNotFound  = errors.New("dog not found")
	ErrDogNameTaken = errors.New("dog name already exists")
)
