package repository

import "errors"

var (
	ErrFailedToRead      = errors.New("failed to read dataset")
	ErrFailedToOverwrite = errors.New("failed to overwrite dataset")
)
