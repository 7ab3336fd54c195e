package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert profile")
	ErrFailedToGet    = errors.New("failed to get profile")
	ErrFailedToList   = errors.New("failed to list profiles")
)
