package domain

import (
	perr "ttt/internal/platform/errors"
)

// Sentinels, match with errors.Is; the service wraps them with detail
var (
	ErrAlreadyTracking = perr.New(perr.ErrorCodeConflict, "already tracking")
	ErrNoActiveFrame   = perr.New(perr.ErrorCodeNotFound, "no active frame")
	ErrProjectNotFound = perr.New(perr.ErrorCodeNotFound, "project not found")
	ErrTagNotFound     = perr.New(perr.ErrorCodeNotFound, "tag not found")
)
