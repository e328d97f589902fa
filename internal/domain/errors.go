package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource conflict")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthenticated     = errors.New("unknown or unauthenticated user")
	ErrStoreUnavailable    = errors.New("metric store unavailable")
	ErrUnknownMetric       = errors.New("unknown metric kind")
	ErrOverlappingSleep    = errors.New("overlapping sleep period detected")
	ErrOverlappingSegments = errors.New("sleep segments overlap")
)
