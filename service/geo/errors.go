package geo

import "errors"

// ErrInvalidCoordinate indicates a latitude/longitude range violation or a
// half-set coordinate pair. Surfaced to callers as a rejected request.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ErrInvalidArgument indicates a non-positive radius or result limit, or a
// limit above the configured ceiling. Surfaced to callers as a rejected request.
var ErrInvalidArgument = errors.New("invalid argument")
