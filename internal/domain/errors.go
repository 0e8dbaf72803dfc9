package domain

import "errors"

// ErrInvalidParameter marks input-validation failures (bad day count, bad
// coordinates, non-positive speed). Callers test for it with errors.Is;
// wrapping messages carry the offending value.
var ErrInvalidParameter = errors.New("invalid parameter")
