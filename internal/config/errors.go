package config

import "errors"

// ErrConfigInvalid wraps any malformed or semantically inconsistent
// configuration document: missing groups, non-positive mass range, a
// radial range with min > max, and so on.
var ErrConfigInvalid = errors.New("config: invalid configuration")
