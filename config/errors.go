package config

import "github.com/pkg/errors"

var (
	ErrInvalidMode    = errors.New("mode must be live or simulate")
	ErrInvalidTimeout = errors.New("http timeout must be positive")
	ErrInvalidRetry   = errors.New("invalid retry policy")
	ErrInvalidLogEnv  = errors.New("log env must be production, development or nop")
	ErrInvalidBaseURL = errors.New("base url must end with a slash")
)
