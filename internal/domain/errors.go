package domain

import "errors"

var (
	ErrMissingCredential = errors.New("generation API credential is not configured")
	ErrUpstreamLLM       = errors.New("upstream LLM failure")
	ErrInvalidLLMJSON    = errors.New("LLM returned invalid JSON")
	ErrNoImage           = errors.New("image generation returned no image")
	ErrInvalidInput      = errors.New("invalid input")
	ErrBusy              = errors.New("a request is already in flight")
)
