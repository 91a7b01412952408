package order

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrStaleAction      = errors.New("action does not match current session")
	ErrLayoutNotFound   = errors.New("layout not found")
	ErrTemplateNotFound = errors.New("template sheet not found")
)
