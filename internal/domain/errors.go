package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgPlayerNotFound    = "player not found"
	ErrMsgDuplicateUsername = "username already registered"

	ErrMsgItemNotFound    = "item not found"
	ErrMsgUnknownItemKind = "unknown item kind"

	ErrMsgSpotEmpty         = "nothing at that spot"
	ErrMsgPlacementNotFound = "placement not found"

	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound    = errors.New(ErrMsgPlayerNotFound)
	ErrDuplicateUsername = errors.New(ErrMsgDuplicateUsername)

	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrUnknownItemKind = errors.New(ErrMsgUnknownItemKind)

	ErrSpotEmpty         = errors.New(ErrMsgSpotEmpty)
	ErrPlacementNotFound = errors.New(ErrMsgPlacementNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
