package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Both handlers and tests reference these constants for consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Player operation error messages
	ErrMsgRegisterPlayerFailed = "Failed to register player"
	ErrMsgGetPlayerFailed      = "Failed to get player"
	ErrMsgGrantFailed          = "Failed to grant resources"

	// World operation error messages
	ErrMsgPlaceItemFailed = "Failed to place item"
	ErrMsgGetSpotFailed   = "Failed to inspect spot"
	ErrMsgInteractFailed  = "Failed to interact with spot"
)

// Success messages for API responses
const (
	MsgItemPlacedSuccess = "Item placed successfully"
)
