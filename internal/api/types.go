// Package api implements the HTTP API for selector generation.
package api

// SelectorRequest is the body of a selector-generation request.
type SelectorRequest struct {
	// HTML is the document to generate against.
	HTML string `json:"html" binding:"required"`
	// Query is a standard CSS selector locating the target element(s).
	Query string `json:"query" binding:"required"`
	// All generates one selector matching every queried element instead of
	// only the first.
	All bool `json:"all"`
}

// SelectorResponse is the body of a successful generation response.
type SelectorResponse struct {
	// Selector is the generated CSS selector.
	Selector string `json:"selector"`
	// Targets is the number of target elements the selector identifies.
	Targets int `json:"targets"`
	// Degenerate is true when the selector is best-effort rather than
	// uniquely matching.
	Degenerate bool `json:"degenerate"`
	// RequestID echoes the request identifier.
	RequestID string `json:"request_id"`
}

// ErrorResponse is the error envelope of the API.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}
