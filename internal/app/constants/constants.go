// Package constants contains shared constants for the application.
package constants

// MIME type constants
const (
	ContentTypeJSON    = "application/json; charset=utf-8"
	ContentTypeProblem = "application/problem+json"
)

// Control API routes served next to the hub websocket.
const (
	PathWebSocket = "/ws"
	PathHealth    = "/health"
	PathToggle    = "/toggle"
	PathApply     = "/apply"
	PathPages     = "/pages"
)

// Header and auth constants
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Parsing and utility constants
const (
	DirPerm = 0o755 // Directory permissions
	// MaxRequestBody caps control API request bodies.
	MaxRequestBody = 64 << 10
)
