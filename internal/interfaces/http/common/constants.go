package common

const (
	// MaxRequestBody limits JSON request bodies for write endpoints.
	MaxRequestBody = 1 << 20
	// DefaultPageLimit is used when the client omits limit.
	DefaultPageLimit = 10
	// MaxPageLimit caps client supplied limits.
	MaxPageLimit = 50
	// MaxReasonRunes limits decision reasons and interview notes.
	MaxReasonRunes = 1000
)
