package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

var (
	RequestIDSize  = 16
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// RequestID generates an opaque id attached to outgoing API calls as
// X-Request-ID, so client and server logs can be correlated.
func RequestID() string {
	return gonanoid.MustGenerate(nanoidAlphabet, RequestIDSize)
}
