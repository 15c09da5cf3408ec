package types

import "net/http"

// Envelope is the wrapper present on every API response:
// {statusCode, message, data}. The embedded statusCode is authoritative;
// a 200 transport response can still carry an application-level failure.
type Envelope[T any] struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
}

// OK reports whether the envelope indicates application-level success.
func (e Envelope[T]) OK() bool {
	return e.StatusCode == http.StatusOK || e.StatusCode == http.StatusCreated
}
