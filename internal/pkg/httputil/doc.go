// Package httputil provides shared HTTP response helpers for the transport
// endpoints, so every response uses the same JSON formatting and error
// envelope.
package httputil
