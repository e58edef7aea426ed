// Package common contains shared constants and sentinel errors used across
// BoardKeeper components.
package common

// TokenSize is the number of random bytes behind an issued session token.
// The hex-encoded token is twice as long.
const TokenSize = 32

// TokenHeaderName is the gRPC metadata key the client uses to echo the
// session token it received at login. The server only logs its presence.
const TokenHeaderName = "session_token"
