package entity

import "time"

// Session represents a bearer-token login session.
// The token is an opaque 64-character hex string (256 bits of entropy) and is
// the only credential a client presents after login. Sessions carry no expiry:
// a token stays valid until it is explicitly revoked (logout) or the session
// store is cleared.
type Session struct {
	Token     string    // Opaque token value, also the storage key
	UserID    string    // Owning user ID
	UserAgent string    // Client's User-Agent header, for auditing
	IPAddress string    // Client's IP address, for auditing
	CreatedAt time.Time // Session creation time
}
