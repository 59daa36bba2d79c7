package models

import "time"

// SessionState is the durable state of the administrator session machine.
// It is rehydrated on startup with an age check and written back on every
// state-changing operation.
type SessionState struct {
	// IsAuthenticated reports whether the administrator is logged in.
	IsAuthenticated bool `json:"isAuthenticated"`

	// LoginAttempts counts consecutive failed password verifications.
	// It resets to zero only on a successful login or a successful
	// security-answer reset.
	LoginAttempts int `json:"loginAttempts"`

	// LockedUntil, when set, rejects every login attempt until it elapses.
	LockedUntil *time.Time `json:"lockedUntil,omitempty"`

	// LastActivity is the timestamp of the last observed interaction.
	// A session is valid only while now-LastActivity stays within the
	// configured session duration.
	LastActivity *time.Time `json:"lastActivity,omitempty"`

	// SessionToken is an opaque token minted on login.
	SessionToken string `json:"currentSession,omitempty"`
}

// AuthChange is the payload of the synchronous state-change notification
// emitted by the session machine after a login or logout.
type AuthChange struct {
	IsAuthenticated bool
	LoginAttempts   int
}
