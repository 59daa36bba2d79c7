package service

import (
	"context"

	"github.com/VladDatsenko/3d/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// Persistence is the write-through boundary every service persists its state
// over. Reads fill dest only on success (the caller-supplied default
// survives a miss); writes report success as a boolean and never propagate
// an error. Implemented by store.Adapter.
type Persistence interface {
	Load(ctx context.Context, key string, dest any) bool
	Store(ctx context.Context, key string, value any) bool
	Remove(ctx context.Context, key string) bool
}

// CredentialService owns the password and security-answer checksums.
type CredentialService interface {
	// VerifyPassword recomputes the checksum of password and compares it
	// with the stored one.
	VerifyPassword(ctx context.Context, password string) bool

	// VerifySecurityAnswer compares answer (trimmed, case-insensitive)
	// against the stored answer checksum.
	VerifySecurityAnswer(ctx context.Context, answer string) bool

	// ReplacePassword durably stores the checksum of newPassword,
	// reporting whether the write reached the store.
	ReplacePassword(ctx context.Context, newPassword string) bool

	// PasswordChecksum returns the currently stored password checksum,
	// for the export snapshot.
	PasswordChecksum(ctx context.Context) string
}

// SessionService is the attempt-limited, time-boxed administrator session
// machine. All operations are synchronous; failures are returned as
// discriminated AuthResult values, never as errors.
type SessionService interface {
	AttemptLogin(ctx context.Context, password string) models.AuthResult
	Logout(ctx context.Context)
	CheckSession(ctx context.Context) bool
	TouchActivity(ctx context.Context)
	ResetPassword(ctx context.Context, securityAnswer, newPassword string) models.AuthResult
	ChangePassword(ctx context.Context, currentPassword, newPassword string) models.AuthResult

	// IsAuthenticated reports the authenticated flag after a lazy
	// staleness check (an expired session logs out as a side effect).
	IsAuthenticated(ctx context.Context) bool

	// Subscribe registers a synchronous observer of auth state changes.
	Subscribe(fn func(models.AuthChange))

	RemainingAttempts() int
	SecurityQuestion() string
	State() models.SessionState
}
