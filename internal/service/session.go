package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/VladDatsenko/3d/internal/config"
	"github.com/VladDatsenko/3d/internal/logger"
	"github.com/VladDatsenko/3d/internal/store"
	"github.com/VladDatsenko/3d/internal/utils"
	"github.com/VladDatsenko/3d/models"
)

type sessionService struct {
	admin       config.Admin
	security    config.Security
	creds       CredentialService
	persistence Persistence
	logger      *logger.Logger

	// now is swappable in tests.
	now func() time.Time

	state       models.SessionState
	subscribers []func(models.AuthChange)
}

// NewSessionService builds the session machine and rehydrates its state from
// the persisted store. A persisted session older than the configured session
// duration, or one carrying a token this installation did not sign, is
// discarded during rehydration.
func NewSessionService(ctx context.Context, adminCfg config.Admin, securityCfg config.Security, creds CredentialService, persistence Persistence, logger *logger.Logger) SessionService {
	s := &sessionService{
		admin:       adminCfg,
		security:    securityCfg,
		creds:       creds,
		persistence: persistence,
		logger:      logger,
		now:         time.Now,
	}
	s.rehydrate(ctx)

	return s
}

func (s *sessionService) rehydrate(ctx context.Context) {
	log := s.logger.GetChildLogger()

	var persisted models.SessionState
	if !s.persistence.Load(ctx, store.KeyAuthState, &persisted) {
		return
	}
	s.state = persisted

	if !s.state.IsAuthenticated {
		return
	}

	if s.isSessionStale() {
		log.Info().Str("func", "sessionService.rehydrate").Msg("discarding expired persisted session")
		s.clearSession(ctx)
		return
	}

	if s.security.TokenSignKey != "" && s.state.SessionToken != "" &&
		!utils.ValidateSessionToken(s.state.SessionToken, s.security.TokenSignKey, s.security.TokenIssuer) {
		log.Warn().Str("func", "sessionService.rehydrate").Msg("discarding persisted session with unverifiable token")
		s.clearSession(ctx)
	}
}

func (s *sessionService) AttemptLogin(ctx context.Context, password string) models.AuthResult {
	result := s.verifyPassword(ctx, password)
	if result.Success {
		result.Message = "login successful"
		s.logger.Info().Str("func", "sessionService.AttemptLogin").Msg("administrator logged in")
		s.notify()
	}

	return result
}

// verifyPassword is the single password-checking path shared by AttemptLogin
// and ChangePassword: both consume the same attempt counter and both refresh
// the session on success.
func (s *sessionService) verifyPassword(ctx context.Context, password string) models.AuthResult {
	if minutes, locked := s.lockoutMinutesLeft(); locked {
		return models.AuthResult{
			Reason:      models.ReasonLocked,
			Message:     fmt.Sprintf("account is locked, try again in %d min", minutes),
			MinutesLeft: minutes,
		}
	}

	if !s.creds.VerifyPassword(ctx, password) {
		s.state.LoginAttempts++
		result := models.AuthResult{
			Reason:       models.ReasonInvalidPassword,
			AttemptsLeft: max(0, s.admin.MaxLoginAttempts-s.state.LoginAttempts),
		}
		result.Message = fmt.Sprintf("wrong password, %d attempt(s) left", result.AttemptsLeft)

		if s.state.LoginAttempts >= s.admin.MaxLoginAttempts {
			until := s.now().Add(s.admin.LockoutDuration)
			s.state.LockedUntil = &until
			result.Reason = models.ReasonLocked
			result.MinutesLeft = ceilMinutes(s.admin.LockoutDuration)
			result.Message = fmt.Sprintf("too many failed attempts, account locked for %d min", result.MinutesLeft)
			s.logger.Warn().Str("func", "sessionService.verifyPassword").Msg("login attempt limit reached, lockout engaged")
		}
		s.saveState(ctx)

		return result
	}

	now := s.now()
	s.state.IsAuthenticated = true
	s.state.LoginAttempts = 0
	s.state.LockedUntil = nil
	s.state.LastActivity = &now
	s.state.SessionToken = utils.GenerateSessionToken(s.security.TokenIssuer, s.security.TokenSignKey, now)
	s.saveState(ctx)

	return models.AuthResult{Success: true, Reason: models.ReasonOK}
}

func (s *sessionService) Logout(ctx context.Context) {
	s.clearSession(ctx)
	s.logger.Info().Str("func", "sessionService.Logout").Msg("administrator logged out")
	s.notify()
}

// clearSession drops the authenticated session but keeps the attempt counter:
// logging out is not a way to shed accumulated failed attempts.
func (s *sessionService) clearSession(ctx context.Context) {
	s.state.IsAuthenticated = false
	s.state.LastActivity = nil
	s.state.SessionToken = ""
	s.saveState(ctx)
}

// saveState writes the session state through to the store. A failed write is
// logged by the adapter; the in-memory state stands either way.
func (s *sessionService) saveState(ctx context.Context) {
	s.persistence.Store(ctx, store.KeyAuthState, s.state)
}

func (s *sessionService) CheckSession(ctx context.Context) bool {
	if s.state.IsAuthenticated && s.isSessionStale() {
		s.logger.Info().Str("func", "sessionService.CheckSession").Msg("session expired, logging out")
		s.Logout(ctx)
		return false
	}

	return s.state.IsAuthenticated
}

// isSessionStale is only meaningful on an authenticated state. A missing
// activity timestamp means the record was corrupted by hand; such a session
// cannot be trusted and counts as expired.
func (s *sessionService) isSessionStale() bool {
	if s.state.LastActivity == nil {
		return true
	}

	return s.now().Sub(*s.state.LastActivity) > s.admin.SessionDuration
}

func (s *sessionService) TouchActivity(ctx context.Context) {
	if !s.state.IsAuthenticated {
		return
	}

	now := s.now()
	s.state.LastActivity = &now
	s.saveState(ctx)
}

func (s *sessionService) ResetPassword(ctx context.Context, securityAnswer, newPassword string) models.AuthResult {
	if !s.creds.VerifySecurityAnswer(ctx, securityAnswer) {
		return models.AuthResult{
			Reason:  models.ReasonInvalidSecurityAnswer,
			Message: "wrong security answer",
		}
	}

	if !s.creds.ReplacePassword(ctx, newPassword) {
		return models.AuthResult{
			Reason:  models.ReasonPersistence,
			Message: "failed to store the new password",
		}
	}

	s.state.LoginAttempts = 0
	s.state.LockedUntil = nil
	s.saveState(ctx)
	s.logger.Info().Str("func", "sessionService.ResetPassword").Msg("password reset via security answer")

	return models.AuthResult{Success: true, Reason: models.ReasonOK, Message: "password has been reset"}
}

func (s *sessionService) ChangePassword(ctx context.Context, currentPassword, newPassword string) models.AuthResult {
	wasAuthenticated := s.state.IsAuthenticated
	if !s.CheckSession(ctx) {
		if wasAuthenticated {
			return models.AuthResult{
				Reason:  models.ReasonSessionExpired,
				Message: "session expired, log in again",
			}
		}
		return models.AuthResult{
			Reason:  models.ReasonNotAuthenticated,
			Message: "log in before changing the password",
		}
	}

	verified := s.verifyPassword(ctx, currentPassword)
	if !verified.Success {
		if verified.Reason == models.ReasonInvalidPassword {
			verified.Message = fmt.Sprintf("wrong current password, %d attempt(s) left", verified.AttemptsLeft)
		}
		return verified
	}

	if !s.creds.ReplacePassword(ctx, newPassword) {
		return models.AuthResult{
			Reason:  models.ReasonPersistence,
			Message: "failed to store the new password",
		}
	}
	s.logger.Info().Str("func", "sessionService.ChangePassword").Msg("password changed")

	return models.AuthResult{Success: true, Reason: models.ReasonOK, Message: "password has been changed"}
}

func (s *sessionService) IsAuthenticated(ctx context.Context) bool {
	return s.CheckSession(ctx)
}

func (s *sessionService) Subscribe(fn func(models.AuthChange)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *sessionService) notify() {
	change := models.AuthChange{
		IsAuthenticated: s.state.IsAuthenticated,
		LoginAttempts:   s.state.LoginAttempts,
	}
	for _, fn := range s.subscribers {
		fn(change)
	}
}

func (s *sessionService) RemainingAttempts() int {
	return max(0, s.admin.MaxLoginAttempts-s.state.LoginAttempts)
}

func (s *sessionService) SecurityQuestion() string {
	return s.admin.SecurityQuestion
}

func (s *sessionService) State() models.SessionState {
	return s.state
}

// lockoutMinutesLeft reports whether the lockout is active and, if so, the
// rounded-up number of minutes until it elapses. An elapsed lockout is
// cleared in place so the next attempt proceeds normally.
func (s *sessionService) lockoutMinutesLeft() (int, bool) {
	if s.state.LockedUntil == nil {
		return 0, false
	}

	remaining := s.state.LockedUntil.Sub(s.now())
	if remaining <= 0 {
		// The attempt counter survives the expired lockout: only a
		// successful login or reset clears it, so one more wrong
		// password locks the account again right away.
		s.state.LockedUntil = nil
		return 0, false
	}

	return ceilMinutes(remaining), true
}

func ceilMinutes(d time.Duration) int {
	return int(math.Ceil(d.Minutes()))
}
