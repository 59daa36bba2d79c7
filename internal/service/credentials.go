package service

import (
	"context"
	"strings"

	"github.com/VladDatsenko/3d/internal/config"
	"github.com/VladDatsenko/3d/internal/logger"
	"github.com/VladDatsenko/3d/internal/store"
	"github.com/VladDatsenko/3d/internal/utils"
)

type credentialService struct {
	persistence Persistence
	salt        string
	defaultPW   string
	defaultAns  string
	logger      *logger.Logger
}

// NewCredentialService builds the credential store. Checksums live in the
// persisted store; the first access under a fresh store seeds them from the
// configured default password and security answer.
func NewCredentialService(adminCfg config.Admin, securityCfg config.Security, persistence Persistence, logger *logger.Logger) CredentialService {
	return &credentialService{
		persistence: persistence,
		salt:        securityCfg.HashSalt,
		defaultPW:   adminCfg.DefaultPassword,
		defaultAns:  adminCfg.SecurityAnswer,
		logger:      logger,
	}
}

func (c *credentialService) VerifyPassword(ctx context.Context, password string) bool {
	return utils.Checksum(password, c.salt) == c.passwordChecksum(ctx)
}

func (c *credentialService) VerifySecurityAnswer(ctx context.Context, answer string) bool {
	return utils.Checksum(normalizeAnswer(answer), c.salt) == c.answerChecksum(ctx)
}

func (c *credentialService) ReplacePassword(ctx context.Context, newPassword string) bool {
	return c.persistence.Store(ctx, store.KeyPasswordChecksum, utils.Checksum(newPassword, c.salt))
}

func (c *credentialService) PasswordChecksum(ctx context.Context) string {
	return c.passwordChecksum(ctx)
}

// passwordChecksum returns the stored checksum, seeding it from the
// configured default password when the store has none yet.
func (c *credentialService) passwordChecksum(ctx context.Context) string {
	var stored string
	if c.persistence.Load(ctx, store.KeyPasswordChecksum, &stored) && stored != "" {
		return stored
	}

	seeded := utils.Checksum(c.defaultPW, c.salt)
	if !c.persistence.Store(ctx, store.KeyPasswordChecksum, seeded) {
		c.logger.Warn().
			Str("func", "credentialService.passwordChecksum").
			Msg("failed to seed default password checksum")
	}
	return seeded
}

func (c *credentialService) answerChecksum(ctx context.Context) string {
	var stored string
	if c.persistence.Load(ctx, store.KeyAnswerChecksum, &stored) && stored != "" {
		return stored
	}

	seeded := utils.Checksum(normalizeAnswer(c.defaultAns), c.salt)
	if !c.persistence.Store(ctx, store.KeyAnswerChecksum, seeded) {
		c.logger.Warn().
			Str("func", "credentialService.answerChecksum").
			Msg("failed to seed security answer checksum")
	}
	return seeded
}

// Security answers are matched leniently: surrounding whitespace and letter
// case never count.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
