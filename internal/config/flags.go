package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-d database file path (sqlite DSN)
//	-c/-config json file path with configs
//	-default-password first-run administrator password
//	-security-question credential-reset question
//	-security-answer credential-reset answer
//	-hash-salt checksum salt
//	-token-sign-key session token signing key
//	-token-issuer session token issuer
//	-session-duration session inactivity window (e.g., "168h")
//	-max-login-attempts failed attempts before lockout
//	-lockout-duration lockout window (e.g., "15m")
//	-initial-load page size after a filter recomputation
//	-models-per-load page size increment for load-more
func ParseFlags() *StructuredConfig {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg := parseFlagSet(fs, os.Args[1:])
	return cfg
}

// parseFlagSet registers the gallery flags on fs and parses args into a
// config. Split from ParseFlags so tests can supply their own flag set.
func parseFlagSet(fs *flag.FlagSet, args []string) *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var defaultPassword string
	var securityQuestion string
	var securityAnswer string
	var hashSalt string
	var tokenSignKey string
	var tokenIssuer string
	var sessionDuration time.Duration
	var maxLoginAttempts int
	var lockoutDuration time.Duration
	var initialLoad int
	var modelsPerLoad int

	fs.StringVar(&databaseDSN, "d", "", "Database file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&defaultPassword, "default-password", "", "First-run administrator password")
	fs.StringVar(&securityQuestion, "security-question", "", "Credential-reset question")
	fs.StringVar(&securityAnswer, "security-answer", "", "Credential-reset answer")
	fs.StringVar(&hashSalt, "hash-salt", "", "Checksum salt")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session inactivity window (e.g., 168h)")
	fs.IntVar(&maxLoginAttempts, "max-login-attempts", 0, "Failed attempts before lockout")
	fs.DurationVar(&lockoutDuration, "lockout-duration", 0, "Lockout window (e.g., 15m)")
	fs.IntVar(&initialLoad, "initial-load", 0, "Page size after filter recomputation")
	fs.IntVar(&modelsPerLoad, "models-per-load", 0, "Page size increment for load-more")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Admin: Admin{
			DefaultPassword:  defaultPassword,
			SecurityQuestion: securityQuestion,
			SecurityAnswer:   securityAnswer,
			SessionDuration:  sessionDuration,
			MaxLoginAttempts: maxLoginAttempts,
			LockoutDuration:  lockoutDuration,
		},
		Security: Security{
			HashSalt:     hashSalt,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Catalog: Catalog{
			InitialLoad:   initialLoad,
			ModelsPerLoad: modelsPerLoad,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}
}
