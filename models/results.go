package models

// AuthReason is the structured failure (or success) cause carried by an
// AuthResult, so the presentation layer can react without parsing messages.
type AuthReason string

const (
	ReasonOK                    AuthReason = "ok"
	ReasonInvalidPassword       AuthReason = "invalid_password"
	ReasonLocked                AuthReason = "locked"
	ReasonInvalidSecurityAnswer AuthReason = "invalid_security_answer"
	ReasonSessionExpired        AuthReason = "session_expired"
	ReasonNotAuthenticated      AuthReason = "not_authenticated"
	ReasonPersistence           AuthReason = "persistence_failure"
)

// AuthResult is the discriminated outcome of a session-machine operation.
// Operations return it by value and never panic or propagate errors: a
// failed login, a lockout and an expired session are all ordinary results.
type AuthResult struct {
	// Success discriminates the result.
	Success bool

	// Reason is the structured cause, always set.
	Reason AuthReason

	// Message is a user-renderable description.
	Message string

	// AttemptsLeft is filled on a failed password verification:
	// max(0, maxAttempts-loginAttempts).
	AttemptsLeft int

	// MinutesLeft is filled when Reason is ReasonLocked: the ceiling of
	// the minutes remaining until the lockout elapses.
	MinutesLeft int
}

// Facet is the coarse, mutually exclusive view selector applied on top of
// free-text search and the category filter.
type Facet string

const (
	FacetAll      Facet = "all"
	FacetFeatured Facet = "featured"
	FacetNew      Facet = "new"
)

// Section identifies which area of the application is currently displayed.
type Section string

const (
	SectionMain      Section = "main"
	SectionFavorites Section = "favorites"
	SectionCart      Section = "cart"
	SectionAdmin     Section = "admin"
)
