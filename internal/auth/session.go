package auth

// Principal identifies a signed-in operator.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// SessionState is the tagged authorization state of a request. Using a
// single variant instead of a pair of booleans rules out impossible
// combinations such as "authorized but still loading".
type SessionState int

const (
	// StateSettling means the allow-list membership could not be
	// established yet. Nothing may be aggregated and no redirect
	// decision may be taken while a session is settling.
	StateSettling SessionState = iota
	// StateAnonymous means no credential was presented.
	StateAnonymous
	// StateUnauthorized means a principal was resolved but is not on
	// the admin allow-list, or the credential did not verify.
	StateUnauthorized
	// StateAuthorized means the principal is on the allow-list.
	StateAuthorized
)

// String names the state for logs.
func (s SessionState) String() string {
	switch s {
	case StateSettling:
		return "settling"
	case StateAnonymous:
		return "anonymous"
	case StateUnauthorized:
		return "unauthorized"
	case StateAuthorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Session is the outcome of resolving a request's credential.
// Principal is only meaningful when State is StateAuthorized or
// StateUnauthorized (the latter still names who was refused).
type Session struct {
	State     SessionState
	Principal Principal
}

// Authorized reports whether the session may reach admin resources.
func (s Session) Authorized() bool {
	return s.State == StateAuthorized
}
