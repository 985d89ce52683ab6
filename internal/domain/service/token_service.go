package service

// Principal is the verified identity derived from a bearer token.
type Principal struct {
	ID       string
	Username string
	Email    string
}

// TokenService defines the interface for issuing and validating the signed
// tokens returned by loginUser and addUser.
type TokenService interface {
	// SignToken issues a token carrying the username, email and id.
	SignToken(username, email, id string) (string, error)

	// ValidateToken checks a token string and returns the principal it
	// carries, or an error for an invalid/expired token.
	ValidateToken(tokenString string) (*Principal, error)
}
