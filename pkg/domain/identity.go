package domain

import "context"

// Tokens is the result of a successful authentication.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	ExpiresIn    int
}

// IdentityUser is an account as seen by the identity provider.
type IdentityUser struct {
	Username   string
	Email      string
	Status     string
	Enabled    bool
	Attributes map[string]string
}

// IdentityProvider wraps the managed identity service. Every provider
// rejection is reported as an *AuthError.
type IdentityProvider interface {
	Authenticate(ctx context.Context, email string, password string) (Tokens, error)
	CreateUser(ctx context.Context, email string, password string, username string) (IdentityUser, error)
	GetUserByEmail(ctx context.Context, email string) (IdentityUser, error)
	SetPassword(ctx context.Context, username string, password string) error
}
