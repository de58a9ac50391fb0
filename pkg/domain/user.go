package domain

import "context"

// User is the profile record kept for every registered account.
type User struct {
	ID        string `json:"id" dynamodbav:"id"`
	Email     string `json:"email" dynamodbav:"email"`
	Username  string `json:"username" dynamodbav:"username"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt string `json:"updatedAt" dynamodbav:"updatedAt"`
}

// UserUpdate lists the user fields that may be changed after creation. A nil
// field is left untouched.
type UserUpdate struct {
	Email    *string
	Username *string
}

// LoginRequest carries the credentials submitted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse is the token bundle handed back after a successful login.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
}

// RegisterRequest carries the fields required to create an account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required,min=1,max=100"`
}

// Claims is the caller identity attached to a request by the upstream
// authorizer.
type Claims struct {
	Subject  string
	Email    string
	Username string
}

// Users is the set of user operations consumed by the auth handler.
type Users interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (User, error)
	CreateUser(ctx context.Context, email string, username string) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (User, error)
	DeleteUser(ctx context.Context, id string) error
}
