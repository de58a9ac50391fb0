package v1

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	"github.com/spacetalk/lambda-spacetalk/pkg/response"
	"github.com/spacetalk/lambda-spacetalk/pkg/validation"
)

type loginContract struct {
	Message string   `json:"message"`
	Method  string   `json:"method"`
	Path    string   `json:"path"`
	Fields  []string `json:"fields"`
}

type registeredUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type registerResponse struct {
	Message string         `json:"message"`
	User    registeredUser `json:"user"`
}

type meResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

// Auth serves the /auth endpoints.
type Auth struct {
	Users     domain.Users
	Validator *validation.Validator
	Config    Config
	LogFn     domain.LogFn
	StatFn    domain.StatFn
}

// Handle is the Lambda entrypoint for the auth function.
func (h *Auth) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	a := &api{
		Name:   domain.FunctionAuth,
		Base:   "/auth",
		Config: h.Config,
		LogFn:  h.LogFn,
		StatFn: h.StatFn,
		Endpoints: sortEndpoints([]endpoint{
			{Method: http.MethodPost, Pattern: "/auth/login", Public: true, Handle: h.login},
			{Method: http.MethodGet, Pattern: "/auth/login", Public: true, Handle: h.describeLogin},
			{Method: http.MethodPost, Pattern: "/auth/register", Public: true, Handle: h.register},
			{Method: http.MethodGet, Pattern: "/auth/me", Handle: h.me},
		}),
	}
	return a.serve(ctx, req)
}

func (h *Auth) login(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	var body domain.LoginRequest
	if err := h.Validator.DecodeAndValidate(r.Body, &body); err != nil {
		return r.fail("login", err, messages{Failed: "Login failed"})
	}
	tokens, err := h.Users.Login(ctx, body)
	if err != nil {
		return r.fail("login", err, messages{Failed: "Login failed"})
	}
	return response.Success(tokens)
}

func (h *Auth) describeLogin(_ context.Context, _ *request) events.APIGatewayProxyResponse {
	return response.Success(loginContract{
		Message: "Submit credentials with POST to log in",
		Method:  http.MethodPost,
		Path:    "/auth/login",
		Fields:  []string{"email", "password"},
	})
}

func (h *Auth) register(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	m := messages{Conflict: "User already exists", Failed: "Registration failed"}
	var body domain.RegisterRequest
	if err := h.Validator.DecodeAndValidate(r.Body, &body); err != nil {
		return r.fail("register", err, m)
	}
	user, err := h.Users.Register(ctx, body)
	if err != nil {
		return r.fail("register", err, m)
	}
	return response.Created(registerResponse{
		Message: "User created successfully",
		User:    registeredUser{ID: user.ID, Email: user.Email, Username: user.Username},
	})
}

func (h *Auth) me(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	user, err := h.Users.GetUserByID(ctx, r.UserID)
	if err != nil {
		return r.fail("me", err, messages{NotFound: "User not found", Failed: "Failed to get user info"})
	}
	return response.Success(meResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}
