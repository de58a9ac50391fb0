package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
)

//go:generate mockgen -destination mock_client_test.go -package identity github.com/spacetalk/lambda-spacetalk/pkg/identity Client

// Client is the subset of the Cognito user pool admin API used by the
// provider. It is satisfied by *cognitoidentityprovider.Client.
type Client interface {
	AdminInitiateAuth(ctx context.Context, params *cip.AdminInitiateAuthInput, optFns ...func(*cip.Options)) (*cip.AdminInitiateAuthOutput, error)
	AdminCreateUser(ctx context.Context, params *cip.AdminCreateUserInput, optFns ...func(*cip.Options)) (*cip.AdminCreateUserOutput, error)
	AdminGetUser(ctx context.Context, params *cip.AdminGetUserInput, optFns ...func(*cip.Options)) (*cip.AdminGetUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cip.AdminSetUserPasswordInput, optFns ...func(*cip.Options)) (*cip.AdminSetUserPasswordOutput, error)
}

// Cognito implements domain.IdentityProvider against a single user pool.
// Accounts are keyed by email address.
type Cognito struct {
	Client     Client
	UserPoolID string
	ClientID   string
}

// NewFromConfig binds a provider to a client built from the shared AWS
// configuration.
func NewFromConfig(cfg aws.Config, userPoolID string, clientID string) *Cognito {
	return &Cognito{
		Client:     cip.NewFromConfig(cfg),
		UserPoolID: userPoolID,
		ClientID:   clientID,
	}
}

// classify maps a provider failure onto the reasons callers branch on.
func classify(err error) domain.AuthErrorReason {
	var (
		notAuthorized  *types.NotAuthorizedException
		notConfirmed   *types.UserNotConfirmedException
		resetRequired  *types.PasswordResetRequiredException
		notFound       *types.UserNotFoundException
		usernameExists *types.UsernameExistsException
		aliasExists    *types.AliasExistsException
		badPassword    *types.InvalidPasswordException
		badParameter   *types.InvalidParameterException
	)
	switch {
	case errors.As(err, &notAuthorized), errors.As(err, &notConfirmed), errors.As(err, &resetRequired):
		return domain.AuthReasonInvalidCredentials
	case errors.As(err, &notFound):
		return domain.AuthReasonUserNotFound
	case errors.As(err, &usernameExists), errors.As(err, &aliasExists):
		return domain.AuthReasonUserExists
	case errors.As(err, &badPassword), errors.As(err, &badParameter):
		return domain.AuthReasonPolicyViolation
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotAuthorizedException":
			return domain.AuthReasonInvalidCredentials
		case "UserNotFoundException":
			return domain.AuthReasonUserNotFound
		case "UsernameExistsException":
			return domain.AuthReasonUserExists
		case "InvalidPasswordException":
			return domain.AuthReasonPolicyViolation
		}
	}
	return domain.AuthReasonProvider
}

func authErr(op string, err error) error {
	return &domain.AuthError{Op: op, Reason: classify(err), Err: err}
}

func attributes(attrs []types.AttributeType) map[string]string {
	out := make(map[string]string, len(attrs))
	for _, a := range attrs {
		out[aws.ToString(a.Name)] = aws.ToString(a.Value)
	}
	return out
}

// Authenticate runs the admin password flow and returns the issued tokens.
// A pending challenge, such as a forced password change, is reported as
// invalid credentials.
func (c *Cognito) Authenticate(ctx context.Context, email string, password string) (domain.Tokens, error) {
	res, err := c.Client.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		AuthFlow:   types.AuthFlowTypeAdminNoSrpAuth,
		UserPoolId: aws.String(c.UserPoolID),
		ClientId:   aws.String(c.ClientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return domain.Tokens{}, authErr("authenticate", err)
	}
	if res.AuthenticationResult == nil {
		return domain.Tokens{}, &domain.AuthError{
			Op:     "authenticate",
			Reason: domain.AuthReasonInvalidCredentials,
			Err:    fmt.Errorf("unanswered challenge %q", res.ChallengeName),
		}
	}
	r := res.AuthenticationResult
	return domain.Tokens{
		AccessToken:  aws.ToString(r.AccessToken),
		RefreshToken: aws.ToString(r.RefreshToken),
		IDToken:      aws.ToString(r.IdToken),
		ExpiresIn:    int(r.ExpiresIn),
	}, nil
}

// CreateUser registers a pre-verified account with a temporary password and
// no welcome message. The username is kept as the preferred_username
// attribute because the pool is keyed by email.
func (c *Cognito) CreateUser(ctx context.Context, email string, password string, username string) (domain.IdentityUser, error) {
	attrs := []types.AttributeType{
		{Name: aws.String("email"), Value: aws.String(email)},
		{Name: aws.String("email_verified"), Value: aws.String("true")},
	}
	if username != "" {
		attrs = append(attrs, types.AttributeType{Name: aws.String("preferred_username"), Value: aws.String(username)})
	}
	res, err := c.Client.AdminCreateUser(ctx, &cip.AdminCreateUserInput{
		UserPoolId:        aws.String(c.UserPoolID),
		Username:          aws.String(email),
		UserAttributes:    attrs,
		TemporaryPassword: aws.String(password),
		MessageAction:     types.MessageActionTypeSuppress,
	})
	if err != nil {
		return domain.IdentityUser{}, authErr("create user", err)
	}
	user := domain.IdentityUser{Username: email, Email: email}
	if res.User != nil {
		user.Username = aws.ToString(res.User.Username)
		user.Status = string(res.User.UserStatus)
		user.Enabled = res.User.Enabled
		user.Attributes = attributes(res.User.Attributes)
	}
	return user, nil
}

// GetUserByEmail loads the pool account keyed by the email address.
func (c *Cognito) GetUserByEmail(ctx context.Context, email string) (domain.IdentityUser, error) {
	res, err := c.Client.AdminGetUser(ctx, &cip.AdminGetUserInput{
		UserPoolId: aws.String(c.UserPoolID),
		Username:   aws.String(email),
	})
	if err != nil {
		return domain.IdentityUser{}, authErr("get user", err)
	}
	attrs := attributes(res.UserAttributes)
	return domain.IdentityUser{
		Username:   aws.ToString(res.Username),
		Email:      attrs["email"],
		Status:     string(res.UserStatus),
		Enabled:    res.Enabled,
		Attributes: attrs,
	}, nil
}

// SetPassword makes the given password permanent for the account.
func (c *Cognito) SetPassword(ctx context.Context, username string, password string) error {
	_, err := c.Client.AdminSetUserPassword(ctx, &cip.AdminSetUserPasswordInput{
		UserPoolId: aws.String(c.UserPoolID),
		Username:   aws.String(username),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		return authErr("set password", err)
	}
	return nil
}
