package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	"github.com/spacetalk/lambda-spacetalk/pkg/store"
)

const (
	defaultExpiresIn = 3600
	subjectAttribute = "sub"
	tokenTypeBearer  = "Bearer"
	resourceUser     = "user"
)

// UserService implements domain.Users. Credentials live in the identity
// provider while profiles live in the users table.
type UserService struct {
	Store    domain.RecordStore
	Identity domain.IdentityProvider
	Table    string
	LogFn    domain.LogFn
	IDFn     func() string
	NowFn    func() time.Time
}

func (s *UserService) env() base {
	return base{LogFn: s.LogFn, IDFn: s.IDFn, NowFn: s.NowFn}
}

// Login exchanges credentials for a token bundle. Every failure collapses to
// domain.ErrInvalidCredentials and the cause is only logged.
func (s *UserService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	tokens, err := s.Identity.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		reason := string(domain.AuthReasonProvider)
		var aerr *domain.AuthError
		if errors.As(err, &aerr) {
			reason = string(aerr.Reason)
		}
		s.env().logFn()(ctx).Warn(logLoginFailed{Email: req.Email, Reason: reason, Error: err.Error()})
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}
	expiresIn := tokens.ExpiresIn
	if expiresIn == 0 {
		expiresIn = defaultExpiresIn
	}
	return domain.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    tokenTypeBearer,
	}, nil
}

// Register creates the identity account and then the profile record. A
// failure after the identity account exists is not compensated.
func (s *UserService) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	logger := s.env().logFn()(ctx)
	_, err := s.GetUserByEmail(ctx, req.Email)
	var nf domain.NotFoundError
	switch {
	case err == nil:
		return domain.User{}, domain.ConflictError{Resource: resourceUser, ID: req.Email}
	case !errors.As(err, &nf):
		return domain.User{}, err
	}

	account, err := s.Identity.CreateUser(ctx, req.Email, req.Password, req.Username)
	if err != nil {
		logger.Error(logRegisterFailed{Email: req.Email, Stage: "identity", Error: err.Error()})
		return domain.User{}, identityErr(req.Email, err)
	}
	username := account.Username
	if username == "" {
		username = req.Email
	}
	if err := s.Identity.SetPassword(ctx, username, req.Password); err != nil {
		logger.Error(logRegisterFailed{Email: req.Email, Stage: "password", Error: err.Error()})
		return domain.User{}, identityErr(req.Email, err)
	}

	// The profile shares the identity subject so that authorizer claims
	// resolve to it.
	id := account.Attributes[subjectAttribute]
	if id == "" {
		id = s.env().newID()
	}
	user, err := s.putUser(ctx, id, req.Email, req.Username)
	if err != nil {
		logger.Error(logRegisterFailed{Email: req.Email, Stage: "profile", Error: err.Error()})
		return domain.User{}, err
	}
	logger.Info(logUserRegistered{UserID: user.ID})
	return user, nil
}

// identityErr translates the identity rejections that callers can act on.
func identityErr(email string, err error) error {
	var aerr *domain.AuthError
	if !errors.As(err, &aerr) {
		return err
	}
	switch aerr.Reason {
	case domain.AuthReasonUserExists:
		return domain.ConflictError{Resource: resourceUser, ID: email}
	case domain.AuthReasonPolicyViolation:
		return domain.ValidationError{Violations: []domain.Violation{{
			Field:   "password",
			Message: "password does not satisfy the password policy",
		}}}
	}
	return err
}

// CreateUser writes a new profile record with a fresh id.
func (s *UserService) CreateUser(ctx context.Context, email string, username string) (domain.User, error) {
	return s.putUser(ctx, s.env().newID(), email, username)
}

func (s *UserService) putUser(ctx context.Context, id string, email string, username string) (domain.User, error) {
	now := s.env().timestamp()
	user := domain.User{
		ID:        id,
		Email:     email,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Put(ctx, s.Table, user); err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUserByID loads a profile by its primary key.
func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var user domain.User
	found, err := s.Store.Get(ctx, s.Table, domain.Key{"id": id}, &user)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return domain.User{}, domain.NotFoundError{Resource: resourceUser, ID: id}
	}
	return user, nil
}

// GetUserByEmail loads the first profile registered with the email address.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var users []domain.User
	err := s.Store.Query(ctx, s.Table, store.EmailIndex, domain.Condition{Attribute: "email", Value: email}, &users)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user by email: %w", err)
	}
	if len(users) == 0 {
		return domain.User{}, domain.NotFoundError{Resource: resourceUser, ID: email}
	}
	return users[0], nil
}

// UpdateUser applies the non-nil fields, stamps updatedAt and returns the
// stored result.
func (s *UserService) UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (domain.User, error) {
	if _, err := s.GetUserByID(ctx, id); err != nil {
		return domain.User{}, err
	}
	var set []domain.Assignment
	if update.Email != nil {
		set = append(set, domain.Assignment{Field: "email", Value: *update.Email})
	}
	if update.Username != nil {
		set = append(set, domain.Assignment{Field: "username", Value: *update.Username})
	}
	set = append(set, domain.Assignment{Field: "updatedAt", Value: s.env().timestamp()})
	if err := s.Store.Update(ctx, s.Table, domain.Key{"id": id}, set); err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	return s.GetUserByID(ctx, id)
}

// DeleteUser removes the profile record. The identity account is kept.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Store.Delete(ctx, s.Table, domain.Key{"id": id}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
