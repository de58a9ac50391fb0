package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCredentials is returned by a login attempt that failed for any
// reason. The underlying cause is intentionally not exposed so callers cannot
// learn which half of the credential pair was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// NotFoundError represents a failed lookup for a resource. It is also used
// when a record exists but belongs to a different owner.
type NotFoundError struct {
	// Resource is the kind of record, such as "family".
	Resource string
	// ID is the key used when looking for the resource.
	ID string
}

func (e NotFoundError) Error() string {
	resource := e.Resource
	if resource == "" {
		resource = "resource"
	}
	return fmt.Sprintf("%s (%s) not found", resource, e.ID)
}

// ConflictError is emitted when creating a resource that already exists.
type ConflictError struct {
	Resource string
	ID       string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s (%s) already exists", e.Resource, e.ID)
}

// UnauthorizedError is emitted when a request carries no usable caller identity.
type UnauthorizedError struct {
	Reason string
}

func (e UnauthorizedError) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

// Violation describes a single field that failed validation.
type Violation struct {
	// Field is the JSON path of the offending value, like members[0].email.
	Field string
	// Message is a human readable description of the failed constraint.
	Message string
}

// ValidationError enumerates every field of a payload that failed its schema.
type ValidationError struct {
	Violations []Violation
}

func (e ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "Validation error"
	}
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return "Validation error: " + strings.Join(msgs, ", ")
}

// StoreError wraps any failure of the record store. Callers treat it as an
// internal error.
type StoreError struct {
	Op    string
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s on table %s failed: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// AuthErrorReason classifies a rejection from the identity provider.
type AuthErrorReason string

// The set of identity provider rejections that callers distinguish.
const (
	AuthReasonInvalidCredentials AuthErrorReason = "invalid_credentials"
	AuthReasonUserNotFound       AuthErrorReason = "user_not_found"
	AuthReasonUserExists         AuthErrorReason = "user_exists"
	AuthReasonPolicyViolation    AuthErrorReason = "policy_violation"
	AuthReasonProvider           AuthErrorReason = "provider"
)

// AuthError wraps a failed identity provider operation.
type AuthError struct {
	Op     string
	Reason AuthErrorReason
	Err    error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("identity %s failed (%s): %v", e.Op, e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
