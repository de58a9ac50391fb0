// Package identity contains the Cognito user pool implementation of the
// domain.IdentityProvider interface.
package identity
