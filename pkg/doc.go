// Package spacetalk assembles the auth, family and route functions from
// configuration and runs them either as native Lambda functions or inside a
// single local HTTP runtime.
package spacetalk
