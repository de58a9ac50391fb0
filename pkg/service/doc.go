// Package service contains the domain services that sit between the HTTP
// handlers and the storage and identity adapters. Ownership of families is
// enforced here so that every caller gets the same not-found answer for a
// missing record and for a record owned by somebody else.
package service
