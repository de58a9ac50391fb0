// Package handlers is a container for the versioned API handlers. The Lambda
// function handlers and the http.Handler adapters that host them locally both
// live in versioned subpackages.
package handlers
