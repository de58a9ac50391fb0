// Package v1 contains the Lambda handlers behind the version 1 API along with
// the HTTP adapters used to host them outside of AWS. Each function handler
// accepts an API Gateway proxy event, routes it by method and path, resolves
// the caller identity, and answers with the shared JSON envelope.
//
// Invoke implements the Lambda Invoke API so that a running process can stand
// in for the Lambda service, and Proxy emulates the API Gateway proxy
// integration so that plain HTTP clients can reach the same handlers.
package v1
