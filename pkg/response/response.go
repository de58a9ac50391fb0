// Package response builds the API Gateway proxy responses returned by every
// handler. All responses carry the same CORS policy and a JSON content type.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// Error codes attached to the error envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
)

const internalErrorBody = `{"error":"Error","message":"Internal Server Error"}`

// ErrorBody is the envelope used for every non-success response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Headers returns a fresh copy of the header block attached to every response.
func Headers() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
		"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
	}
}

// New serializes the payload into a response with the given status. A nil
// payload produces an empty body.
func New(statusCode int, payload interface{}) events.APIGatewayProxyResponse {
	resp := events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    Headers(),
	}
	if payload == nil {
		return resp
	}
	b, err := json.Marshal(payload)
	if err != nil {
		resp.StatusCode = http.StatusInternalServerError
		resp.Body = internalErrorBody
		return resp
	}
	resp.Body = string(b)
	return resp
}

// Success is a 200 carrying the payload.
func Success(payload interface{}) events.APIGatewayProxyResponse {
	return New(http.StatusOK, payload)
}

// Created is a 201 carrying the payload.
func Created(payload interface{}) events.APIGatewayProxyResponse {
	return New(http.StatusCreated, payload)
}

// Options answers a CORS preflight request.
func Options() events.APIGatewayProxyResponse {
	return New(http.StatusOK, nil)
}

// Error is a generic error envelope. The code is omitted when empty.
func Error(statusCode int, message string, code string) events.APIGatewayProxyResponse {
	return New(statusCode, ErrorBody{Error: "Error", Message: message, Code: code})
}

// InternalError is a 500 that never exposes the underlying cause.
func InternalError(message string) events.APIGatewayProxyResponse {
	return Error(http.StatusInternalServerError, message, "")
}

// ValidationError is a 400 for rejected input.
func ValidationError(message string) events.APIGatewayProxyResponse {
	return New(http.StatusBadRequest, ErrorBody{Error: "Validation Error", Message: message, Code: CodeValidation})
}

// Unauthorized is a 401 for requests without a usable identity.
func Unauthorized(message string) events.APIGatewayProxyResponse {
	if message == "" {
		message = "Unauthorized"
	}
	return New(http.StatusUnauthorized, ErrorBody{Error: "Unauthorized", Message: message, Code: CodeUnauthorized})
}

// NotFound is a 404 for missing or foreign resources.
func NotFound(message string) events.APIGatewayProxyResponse {
	if message == "" {
		message = "Resource not found"
	}
	return New(http.StatusNotFound, ErrorBody{Error: "Not Found", Message: message, Code: CodeNotFound})
}

// Conflict is a 409 for resources that already exist.
func Conflict(message string) events.APIGatewayProxyResponse {
	return Error(http.StatusConflict, message, CodeConflict)
}
