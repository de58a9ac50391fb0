package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
)

const (
	invocationTypeHeader          = "X-Amz-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeEvent           = "Event"
	invocationTypeDryRun          = "DryRun"
	invocationVersionHeader       = "X-Amz-Executed-Version"
	invocationErrorHeader         = "X-Amz-Function-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"
	invocationVersion             = "$LATEST"
)

// Exception names reported by the Lambda service.
const (
	exceptionNotFound       = "ResourceNotFoundException"
	exceptionInvalidContent = "InvalidRequestContentException"
	exceptionInvalidParam   = "InvalidParameterValueException"
)

// bgContext detaches a request context from its cancellation while keeping
// its values, such as the logger and stat client, available to work that
// outlives the http.Handler.
type bgContext struct {
	context.Context
	Values context.Context
}

func (c *bgContext) Value(key interface{}) interface{} {
	return c.Values.Value(key)
}

// lambdaError is the error document returned by the Lambda API.
type lambdaError struct {
	Message    string   `json:"errorMessage"`
	Type       string   `json:"errorType"`
	StackTrace []string `json:"stackTrace"`
}

// Invoke implements the Lambda Invoke API for the locally hosted functions.
// https://docs.aws.amazon.com/lambda/latest/dg/API_Invoke.html
//
// Qualifier and LogType are ignored. Every invocation reports $LATEST.
type Invoke struct {
	LogFn      domain.LogFn
	StatFn     domain.StatFn
	URLParamFn domain.URLParamFn
	Fetcher    domain.HandlerFetcher
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fnName := h.URLParamFn(ctx, "functionName")
	fn, err := h.Fetcher.FetchHandler(ctx, fnName)
	if err != nil {
		writeLambdaError(w, err)
		return
	}
	invocationType := r.Header.Get(invocationTypeHeader)
	if invocationType == "" {
		invocationType = invocationTypeRequestResponse
	}
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeLambdaError(w, domain.ValidationError{Violations: []domain.Violation{
			{Field: "body", Message: err.Error()},
		}})
		return
	}
	h.StatFn(ctx).Count("invoke", 1, "function:"+fnName, "type:"+invocationType)
	w.Header().Set(invocationVersionHeader, invocationVersion)

	switch invocationType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
	case invocationTypeEvent:
		h.async(ctx, fnName, fn, payload)
		w.WriteHeader(http.StatusAccepted)
	case invocationTypeRequestResponse:
		h.sync(ctx, w, fnName, fn, payload)
	default:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(lambdaError{
			Message:    fmt.Sprintf("InvocationType %s not valid", invocationType),
			Type:       exceptionInvalidParam,
			StackTrace: []string{},
		})
	}
}

// async runs the function after the request completes. Failures can only be
// logged.
func (h *Invoke) async(ctx context.Context, fnName string, fn domain.Handler, payload []byte) {
	ctx = &bgContext{Context: context.Background(), Values: ctx}
	go func() {
		if _, err := fn.Invoke(ctx, payload); err != nil {
			h.LogFn(ctx).Error(logInvokeFailed{Function: fnName, Type: invocationTypeEvent, Reason: err.Error()})
		}
	}()
}

// sync runs the function and relays its output. A function error is
// reported in the body with the X-Amz-Function-Error header set.
func (h *Invoke) sync(ctx context.Context, w http.ResponseWriter, fnName string, fn domain.Handler, payload []byte) {
	out, err := fn.Invoke(ctx, payload)
	if err == nil {
		w.WriteHeader(http.StatusOK)
		if len(out) > 0 {
			_, _ = w.Write(out)
		}
		return
	}
	h.LogFn(ctx).Error(logInvokeFailed{Function: fnName, Type: invocationTypeRequestResponse, Reason: err.Error()})
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		w.Header().Set(invocationErrorHeader, invocationErrorTypeUnhandled)
	} else {
		w.Header().Set(invocationErrorHeader, invocationErrorTypeHandled)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(responseFromError(err))
}

func writeLambdaError(w http.ResponseWriter, err error) {
	w.WriteHeader(statusFromError(err))
	_ = json.NewEncoder(w).Encode(responseFromError(err))
}

// isDecodeError reports whether the payload could not be decoded into the
// function input.
func isDecodeError(err error) bool {
	var (
		syntax    *json.SyntaxError
		typ       *json.UnmarshalTypeError
		invalid   *json.InvalidUnmarshalError
		field     *json.UnmarshalFieldError // nolint
		invalidCh *json.InvalidUTF8Error    // nolint
	)
	return errors.As(err, &syntax) || errors.As(err, &typ) || errors.As(err, &invalid) ||
		errors.As(err, &field) || errors.As(err, &invalidCh)
}

func statusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, new(domain.NotFoundError)):
		return http.StatusNotFound
	case errors.As(err, new(domain.ValidationError)), isDecodeError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorType names the error the way the Lambda service would. Errors with
// no service equivalent are reported by their Go type name.
func errorType(err error) string {
	switch {
	case errors.As(err, new(domain.NotFoundError)):
		return exceptionNotFound
	case isDecodeError(err):
		return exceptionInvalidContent
	case errors.As(err, new(domain.ValidationError)):
		return exceptionInvalidParam
	}
	name := fmt.Sprintf("%T", err)
	return name[strings.LastIndex(name, ".")+1:]
}

func responseFromError(err error) lambdaError {
	return lambdaError{
		Message:    err.Error(),
		Type:       errorType(err),
		StackTrace: []string{},
	}
}
