package v1

import (
	"errors"

	"github.com/aws/aws-lambda-go/events"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	"github.com/spacetalk/lambda-spacetalk/pkg/response"
)

// messages are the caller facing texts used when translating a failure.
type messages struct {
	NotFound string
	Conflict string
	Failed   string
}

// fail translates a service error into a response envelope. Anything that
// is not a recognized domain error becomes a 500 with a generic text and the
// cause is only logged.
func (r *request) fail(op string, err error, m messages) events.APIGatewayProxyResponse {
	var (
		invalid  domain.ValidationError
		unauth   domain.UnauthorizedError
		notFound domain.NotFoundError
		conflict domain.ConflictError
	)
	switch {
	case errors.As(err, &invalid):
		return response.ValidationError(invalid.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized("Invalid email or password")
	case errors.As(err, &unauth):
		return response.Unauthorized(unauth.Reason)
	case errors.As(err, &notFound):
		return response.NotFound(m.NotFound)
	case errors.As(err, &conflict):
		return response.Conflict(m.Conflict)
	}
	r.logger.Error(logRequestFailed{Function: r.function, Operation: op, Reason: err.Error()})
	return response.InternalError(m.Failed)
}
