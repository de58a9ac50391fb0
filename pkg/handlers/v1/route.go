package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	"github.com/spacetalk/lambda-spacetalk/pkg/response"
)

type echoCreated struct {
	Message      string          `json:"message"`
	ReceivedData json.RawMessage `json:"receivedData"`
	Timestamp    string          `json:"timestamp"`
}

type echo struct {
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// Route serves the /route endpoints. Reads are backed by the routes table;
// writes are acknowledged without being persisted.
type Route struct {
	Routes   domain.Routes
	Families domain.Families
	Config   Config
	LogFn    domain.LogFn
	StatFn   domain.StatFn
	NowFn    func() time.Time
}

// Handle is the Lambda entrypoint for the route function.
func (h *Route) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	a := &api{
		Name:   domain.FunctionRoute,
		Base:   "/route",
		Config: h.Config,
		LogFn:  h.LogFn,
		StatFn: h.StatFn,
		Endpoints: sortEndpoints([]endpoint{
			{Method: http.MethodGet, Pattern: "/route", Handle: h.get},
			{Method: http.MethodGet, Pattern: "/route/{id}", Handle: h.get},
			{Method: http.MethodPost, Pattern: "/route", Public: true, Handle: h.create},
			{Method: http.MethodPost, Pattern: "/route/{id}", Public: true, Handle: h.create},
			{Method: http.MethodPut, Pattern: "/route", Public: true, Handle: h.echo},
			{Method: http.MethodPut, Pattern: "/route/{id}", Public: true, Handle: h.echo},
			{Method: http.MethodDelete, Pattern: "/route", Public: true, Handle: h.echo},
			{Method: http.MethodDelete, Pattern: "/route/{id}", Public: true, Handle: h.echo},
		}),
	}
	return a.serve(ctx, req)
}

func (h *Route) timestamp() string {
	now := time.Now
	if h.NowFn != nil {
		now = h.NowFn
	}
	return now().UTC().Format(time.RFC3339Nano)
}

// get returns the route of a family owned by the caller. The family id comes
// from the path or from the familyId query parameter.
func (h *Route) get(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	familyID := r.Param("id")
	if familyID == "" {
		familyID = r.QueryStringParameters["familyId"]
	}
	if familyID == "" {
		return response.ValidationError("Family ID is required")
	}
	if _, err := h.Families.GetFamilyByID(ctx, familyID, r.UserID); err != nil {
		return r.fail("get route", err, messages{NotFound: familyNotFound, Failed: "Failed to handle GET request"})
	}
	route, err := h.Routes.GetRoutesByID(ctx, familyID)
	if err != nil {
		return r.fail("get route", err, messages{NotFound: "Route not found", Failed: "Failed to handle GET request"})
	}
	return response.Success(route)
}

func (h *Route) create(_ context.Context, r *request) events.APIGatewayProxyResponse {
	if strings.TrimSpace(r.Body) == "" {
		return response.ValidationError("Request body is required")
	}
	if !json.Valid([]byte(r.Body)) {
		return response.ValidationError("Request body must be valid JSON")
	}
	return response.Created(echoCreated{
		Message:      "POST request handled",
		ReceivedData: json.RawMessage(r.Body),
		Timestamp:    h.timestamp(),
	})
}

func (h *Route) echo(_ context.Context, r *request) events.APIGatewayProxyResponse {
	return response.Success(echo{
		Message:   r.HTTPMethod + " request handled",
		Path:      r.APIGatewayProxyRequest.Path,
		Timestamp: h.timestamp(),
	})
}
