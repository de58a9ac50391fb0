package v1

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/asecurityteam/runhttp"
	"github.com/aws/aws-lambda-go/events"
	"github.com/golang-jwt/jwt/v5"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	"github.com/spacetalk/lambda-spacetalk/pkg/response"
)

// TestUserID is the caller identity assumed by local runs when a request
// carries no usable credentials.
const TestUserID = "test-user-id-12345"

// Config carries the settings shared by every API handler.
type Config struct {
	// Local enables the identity fallbacks used for local development. It
	// must never be set for a deployed stage.
	Local bool
}

// request is an inbound event after path normalization and matching.
type request struct {
	events.APIGatewayProxyRequest
	Path   string
	Params map[string]string
	UserID string

	function string
	logger   domain.Logger
}

// Param returns a path parameter, preferring the one resolved by API
// Gateway over the one parsed from the path.
func (r *request) Param(name string) string {
	if v := r.PathParameters[name]; v != "" {
		return v
	}
	return r.Params[name]
}

type endpoint struct {
	Method  string
	Pattern string
	// Public endpoints do not require a caller identity.
	Public bool
	Handle func(ctx context.Context, r *request) events.APIGatewayProxyResponse
}

// specificity ranks patterns so that fixed paths win over paths ending in a
// fixed segment, which win over paths ending in a parameter.
func specificity(pattern string) int {
	segments := split(pattern)
	if !strings.Contains(pattern, "{") {
		return 0
	}
	if last := segments[len(segments)-1]; !isParam(last) {
		return 1
	}
	return 2
}

func sortEndpoints(endpoints []endpoint) []endpoint {
	sorted := make([]endpoint, len(endpoints))
	copy(sorted, endpoints)
	sort.SliceStable(sorted, func(i, j int) bool {
		return specificity(sorted[i].Pattern) < specificity(sorted[j].Pattern)
	})
	return sorted
}

func split(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

func isParam(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

// match compares a path against a pattern segment by segment.
func match(pattern string, path string) (map[string]string, bool) {
	want := split(pattern)
	got := split(path)
	if len(want) != len(got) {
		return nil, false
	}
	params := make(map[string]string)
	for i, segment := range want {
		if isParam(segment) {
			if got[i] == "" {
				return nil, false
			}
			params[strings.Trim(segment, "{}")] = got[i]
			continue
		}
		if segment != got[i] {
			return nil, false
		}
	}
	return params, true
}

// normalizePath strips a leading stage segment, such as /dev, when the path
// does not already start with the handler's base path.
func normalizePath(path string, base string) string {
	if path == "" {
		return base
	}
	if path == base || strings.HasPrefix(path, base+"/") {
		return path
	}
	trimmed := strings.TrimPrefix(path, "/")
	i := strings.Index(trimmed, "/")
	if i < 0 {
		return path
	}
	return trimmed[i:]
}

// claim reads a value from the authorizer claims block.
func claim(rc events.APIGatewayProxyRequestContext, name string) string {
	switch claims := rc.Authorizer["claims"].(type) {
	case map[string]interface{}:
		v, _ := claims[name].(string)
		return v
	case map[string]string:
		return claims[name]
	}
	return ""
}

func header(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// bearerSubject reads the subject of a bearer token without verifying its
// signature. Only local runs may rely on it.
func bearerSubject(headers map[string]string) string {
	value := header(headers, "Authorization")
	if len(value) < 7 || !strings.EqualFold(value[:7], "bearer ") {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(value[7:]), claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// callerID resolves the identity of the caller. Outside of local runs only
// the authorizer claims are trusted.
func (c Config) callerID(ctx context.Context, logFn domain.LogFn, req events.APIGatewayProxyRequest) string {
	if sub := claim(req.RequestContext, "sub"); sub != "" {
		return sub
	}
	if !c.Local {
		return ""
	}
	if sub := bearerSubject(req.Headers); sub != "" {
		logFn(ctx).Info(logLocalIdentity{UserID: sub, Source: "bearer"})
		return sub
	}
	logFn(ctx).Info(logLocalIdentity{UserID: TestUserID, Source: "default"})
	return TestUserID
}

// api is the dispatch core shared by the auth, family and route handlers.
type api struct {
	Name      string
	Base      string
	Config    Config
	LogFn     domain.LogFn
	StatFn    domain.StatFn
	Endpoints []endpoint
}

func (a *api) serve(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	start := time.Now()
	if a.LogFn == nil {
		a.LogFn = runhttp.LoggerFromContext
	}
	if a.StatFn == nil {
		a.StatFn = runhttp.StatFromContext
	}
	logger := a.LogFn(ctx)
	defer func() {
		if r := recover(); r != nil {
			logger.Error(logPanic{Function: a.Name, Path: req.Path, Reason: fmt.Sprint(r)})
			resp = response.InternalError("Internal Server Error")
		}
		stat := a.StatFn(ctx)
		tags := []string{"function:" + a.Name, "method:" + req.HTTPMethod, "status:" + strconv.Itoa(resp.StatusCode)}
		stat.Count("api.invocation", 1, tags...)
		stat.Timing("api.invocation.duration", time.Since(start), tags...)
	}()

	logger.Info(logInvoked{Function: a.Name, Method: req.HTTPMethod, Path: req.Path, RequestID: req.RequestContext.RequestID})
	if req.HTTPMethod == http.MethodOptions {
		return response.Options(), nil
	}
	path := normalizePath(req.Path, a.Base)
	for _, e := range a.Endpoints {
		if e.Method != req.HTTPMethod {
			continue
		}
		params, ok := match(e.Pattern, path)
		if !ok {
			continue
		}
		r := &request{
			APIGatewayProxyRequest: req,
			Path:                   path,
			Params:                 params,
			function:               a.Name,
			logger:                 logger,
		}
		if !e.Public {
			r.UserID = a.Config.callerID(ctx, a.LogFn, req)
			if r.UserID == "" {
				return response.Unauthorized("Authentication required"), nil
			}
		}
		return e.Handle(ctx, r), nil
	}
	return response.NotFound("Not Found"), nil
}
