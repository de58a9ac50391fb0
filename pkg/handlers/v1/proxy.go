package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
)

// Proxy emulates an API Gateway proxy integration in front of the locally
// hosted functions. The function is selected by the first path segment,
// optionally preceded by a stage segment such as /dev.
type Proxy struct {
	LogFn   domain.LogFn
	StatFn  domain.StatFn
	Fetcher domain.HandlerFetcher
	// Stage is reported in the request context when the path carries no
	// stage segment.
	Stage string
	// Functions lists the function names routable through the proxy.
	Functions []string
}

// resolve finds the function and stage addressed by a request path.
func (h *Proxy) resolve(path string) (string, string, bool) {
	segments := split(path)
	for i := 0; i < len(segments) && i < 2; i++ {
		for _, fn := range h.Functions {
			if segments[i] != fn {
				continue
			}
			if i == 1 {
				return fn, segments[0], true
			}
			return fn, h.Stage, true
		}
	}
	return "", "", false
}

func firstValues(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// event converts an HTTP request into the proxy event a deployed function
// would receive. Path parameters are left for the handler to derive.
func (h *Proxy) event(r *http.Request, stage string, body []byte) events.APIGatewayProxyRequest {
	query := map[string][]string(r.URL.Query())
	return events.APIGatewayProxyRequest{
		Path:                            r.URL.Path,
		HTTPMethod:                      r.Method,
		Headers:                         firstValues(r.Header),
		MultiValueHeaders:               r.Header,
		QueryStringParameters:           firstValues(query),
		MultiValueQueryStringParameters: query,
		Body:                            string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			Stage:            stage,
			RequestID:        uuid.NewString(),
			HTTPMethod:       r.Method,
			Path:             r.URL.Path,
			RequestTimeEpoch: time.Now().UnixMilli(),
		},
	}
}

func (h *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fnName, stage, ok := h.resolve(r.URL.Path)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(responseFromError(domain.NotFoundError{Resource: "function", ID: r.URL.Path}))
		return
	}
	fn, err := h.Fetcher.FetchHandler(ctx, fnName)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(responseFromError(err))
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(responseFromError(err))
		return
	}
	payload, err := json.Marshal(h.event(r, stage, body))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(responseFromError(err))
		return
	}
	h.StatFn(ctx).Count("proxy", 1, "function:"+fnName, "method:"+r.Method)
	out, err := fn.Invoke(ctx, payload)
	if err != nil {
		h.LogFn(ctx).Error(logProxyFailed{Function: fnName, Path: r.URL.Path, Reason: err.Error()})
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(responseFromError(err))
		return
	}
	var resp events.APIGatewayProxyResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		h.LogFn(ctx).Error(logProxyFailed{Function: fnName, Path: r.URL.Path, Reason: err.Error()})
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(responseFromError(err))
		return
	}
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	for k, vs := range resp.MultiValueHeaders {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if resp.StatusCode == 0 {
		resp.StatusCode = http.StatusOK
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		_, _ = io.WriteString(w, resp.Body)
	}
}
