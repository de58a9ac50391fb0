package spacetalk

import (
	"net/http"

	"github.com/asecurityteam/runhttp"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	v1 "github.com/spacetalk/lambda-spacetalk/pkg/handlers/v1"
)

// RouterConfig is used to alter the behavior of the default router
// and the HTTP endpoint handlers that it manages.
type RouterConfig struct {
	// HealthCheck defines the route on which the service will respond
	// with automatic 200s. This is here to integrate with systems that
	// poll for liveliness. The default value is /healthcheck
	HealthCheck string

	// HandlerFetcher is the function loader that will be used by the
	// runtime. There is no default for this value.
	HandlerFetcher domain.HandlerFetcher

	// Functions lists the function names reachable through the API
	// Gateway style proxy routes. The default is every API function.
	Functions []string
	// Stage is reported to functions invoked through a proxy path that
	// carries no stage segment. The default value is local.
	Stage string

	// LogFn is used to extract the request logger from the request
	// context. The default value is runhttp.LoggerFromContext.
	LogFn domain.LogFn
	// StatFn is used to extract the request stat client from the
	// request context. The default value is runhttp.StatFromContext.
	StatFn domain.StatFn
	// URLParamFn is used to extract URL parameters from the request.
	// The default value is chi.URLParamFromCtx to match the usage of chi
	// as a mux in the default case.
	URLParamFn domain.URLParamFn
}

func applyDefaults(conf *RouterConfig) *RouterConfig {
	if conf.HealthCheck == "" {
		conf.HealthCheck = "/healthcheck"
	}
	if len(conf.Functions) == 0 {
		conf.Functions = []string{domain.FunctionAuth, domain.FunctionFamily, domain.FunctionRoute}
	}
	if conf.Stage == "" {
		conf.Stage = "local"
	}
	if conf.LogFn == nil {
		conf.LogFn = runhttp.LoggerFromContext
	}
	if conf.StatFn == nil {
		conf.StatFn = runhttp.StatFromContext
	}
	if conf.URLParamFn == nil {
		conf.URLParamFn = chi.URLParamFromCtx
	}
	return conf
}

// NewRouter generates a mux that already has the Lambda Invoke API and the
// API Gateway style proxy routes bound. Any path not claimed by the health
// check or the Invoke API is handed to the proxy.
func NewRouter(conf *RouterConfig) *chi.Mux {
	conf = applyDefaults(conf)
	router := chi.NewMux()
	router.Use(middleware.Heartbeat(conf.HealthCheck))

	invokeHandler := &v1.Invoke{
		Fetcher:    conf.HandlerFetcher,
		LogFn:      conf.LogFn,
		StatFn:     conf.StatFn,
		URLParamFn: conf.URLParamFn,
	}
	proxyHandler := &v1.Proxy{
		Fetcher:   conf.HandlerFetcher,
		LogFn:     conf.LogFn,
		StatFn:    conf.StatFn,
		Stage:     conf.Stage,
		Functions: conf.Functions,
	}

	router.Method(http.MethodPost, "/2015-03-31/functions/{functionName}/invocations", invokeHandler)
	router.Handle("/*", proxyHandler)
	return router
}
