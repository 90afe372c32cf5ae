/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RouterConfig is used to alter the behavior of the local router.
type RouterConfig struct {
	// HealthCheck defines the route on which the service will respond
	// with automatic 200s. The default value is /healthcheck.
	HealthCheck string

	// Fetcher resolves the functions bound to Routes. There is no default
	// for this value.
	Fetcher Fetcher

	// Logger is the base logger for request-scoped child loggers. The
	// default value is a no-op logger.
	Logger *zap.Logger
}

func applyDefaults(conf *RouterConfig) *RouterConfig {
	if conf.HealthCheck == "" {
		conf.HealthCheck = "/healthcheck"
	}
	if conf.Logger == nil {
		conf.Logger = zap.NewNop()
	}
	return conf
}

// NewRouter generates a mux with every route in Routes bound to its function
// through an API Gateway proxy adapter. A function missing from the fetcher
// is an error.
func NewRouter(ctx context.Context, conf *RouterConfig) (*chi.Mux, error) {
	conf = applyDefaults(conf)
	fetcher := &LoggingFetcher{Logger: conf.Logger, Fetcher: conf.Fetcher}

	router := chi.NewMux()
	router.Use(middleware.Heartbeat(conf.HealthCheck))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(preflight)

	for _, route := range Routes {
		fn, err := fetcher.Fetch(ctx, route.Function)
		if err != nil {
			return nil, err
		}
		router.Method(route.Method, route.Resource, proxyHandler(fn))
	}

	notFound := func(w http.ResponseWriter, r *http.Request) {
		resp, _ := jsonResponse(http.StatusNotFound, errorBody{Error: msgRouteNotFound})
		writeResponse(w, resp)
	}
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)
	return router, nil
}

// preflight answers every OPTIONS request with the CORS headers.
func preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			writeResponse(w, preflightResponse())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// proxyHandler adapts fn to net/http by translating the request into an
// APIGatewayProxyRequest and writing the proxy response back.
func proxyHandler(fn Function) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := proxyRequest(r)
		if err != nil {
			resp, _ := jsonResponse(http.StatusBadRequest, errorBody{Error: "Unable to read request body"})
			writeResponse(w, resp)
			return
		}

		resp, err := fn(r.Context(), req)
		if err != nil {
			resp, _ = jsonResponse(http.StatusInternalServerError, errorBody{Error: msgInternal})
		}
		writeResponse(w, resp)
	}
}

func proxyRequest(r *http.Request) (events.APIGatewayProxyRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayProxyRequest{}, err
	}

	var resource string
	params := make(map[string]string)
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		resource = rctx.RoutePattern()
		for i, key := range rctx.URLParams.Keys {
			params[key] = rctx.URLParams.Values[i]
		}
	}

	headers := make(map[string]string, len(r.Header))
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}
	query := r.URL.Query()
	singleQuery := make(map[string]string, len(query))
	for k := range query {
		singleQuery[k] = query.Get(k)
	}

	return events.APIGatewayProxyRequest{
		Resource:                        resource,
		Path:                            r.URL.Path,
		HTTPMethod:                      r.Method,
		Headers:                         headers,
		MultiValueHeaders:               r.Header,
		QueryStringParameters:           singleQuery,
		MultiValueQueryStringParameters: query,
		PathParameters:                  params,
		Body:                            string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:    middleware.GetReqID(r.Context()),
			ResourcePath: resource,
			Path:         r.URL.Path,
			HTTPMethod:   r.Method,
			Stage:        "local",
		},
	}, nil
}

func writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	for k, vs := range resp.MultiValueHeaders {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if resp.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(resp.Body)
		if err == nil {
			_, _ = w.Write(b)
		}
		return
	}
	_, _ = io.WriteString(w, resp.Body)
}
