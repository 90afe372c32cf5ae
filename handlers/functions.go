/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
)

// Function is an API Gateway proxy handler.
type Function func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Function names, as used for Lambda binding.
const (
	FunctionCreateProband      = "createProband"
	FunctionGetProband         = "getProband"
	FunctionCreateFamilyMember = "createFamilyMember"
	FunctionListFamilyMembers  = "listFamilyMembers"
	FunctionUpdateFamilyMember = "updateFamilyMember"
	FunctionDeleteFamilyMember = "deleteFamilyMember"
	FunctionRouter             = "router"
)

// Route binds an HTTP method and resource template to a named function.
type Route struct {
	Method   string
	Resource string
	Function string
}

// Routes is the full route table. The singular and nested family paths are
// the ones the browser client calls.
var Routes = []Route{
	{http.MethodPost, "/probands", FunctionCreateProband},
	{http.MethodPost, "/proband", FunctionCreateProband},
	{http.MethodGet, "/probands/{id}", FunctionGetProband},
	{http.MethodPost, "/family", FunctionCreateFamilyMember},
	{http.MethodGet, "/probands/{probandId}/family", FunctionListFamilyMembers},
	{http.MethodGet, "/family/proband/{probandId}", FunctionListFamilyMembers},
	{http.MethodPut, "/family/{id}", FunctionUpdateFamilyMember},
	{http.MethodPut, "/family/member/{id}", FunctionUpdateFamilyMember},
	{http.MethodDelete, "/family/{id}", FunctionDeleteFamilyMember},
	{http.MethodDelete, "/family/member/{id}", FunctionDeleteFamilyMember},
}

// FunctionNotFoundError is returned when a function name is not in the table.
type FunctionNotFoundError struct {
	Name string
}

func (e FunctionNotFoundError) Error() string {
	return fmt.Sprintf("function (%s) not found", e.Name)
}

// Fetcher resolves a function by name.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (Function, error)
}

// StaticFetcher resolves names from a fixed map built at startup. Adding or
// changing a function requires a new build.
type StaticFetcher struct {
	Functions map[string]Function
}

// Fetch resolves the name using the internal mapping.
func (f *StaticFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	fn, ok := f.Functions[name]
	if !ok {
		return nil, FunctionNotFoundError{Name: name}
	}
	return fn, nil
}

// Functions returns the named function table, including the router.
func (h *Handlers) Functions() map[string]Function {
	table := map[string]Function{
		FunctionCreateProband:      h.CreateProband,
		FunctionGetProband:         h.GetProband,
		FunctionCreateFamilyMember: h.CreateFamilyMember,
		FunctionListFamilyMembers:  h.ListFamilyMembers,
		FunctionUpdateFamilyMember: h.UpdateFamilyMember,
		FunctionDeleteFamilyMember: h.DeleteFamilyMember,
	}
	table[FunctionRouter] = NewRouterFunction(Routes, table)
	return table
}

// NewFetcher returns a StaticFetcher over the handlers' function table.
func (h *Handlers) NewFetcher() *StaticFetcher {
	return &StaticFetcher{Functions: h.Functions()}
}

// NewRouterFunction returns a Function that dispatches to functions by
// HTTPMethod and Resource. When the gateway reports a resource that is not
// in routes, such as a greedy /{proxy+}, the request path is matched with a
// chi mux built from routes and the path parameters are taken from it.
func NewRouterFunction(routes []Route, functions map[string]Function) Function {
	mux := chi.NewMux()
	byRoute := make(map[string]string, len(routes))
	for _, r := range routes {
		mux.Method(r.Method, r.Resource, http.NotFoundHandler())
		byRoute[routeKey(r.Method, r.Resource)] = r.Function
	}

	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		if req.HTTPMethod == http.MethodOptions {
			return preflightResponse(), nil
		}

		name, ok := byRoute[routeKey(req.HTTPMethod, req.Resource)]
		if !ok {
			rctx := chi.NewRouteContext()
			if !mux.Match(rctx, req.HTTPMethod, req.Path) {
				return jsonResponse(http.StatusNotFound, errorBody{Error: msgRouteNotFound})
			}
			req.Resource = rctx.RoutePattern()
			name = byRoute[routeKey(req.HTTPMethod, req.Resource)]

			params := make(map[string]string, len(req.PathParameters)+len(rctx.URLParams.Keys))
			for k, v := range req.PathParameters {
				params[k] = v
			}
			for i, k := range rctx.URLParams.Keys {
				params[k] = rctx.URLParams.Values[i]
			}
			req.PathParameters = params
		}

		fn, ok := functions[name]
		if !ok {
			return jsonResponse(http.StatusNotFound, errorBody{Error: msgRouteNotFound})
		}
		return fn(ctx, req)
	}
}

func routeKey(method, resource string) string {
	return method + " " + resource
}

func preflightResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    preflightHeaders(),
		Body:       "{}",
	}
}
