/*
Copyright 2026 the PetFriends QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package fakeserver

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/go-chi/chi/v5"
)

//nolint:gochecknoinits
func init() {
	// Photo parts are sent with their real media type.
	openapi3filter.RegisterBodyDecoder("image/jpeg", openapi3filter.FileBodyDecoder)
	openapi3filter.RegisterBodyDecoder("image/png", openapi3filter.FileBodyDecoder)
}

// findRoute finds the operation chi matched in the API description.
func findRoute(doc *openapi3.T, r *http.Request) (*routers.Route, map[string]string) {
	routeContext := chi.RouteContext(r.Context())
	if routeContext == nil {
		return nil, nil
	}

	pattern := routeContext.RoutePattern()

	pathItem := doc.Paths.Find(pattern)
	if pathItem == nil {
		return nil, nil
	}

	operation := pathItem.GetOperation(r.Method)
	if operation == nil {
		return nil, nil
	}

	pathParams := map[string]string{}

	for i, key := range routeContext.URLParams.Keys {
		pathParams[key] = routeContext.URLParams.Values[i]
	}

	route := &routers.Route{
		Spec:      doc,
		Path:      pattern,
		PathItem:  pathItem,
		Method:    r.Method,
		Operation: operation,
	}

	return route, pathParams
}

// validator rejects requests that don't conform to the API description.
func validator(doc *openapi3.T) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams := findRoute(doc, r)
			if route == nil {
				http.Error(w, "operation not described", http.StatusNotFound)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}

			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
