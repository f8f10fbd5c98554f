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

// Package fakeserver is an in-memory PetFriends service.  It implements
// the documented contract rather than the live service's quirks, so the
// client can be exercised without network access.
package fakeserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/petfriends-qa/apitests/pkg/openapi"
)

// Server serves the PetFriends API from memory.
type Server struct {
	store  *store
	clock  func() time.Time
	logger logr.Logger
	doc    *openapi3.T
}

var _ openapi.ServerInterface = &Server{}

// Option customizes a Server.
type Option func(*Server)

// WithUser registers an account.
func WithUser(email, password string) Option {
	return func(s *Server) {
		s.store.addUser(email, password)
	}
}

// WithClock overrides the time source used for created_at.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithLogger logs every request.
func WithLogger(logger logr.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server, failing only if the embedded API description
// is broken.
func New(options ...Option) (*Server, error) {
	doc, err := openapi.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("creating fake server: %w", err)
	}

	s := &Server{
		store:  newStore(),
		clock:  time.Now,
		logger: logr.Discard(),
		doc:    doc,
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start), "traceparent", r.Header.Get("Traceparent"))
	})
}

// Handler returns the HTTP handler for the service.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.logRequests)

	return openapi.HandlerWithOptions(s, openapi.ChiServerOptions{
		BaseRouter: router,
		Middlewares: []openapi.MiddlewareFunc{
			validator(s.doc),
		},
		ErrorHandlerFunc: bindingError,
	})
}

// bindingError answers 403 for a missing auth key, as the service does,
// and 400 for anything else.
func bindingError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *openapi.RequiredHeaderError

	if errors.As(err, &missing) && missing.ParamName == "auth_key" {
		http.Error(w, "Please provide 'auth_key' header", http.StatusForbidden)
		return
	}

	http.Error(w, err.Error(), http.StatusBadRequest)
}
