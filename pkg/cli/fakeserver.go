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

package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/petfriends-qa/apitests/pkg/fakeserver"
)

var (
	// ErrInvalidUser is raised when a --user value is not EMAIL:PASSWORD.
	ErrInvalidUser = errors.New("user must be of the form EMAIL:PASSWORD")
)

const shutdownTimeout = 10 * time.Second

func parseUser(value string) (string, string, error) {
	email, password, ok := strings.Cut(value, ":")
	if !ok || email == "" || password == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidUser, value)
	}

	return email, password, nil
}

// runFakeServer serves until the context is cancelled.
func runFakeServer(ctx context.Context, listener net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		errs <- server.Serve(listener)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down fake server: %w", err)
	}

	return nil
}

func newFakeServerCommand() *cobra.Command {
	var (
		listen string
		users  []string
	)

	cmd := &cobra.Command{
		Use:   "fake-server",
		Short: "Run an in-memory PetFriends service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := logr.FromContextOrDiscard(ctx).WithName("fake-server")

			options := []fakeserver.Option{
				fakeserver.WithLogger(logger),
			}

			for _, user := range users {
				email, password, err := parseUser(user)
				if err != nil {
					return err
				}

				options = append(options, fakeserver.WithUser(email, password))
			}

			server, err := fakeserver.New(options...)
			if err != nil {
				return err
			}

			listener, err := net.Listen("tcp", listen)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", listen, err)
			}

			logger.Info("serving", "address", listener.Addr().String(), "users", len(users))

			return runFakeServer(ctx, listener, server.Handler())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8080", "Address to listen on.")
	cmd.Flags().StringArrayVar(&users, "user", nil, "Account to register as EMAIL:PASSWORD, may be repeated.")

	return cmd
}
