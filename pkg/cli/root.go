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

// Package cli implements the petfriends command, a thin shell over the
// API client for poking at the service by hand.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/petfriends-qa/apitests/pkg/client"
)

// ClientFunc creates an API client.
type ClientFunc func(baseURL string, options ...client.Option) (client.Interface, error)

// DefaultClient creates a real API client.
func DefaultClient(baseURL string, options ...client.Option) (client.Interface, error) {
	return client.New(baseURL, options...)
}

// app carries state shared by every command.
type app struct {
	options   Options
	newClient ClientFunc
}

func (a *app) client() (client.Interface, error) {
	return a.newClient(a.options.BaseURL, a.options.ClientOptions()...)
}

// authKey returns the configured key, or exchanges the credentials for one.
func (a *app) authKey(ctx context.Context, c client.Interface) (string, error) {
	if a.options.Key != "" {
		return a.options.Key, nil
	}

	if a.options.Email == "" || a.options.Password == "" {
		return "", ErrMissingCredentials
	}

	result, err := c.GetAPIKey(ctx, a.options.Email, a.options.Password)
	if err != nil {
		return "", err
	}

	if !result.JSON || result.Body.Key == "" {
		return "", fmt.Errorf("%w: key exchange returned status %d", ErrMissingCredentials, result.StatusCode)
	}

	return result.Body.Key, nil
}

func printResult[T any](w io.Writer, result *client.Result[T]) error {
	if _, err := fmt.Fprintf(w, "%d\n%s\n", result.StatusCode, result.Text); err != nil {
		return err
	}

	return nil
}

// NewRootCommand returns the top level command.
func NewRootCommand(newClient ClientFunc) *cobra.Command {
	a := &app{
		newClient: newClient,
	}

	cmd := &cobra.Command{
		Use:           "petfriends",
		Short:         "PetFriends API client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := a.options.Logger()
			if err != nil {
				return err
			}

			cmd.SetContext(logr.NewContext(cmd.Context(), logger))

			return nil
		},
	}

	a.options.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newKeyCommand(a),
		newListCommand(a),
		newAddCommand(a),
		newAddSimpleCommand(a),
		newUpdateCommand(a),
		newDeleteCommand(a),
		newSetPhotoCommand(a),
		newFakeServerCommand(),
	)

	return cmd
}
