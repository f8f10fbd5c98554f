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
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/petfriends-qa/apitests/pkg/client"
	"github.com/petfriends-qa/apitests/pkg/openapi"
)

// petFlags are the mutable pet fields.
type petFlags struct {
	client.PetFields
}

func (p *petFlags) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&p.Name, "name", "", "Pet name.")
	f.StringVar(&p.AnimalType, "type", "", "Animal type.")
	f.StringVar(&p.Age, "age", "", "Pet age.")
}

func newKeyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Print an auth key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			result, err := c.GetAPIKey(cmd.Context(), a.options.Email, a.options.Password)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), result)
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pets as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			key, err := a.authKey(cmd.Context(), c)
			if err != nil {
				return err
			}

			filter := openapi.FilterAll
			if mine {
				filter = openapi.FilterMyPets
			}

			result, err := c.ListPets(cmd.Context(), key, filter)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "Only list your own pets.")

	return cmd
}

func newAddCommand(a *app) *cobra.Command {
	var (
		pet   petFlags
		photo string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a pet, optionally with a photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			key, err := a.authKey(cmd.Context(), c)
			if err != nil {
				return err
			}

			result, err := c.AddNewPet(cmd.Context(), key, pet.PetFields, photo)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), result)
		},
	}

	pet.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&photo, "photo", "", "Path to a JPEG or PNG photo.")

	return cmd
}

func newAddSimpleCommand(a *app) *cobra.Command {
	var pet petFlags

	cmd := &cobra.Command{
		Use:   "add-simple",
		Short: "Create a pet without a photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			key, err := a.authKey(cmd.Context(), c)
			if err != nil {
				return err
			}

			result, err := c.AddNewPetWithoutPhoto(cmd.Context(), key, pet.PetFields)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), result)
		},
	}

	pet.AddFlags(cmd.Flags())

	return cmd
}

func newUpdateCommand(a *app) *cobra.Command {
	var pet petFlags

	cmd := &cobra.Command{
		Use:   "update PET_ID",
		Short: "Update the name, type and age of a pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			key, err := a.authKey(cmd.Context(), c)
			if err != nil {
				return err
			}

			result, err := c.UpdatePetInfo(cmd.Context(), key, args[0], pet.PetFields)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), result)
		},
	}

	pet.AddFlags(cmd.Flags())

	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete PET_ID",
		Short: "Delete a pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			key, err := a.authKey(cmd.Context(), c)
			if err != nil {
				return err
			}

			result, err := c.DeletePet(cmd.Context(), key, args[0])
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), result)
		},
	}
}

func newSetPhotoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-photo PET_ID PATH",
		Short: "Set or replace the photo of a pet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}

			key, err := a.authKey(cmd.Context(), c)
			if err != nil {
				return err
			}

			result, err := c.AddPhotoOfPet(cmd.Context(), key, args[0], args[1])
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), result)
		},
	}
}
