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
package client

import (
	"context"
	"net/http"

	"github.com/petfriends-qa/apitests/pkg/openapi"
)

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

// Doer sends a single HTTP request, *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Interface is the set of PetFriends operations.
type Interface interface {
	// GetAPIKey exchanges credentials for an auth key.
	GetAPIKey(ctx context.Context, email, password string) (*Result[openapi.APIKey], error)
	// ListPets lists pets, filter is either openapi.FilterAll or openapi.FilterMyPets.
	ListPets(ctx context.Context, key string, filter openapi.Filter) (*Result[openapi.PetList], error)
	// AddNewPet creates a pet, attaching the photo at photoPath unless it is empty.
	AddNewPet(ctx context.Context, key string, pet PetFields, photoPath string) (*Result[openapi.Pet], error)
	// AddNewPetWithoutPhoto creates a pet through the simple endpoint.
	AddNewPetWithoutPhoto(ctx context.Context, key string, pet PetFields) (*Result[openapi.Pet], error)
	// AddPhotoOfPet sets or replaces the photo of an existing pet.
	AddPhotoOfPet(ctx context.Context, key, petID, photoPath string) (*Result[openapi.Pet], error)
	// UpdatePetInfo replaces the mutable fields of a pet.
	UpdatePetInfo(ctx context.Context, key, petID string, pet PetFields) (*Result[openapi.Pet], error)
	// DeletePet removes a pet.
	DeletePet(ctx context.Context, key, petID string) (*Result[openapi.Empty], error)
}
