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
	"fmt"
	"net/http"

	"github.com/petfriends-qa/apitests/pkg/openapi"
)

func authHeader(key string) http.Header {
	header := http.Header{}
	header.Set("auth_key", key)

	return header
}

// GetAPIKey sends the credentials as headers.  A successful body has a key.
func (c *Client) GetAPIKey(ctx context.Context, email, password string) (*Result[openapi.APIKey], error) {
	header := http.Header{}
	header.Set("email", email)
	header.Set("password", password)

	result, err := call[openapi.APIKey](ctx, c, &request{
		method: http.MethodGet,
		path:   c.endpoints.APIKey(),
		header: header,
	})
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	return result, nil
}

func (c *Client) ListPets(ctx context.Context, key string, filter openapi.Filter) (*Result[openapi.PetList], error) {
	result, err := call[openapi.PetList](ctx, c, &request{
		method: http.MethodGet,
		path:   c.endpoints.ListPets(filter),
		header: authHeader(key),
	})
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	return result, nil
}

// AddNewPet creates a pet as multipart form data, an empty photoPath
// leaves the photo part out.
func (c *Client) AddNewPet(ctx context.Context, key string, pet PetFields, photoPath string) (*Result[openapi.Pet], error) {
	body, contentType, err := multipartBody(&pet, photoPath)
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	result, err := call[openapi.Pet](ctx, c, &request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePet(),
		header:      authHeader(key),
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return result, nil
}

func (c *Client) AddNewPetWithoutPhoto(ctx context.Context, key string, pet PetFields) (*Result[openapi.Pet], error) {
	body, contentType := urlencodedBody(pet)

	result, err := call[openapi.Pet](ctx, c, &request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePetSimple(),
		header:      authHeader(key),
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pet without photo: %w", err)
	}

	return result, nil
}

func (c *Client) AddPhotoOfPet(ctx context.Context, key, petID, photoPath string) (*Result[openapi.Pet], error) {
	body, contentType, err := multipartBody(nil, photoPath)
	if err != nil {
		return nil, fmt.Errorf("setting pet photo: %w", err)
	}

	result, err := call[openapi.Pet](ctx, c, &request{
		method:      http.MethodPost,
		path:        c.endpoints.SetPhoto(petID),
		header:      authHeader(key),
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("setting pet photo: %w", err)
	}

	return result, nil
}

func (c *Client) UpdatePetInfo(ctx context.Context, key, petID string, pet PetFields) (*Result[openapi.Pet], error) {
	body, contentType := urlencodedBody(pet)

	result, err := call[openapi.Pet](ctx, c, &request{
		method:      http.MethodPut,
		path:        c.endpoints.UpdatePet(petID),
		header:      authHeader(key),
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("updating pet: %w", err)
	}

	return result, nil
}

// DeletePet removes a pet.  The service answers with an empty or plain
// text body, so look at Text rather than Body.
func (c *Client) DeletePet(ctx context.Context, key, petID string) (*Result[openapi.Empty], error) {
	result, err := call[openapi.Empty](ctx, c, &request{
		method: http.MethodDelete,
		path:   c.endpoints.DeletePet(petID),
		header: authHeader(key),
	})
	if err != nil {
		return nil, fmt.Errorf("deleting pet: %w", err)
	}

	return result, nil
}
