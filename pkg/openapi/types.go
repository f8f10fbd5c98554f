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

package openapi

// APIKey is returned by the key endpoint.
type APIKey struct {
	Key string `json:"key"`
}

// Pet is a pet record.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        Age    `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	CreatedAt  string `json:"created_at,omitempty"`
	UserID     string `json:"user_id,omitempty"`
}

// PetList is a list of pet records, in the order the service returned them.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// Empty is used for responses that carry no useful body.
type Empty struct{}

// Filter restricts a pet listing.
type Filter string

const (
	// FilterAll lists every pet.
	FilterAll Filter = ""
	// FilterMyPets lists only the caller's pets.
	FilterMyPets Filter = "my_pets"
)

// AuthKeyParameter is the auth_key header.
type AuthKeyParameter = string

// PetIDParameter is the pet_id path parameter.
type PetIDParameter = string

// GetApiKeyParams defines parameters for GetApiKey.
type GetApiKeyParams struct {
	Email    string
	Password string
}

// GetApiPetsParams defines parameters for GetApiPets.
type GetApiPetsParams struct {
	Filter  *Filter
	AuthKey AuthKeyParameter
}

// PostApiPetsParams defines parameters for PostApiPets.
type PostApiPetsParams struct {
	AuthKey AuthKeyParameter
}

// PostApiCreatePetSimpleParams defines parameters for PostApiCreatePetSimple.
type PostApiCreatePetSimpleParams struct {
	AuthKey AuthKeyParameter
}

// PostApiPetsSetPhotoPetIDParams defines parameters for PostApiPetsSetPhotoPetID.
type PostApiPetsSetPhotoPetIDParams struct {
	AuthKey AuthKeyParameter
}

// PutApiPetsPetIDParams defines parameters for PutApiPetsPetID.
type PutApiPetsPetIDParams struct {
	AuthKey AuthKeyParameter
}

// DeleteApiPetsPetIDParams defines parameters for DeleteApiPetsPetID.
type DeleteApiPetsPetIDParams struct {
	AuthKey AuthKeyParameter
}
