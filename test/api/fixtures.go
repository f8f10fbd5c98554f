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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/petfriends-qa/apitests/pkg/client"
	"github.com/petfriends-qa/apitests/pkg/openapi"
)

// AcquireKey exchanges the configured credentials for an auth key.
func AcquireKey(ctx context.Context, c client.Interface, config *TestConfig) string {
	result, err := c.GetAPIKey(ctx, config.ValidEmail, config.ValidPassword)
	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), "key exchange failed: %s", result.Text)
	Expect(result.Body.Key).NotTo(BeEmpty())

	return result.Body.Key
}

// ListPets lists pets and expects the listing to succeed.
func ListPets(ctx context.Context, c client.Interface, key string, filter openapi.Filter) []openapi.Pet {
	result, err := c.ListPets(ctx, key, filter)
	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), "listing pets failed: %s", result.Text)
	Expect(result.JSON).To(BeTrue(), "listing pets returned %q", result.Text)

	return result.Body.Pets
}

// CreatePetWithCleanup creates a pet and schedules its deletion.  The
// multipart endpoint is used, with no photo part when the payload has no
// photo, unless the payload asks for the simple endpoint.
func CreatePetWithCleanup(ctx context.Context, c client.Interface, key string, payload *PetPayloadBuilder) openapi.Pet {
	var (
		result *client.Result[openapi.Pet]
		err    error
	)

	if payload.Simple() {
		result, err = c.AddNewPetWithoutPhoto(ctx, key, payload.Build())
	} else {
		result, err = c.AddNewPet(ctx, key, payload.Build(), payload.Photo())
	}

	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), "creating pet failed: %s", result.Text)
	Expect(result.Body.ID).NotTo(BeEmpty())

	pet := result.Body

	GinkgoWriter.Printf("Created pet with ID: %s\n", pet.ID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func(ctx context.Context) {
		CleanupPet(ctx, c, key, pet.ID)
	})

	return pet
}

// CleanupPet deletes a pet, failures are only logged.
func CleanupPet(ctx context.Context, c client.Interface, key, id string) {
	GinkgoWriter.Printf("Cleaning up pet: %s\n", id)

	result, err := c.DeletePet(ctx, key, id)

	switch {
	case err != nil:
		GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", id, err)
	case result.StatusCode != http.StatusOK:
		GinkgoWriter.Printf("Warning: Failed to delete pet %s: status %d\n", id, result.StatusCode)
	default:
		GinkgoWriter.Printf("Successfully deleted pet: %s\n", id)
	}
}

// EnsureOwnPet returns the first of the caller's pets, creating one from
// the payload when the caller has none.
func EnsureOwnPet(ctx context.Context, c client.Interface, key string, payload *PetPayloadBuilder) openapi.Pet {
	if pets := ListPets(ctx, c, key, openapi.FilterMyPets); len(pets) > 0 {
		return pets[0]
	}

	return CreatePetWithCleanup(ctx, c, key, payload)
}

// PetIDs extracts pet IDs from a listing.
func PetIDs(pets []openapi.Pet) []string {
	ids := make([]string, len(pets))

	for i := range pets {
		ids[i] = pets[i].ID
	}

	return ids
}

// VerifyPetAbsent verifies that no pet in the listing has the ID.
func VerifyPetAbsent(pets []openapi.Pet, id string) {
	Expect(PetIDs(pets)).NotTo(ContainElement(id), "Expected pet ID %s to be absent from the list", id)
}

// VerifyPetFields verifies a pet carries the submitted fields.
func VerifyPetFields(pet openapi.Pet, fields client.PetFields) {
	Expect(pet.Name).To(Equal(fields.Name))
	Expect(pet.AnimalType).To(Equal(fields.AnimalType))
	Expect(pet.Age.String()).To(Equal(fields.Age))
}

// VerifySubset verifies every pet in subset is also in superset.
func VerifySubset(subset, superset []openapi.Pet) {
	extra := set.New[string](PetIDs(subset)...).Difference(set.New[string](PetIDs(superset)...))

	Expect(slices.Sorted(extra.All())).To(BeEmpty(), "Expected every pet to be present in the full list")
}
