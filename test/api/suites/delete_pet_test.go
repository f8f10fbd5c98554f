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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/apitests/pkg/openapi"
	"github.com/petfriends-qa/apitests/test/api"
)

// unknownPetID is deleted without ever being created.
const unknownPetID = "d1413877f3691a3731380e733e877b0a"

// volkosob is the pet created when the caller has none to delete.
func volkosob() *api.PetPayloadBuilder {
	return api.NewPetPayload().
		WithName("Ледышка").
		WithAnimalType("Волкособ").
		WithAge("2").
		WithPhoto("Volkosob.jpg")
}

var _ = Describe("Pet Deletion", func() {
	Context("When deleting my first pet", func() {
		It("should remove it from my pets", func() {
			pet := api.EnsureOwnPet(ctx, client, key, volkosob())

			result, err := client.DeletePet(ctx, key, pet.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK))
			api.VerifyPetAbsent(api.ListPets(ctx, client, key, openapi.FilterMyPets), pet.ID)
		})
	})

	Context("When deleting a pet that does not exist", func() {
		It("should leave my pets unchanged", func() {
			api.EnsureOwnPet(ctx, client, key, volkosob())

			before := api.PetIDs(api.ListPets(ctx, client, key, openapi.FilterMyPets))

			result, err := client.DeletePet(ctx, key, unknownPetID)
			Expect(err).NotTo(HaveOccurred())

			if config.Strict() {
				Expect(result.StatusCode).To(Or(
					Equal(http.StatusOK),
					And(BeNumerically(">=", http.StatusBadRequest), BeNumerically("<", http.StatusInternalServerError)),
				))
			} else {
				Expect(result.StatusCode).To(Equal(http.StatusOK))
			}

			after := api.ListPets(ctx, client, key, openapi.FilterMyPets)

			api.VerifyPetAbsent(after, unknownPetID)
			Expect(api.PetIDs(after)).To(ConsistOf(before))
		})
	})
})
