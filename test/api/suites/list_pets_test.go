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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/apitests/pkg/openapi"
	"github.com/petfriends-qa/apitests/test/api"
)

// missingPetID never existed on the service.
const missingPetID = "dc6508a7-3190-4b83-a02e-45312cc16447"

var _ = Describe("Pet Listing", func() {
	Context("When listing all pets", func() {
		Describe("Given a valid key", func() {
			It("should return a non-empty list", func() {
				api.EnsureOwnPet(ctx, client, key, api.NewPetPayload())

				pets := api.ListPets(ctx, client, key, openapi.FilterAll)

				Expect(pets).NotTo(BeEmpty())
			})

			It("should include every one of my pets", func() {
				api.EnsureOwnPet(ctx, client, key, api.NewPetPayload())

				mine := api.ListPets(ctx, client, key, openapi.FilterMyPets)
				all := api.ListPets(ctx, client, key, openapi.FilterAll)

				api.VerifySubset(mine, all)
			})
		})
	})

	Context("When searching for a pet that does not exist", func() {
		It("should be absent from my pets", func() {
			api.VerifyPetAbsent(api.ListPets(ctx, client, key, openapi.FilterMyPets), missingPetID)
		})

		It("should be absent from all pets", func() {
			api.VerifyPetAbsent(api.ListPets(ctx, client, key, openapi.FilterAll), missingPetID)
		})
	})

	Context("When listing without a valid key", func() {
		It("should be forbidden", func() {
			result, err := client.ListPets(ctx, "not-a-key", openapi.FilterMyPets)

			Expect(err).NotTo(HaveOccurred())
			expectClientError(result.StatusCode)
		})
	})
})
