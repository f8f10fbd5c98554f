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

	petfriends "github.com/petfriends-qa/apitests/pkg/client"
	"github.com/petfriends-qa/apitests/pkg/openapi"
	"github.com/petfriends-qa/apitests/test/api"
)

// createPet creates a pet and cleans it up if the service accepted it.
func createPet(payload *api.PetPayloadBuilder) *petfriends.Result[openapi.Pet] {
	result, err := client.AddNewPet(ctx, key, payload.Build(), payload.Photo())
	Expect(err).NotTo(HaveOccurred())

	if result.StatusCode == http.StatusOK && result.Body.ID != "" {
		id := result.Body.ID

		DeferCleanup(func() {
			api.CleanupPet(ctx, client, key, id)
		})
	}

	return result
}

var _ = Describe("Pet Creation", func() {
	Context("When creating a pet with a photo", func() {
		Describe("Given valid pet data", func() {
			It("should return the new pet", func() {
				payload := api.NewPetPayload().
					WithName("Валенок").
					WithAnimalType("коттерьер").
					WithAge("2").
					WithPhoto("CatImg.jpg")

				pet := api.CreatePetWithCleanup(ctx, client, key, payload)

				Expect(pet.Name).To(Equal("Валенок"))
				api.VerifyPetFields(pet, payload.Build())
				Expect(pet.PetPhoto).NotTo(BeEmpty())
			})

			It("should list the new pet as mine", func() {
				pet := api.CreatePetWithCleanup(ctx, client, key, api.NewPetPayload().WithPhoto("CatImg.jpg"))

				Expect(api.PetIDs(api.ListPets(ctx, client, key, openapi.FilterMyPets))).To(ContainElement(pet.ID))
			})
		})

		Describe("Given an empty name", func() {
			It("should follow the expectations mode", func() {
				payload := api.NewPetPayload().
					WithName("").
					WithAnimalType("кототерьер").
					WithAge("2").
					WithPhoto("CatImg.jpg")

				result := createPet(payload)

				if config.Strict() {
					expectClientError(result.StatusCode)
					return
				}

				Expect(result.StatusCode).To(Equal(http.StatusOK))
				Expect(result.Body.Name).To(BeEmpty())
			})
		})

		Describe("Given an out of range age", func() {
			DescribeTable("should follow the expectations mode",
				func(age string) {
					payload := api.NewPetPayload().
						WithName("Кукушка").
						WithAnimalType("крыша").
						WithAge(age).
						WithPhoto("cat1.jpg")

					result := createPet(payload)

					if config.Strict() {
						expectClientError(result.StatusCode)
						return
					}

					Expect(result.StatusCode).To(Equal(http.StatusOK))
					Expect(result.Body.Name).To(Equal("Кукушка"))
				},
				Entry("with a huge age", "120"),
				Entry("with a negative age", "-8"),
			)
		})
	})

	Context("When creating a pet without a photo", func() {
		It("should accept a multipart body with no photo part", func() {
			payload := api.NewPetPayload().
				WithName("Котстик").
				WithAnimalType("кот").
				WithAge("3")

			Expect(payload.Photo()).To(BeEmpty())

			result := createPet(payload)

			Expect(result.StatusCode).To(Equal(http.StatusOK))
			api.VerifyPetFields(result.Body, payload.Build())
			Expect(result.Body.PetPhoto).To(BeEmpty())
		})

		It("should accept the simple endpoint", func() {
			payload := api.NewPetPayload().
				WithName("Котстик").
				WithAnimalType("кот").
				WithAge("3").
				WithSimpleEndpoint()

			pet := api.CreatePetWithCleanup(ctx, client, key, payload)

			api.VerifyPetFields(pet, payload.Build())
			Expect(pet.PetPhoto).To(BeEmpty())
		})
	})
})
