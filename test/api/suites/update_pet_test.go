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

var _ = Describe("Pet Updates", func() {
	Context("When updating my first pet", func() {
		Describe("Given valid pet data", func() {
			It("should return the updated pet", func() {
				pet := api.EnsureOwnPet(ctx, client, key, api.NewPetPayload())

				update := petfriends.PetFields{
					Name:       "Булка",
					AnimalType: "Котяра",
					Age:        "3",
				}

				result, err := client.UpdatePetInfo(ctx, key, pet.ID, update)

				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusOK))
				Expect(result.Body.Name).To(Equal("Булка"))
				api.VerifyPetFields(result.Body, update)
			})
		})

		Describe("Given a non-numeric age", func() {
			It("should follow the expectations mode", func() {
				pet := api.EnsureOwnPet(ctx, client, key, api.NewPetPayload())

				result, err := client.UpdatePetInfo(ctx, key, pet.ID, petfriends.PetFields{
					Name:       "Булка",
					AnimalType: "Котяра",
					Age:        "летний01№",
				})
				Expect(err).NotTo(HaveOccurred())

				if config.Strict() {
					expectClientError(result.StatusCode)
					return
				}

				Expect(result.StatusCode).To(Equal(http.StatusOK))
				Expect(result.Body.Name).To(Equal("Булка"))
			})
		})
	})

	Context("When setting the photo of my first pet", func() {
		It("should return the pet with a photo", func() {
			pet := api.EnsureOwnPet(ctx, client, key, api.NewPetPayload().
				WithName("Ящерица").
				WithAnimalType("Новодобавленная").
				WithAge("1").
				WithSimpleEndpoint())

			result, err := client.AddPhotoOfPet(ctx, key, pet.ID, api.PhotoPath("scale.jpg"))

			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK))
			Expect(result.Body.PetPhoto).NotTo(BeEmpty())
		})

		It("should keep the photo in my listing", func() {
			pet := api.CreatePetWithCleanup(ctx, client, key, api.NewPetPayload())

			result, err := client.AddPhotoOfPet(ctx, key, pet.ID, api.PhotoPath("scale.jpg"))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK))

			var listed *openapi.Pet

			for _, p := range api.ListPets(ctx, client, key, openapi.FilterMyPets) {
				if p.ID == pet.ID {
					listed = &p
				}
			}

			Expect(listed).NotTo(BeNil())
			Expect(listed.PetPhoto).NotTo(BeEmpty())
		})
	})
})
