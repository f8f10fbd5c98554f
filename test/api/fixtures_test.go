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

//nolint:revive // dot imports are standard for Ginkgo/Gomega test code
package api_test

import (
	"context"
	"net/http"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	petfriends "github.com/petfriends-qa/apitests/pkg/client"
	"github.com/petfriends-qa/apitests/pkg/client/mock"
	"github.com/petfriends-qa/apitests/pkg/openapi"
	"github.com/petfriends-qa/apitests/test/api"
)

func TestFixtures(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Fixture Suite")
}

func created(id string) *petfriends.Result[openapi.Pet] {
	return &petfriends.Result[openapi.Pet]{
		StatusCode: http.StatusOK,
		Body:       openapi.Pet{ID: id},
		JSON:       true,
	}
}

func deleted() *petfriends.Result[openapi.Empty] {
	return &petfriends.Result[openapi.Empty]{StatusCode: http.StatusOK}
}

var _ = Describe("CreatePetWithCleanup", func() {
	var (
		ctx    context.Context
		client *mock.MockInterface
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = mock.NewMockInterface(gomock.NewController(GinkgoT()))
	})

	It("sends a payload without a photo as multipart with no photo part", func() {
		payload := api.NewPetPayload().WithName("Котстик").WithAnimalType("кот").WithAge("3")

		client.EXPECT().AddNewPet(gomock.Any(), "k", payload.Build(), "").Return(created("p1"), nil)
		client.EXPECT().DeletePet(gomock.Any(), "k", "p1").Return(deleted(), nil)

		Expect(api.CreatePetWithCleanup(ctx, client, "k", payload).ID).To(Equal("p1"))
	})

	It("sends the photo when one is attached", func() {
		payload := api.NewPetPayload().WithPhoto("CatImg.jpg")

		client.EXPECT().AddNewPet(gomock.Any(), "k", payload.Build(), api.PhotoPath("CatImg.jpg")).Return(created("p2"), nil)
		client.EXPECT().DeletePet(gomock.Any(), "k", "p2").Return(deleted(), nil)

		Expect(api.CreatePetWithCleanup(ctx, client, "k", payload).ID).To(Equal("p2"))
	})

	It("uses the simple endpoint only when asked to", func() {
		payload := api.NewPetPayload().WithSimpleEndpoint()

		client.EXPECT().AddNewPetWithoutPhoto(gomock.Any(), "k", payload.Build()).Return(created("p3"), nil)
		client.EXPECT().DeletePet(gomock.Any(), "k", "p3").Return(deleted(), nil)

		Expect(api.CreatePetWithCleanup(ctx, client, "k", payload).ID).To(Equal("p3"))
	})
})
