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

package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/petfriends-qa/apitests/pkg/client"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// PhotoPath resolves a sample photo shipped in the images directory.
func PhotoPath(name string) string {
	_, file, _, _ := runtime.Caller(0)

	return filepath.Join(filepath.Dir(file), "images", name)
}

// PetPayloadBuilder builds pet fields for testing.
type PetPayloadBuilder struct {
	pet    client.PetFields
	photo  string
	simple bool
}

// NewPetPayload creates a builder for a uniquely named two year old cat.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		pet: client.PetFields{
			Name:       generateRandomName("testautomation"),
			AnimalType: "кот",
			Age:        "2",
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.pet.Name = name
	return b
}

// WithAnimalType sets the animal type.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.pet.AnimalType = animalType
	return b
}

// WithAge sets the age, kept as a string so invalid values can be sent.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.pet.Age = age
	return b
}

// WithPhoto attaches a sample photo from the images directory.
func (b *PetPayloadBuilder) WithPhoto(name string) *PetPayloadBuilder {
	b.photo = PhotoPath(name)
	return b
}

// WithSimpleEndpoint creates the pet through the form encoded endpoint
// that takes no photo, rather than the multipart one.
func (b *PetPayloadBuilder) WithSimpleEndpoint() *PetPayloadBuilder {
	b.simple = true
	return b
}

// Build returns the pet fields.
func (b *PetPayloadBuilder) Build() client.PetFields {
	return b.pet
}

// Photo returns the photo path, empty when none is attached.
func (b *PetPayloadBuilder) Photo() string {
	return b.photo
}

// Simple is true when the pet is created without a multipart body.
func (b *PetPayloadBuilder) Simple() bool {
	return b.simple
}
