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
package fakeserver

import (
	"crypto/rand"
	"encoding/hex"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/petfriends-qa/apitests/pkg/openapi"
)

type user struct {
	id       string
	email    string
	password string
	key      string
}

// store holds users and pets.  Pets are kept in creation order.
type store struct {
	lock  sync.Mutex
	users map[string]*user
	keys  map[string]*user
	pets  []*openapi.Pet
}

func newStore() *store {
	return &store{
		users: map[string]*user{},
		keys:  map[string]*user{},
	}
}

// generateKey mimics the service's 56 character hex keys.
func generateKey() string {
	bytes := make([]byte, 28)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

func (s *store) addUser(email, password string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	u := &user{
		id:       uuid.NewString(),
		email:    email,
		password: password,
		key:      generateKey(),
	}

	s.users[email] = u
	s.keys[u.key] = u
}

// login returns the user's key, the same one every time.
func (s *store) login(email, password string) (string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	u, ok := s.users[email]
	if !ok || u.password != password {
		return "", false
	}

	return u.key, true
}

func (s *store) userByKey(key string) (*user, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	u, ok := s.keys[key]

	return u, ok
}

// list returns copies of the pets, newest first, optionally only the owner's.
func (s *store) list(owner *user) []openapi.Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	pets := make([]openapi.Pet, 0, len(s.pets))

	for _, pet := range slices.Backward(s.pets) {
		if owner != nil && pet.UserID != owner.id {
			continue
		}

		pets = append(pets, *pet)
	}

	return pets
}

func (s *store) add(pet *openapi.Pet) openapi.Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.pets = append(s.pets, pet)

	return *pet
}

// mutate applies f to an owned pet and returns the result.
func (s *store) mutate(owner *user, id string, f func(*openapi.Pet)) (openapi.Pet, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, pet := range s.pets {
		if pet.ID == id && pet.UserID == owner.id {
			f(pet)

			return *pet, true
		}
	}

	return openapi.Pet{}, false
}

// remove deletes an owned pet, anything else is ignored.
func (s *store) remove(owner *user, id string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.pets = slices.DeleteFunc(s.pets, func(pet *openapi.Pet) bool {
		return pet.ID == id && pet.UserID == owner.id
	})
}
