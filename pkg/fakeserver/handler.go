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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/petfriends-qa/apitests/pkg/openapi"
)

const (
	// MaxAge is the oldest age the service accepts.
	MaxAge = 31

	// maxFormMemory is held in memory before multipart parts spill to disk.
	maxFormMemory = 1 << 20
)

var (
	ErrMissingName       = errors.New("name is required")
	ErrMissingAnimalType = errors.New("animal_type is required")
	ErrInvalidAge        = errors.New("age must be a whole number of years")
	ErrAgeOutOfRange     = fmt.Errorf("age must be between 0 and %d", MaxAge)
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

// validatePet enforces the field rules the service documents.
func validatePet(name, animalType, age string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingName
	}

	if strings.TrimSpace(animalType) == "" {
		return ErrMissingAnimalType
	}

	years, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAge, age)
	}

	if years < 0 || years > MaxAge {
		return fmt.Errorf("%w: %d", ErrAgeOutOfRange, years)
	}

	return nil
}

// authenticate resolves the auth key, replying 403 when that fails.
func (s *Server) authenticate(w http.ResponseWriter, key string) (*user, bool) {
	u, ok := s.store.userByKey(key)
	if !ok {
		http.Error(w, "Please provide a valid 'auth_key' header", http.StatusForbidden)
		return nil, false
	}

	return u, true
}

func (s *Server) newPet(owner *user, name, animalType, age, photo string) *openapi.Pet {
	now := s.clock()

	return &openapi.Pet{
		ID:         uuid.NewString(),
		Name:       name,
		AnimalType: animalType,
		Age:        openapi.Age(strings.TrimSpace(age)),
		PetPhoto:   photo,
		CreatedAt:  strconv.FormatFloat(float64(now.UnixMicro())/1e6, 'f', 6, 64),
		UserID:     owner.id,
	}
}

func (s *Server) GetApiKey(w http.ResponseWriter, r *http.Request, params openapi.GetApiKeyParams) {
	key, ok := s.store.login(params.Email, params.Password)
	if !ok {
		http.Error(w, "This user wasn't found in database", http.StatusForbidden)
		return
	}

	writeJSON(w, http.StatusOK, &openapi.APIKey{Key: key})
}

func (s *Server) GetApiPets(w http.ResponseWriter, r *http.Request, params openapi.GetApiPetsParams) {
	u, ok := s.authenticate(w, params.AuthKey)
	if !ok {
		return
	}

	var owner *user

	if params.Filter != nil && *params.Filter == openapi.FilterMyPets {
		owner = u
	}

	writeJSON(w, http.StatusOK, &openapi.PetList{Pets: s.store.list(owner)})
}

func (s *Server) PostApiPets(w http.ResponseWriter, r *http.Request, params openapi.PostApiPetsParams) {
	u, ok := s.authenticate(w, params.AuthKey)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name, animalType, age := r.FormValue("name"), r.FormValue("animal_type"), r.FormValue("age")

	if err := validatePet(name, animalType, age); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	photo, _, err := readPhoto(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, s.store.add(s.newPet(u, name, animalType, age, photo)))
}

func (s *Server) PostApiCreatePetSimple(w http.ResponseWriter, r *http.Request, params openapi.PostApiCreatePetSimpleParams) {
	u, ok := s.authenticate(w, params.AuthKey)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name, animalType, age := r.PostForm.Get("name"), r.PostForm.Get("animal_type"), r.PostForm.Get("age")

	if err := validatePet(name, animalType, age); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, s.store.add(s.newPet(u, name, animalType, age, "")))
}

func (s *Server) PostApiPetsSetPhotoPetID(w http.ResponseWriter, r *http.Request, petID openapi.PetIDParameter, params openapi.PostApiPetsSetPhotoPetIDParams) {
	u, ok := s.authenticate(w, params.AuthKey)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	photo, found, err := readPhoto(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !found {
		http.Error(w, ErrMissingPhoto.Error(), http.StatusBadRequest)
		return
	}

	pet, ok := s.store.mutate(u, petID, func(pet *openapi.Pet) {
		pet.PetPhoto = photo
	})
	if !ok {
		http.Error(w, "Pet with this id wasn't found!", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) PutApiPetsPetID(w http.ResponseWriter, r *http.Request, petID openapi.PetIDParameter, params openapi.PutApiPetsPetIDParams) {
	u, ok := s.authenticate(w, params.AuthKey)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name, animalType, age := r.PostForm.Get("name"), r.PostForm.Get("animal_type"), r.PostForm.Get("age")

	if err := validatePet(name, animalType, age); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pet, ok := s.store.mutate(u, petID, func(pet *openapi.Pet) {
		pet.Name = name
		pet.AnimalType = animalType
		pet.Age = openapi.Age(strings.TrimSpace(age))
	})
	if !ok {
		http.Error(w, "Pet with this id wasn't found!", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

// DeleteApiPetsPetID answers 200 with an empty body whether or not the
// pet existed.
func (s *Server) DeleteApiPetsPetID(w http.ResponseWriter, r *http.Request, petID openapi.PetIDParameter, params openapi.DeleteApiPetsPetIDParams) {
	u, ok := s.authenticate(w, params.AuthKey)
	if !ok {
		return
	}

	s.store.remove(u, petID)

	w.WriteHeader(http.StatusOK)
}
