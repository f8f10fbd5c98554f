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

//nolint:revive,stylecheck // names follow the operation paths
package openapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/key)
	GetApiKey(w http.ResponseWriter, r *http.Request, params GetApiKeyParams)
	// (GET /api/pets)
	GetApiPets(w http.ResponseWriter, r *http.Request, params GetApiPetsParams)
	// (POST /api/pets)
	PostApiPets(w http.ResponseWriter, r *http.Request, params PostApiPetsParams)
	// (POST /api/create_pet_simple)
	PostApiCreatePetSimple(w http.ResponseWriter, r *http.Request, params PostApiCreatePetSimpleParams)
	// (POST /api/pets/set_photo/{pet_id})
	PostApiPetsSetPhotoPetID(w http.ResponseWriter, r *http.Request, petID PetIDParameter, params PostApiPetsSetPhotoPetIDParams)
	// (PUT /api/pets/{pet_id})
	PutApiPetsPetID(w http.ResponseWriter, r *http.Request, petID PetIDParameter, params PutApiPetsPetIDParams)
	// (DELETE /api/pets/{pet_id})
	DeleteApiPetsPetID(w http.ResponseWriter, r *http.Request, petID PetIDParameter, params DeleteApiPetsPetIDParams)
}

// MiddlewareFunc wraps a handler once its route is known.
type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts requests into handler calls.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

// RequiredHeaderError is raised when a mandatory header is absent.
type RequiredHeaderError struct {
	ParamName string
}

func (e *RequiredHeaderError) Error() string {
	return fmt.Sprintf("header parameter %s is required, but not found", e.ParamName)
}

// TooManyValuesForParamError is raised when a single valued parameter is repeated.
type TooManyValuesForParamError struct {
	ParamName string
	Count     int
}

func (e *TooManyValuesForParamError) Error() string {
	return fmt.Sprintf("expected one value for %s, got %d", e.ParamName, e.Count)
}

// InvalidParamFormatError is raised when a parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// bindHeader binds a required, single valued header.
func bindHeader(r *http.Request, name string, dest *string) error {
	valueList, found := r.Header[http.CanonicalHeaderKey(name)]
	if !found {
		return &RequiredHeaderError{ParamName: name}
	}

	if n := len(valueList); n != 1 {
		return &TooManyValuesForParamError{ParamName: name, Count: n}
	}

	if err := runtime.BindStyledParameterWithOptions("simple", name, valueList[0], dest, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true}); err != nil {
		return &InvalidParamFormatError{ParamName: name, Err: err}
	}

	return nil
}

// bindPetID binds the pet_id path parameter.
func bindPetID(r *http.Request) (PetIDParameter, error) {
	var petID PetIDParameter

	if err := runtime.BindStyledParameterWithOptions("simple", "pet_id", chi.URLParam(r, "pet_id"), &petID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true}); err != nil {
		return "", &InvalidParamFormatError{ParamName: "pet_id", Err: err}
	}

	return petID, nil
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, f http.HandlerFunc) {
	handler := http.Handler(f)

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetApiKey operation middleware.
func (siw *ServerInterfaceWrapper) GetApiKey(w http.ResponseWriter, r *http.Request) {
	var params GetApiKeyParams

	if err := bindHeader(r, "email", &params.Email); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	if err := bindHeader(r, "password", &params.Password); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetApiKey(w, r, params)
	})
}

// GetApiPets operation middleware.
func (siw *ServerInterfaceWrapper) GetApiPets(w http.ResponseWriter, r *http.Request) {
	var params GetApiPetsParams

	if err := runtime.BindQueryParameter("form", true, false, "filter", r.URL.Query(), &params.Filter); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "filter", Err: err})
		return
	}

	if err := bindHeader(r, "auth_key", &params.AuthKey); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetApiPets(w, r, params)
	})
}

// PostApiPets operation middleware.
func (siw *ServerInterfaceWrapper) PostApiPets(w http.ResponseWriter, r *http.Request) {
	var params PostApiPetsParams

	if err := bindHeader(r, "auth_key", &params.AuthKey); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PostApiPets(w, r, params)
	})
}

// PostApiCreatePetSimple operation middleware.
func (siw *ServerInterfaceWrapper) PostApiCreatePetSimple(w http.ResponseWriter, r *http.Request) {
	var params PostApiCreatePetSimpleParams

	if err := bindHeader(r, "auth_key", &params.AuthKey); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PostApiCreatePetSimple(w, r, params)
	})
}

// PostApiPetsSetPhotoPetID operation middleware.
func (siw *ServerInterfaceWrapper) PostApiPetsSetPhotoPetID(w http.ResponseWriter, r *http.Request) {
	petID, err := bindPetID(r)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	var params PostApiPetsSetPhotoPetIDParams

	if err := bindHeader(r, "auth_key", &params.AuthKey); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PostApiPetsSetPhotoPetID(w, r, petID, params)
	})
}

// PutApiPetsPetID operation middleware.
func (siw *ServerInterfaceWrapper) PutApiPetsPetID(w http.ResponseWriter, r *http.Request) {
	petID, err := bindPetID(r)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	var params PutApiPetsPetIDParams

	if err := bindHeader(r, "auth_key", &params.AuthKey); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PutApiPetsPetID(w, r, petID, params)
	})
}

// DeleteApiPetsPetID operation middleware.
func (siw *ServerInterfaceWrapper) DeleteApiPetsPetID(w http.ResponseWriter, r *http.Request) {
	petID, err := bindPetID(r)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	var params DeleteApiPetsPetIDParams

	if err := bindHeader(r, "auth_key", &params.AuthKey); err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteApiPetsPetID(w, r, petID, params)
	})
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerWithOptions creates an http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}

	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/key", wrapper.GetApiKey)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/pets", wrapper.GetApiPets)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/pets", wrapper.PostApiPets)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/create_pet_simple", wrapper.PostApiCreatePetSimple)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/pets/set_photo/{pet_id}", wrapper.PostApiPetsSetPhotoPetID)
	})
	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/api/pets/{pet_id}", wrapper.PutApiPetsPetID)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/api/pets/{pet_id}", wrapper.DeleteApiPetsPetID)
	})

	return r
}
