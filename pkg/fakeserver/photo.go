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
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxPhotoSize bounds uploads, the service itself caps photos in the
// low megabytes.
const MaxPhotoSize = 8 << 20

var (
	ErrMissingPhoto     = errors.New("pet_photo is required")
	ErrUnsupportedPhoto = errors.New("photo must be a JPEG or PNG image")
	ErrPhotoTooLarge    = errors.New("photo is too large")
)

// readPhoto returns the uploaded photo as a data URI.  The second return
// is false when the request has no photo at all.
func readPhoto(r *http.Request) (string, bool, error) {
	file, _, err := r.FormFile("pet_photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("reading photo: %w", err)
	}

	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxPhotoSize+1))
	if err != nil {
		return "", false, fmt.Errorf("reading photo: %w", err)
	}

	if len(data) > MaxPhotoSize {
		return "", false, ErrPhotoTooLarge
	}

	contentType := http.DetectContentType(data)

	switch contentType {
	case "image/jpeg", "image/png":
	default:
		return "", false, fmt.Errorf("%w: got %s", ErrUnsupportedPhoto, contentType)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), true, nil
}
